package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CrearVentaRequest struct {
	Fecha             time.Time              `json:"fecha"      validate:"required"`
	Subtotal          decimal.Decimal        `json:"subtotal"   validate:"min=0"`
	Descuento         decimal.Decimal        `json:"descuento"  validate:"min=0"`
	IVA               decimal.Decimal        `json:"iva"        validate:"min=0"`
	Total             decimal.Decimal        `json:"total"      validate:"min=0"`
	PagoEfectivo      decimal.Decimal        `json:"pago_efectivo"      validate:"min=0"`
	PagoTarjeta       decimal.Decimal        `json:"pago_tarjeta"       validate:"min=0"`
	PagoTransferencia decimal.Decimal        `json:"pago_transferencia" validate:"min=0"`
	Vendedor          string                 `json:"vendedor"   validate:"required"`
	ClienteID         string                 `json:"id_cliente" validate:"required,uuid"`
	Repuestos         []LineaRepuestoRequest `json:"repuestos"  validate:"required,min=1,dive"`
}

type ActualizarVentaRequest = CrearVentaRequest

type VentaResponse struct {
	ID                string                  `json:"id"`
	Fecha             time.Time               `json:"fecha"`
	Subtotal          decimal.Decimal         `json:"subtotal"`
	Descuento         decimal.Decimal         `json:"descuento"`
	IVA               decimal.Decimal         `json:"iva"`
	Total             decimal.Decimal         `json:"total"`
	PagoEfectivo      decimal.Decimal         `json:"pago_efectivo"`
	PagoTarjeta       decimal.Decimal         `json:"pago_tarjeta"`
	PagoTransferencia decimal.Decimal         `json:"pago_transferencia"`
	Vendedor          string                  `json:"vendedor"`
	Cliente           *ClienteResponse        `json:"cliente,omitempty"`
	Repuestos         []LineaRepuestoResponse `json:"repuestos"`
	Factura           *FacturaResponse        `json:"factura,omitempty"`
}
