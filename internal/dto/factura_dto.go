package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// FacturaResponse mirrors the billing record. Exactly one of OrdenServicioID /
// VentaDirectaID is set.
type FacturaResponse struct {
	ID                string           `json:"id"`
	Fecha             time.Time        `json:"fecha"`
	PagoEfectivo      decimal.Decimal  `json:"pago_efectivo"`
	PagoTarjeta       decimal.Decimal  `json:"pago_tarjeta"`
	PagoTransferencia decimal.Decimal  `json:"pago_transferencia"`
	Descuento         decimal.Decimal  `json:"descuento"`
	Subtotal          decimal.Decimal  `json:"subtotal"`
	IVA               decimal.Decimal  `json:"iva"`
	Total             decimal.Decimal  `json:"total"`
	Vendedor          string           `json:"vendedor"`
	ClienteID         string           `json:"id_cliente"`
	Cliente           *ClienteResponse `json:"cliente,omitempty"`
	OrdenServicioID   *string          `json:"id_orden_servicio,omitempty"`
	VentaDirectaID    *string          `json:"id_venta_directa,omitempty"`
}
