package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineaRepuestoRequest is a part line in an order/sale request body.
// Precio is the unit price snapshot the client agreed to.
type LineaRepuestoRequest struct {
	RepuestoID string          `json:"id_repuesto" validate:"required,uuid"`
	Cantidad   int             `json:"cantidad"    validate:"required,min=1"`
	Precio     decimal.Decimal `json:"precio"      validate:"required,min=0"`
}

type LineaServicioRequest struct {
	ServicioID string          `json:"id_servicio" validate:"required,uuid"`
	Precio     decimal.Decimal `json:"precio"      validate:"required,min=0"`
}

type CrearOrdenRequest struct {
	Fecha                 time.Time              `json:"fecha"     validate:"required"`
	Estado                string                 `json:"estado"    validate:"required"`
	Subtotal              decimal.Decimal        `json:"subtotal"  validate:"min=0"`
	Descuento             decimal.Decimal        `json:"descuento" validate:"min=0"`
	IVA                   decimal.Decimal        `json:"iva"       validate:"min=0"`
	Total                 decimal.Decimal        `json:"total"     validate:"min=0"`
	AdelantoEfectivo      decimal.Decimal        `json:"adelanto_efectivo"      validate:"min=0"`
	AdelantoTarjeta       decimal.Decimal        `json:"adelanto_tarjeta"       validate:"min=0"`
	AdelantoTransferencia decimal.Decimal        `json:"adelanto_transferencia" validate:"min=0"`
	GuardarCascos         bool                   `json:"guardar_cascos"`
	GuardarPapeles        bool                   `json:"guardar_papeles"`
	Observaciones         *string                `json:"observaciones"`
	ObservacionesMecanico *string                `json:"observaciones_mecanico"`
	ObservacionesFactura  *string                `json:"observaciones_factura"`
	Mecanico              string                 `json:"mecanico" validate:"required"`
	Vendedor              string                 `json:"vendedor" validate:"required"`
	MotoClienteID         string                 `json:"id_moto_cliente" validate:"required,uuid"`
	Repuestos             []LineaRepuestoRequest `json:"repuestos" validate:"dive"`
	Servicios             []LineaServicioRequest `json:"servicios" validate:"dive"`
}

// ActualizarOrdenRequest carries the full desired state of the order; the
// service diffs the part lines against what is stored.
type ActualizarOrdenRequest = CrearOrdenRequest

type LineaRepuestoResponse struct {
	RepuestoID     string          `json:"id_repuesto"`
	NombreRepuesto string          `json:"nombre_repuesto"`
	Cantidad       int             `json:"cantidad"`
	Precio         decimal.Decimal `json:"precio"`
}

type LineaServicioResponse struct {
	ServicioID     string          `json:"id_servicio"`
	NombreServicio string          `json:"nombre_servicio"`
	Precio         decimal.Decimal `json:"precio"`
}

type OrdenResponse struct {
	ID                    string                  `json:"id"`
	Fecha                 time.Time               `json:"fecha"`
	Estado                string                  `json:"estado"`
	Subtotal              decimal.Decimal         `json:"subtotal"`
	Descuento             decimal.Decimal         `json:"descuento"`
	IVA                   decimal.Decimal         `json:"iva"`
	Total                 decimal.Decimal         `json:"total"`
	AdelantoEfectivo      decimal.Decimal         `json:"adelanto_efectivo"`
	AdelantoTarjeta       decimal.Decimal         `json:"adelanto_tarjeta"`
	AdelantoTransferencia decimal.Decimal         `json:"adelanto_transferencia"`
	GuardarCascos         bool                    `json:"guardar_cascos"`
	GuardarPapeles        bool                    `json:"guardar_papeles"`
	Observaciones         *string                 `json:"observaciones"`
	ObservacionesMecanico *string                 `json:"observaciones_mecanico"`
	ObservacionesFactura  *string                 `json:"observaciones_factura"`
	Mecanico              string                  `json:"mecanico"`
	Vendedor              string                  `json:"vendedor"`
	MotoCliente           *MotoClienteResponse    `json:"moto_cliente,omitempty"`
	Repuestos             []LineaRepuestoResponse `json:"repuestos"`
	Servicios             []LineaServicioResponse `json:"servicios"`
	Factura               *FacturaResponse        `json:"factura,omitempty"`
}
