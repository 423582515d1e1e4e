package dto

import "github.com/shopspring/decimal"

type CrearRepuestoRequest struct {
	CodigoBarras   string          `json:"codigo_barras"   validate:"required"`
	NombreRepuesto string          `json:"nombre_repuesto" validate:"required"`
	ValorCompra    decimal.Decimal `json:"valor_compra"    validate:"required,min=0"`
	ValorUnitario  decimal.Decimal `json:"valor_unitario"  validate:"required,min=0"`
	Ubicacion      *string         `json:"ubicacion"`
	Stock          int             `json:"stock"           validate:"min=0"`
	MarcaID        *string         `json:"id_marca"        validate:"omitempty,uuid"`
	MotosMercado   []string        `json:"motos_mercado"   validate:"dive,uuid"`
	Proveedores    []string        `json:"proveedores"     validate:"dive,uuid"`
}

// ActualizarRepuestoRequest replaces field values and, when the slices are
// present, the full set of compatibility/supplier links (delete-all, recreate).
type ActualizarRepuestoRequest struct {
	CodigoBarras   *string          `json:"codigo_barras"`
	NombreRepuesto *string          `json:"nombre_repuesto"`
	ValorCompra    *decimal.Decimal `json:"valor_compra"`
	ValorUnitario  *decimal.Decimal `json:"valor_unitario"`
	Ubicacion      *string          `json:"ubicacion"`
	Stock          *int             `json:"stock" validate:"omitempty,min=0"`
	MarcaID        *string          `json:"id_marca" validate:"omitempty,uuid"`
	MotosMercado   []string         `json:"motos_mercado" validate:"dive,uuid"`
	Proveedores    []string         `json:"proveedores"   validate:"dive,uuid"`
}

type RepuestoResponse struct {
	ID             string                `json:"id"`
	CodigoBarras   string                `json:"codigo_barras"`
	NombreRepuesto string                `json:"nombre_repuesto"`
	ValorCompra    decimal.Decimal       `json:"valor_compra"`
	ValorUnitario  decimal.Decimal       `json:"valor_unitario"`
	Ubicacion      *string               `json:"ubicacion"`
	Stock          int                   `json:"stock"`
	Marca          *MarcaResponse        `json:"marca,omitempty"`
	MotosMercado   []MotoMercadoResponse `json:"motos_mercado,omitempty"`
	Proveedores    []ProveedorResponse   `json:"proveedores,omitempty"`
}

// ConsultaBarcodeResponse is served from the redis cache when warm.
type ConsultaBarcodeResponse struct {
	NombreRepuesto string          `json:"nombre_repuesto"`
	ValorUnitario  decimal.Decimal `json:"valor_unitario"`
	Stock          int             `json:"stock"`
	Ubicacion      *string         `json:"ubicacion"`
}
