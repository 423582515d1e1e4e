package dto

import "github.com/shopspring/decimal"

// ── Marcas de repuesto ───────────────────────────────────────────────────────

type CrearMarcaRequest struct {
	NombreMarca string `json:"nombre_marca" validate:"required"`
}

type MarcaResponse struct {
	ID          string `json:"id"`
	NombreMarca string `json:"nombre_marca"`
}

// ── Servicios (mano de obra) ─────────────────────────────────────────────────

type CrearServicioRequest struct {
	NombreServicio string          `json:"nombre_servicio" validate:"required"`
	Precio         decimal.Decimal `json:"precio"          validate:"required,min=0"`
}

type ActualizarServicioRequest struct {
	NombreServicio *string          `json:"nombre_servicio"`
	Precio         *decimal.Decimal `json:"precio"`
}

type ServicioResponse struct {
	ID             string          `json:"id"`
	NombreServicio string          `json:"nombre_servicio"`
	Precio         decimal.Decimal `json:"precio"`
}
