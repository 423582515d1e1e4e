package dto

// ── Motos de clientes ────────────────────────────────────────────────────────

type CrearMotoClienteRequest struct {
	Placa     string `json:"placa"      validate:"required"`
	Marca     string `json:"marca"      validate:"required"`
	Modelo    string `json:"modelo"     validate:"required"`
	Anio      int    `json:"anio"       validate:"required,min=1900"`
	ClienteID string `json:"id_cliente" validate:"required,uuid"`
}

type ActualizarMotoClienteRequest struct {
	Placa     *string `json:"placa"`
	Marca     *string `json:"marca"`
	Modelo    *string `json:"modelo"`
	Anio      *int    `json:"anio" validate:"omitempty,min=1900"`
	ClienteID *string `json:"id_cliente" validate:"omitempty,uuid"`
}

type MotoClienteResponse struct {
	ID        string           `json:"id"`
	Placa     string           `json:"placa"`
	Marca     string           `json:"marca"`
	Modelo    string           `json:"modelo"`
	Anio      int              `json:"anio"`
	ClienteID string           `json:"id_cliente"`
	Cliente   *ClienteResponse `json:"cliente,omitempty"`
}

// ── Motos de mercado ─────────────────────────────────────────────────────────

type CrearMotoMercadoRequest struct {
	Modelo string `json:"modelo" validate:"required"`
}

type MotoMercadoResponse struct {
	ID     string `json:"id"`
	Modelo string `json:"modelo"`
}
