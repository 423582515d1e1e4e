package dto

type CrearProveedorRequest struct {
	NombreProveedor string  `json:"nombre_proveedor" validate:"required"`
	Nit             string  `json:"nit"              validate:"required"`
	Telefono        string  `json:"telefono"         validate:"required"`
	Asesor          *string `json:"asesor"`
}

type ActualizarProveedorRequest struct {
	NombreProveedor *string `json:"nombre_proveedor"`
	Nit             *string `json:"nit"`
	Telefono        *string `json:"telefono"`
	Asesor          *string `json:"asesor"`
}

type ProveedorResponse struct {
	ID              string  `json:"id"`
	NombreProveedor string  `json:"nombre_proveedor"`
	Nit             string  `json:"nit"`
	Telefono        string  `json:"telefono"`
	Asesor          *string `json:"asesor"`
}
