package dto

type CrearClienteRequest struct {
	NombreCliente string  `json:"nombre_cliente" validate:"required"`
	Cedula        string  `json:"cedula"         validate:"required"`
	Correo        string  `json:"correo"         validate:"required,email"`
	Telefono      string  `json:"telefono"       validate:"required"`
	Direccion     *string `json:"direccion"`
}

type ActualizarClienteRequest struct {
	NombreCliente *string `json:"nombre_cliente"`
	Cedula        *string `json:"cedula"`
	Correo        *string `json:"correo" validate:"omitempty,email"`
	Telefono      *string `json:"telefono"`
	Direccion     *string `json:"direccion"`
}

type ClienteResponse struct {
	ID            string                `json:"id"`
	NombreCliente string                `json:"nombre_cliente"`
	Cedula        string                `json:"cedula"`
	Correo        string                `json:"correo"`
	Telefono      string                `json:"telefono"`
	Direccion     *string               `json:"direccion"`
	MotosCliente  []MotoClienteResponse `json:"motos_cliente,omitempty"`
}
