package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearClienteRequest struct {
	Documento   string  `json:"documento"    validate:"required,min=5"`
	Nombre      string  `json:"nombre"       validate:"required"`
	Telefono    *string `json:"telefono"`
	Email       *string `json:"email"        validate:"omitempty,email"`
	Direccion   *string `json:"direccion"`
	RazonSocial *string `json:"razon_social"`
	CUIT        *string `json:"cuit"`
}

type ActualizarClienteRequest struct {
	Nombre      *string `json:"nombre"`
	Telefono    *string `json:"telefono"`
	Email       *string `json:"email"        validate:"omitempty,email"`
	Direccion   *string `json:"direccion"`
	RazonSocial *string `json:"razon_social"`
	CUIT        *string `json:"cuit"`
}

type ClienteFilter struct {
	Busqueda string `form:"q"` // matches documento or nombre
	Page     int    `form:"page,default=1"   validate:"min=1"`
	Limit    int    `form:"limit,default=50" validate:"min=1,max=200"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ClienteResponse struct {
	ID          string  `json:"id"`
	Documento   string  `json:"documento"`
	Nombre      string  `json:"nombre"`
	Telefono    *string `json:"telefono"`
	Email       *string `json:"email"`
	Direccion   *string `json:"direccion"`
	RazonSocial *string `json:"razon_social"`
	CUIT        *string `json:"cuit"`
	Activo      bool    `json:"activo"`
}

type ClienteListResponse struct {
	Data  []ClienteResponse `json:"data"`
	Total int64             `json:"total"`
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
}
