package dto

// ─── Impresoras ──────────────────────────────────────────────────────────────

type CrearImpresoraRequest struct {
	Nombre    string  `json:"nombre"    validate:"required"`
	Tipo      string  `json:"tipo"      validate:"required,oneof=termica laser"`
	AnchoMM   int     `json:"ancho_mm"  validate:"omitempty,min=40,max=210"`
	Ubicacion *string `json:"ubicacion"`
	Defecto   bool    `json:"defecto"`
}

type ActualizarImpresoraRequest struct {
	Nombre    *string `json:"nombre"`
	Tipo      *string `json:"tipo"     validate:"omitempty,oneof=termica laser"`
	AnchoMM   *int    `json:"ancho_mm" validate:"omitempty,min=40,max=210"`
	Ubicacion *string `json:"ubicacion"`
	Defecto   *bool   `json:"defecto"`
	Activa    *bool   `json:"activa"`
}

type ImpresoraResponse struct {
	ID        string  `json:"id"`
	Nombre    string  `json:"nombre"`
	Tipo      string  `json:"tipo"`
	AnchoMM   int     `json:"ancho_mm"`
	Ubicacion *string `json:"ubicacion"`
	Defecto   bool    `json:"defecto"`
	Activa    bool    `json:"activa"`
}
