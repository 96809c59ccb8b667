package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// ClienteInline registers (or matches by documento) the guest at check-in.
type ClienteInline struct {
	Documento string  `json:"documento" validate:"required,min=5"`
	Nombre    string  `json:"nombre"    validate:"required"`
	Telefono  *string `json:"telefono"`
	Email     *string `json:"email"     validate:"omitempty,email"`
}

type CrearReservaRequest struct {
	HabitacionID     string        `json:"habitacion_id"     validate:"required,uuid"`
	Cliente          ClienteInline `json:"cliente"           validate:"required"`
	TipoEstadia      string        `json:"tipo_estadia"      validate:"required,oneof=hora noche"`
	HorasContratadas int           `json:"horas_contratadas" validate:"omitempty,min=1,max=24"`
}

type ReservaFilter struct {
	Estado string `form:"estado,default=Activa"` // Activa | Finalizada | Cancelada | all
	Fecha  string `form:"fecha"`                 // YYYY-MM-DD; empty = today
	Page   int    `form:"page,default=1"   validate:"min=1"`
	Limit  int    `form:"limit,default=50" validate:"min=1,max=200"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ServicioLineaResponse struct {
	Servicio       string          `json:"servicio"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Subtotal       decimal.Decimal `json:"subtotal"`
}

type ReservaResponse struct {
	ID               string                  `json:"id"`
	HabitacionNumero int                     `json:"habitacion_numero"`
	ClienteDocumento string                  `json:"cliente_documento"`
	ClienteNombre    string                  `json:"cliente_nombre"`
	CheckIn          string                  `json:"check_in"`
	CheckOut         *string                 `json:"check_out"`
	TipoEstadia      string                  `json:"tipo_estadia"`
	HorasContratadas int                     `json:"horas_contratadas"`
	PrecioTotal      decimal.Decimal         `json:"precio_total"`
	Estado           string                  `json:"estado"`
	Servicios        []ServicioLineaResponse `json:"servicios"`
}

type ReservaListResponse struct {
	Data  []ReservaResponse `json:"data"`
	Total int64             `json:"total"`
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
}
