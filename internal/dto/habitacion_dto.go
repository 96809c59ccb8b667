package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearHabitacionRequest struct {
	Numero      int             `json:"numero"       validate:"required,min=1"`
	Tipo        string          `json:"tipo"         validate:"required"`
	PrecioHora  decimal.Decimal `json:"precio_hora"  validate:"required"`
	PrecioNoche decimal.Decimal `json:"precio_noche" validate:"required"`
	Capacidad   int             `json:"capacidad"    validate:"required,min=1"`
}

// ActualizarHabitacionRequest applies only the fields present in the body;
// nil pointers leave the stored value untouched.
type ActualizarHabitacionRequest struct {
	Tipo        *string          `json:"tipo"`
	PrecioHora  *decimal.Decimal `json:"precio_hora"`
	PrecioNoche *decimal.Decimal `json:"precio_noche"`
	Capacidad   *int             `json:"capacidad"    validate:"omitempty,min=1"`
	Estado      *string          `json:"estado"       validate:"omitempty,oneof=Disponible Ocupada Mantenimiento Limpieza"`
	Activa      *bool            `json:"activa"`
}

type HabitacionFilter struct {
	Estado string `form:"estado"` // empty = all
	Tipo   string `form:"tipo"`
	Activa *bool  `form:"activa"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type HabitacionResponse struct {
	ID          string          `json:"id"`
	Numero      int             `json:"numero"`
	Tipo        string          `json:"tipo"`
	PrecioHora  decimal.Decimal `json:"precio_hora"`
	PrecioNoche decimal.Decimal `json:"precio_noche"`
	Capacidad   int             `json:"capacidad"`
	Estado      string          `json:"estado"`
	Activa      bool            `json:"activa"`
}
