package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Estado values for Habitacion. A room holds at most one active reservation;
// checkout always leaves it in Limpieza until housekeeping releases it.
const (
	HabitacionDisponible    = "Disponible"
	HabitacionOcupada       = "Ocupada"
	HabitacionMantenimiento = "Mantenimiento"
	HabitacionLimpieza      = "Limpieza"
)

// Habitacion is a motel room. Numero is the business identity (unique).
type Habitacion struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Numero       int             `gorm:"uniqueIndex;not null"`
	Tipo         string          `gorm:"type:varchar(50);not null"`
	PrecioHora   decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	PrecioNoche  decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Capacidad    int             `gorm:"not null;default:2"`
	Estado       string          `gorm:"type:varchar(20);not null;default:'Disponible'"`
	Activa       bool            `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
