package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Estado values for Reserva. A reservation is created Activa, becomes
// Finalizada exactly once at checkout, and is immutable afterwards.
const (
	ReservaActiva     = "Activa"
	ReservaFinalizada = "Finalizada"
	ReservaCancelada  = "Cancelada"
)

// Reserva is a room reservation. PrecioTotal holds the base price while the
// reservation is Activa; checkout finalizes it as base + service subtotals.
type Reserva struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	HabitacionID uuid.UUID  `gorm:"type:uuid;index;not null"`
	ClienteID    uuid.UUID  `gorm:"type:uuid;index;not null"`
	JornadaID    *uuid.UUID `gorm:"type:uuid;index"`
	CheckIn      time.Time  `gorm:"not null"`
	// CheckOut stays nil until the reservation is closed
	CheckOut         *time.Time
	TipoEstadia      string          `gorm:"type:varchar(30);not null"`
	HorasContratadas int             `gorm:"not null;default:0"`
	PrecioTotal      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Estado           string          `gorm:"type:varchar(20);not null;default:'Activa'"`
	CreatedAt        time.Time
	UpdatedAt        time.Time

	Habitacion *Habitacion       `gorm:"foreignKey:HabitacionID"`
	Cliente    *Cliente          `gorm:"foreignKey:ClienteID"`
	Servicios  []ReservaServicio `gorm:"foreignKey:ReservaID"`
	Pagos      []Pago            `gorm:"foreignKey:ReservaID"`
}

// ReservaServicio is one service line sold during checkout. PrecioUnitario is
// the catalog price captured at time of sale — later catalog changes never
// alter a closed invoice. Lines are immutable: never updated or deleted.
type ReservaServicio struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ReservaID      uuid.UUID       `gorm:"type:uuid;index;not null"`
	ServicioID     uuid.UUID       `gorm:"type:uuid;index;not null"`
	Cantidad       int             `gorm:"not null"`
	PrecioUnitario decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Subtotal       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CreatedAt      time.Time

	Servicio *Servicio `gorm:"foreignKey:ServicioID"`
}

// Pago settles a reservation. Exactly one row is created per successful
// checkout, after the final price is known.
type Pago struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ReservaID uuid.UUID       `gorm:"type:uuid;uniqueIndex;not null"`
	Monto     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Metodo    string          `gorm:"type:varchar(30);not null"`
	Fecha     time.Time       `gorm:"not null"`
	CreatedAt time.Time
}
