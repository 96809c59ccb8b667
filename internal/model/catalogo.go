package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Fixed-length catalog entities. Each is referenced by code from reservations
// and payments; rows are soft-deactivated, never hard-deleted.

// TipoEstadia defines how a stay is priced: "hora" charges PrecioHora per
// contracted hour, "noche" charges PrecioNoche flat.
type TipoEstadia struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Codigo    string    `gorm:"type:varchar(10);uniqueIndex;not null"`
	Nombre    string    `gorm:"not null"`
	PorHora   bool      `gorm:"not null;default:false"`
	Activo    bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TipoIVA is a VAT rate entry.
type TipoIVA struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Codigo    string          `gorm:"type:varchar(10);uniqueIndex;not null"`
	Nombre    string          `gorm:"not null"`
	Alicuota  decimal.Decimal `gorm:"type:decimal(5,2);not null"`
	Activo    bool            `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (TipoIVA) TableName() string { return "tipos_iva" }

// MetodoPago is a payment method catalog entry ("Efectivo", "Tarjeta", ...).
type MetodoPago struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Codigo    string    `gorm:"type:varchar(10);uniqueIndex;not null"`
	Nombre    string    `gorm:"not null"`
	Activo    bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (MetodoPago) TableName() string { return "metodos_pago" }

// TipoCambio records an exchange rate quote for a currency on a given day.
type TipoCambio struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Moneda    string          `gorm:"type:varchar(3);index;not null"`
	Cambio    decimal.Decimal `gorm:"type:decimal(12,4);not null"`
	Fecha     time.Time       `gorm:"index;not null"`
	CreatedAt time.Time
}

func (TipoCambio) TableName() string { return "tipos_cambio" }
