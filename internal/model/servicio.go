package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Servicio is a catalog item sellable during checkout (minibar, laundry, etc.).
// Precio is the current catalog price; sold lines capture their own copy.
type Servicio struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Codigo      string          `gorm:"uniqueIndex;not null"`
	Nombre      string          `gorm:"not null"`
	Descripcion *string
	Precio      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	TipoIVAID   *uuid.UUID      `gorm:"type:uuid;column:tipo_iva_id"`
	Activo      bool            `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
