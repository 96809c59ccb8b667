package model

import (
	"time"

	"github.com/google/uuid"
)

// Cliente is a guest. Documento is the business identity (unique).
// Clients are created on first reservation or explicit registration and are
// never deleted while reservations reference them.
type Cliente struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Documento string    `gorm:"uniqueIndex;not null"`
	Nombre    string    `gorm:"not null"`
	Telefono  *string
	Email     *string
	Direccion *string
	// RazonSocial and CUIT are billing fields, optional for walk-in guests
	RazonSocial *string
	CUIT        *string `gorm:"type:varchar(20);column:cuit"`
	Activo      bool    `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
