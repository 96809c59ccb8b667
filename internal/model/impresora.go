package model

import (
	"time"

	"github.com/google/uuid"
)

// Impresora is a registered receipt printer. Tipo: "termica" | "laser".
// The receipt worker resolves the default printer when rendering tickets.
type Impresora struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre    string    `gorm:"uniqueIndex;not null"`
	Tipo      string    `gorm:"type:varchar(20);not null;default:'termica'"`
	AnchoMM   int       `gorm:"column:ancho_mm;not null;default:74"`
	Ubicacion *string
	Defecto   bool `gorm:"not null;default:false"`
	Activa    bool `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
