package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Estado values for JornadaAbierta. At most one jornada is Abierta at any time
// (application-enforced invariant — there is no database constraint).
const (
	JornadaAbiertaEstado = "Abierta"
	JornadaCerradaEstado = "Cerrada"
)

// cerradaSinonimos maps historical free-text estado values onto the closed
// state. Older installations recorded estados by hand in either grammatical
// form; the guard must not treat any of these as an open jornada.
var cerradaSinonimos = map[string]struct{}{
	"cerrada":    {},
	"cerrado":    {},
	"cancelada":  {},
	"cancelado":  {},
	"finalizada": {},
	"finalizado": {},
}

// NormalizarEstadoJornada collapses a stored estado (possibly historical
// free text) into the Abierta/Cerrada enumeration.
func NormalizarEstadoJornada(raw string) string {
	if _, ok := cerradaSinonimos[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return JornadaCerradaEstado
	}
	return JornadaAbiertaEstado
}

// Jornada is a named recurring work window definition ("Día", "Noche").
type Jornada struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre     string    `gorm:"uniqueIndex;not null"`
	HoraInicio string    `gorm:"type:varchar(5);not null"` // "HH:MM"
	HoraFin    string    `gorm:"type:varchar(5);not null"`
	Activa     bool      `gorm:"not null;default:true"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// JornadaAbierta is one concrete occurrence of a Jornada. Revenue-affecting
// operations (checkout) require one with estado Abierta to exist.
type JornadaAbierta struct {
	// Secuencia is a monotonically increasing identity used as the tie-break
	// when picking the most recent occurrence (highest value wins, never the
	// timestamp).
	Secuencia int64     `gorm:"primaryKey;autoIncrement"`
	ID        uuid.UUID `gorm:"type:uuid;uniqueIndex;default:gen_random_uuid()"`
	JornadaID uuid.UUID `gorm:"type:uuid;index;not null"`
	UsuarioID uuid.UUID `gorm:"type:uuid;not null"`
	Estado    string    `gorm:"type:varchar(20);not null;default:'Abierta'"`
	Apertura  time.Time `gorm:"not null"`
	Cierre    *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time

	Jornada *Jornada `gorm:"foreignKey:JornadaID"`
}

// Abierta reports whether the occurrence counts as open after normalization.
func (j *JornadaAbierta) Abierta() bool {
	return NormalizarEstadoJornada(j.Estado) == JornadaAbiertaEstado
}
