package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type AbrirJornadaRequest struct {
	JornadaID string `json:"jornada_id" validate:"required,uuid"`
}

type CerrarJornadaRequest struct {
	Observaciones *string `json:"observaciones"`
}

type CrearJornadaRequest struct {
	Nombre     string `json:"nombre"      validate:"required,min=2"`
	HoraInicio string `json:"hora_inicio" validate:"required,len=5"`
	HoraFin    string `json:"hora_fin"    validate:"required,len=5"`
}

type ActualizarJornadaRequest struct {
	Nombre     *string `json:"nombre"      validate:"omitempty,min=2"`
	HoraInicio *string `json:"hora_inicio" validate:"omitempty,len=5"`
	HoraFin    *string `json:"hora_fin"    validate:"omitempty,len=5"`
	Activa     *bool   `json:"activa"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// JornadaActivaResponse answers the shift validation surface:
// {active, shiftId?, reason?}.
type JornadaActivaResponse struct {
	Activa    bool    `json:"active"`
	JornadaID *string `json:"shiftId,omitempty"`
	Motivo    *string `json:"reason,omitempty"`
}

type JornadaAbiertaResponse struct {
	ID       string  `json:"id"`
	Jornada  string  `json:"jornada"`
	Usuario  string  `json:"usuario"`
	Estado   string  `json:"estado"`
	Apertura string  `json:"apertura"`
	Cierre   *string `json:"cierre"`
}

// ResumenJornadaResponse is returned on close: the payments taken during
// the jornada grouped by metodo.
type ResumenJornadaResponse struct {
	JornadaAbiertaResponse
	TotalCobrado decimal.Decimal            `json:"total_cobrado"`
	PorMetodo    map[string]decimal.Decimal `json:"por_metodo"`
	Pagos        int64                      `json:"pagos"`
}

type JornadaResponse struct {
	ID         string `json:"id"`
	Nombre     string `json:"nombre"`
	HoraInicio string `json:"hora_inicio"`
	HoraFin    string `json:"hora_fin"`
	Activa     bool   `json:"activa"`
}
