package dto

import "github.com/shopspring/decimal"

// DashboardResponse is the front-desk landing panel: room occupancy, today's
// revenue and the currently open jornada, all computed from live store reads.
type DashboardResponse struct {
	Habitaciones   map[string]int64        `json:"habitaciones"` // estado → count
	ReservasHoy    int64                   `json:"reservas_hoy"`
	ReservasActivas int64                  `json:"reservas_activas"`
	IngresosHoy    decimal.Decimal         `json:"ingresos_hoy"`
	JornadaActual  *JornadaAbiertaResponse `json:"jornada_actual"`
}
