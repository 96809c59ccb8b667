package service

import (
	"context"
	"time"

	"moteldb/internal/apierror"
	"moteldb/internal/dto"
	"moteldb/internal/model"
	"moteldb/internal/repository"
)

type DashboardService interface {
	Resumen(ctx context.Context) (*dto.DashboardResponse, error)
}

type dashboardService struct {
	repo     repository.DashboardRepository
	jornadas JornadaService
}

func NewDashboardService(repo repository.DashboardRepository, jornadas JornadaService) DashboardService {
	return &dashboardService{repo: repo, jornadas: jornadas}
}

func (s *dashboardService) Resumen(ctx context.Context) (*dto.DashboardResponse, error) {
	habitaciones, err := s.repo.CountHabitacionesPorEstado(ctx)
	if err != nil {
		return nil, apierror.Store("no se pudo armar el panel", err)
	}
	// Every known state appears in the map even with zero rooms, so the
	// panel never has to guess which keys exist.
	for _, estado := range []string{
		model.HabitacionDisponible,
		model.HabitacionOcupada,
		model.HabitacionMantenimiento,
		model.HabitacionLimpieza,
	} {
		if _, ok := habitaciones[estado]; !ok {
			habitaciones[estado] = 0
		}
	}

	reservasHoy, err := s.repo.CountReservasHoy(ctx)
	if err != nil {
		return nil, apierror.Store("no se pudo armar el panel", err)
	}
	reservasActivas, err := s.repo.CountReservasActivas(ctx)
	if err != nil {
		return nil, apierror.Store("no se pudo armar el panel", err)
	}
	ingresos, err := s.repo.SumPagosHoy(ctx)
	if err != nil {
		return nil, apierror.Store("no se pudo armar el panel", err)
	}

	resp := &dto.DashboardResponse{
		Habitaciones:    habitaciones,
		ReservasHoy:     reservasHoy,
		ReservasActivas: reservasActivas,
		IngresosHoy:     ingresos,
	}

	jornada, err := s.jornadas.JornadaActiva(ctx)
	if err != nil {
		return nil, err
	}
	if jornada != nil {
		actual := &dto.JornadaAbiertaResponse{
			ID:       jornada.ID.String(),
			Estado:   model.NormalizarEstadoJornada(jornada.Estado),
			Apertura: jornada.Apertura.Format(time.RFC3339),
		}
		if jornada.Jornada != nil {
			actual.Jornada = jornada.Jornada.Nombre
		}
		resp.JornadaActual = actual
	}
	return resp, nil
}
