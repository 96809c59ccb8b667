package service

import (
	"context"
	"errors"

	"moteldb/internal/apierror"
	"moteldb/internal/dto"
	"moteldb/internal/model"
	"moteldb/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type HabitacionService interface {
	Crear(ctx context.Context, req dto.CrearHabitacionRequest) (*dto.HabitacionResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.HabitacionResponse, error)
	Listar(ctx context.Context, filter dto.HabitacionFilter) ([]dto.HabitacionResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarHabitacionRequest) (*dto.HabitacionResponse, error)
	Desactivar(ctx context.Context, id uuid.UUID) error
}

type habitacionService struct {
	repo     repository.HabitacionRepository
	reservas repository.ReservaRepository
}

func NewHabitacionService(repo repository.HabitacionRepository, reservas repository.ReservaRepository) HabitacionService {
	return &habitacionService{repo: repo, reservas: reservas}
}

// Crear runs the duplicate-numero check and the insert inside one transaction
// so a concurrent create of the same numero cannot slip between them.
func (s *habitacionService) Crear(ctx context.Context, req dto.CrearHabitacionRequest) (*dto.HabitacionResponse, error) {
	h := &model.Habitacion{
		Numero:      req.Numero,
		Tipo:        req.Tipo,
		PrecioHora:  req.PrecioHora,
		PrecioNoche: req.PrecioNoche,
		Capacidad:   req.Capacidad,
		Estado:      model.HabitacionDisponible,
		Activa:      true,
	}
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		_, err := s.repo.FindByNumeroTx(tx, req.Numero)
		if err == nil {
			return apierror.Conflict("Ya existe una habitacion con ese numero")
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return s.repo.CreateTx(tx, h)
	})
	if txErr != nil {
		var ae *apierror.Error
		if errors.As(txErr, &ae) {
			return nil, ae
		}
		if errors.Is(txErr, gorm.ErrDuplicatedKey) {
			return nil, apierror.Conflict("Ya existe una habitacion con ese numero")
		}
		return nil, apierror.Store("No se pudo crear la habitacion", txErr)
	}
	return toHabitacionResponse(h), nil
}

func (s *habitacionService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.HabitacionResponse, error) {
	h, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("Habitacion no encontrada")
	}
	return toHabitacionResponse(h), nil
}

func (s *habitacionService) Listar(ctx context.Context, filter dto.HabitacionFilter) ([]dto.HabitacionResponse, error) {
	habitaciones, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, apierror.Store("No se pudieron listar las habitaciones", err)
	}
	out := make([]dto.HabitacionResponse, 0, len(habitaciones))
	for i := range habitaciones {
		out = append(out, *toHabitacionResponse(&habitaciones[i]))
	}
	return out, nil
}

// Actualizar applies only the fields present in the request, atomically.
func (s *habitacionService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarHabitacionRequest) (*dto.HabitacionResponse, error) {
	h, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("Habitacion no encontrada")
	}
	if req.Tipo != nil {
		h.Tipo = *req.Tipo
	}
	if req.PrecioHora != nil {
		h.PrecioHora = *req.PrecioHora
	}
	if req.PrecioNoche != nil {
		h.PrecioNoche = *req.PrecioNoche
	}
	if req.Capacidad != nil {
		h.Capacidad = *req.Capacidad
	}
	if req.Estado != nil {
		h.Estado = *req.Estado
	}
	if req.Activa != nil {
		h.Activa = *req.Activa
	}
	if err := s.repo.Update(ctx, h); err != nil {
		return nil, apierror.Store("No se pudo actualizar la habitacion", err)
	}
	return toHabitacionResponse(h), nil
}

func (s *habitacionService) Desactivar(ctx context.Context, id uuid.UUID) error {
	h, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return apierror.NotFound("Habitacion no encontrada")
	}
	if _, err := s.reservas.FindActivaPorHabitacion(ctx, id); err == nil {
		return apierror.Conflict("La habitacion tiene una reserva activa")
	}
	h.Activa = false
	if err := s.repo.Update(ctx, h); err != nil {
		return apierror.Store("No se pudo desactivar la habitacion", err)
	}
	return nil
}

func toHabitacionResponse(h *model.Habitacion) *dto.HabitacionResponse {
	return &dto.HabitacionResponse{
		ID:          h.ID.String(),
		Numero:      h.Numero,
		Tipo:        h.Tipo,
		PrecioHora:  h.PrecioHora,
		PrecioNoche: h.PrecioNoche,
		Capacidad:   h.Capacidad,
		Estado:      h.Estado,
		Activa:      h.Activa,
	}
}
