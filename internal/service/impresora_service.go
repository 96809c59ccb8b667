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

type ImpresoraService interface {
	Crear(ctx context.Context, req dto.CrearImpresoraRequest) (*dto.ImpresoraResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.ImpresoraResponse, error)
	Listar(ctx context.Context) ([]dto.ImpresoraResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarImpresoraRequest) (*dto.ImpresoraResponse, error)
	MarcarDefecto(ctx context.Context, id uuid.UUID) (*dto.ImpresoraResponse, error)
}

type impresoraService struct {
	repo repository.ImpresoraRepository
}

func NewImpresoraService(repo repository.ImpresoraRepository) ImpresoraService {
	return &impresoraService{repo: repo}
}

func (s *impresoraService) Crear(ctx context.Context, req dto.CrearImpresoraRequest) (*dto.ImpresoraResponse, error) {
	i := &model.Impresora{
		Nombre:    req.Nombre,
		Tipo:      req.Tipo,
		AnchoMM:   req.AnchoMM,
		Ubicacion: req.Ubicacion,
		Activa:    true,
	}
	if i.AnchoMM == 0 {
		i.AnchoMM = 74
	}
	if req.Defecto {
		if err := s.repo.ClearDefecto(ctx); err != nil {
			return nil, apierror.Store("no se pudo registrar la impresora", err)
		}
		i.Defecto = true
	}
	if err := s.repo.Create(ctx, i); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apierror.Conflict("Ya existe una impresora con ese nombre")
		}
		return nil, apierror.Store("no se pudo registrar la impresora", err)
	}
	return toImpresoraResponse(i), nil
}

func (s *impresoraService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.ImpresoraResponse, error) {
	i, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Impresora no encontrada")
		}
		return nil, apierror.Store("no se pudo obtener la impresora", err)
	}
	return toImpresoraResponse(i), nil
}

func (s *impresoraService) Listar(ctx context.Context) ([]dto.ImpresoraResponse, error) {
	impresoras, err := s.repo.List(ctx)
	if err != nil {
		return nil, apierror.Store("no se pudieron listar las impresoras", err)
	}
	out := make([]dto.ImpresoraResponse, 0, len(impresoras))
	for i := range impresoras {
		out = append(out, *toImpresoraResponse(&impresoras[i]))
	}
	return out, nil
}

func (s *impresoraService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarImpresoraRequest) (*dto.ImpresoraResponse, error) {
	i, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("Impresora no encontrada")
	}
	if req.Nombre != nil {
		i.Nombre = *req.Nombre
	}
	if req.Tipo != nil {
		i.Tipo = *req.Tipo
	}
	if req.AnchoMM != nil {
		i.AnchoMM = *req.AnchoMM
	}
	if req.Ubicacion != nil {
		i.Ubicacion = req.Ubicacion
	}
	if req.Activa != nil {
		i.Activa = *req.Activa
	}
	if req.Defecto != nil && *req.Defecto && !i.Defecto {
		if err := s.repo.ClearDefecto(ctx); err != nil {
			return nil, apierror.Store("no se pudo actualizar la impresora", err)
		}
		i.Defecto = true
	}
	if req.Defecto != nil && !*req.Defecto {
		i.Defecto = false
	}
	if err := s.repo.Update(ctx, i); err != nil {
		return nil, apierror.Store("no se pudo actualizar la impresora", err)
	}
	return toImpresoraResponse(i), nil
}

func (s *impresoraService) MarcarDefecto(ctx context.Context, id uuid.UUID) (*dto.ImpresoraResponse, error) {
	i, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("Impresora no encontrada")
	}
	if !i.Activa {
		return nil, apierror.Conflict("No se puede marcar como predeterminada una impresora inactiva")
	}
	if err := s.repo.ClearDefecto(ctx); err != nil {
		return nil, apierror.Store("no se pudo actualizar la impresora", err)
	}
	i.Defecto = true
	if err := s.repo.Update(ctx, i); err != nil {
		return nil, apierror.Store("no se pudo actualizar la impresora", err)
	}
	return toImpresoraResponse(i), nil
}

func toImpresoraResponse(i *model.Impresora) *dto.ImpresoraResponse {
	return &dto.ImpresoraResponse{
		ID:        i.ID.String(),
		Nombre:    i.Nombre,
		Tipo:      i.Tipo,
		AnchoMM:   i.AnchoMM,
		Ubicacion: i.Ubicacion,
		Defecto:   i.Defecto,
		Activa:    i.Activa,
	}
}
