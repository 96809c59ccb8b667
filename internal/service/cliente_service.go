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

type ClienteService interface {
	Crear(ctx context.Context, req dto.CrearClienteRequest) (*dto.ClienteResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.ClienteResponse, error)
	ObtenerPorDocumento(ctx context.Context, documento string) (*dto.ClienteResponse, error)
	Listar(ctx context.Context, filter dto.ClienteFilter) (*dto.ClienteListResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarClienteRequest) (*dto.ClienteResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type clienteService struct {
	repo repository.ClienteRepository
}

func NewClienteService(repo repository.ClienteRepository) ClienteService {
	return &clienteService{repo: repo}
}

func (s *clienteService) Crear(ctx context.Context, req dto.CrearClienteRequest) (*dto.ClienteResponse, error) {
	if _, err := s.repo.FindByDocumento(ctx, req.Documento); err == nil {
		return nil, apierror.Conflict("Ya existe un cliente con ese documento")
	}
	c := &model.Cliente{
		Documento:   req.Documento,
		Nombre:      req.Nombre,
		Telefono:    req.Telefono,
		Email:       req.Email,
		Direccion:   req.Direccion,
		RazonSocial: req.RazonSocial,
		CUIT:        req.CUIT,
		Activo:      true,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apierror.Conflict("Ya existe un cliente con ese documento")
		}
		return nil, apierror.Store("No se pudo crear el cliente", err)
	}
	return toClienteResponse(c), nil
}

func (s *clienteService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.ClienteResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("Cliente no encontrado")
	}
	return toClienteResponse(c), nil
}

func (s *clienteService) ObtenerPorDocumento(ctx context.Context, documento string) (*dto.ClienteResponse, error) {
	c, err := s.repo.FindByDocumento(ctx, documento)
	if err != nil {
		return nil, apierror.NotFound("Cliente no encontrado")
	}
	return toClienteResponse(c), nil
}

func (s *clienteService) Listar(ctx context.Context, filter dto.ClienteFilter) (*dto.ClienteListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	clientes, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, apierror.Store("No se pudieron listar los clientes", err)
	}
	items := make([]dto.ClienteResponse, 0, len(clientes))
	for i := range clientes {
		items = append(items, *toClienteResponse(&clientes[i]))
	}
	return &dto.ClienteListResponse{Data: items, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

func (s *clienteService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarClienteRequest) (*dto.ClienteResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("Cliente no encontrado")
	}
	if req.Nombre != nil {
		c.Nombre = *req.Nombre
	}
	if req.Telefono != nil {
		c.Telefono = req.Telefono
	}
	if req.Email != nil {
		c.Email = req.Email
	}
	if req.Direccion != nil {
		c.Direccion = req.Direccion
	}
	if req.RazonSocial != nil {
		c.RazonSocial = req.RazonSocial
	}
	if req.CUIT != nil {
		c.CUIT = req.CUIT
	}
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, apierror.Store("No se pudo actualizar el cliente", err)
	}
	return toClienteResponse(c), nil
}

// Eliminar hard-deletes a client only when no reservation references it.
func (s *clienteService) Eliminar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return apierror.NotFound("Cliente no encontrado")
	}
	n, err := s.repo.CountReservas(ctx, id)
	if err != nil {
		return apierror.Store("No se pudo verificar las reservas del cliente", err)
	}
	if n > 0 {
		return apierror.Conflict("El cliente tiene reservas asociadas y no puede eliminarse")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return apierror.Store("No se pudo eliminar el cliente", err)
	}
	return nil
}

func toClienteResponse(c *model.Cliente) *dto.ClienteResponse {
	return &dto.ClienteResponse{
		ID:          c.ID.String(),
		Documento:   c.Documento,
		Nombre:      c.Nombre,
		Telefono:    c.Telefono,
		Email:       c.Email,
		Direccion:   c.Direccion,
		RazonSocial: c.RazonSocial,
		CUIT:        c.CUIT,
		Activo:      c.Activo,
	}
}
