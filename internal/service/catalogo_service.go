package service

import (
	"context"
	"errors"
	"time"

	"moteldb/internal/apierror"
	"moteldb/internal/dto"
	"moteldb/internal/model"
	"moteldb/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CatalogoService covers the sellable-service catalog plus the small fixed
// catalogs (stay types, VAT rates, payment methods, exchange rates).
type CatalogoService interface {
	CrearServicio(ctx context.Context, req dto.CrearServicioRequest) (*dto.ServicioResponse, error)
	ObtenerServicio(ctx context.Context, id uuid.UUID) (*dto.ServicioResponse, error)
	ListarServicios(ctx context.Context, incluirInactivos bool) ([]dto.ServicioResponse, error)
	ActualizarServicio(ctx context.Context, id uuid.UUID, req dto.ActualizarServicioRequest) (*dto.ServicioResponse, error)

	CrearTipoEstadia(ctx context.Context, req dto.CrearTipoEstadiaRequest) (*dto.TipoEstadiaResponse, error)
	ListarTiposEstadia(ctx context.Context) ([]dto.TipoEstadiaResponse, error)

	CrearTipoIVA(ctx context.Context, req dto.CrearTipoIVARequest) (*dto.TipoIVAResponse, error)
	ListarTiposIVA(ctx context.Context) ([]dto.TipoIVAResponse, error)

	CrearMetodoPago(ctx context.Context, req dto.CrearMetodoPagoRequest) (*dto.MetodoPagoResponse, error)
	ListarMetodosPago(ctx context.Context) ([]dto.MetodoPagoResponse, error)

	CrearTipoCambio(ctx context.Context, req dto.CrearTipoCambioRequest) (*dto.TipoCambioResponse, error)
	ListarTiposCambio(ctx context.Context, moneda string) ([]dto.TipoCambioResponse, error)
}

type catalogoService struct {
	servicios repository.ServicioRepository
	catalogos repository.CatalogoRepository
}

func NewCatalogoService(servicios repository.ServicioRepository, catalogos repository.CatalogoRepository) CatalogoService {
	return &catalogoService{servicios: servicios, catalogos: catalogos}
}

// ── Servicios ────────────────────────────────────────────────────────────────

func (s *catalogoService) CrearServicio(ctx context.Context, req dto.CrearServicioRequest) (*dto.ServicioResponse, error) {
	if _, err := s.servicios.FindByCodigo(ctx, req.Codigo); err == nil {
		return nil, apierror.Conflict("Ya existe un servicio con ese codigo")
	}
	sv := &model.Servicio{
		Codigo:      req.Codigo,
		Nombre:      req.Nombre,
		Descripcion: req.Descripcion,
		Precio:      req.Precio,
		Activo:      true,
	}
	if req.TipoIVAID != nil {
		ivaID, err := uuid.Parse(*req.TipoIVAID)
		if err != nil {
			return nil, apierror.Validation("tipo_iva_id invalido")
		}
		var iva model.TipoIVA
		if err := s.catalogos.FindPorID(ctx, &iva, ivaID); err != nil {
			return nil, apierror.NotFound("Tipo de IVA no encontrado")
		}
		sv.TipoIVAID = &ivaID
	}
	if err := s.servicios.Create(ctx, sv); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apierror.Conflict("Ya existe un servicio con ese codigo")
		}
		return nil, apierror.Store("no se pudo crear el servicio", err)
	}
	return toServicioResponse(sv), nil
}

func (s *catalogoService) ObtenerServicio(ctx context.Context, id uuid.UUID) (*dto.ServicioResponse, error) {
	sv, err := s.servicios.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Servicio no encontrado")
		}
		return nil, apierror.Store("no se pudo obtener el servicio", err)
	}
	return toServicioResponse(sv), nil
}

func (s *catalogoService) ListarServicios(ctx context.Context, incluirInactivos bool) ([]dto.ServicioResponse, error) {
	servicios, err := s.servicios.List(ctx, incluirInactivos)
	if err != nil {
		return nil, apierror.Store("no se pudieron listar los servicios", err)
	}
	out := make([]dto.ServicioResponse, 0, len(servicios))
	for i := range servicios {
		out = append(out, *toServicioResponse(&servicios[i]))
	}
	return out, nil
}

func (s *catalogoService) ActualizarServicio(ctx context.Context, id uuid.UUID, req dto.ActualizarServicioRequest) (*dto.ServicioResponse, error) {
	sv, err := s.servicios.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("Servicio no encontrado")
	}
	if req.Nombre != nil {
		sv.Nombre = *req.Nombre
	}
	if req.Descripcion != nil {
		sv.Descripcion = req.Descripcion
	}
	if req.Precio != nil {
		sv.Precio = *req.Precio
	}
	if req.Activo != nil {
		sv.Activo = *req.Activo
	}
	if err := s.servicios.Update(ctx, sv); err != nil {
		return nil, apierror.Store("no se pudo actualizar el servicio", err)
	}
	return toServicioResponse(sv), nil
}

func toServicioResponse(sv *model.Servicio) *dto.ServicioResponse {
	return &dto.ServicioResponse{
		ID:          sv.ID.String(),
		Codigo:      sv.Codigo,
		Nombre:      sv.Nombre,
		Descripcion: sv.Descripcion,
		Precio:      sv.Precio,
		Activo:      sv.Activo,
	}
}

// ── Tipos de estadía ─────────────────────────────────────────────────────────

func (s *catalogoService) CrearTipoEstadia(ctx context.Context, req dto.CrearTipoEstadiaRequest) (*dto.TipoEstadiaResponse, error) {
	if _, err := s.catalogos.FindTipoEstadiaPorCodigo(ctx, req.Codigo); err == nil {
		return nil, apierror.Conflict("Ya existe un tipo de estadia con ese codigo")
	}
	t := &model.TipoEstadia{Codigo: req.Codigo, Nombre: req.Nombre, PorHora: req.PorHora, Activo: true}
	if err := s.catalogos.CreateTipoEstadia(ctx, t); err != nil {
		return nil, apierror.Store("no se pudo crear el tipo de estadia", err)
	}
	return &dto.TipoEstadiaResponse{ID: t.ID.String(), Codigo: t.Codigo, Nombre: t.Nombre, PorHora: t.PorHora, Activo: t.Activo}, nil
}

func (s *catalogoService) ListarTiposEstadia(ctx context.Context) ([]dto.TipoEstadiaResponse, error) {
	tipos, err := s.catalogos.ListTiposEstadia(ctx)
	if err != nil {
		return nil, apierror.Store("no se pudieron listar los tipos de estadia", err)
	}
	out := make([]dto.TipoEstadiaResponse, 0, len(tipos))
	for _, t := range tipos {
		out = append(out, dto.TipoEstadiaResponse{ID: t.ID.String(), Codigo: t.Codigo, Nombre: t.Nombre, PorHora: t.PorHora, Activo: t.Activo})
	}
	return out, nil
}

// ── Tipos de IVA ─────────────────────────────────────────────────────────────

func (s *catalogoService) CrearTipoIVA(ctx context.Context, req dto.CrearTipoIVARequest) (*dto.TipoIVAResponse, error) {
	t := &model.TipoIVA{Codigo: req.Codigo, Nombre: req.Nombre, Alicuota: req.Alicuota, Activo: true}
	if err := s.catalogos.CreateTipoIVA(ctx, t); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apierror.Conflict("Ya existe un tipo de IVA con ese codigo")
		}
		return nil, apierror.Store("no se pudo crear el tipo de IVA", err)
	}
	return &dto.TipoIVAResponse{ID: t.ID.String(), Codigo: t.Codigo, Nombre: t.Nombre, Alicuota: t.Alicuota, Activo: t.Activo}, nil
}

func (s *catalogoService) ListarTiposIVA(ctx context.Context) ([]dto.TipoIVAResponse, error) {
	tipos, err := s.catalogos.ListTiposIVA(ctx)
	if err != nil {
		return nil, apierror.Store("no se pudieron listar los tipos de IVA", err)
	}
	out := make([]dto.TipoIVAResponse, 0, len(tipos))
	for _, t := range tipos {
		out = append(out, dto.TipoIVAResponse{ID: t.ID.String(), Codigo: t.Codigo, Nombre: t.Nombre, Alicuota: t.Alicuota, Activo: t.Activo})
	}
	return out, nil
}

// ── Métodos de pago ──────────────────────────────────────────────────────────

func (s *catalogoService) CrearMetodoPago(ctx context.Context, req dto.CrearMetodoPagoRequest) (*dto.MetodoPagoResponse, error) {
	if _, err := s.catalogos.FindMetodoPagoPorCodigo(ctx, req.Codigo); err == nil {
		return nil, apierror.Conflict("Ya existe un metodo de pago con ese codigo")
	}
	m := &model.MetodoPago{Codigo: req.Codigo, Nombre: req.Nombre, Activo: true}
	if err := s.catalogos.CreateMetodoPago(ctx, m); err != nil {
		return nil, apierror.Store("no se pudo crear el metodo de pago", err)
	}
	return &dto.MetodoPagoResponse{ID: m.ID.String(), Codigo: m.Codigo, Nombre: m.Nombre, Activo: m.Activo}, nil
}

func (s *catalogoService) ListarMetodosPago(ctx context.Context) ([]dto.MetodoPagoResponse, error) {
	metodos, err := s.catalogos.ListMetodosPago(ctx)
	if err != nil {
		return nil, apierror.Store("no se pudieron listar los metodos de pago", err)
	}
	out := make([]dto.MetodoPagoResponse, 0, len(metodos))
	for _, m := range metodos {
		out = append(out, dto.MetodoPagoResponse{ID: m.ID.String(), Codigo: m.Codigo, Nombre: m.Nombre, Activo: m.Activo})
	}
	return out, nil
}

// ── Tipos de cambio ──────────────────────────────────────────────────────────

func (s *catalogoService) CrearTipoCambio(ctx context.Context, req dto.CrearTipoCambioRequest) (*dto.TipoCambioResponse, error) {
	fecha, err := time.Parse("2006-01-02", req.Fecha)
	if err != nil {
		return nil, apierror.Validation("fecha invalida, formato esperado YYYY-MM-DD")
	}
	t := &model.TipoCambio{Moneda: req.Moneda, Cambio: req.Cambio, Fecha: fecha}
	if err := s.catalogos.CreateTipoCambio(ctx, t); err != nil {
		return nil, apierror.Store("no se pudo registrar el tipo de cambio", err)
	}
	return toTipoCambioResponse(t), nil
}

func (s *catalogoService) ListarTiposCambio(ctx context.Context, moneda string) ([]dto.TipoCambioResponse, error) {
	tipos, err := s.catalogos.ListTiposCambio(ctx, moneda)
	if err != nil {
		return nil, apierror.Store("no se pudieron listar los tipos de cambio", err)
	}
	out := make([]dto.TipoCambioResponse, 0, len(tipos))
	for i := range tipos {
		out = append(out, *toTipoCambioResponse(&tipos[i]))
	}
	return out, nil
}

func toTipoCambioResponse(t *model.TipoCambio) *dto.TipoCambioResponse {
	return &dto.TipoCambioResponse{
		ID:     t.ID.String(),
		Moneda: t.Moneda,
		Cambio: t.Cambio,
		Fecha:  t.Fecha.Format("2006-01-02"),
	}
}
