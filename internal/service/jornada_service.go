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
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type JornadaService interface {
	// JornadaActiva is the guard consulted before any revenue-affecting
	// operation. (nil, nil) means no jornada is open; a non-nil error means
	// the open state could not be verified and the caller MUST hard-stop —
	// the two cases are never conflated.
	JornadaActiva(ctx context.Context) (*model.JornadaAbierta, error)
	EstadoActual(ctx context.Context) (*dto.JornadaActivaResponse, error)

	Abrir(ctx context.Context, usuarioID uuid.UUID, req dto.AbrirJornadaRequest) (*dto.JornadaAbiertaResponse, error)
	Cerrar(ctx context.Context, id uuid.UUID, req dto.CerrarJornadaRequest) (*dto.ResumenJornadaResponse, error)

	// Definitions catalog
	CrearDefinicion(ctx context.Context, req dto.CrearJornadaRequest) (*dto.JornadaResponse, error)
	ListarDefiniciones(ctx context.Context) ([]dto.JornadaResponse, error)
	ActualizarDefinicion(ctx context.Context, id uuid.UUID, req dto.ActualizarJornadaRequest) (*dto.JornadaResponse, error)
}

type jornadaService struct {
	repo     repository.JornadaRepository
	usuarios repository.UsuarioRepository
}

func NewJornadaService(repo repository.JornadaRepository, usuarios repository.UsuarioRepository) JornadaService {
	return &jornadaService{repo: repo, usuarios: usuarios}
}

// ── Guard ─────────────────────────────────────────────────────────────────────

func (s *jornadaService) JornadaActiva(ctx context.Context) (*model.JornadaAbierta, error) {
	j, err := s.repo.FindUltimaAbierta(ctx)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		// A store failure is NOT "no jornada abierta" — treating it that way
		// would let checkouts run against an unverifiable state.
		return nil, apierror.Store("No se pudo validar la jornada", err)
	}
	return j, nil
}

func (s *jornadaService) EstadoActual(ctx context.Context) (*dto.JornadaActivaResponse, error) {
	j, err := s.JornadaActiva(ctx)
	if err != nil {
		return nil, err
	}
	if j == nil {
		motivo := "No hay jornada abierta"
		return &dto.JornadaActivaResponse{Activa: false, Motivo: &motivo}, nil
	}
	id := j.ID.String()
	return &dto.JornadaActivaResponse{Activa: true, JornadaID: &id}, nil
}

// ── Apertura / cierre ─────────────────────────────────────────────────────────

func (s *jornadaService) Abrir(ctx context.Context, usuarioID uuid.UUID, req dto.AbrirJornadaRequest) (*dto.JornadaAbiertaResponse, error) {
	jornadaID, err := uuid.Parse(req.JornadaID)
	if err != nil {
		return nil, apierror.Validation("jornada_id invalido")
	}

	def, err := s.repo.FindDefinicionByID(ctx, jornadaID)
	if err != nil {
		return nil, apierror.NotFound("Jornada no encontrada")
	}
	if !def.Activa {
		return nil, apierror.Validation("La jornada esta inactiva")
	}

	// At most one jornada is open at any time — application-enforced.
	existente, err := s.JornadaActiva(ctx)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, apierror.Conflict("Ya existe una jornada abierta")
	}

	abierta := &model.JornadaAbierta{
		JornadaID: def.ID,
		UsuarioID: usuarioID,
		Estado:    model.JornadaAbiertaEstado,
		Apertura:  time.Now(),
	}
	if err := s.repo.CreateAbierta(ctx, abierta); err != nil {
		return nil, apierror.Store("No se pudo abrir la jornada", err)
	}
	abierta.Jornada = def

	return s.toAbiertaResponse(ctx, abierta), nil
}

func (s *jornadaService) Cerrar(ctx context.Context, id uuid.UUID, req dto.CerrarJornadaRequest) (*dto.ResumenJornadaResponse, error) {
	abierta, err := s.repo.FindAbiertaByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("Jornada abierta no encontrada")
	}
	if !abierta.Abierta() {
		return nil, apierror.Conflict("La jornada ya esta cerrada")
	}

	sums, pagos, err := s.repo.SumPagosPorMetodo(ctx, abierta)
	if err != nil {
		return nil, apierror.Store("No se pudo calcular el resumen de la jornada", err)
	}

	now := time.Now()
	abierta.Estado = model.JornadaCerradaEstado
	abierta.Cierre = &now
	if err := s.repo.UpdateAbierta(ctx, abierta); err != nil {
		return nil, apierror.Store("No se pudo cerrar la jornada", err)
	}

	total := decimal.Zero
	for _, monto := range sums {
		total = total.Add(monto)
	}

	return &dto.ResumenJornadaResponse{
		JornadaAbiertaResponse: *s.toAbiertaResponse(ctx, abierta),
		TotalCobrado:           total,
		PorMetodo:              sums,
		Pagos:                  pagos,
	}, nil
}

// ── Definitions ───────────────────────────────────────────────────────────────

func (s *jornadaService) CrearDefinicion(ctx context.Context, req dto.CrearJornadaRequest) (*dto.JornadaResponse, error) {
	j := &model.Jornada{
		Nombre:     req.Nombre,
		HoraInicio: req.HoraInicio,
		HoraFin:    req.HoraFin,
		Activa:     true,
	}
	if err := s.repo.CreateDefinicion(ctx, j); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apierror.Conflict("Ya existe una jornada con ese nombre")
		}
		return nil, apierror.Store("No se pudo crear la jornada", err)
	}
	return toJornadaResponse(j), nil
}

func (s *jornadaService) ListarDefiniciones(ctx context.Context) ([]dto.JornadaResponse, error) {
	jornadas, err := s.repo.ListDefiniciones(ctx)
	if err != nil {
		return nil, apierror.Store("No se pudieron listar las jornadas", err)
	}
	out := make([]dto.JornadaResponse, 0, len(jornadas))
	for i := range jornadas {
		out = append(out, *toJornadaResponse(&jornadas[i]))
	}
	return out, nil
}

func (s *jornadaService) ActualizarDefinicion(ctx context.Context, id uuid.UUID, req dto.ActualizarJornadaRequest) (*dto.JornadaResponse, error) {
	j, err := s.repo.FindDefinicionByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("Jornada no encontrada")
	}
	if req.Nombre != nil {
		j.Nombre = *req.Nombre
	}
	if req.HoraInicio != nil {
		j.HoraInicio = *req.HoraInicio
	}
	if req.HoraFin != nil {
		j.HoraFin = *req.HoraFin
	}
	if req.Activa != nil {
		j.Activa = *req.Activa
	}
	if err := s.repo.UpdateDefinicion(ctx, j); err != nil {
		return nil, apierror.Store("No se pudo actualizar la jornada", err)
	}
	return toJornadaResponse(j), nil
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func (s *jornadaService) toAbiertaResponse(ctx context.Context, j *model.JornadaAbierta) *dto.JornadaAbiertaResponse {
	nombre := ""
	if j.Jornada != nil {
		nombre = j.Jornada.Nombre
	}
	usuario := ""
	if u, err := s.usuarios.FindByID(ctx, j.UsuarioID); err == nil {
		usuario = u.Username
	}
	resp := &dto.JornadaAbiertaResponse{
		ID:       j.ID.String(),
		Jornada:  nombre,
		Usuario:  usuario,
		Estado:   model.NormalizarEstadoJornada(j.Estado),
		Apertura: j.Apertura.Format(time.RFC3339),
	}
	if j.Cierre != nil {
		t := j.Cierre.Format(time.RFC3339)
		resp.Cierre = &t
	}
	return resp
}

func toJornadaResponse(j *model.Jornada) *dto.JornadaResponse {
	return &dto.JornadaResponse{
		ID:         j.ID.String(),
		Nombre:     j.Nombre,
		HoraInicio: j.HoraInicio,
		HoraFin:    j.HoraFin,
		Activa:     j.Activa,
	}
}
