package service

import (
	"context"
	"errors"
	"time"

	"moteldb/internal/apierror"
	"moteldb/internal/dto"
	"moteldb/internal/model"
	"moteldb/internal/repository"
	"moteldb/internal/worker"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ReservaService interface {
	Checkout(ctx context.Context, reservaID uuid.UUID, req dto.CheckoutRequest) (*dto.CheckoutResponse, error)
	Crear(ctx context.Context, req dto.CrearReservaRequest) (*dto.ReservaResponse, error)
	Cancelar(ctx context.Context, reservaID uuid.UUID) error
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.ReservaResponse, error)
	Listar(ctx context.Context, filter dto.ReservaFilter) (*dto.ReservaListResponse, error)
}

type reservaService struct {
	repo         repository.ReservaRepository
	habitaciones repository.HabitacionRepository
	clientes     repository.ClienteRepository
	servicios    repository.ServicioRepository
	jornadas     JornadaService
	dispatcher   *worker.Dispatcher
}

func NewReservaService(
	repo repository.ReservaRepository,
	habitaciones repository.HabitacionRepository,
	clientes repository.ClienteRepository,
	servicios repository.ServicioRepository,
	jornadas JornadaService,
	dispatcher *worker.Dispatcher,
) ReservaService {
	return &reservaService{
		repo:         repo,
		habitaciones: habitaciones,
		clientes:     clientes,
		servicios:    servicios,
		jornadas:     jornadas,
		dispatcher:   dispatcher,
	}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// ── Checkout ──────────────────────────────────────────────────────────────────
// Finalizes a reservation as one atomic unit of work:
//   1. Guard: an open jornada must exist (403 otherwise); a guard store error
//      is a hard stop, never treated as "no jornada".
//   2. The reservation must exist and be Activa (404 otherwise) — checked
//      before the transaction opens, then re-checked under a FOR UPDATE row
//      lock inside it so concurrent checkouts serialize.
//   3. Inside the tx: resolve each extra service line against the catalog
//      (unknown ids are skipped), persist lines with the price at time of
//      sale, finalize the reservation, insert exactly one Pago, and move the
//      room to Limpieza.
// Any failure rolls the whole unit back — no orphan lines, no Pago without a
// Finalizada reservation.

func (s *reservaService) Checkout(ctx context.Context, reservaID uuid.UUID, req dto.CheckoutRequest) (*dto.CheckoutResponse, error) {
	abierta, err := s.jornadas.JornadaActiva(ctx)
	if err != nil {
		return nil, err
	}
	if abierta == nil {
		return nil, apierror.Forbidden("No hay jornada abierta")
	}

	// Fail fast before opening the transaction.
	previa, err := s.repo.FindByID(ctx, reservaID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Reserva no encontrada o ya finalizada")
		}
		return nil, apierror.Store("No se pudo consultar la reserva", err)
	}
	if previa.Estado != model.ReservaActiva {
		return nil, apierror.NotFound("Reserva no encontrada o ya finalizada")
	}

	var pago model.Pago
	var total decimal.Decimal
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		reserva, err := s.repo.FindByIDForUpdateTx(tx, reservaID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apierror.NotFound("Reserva no encontrada o ya finalizada")
			}
			return err
		}
		// Re-check under the lock: a concurrent checkout may have finished
		// the reservation between the pre-flight read and here.
		if reserva.Estado != model.ReservaActiva {
			return apierror.NotFound("Reserva no encontrada o ya finalizada")
		}

		total = reserva.PrecioTotal

		// Service lines in caller-supplied order. Unknown service ids
		// contribute nothing and produce no row — documented behavior.
		for _, linea := range req.ServiciosAdicionales {
			servicioID, err := uuid.Parse(linea.ServicioID)
			if err != nil {
				continue
			}
			servicio, err := s.servicios.FindByIDTx(tx, servicioID)
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			if err != nil {
				return err
			}
			subtotal := servicio.Precio.Mul(decimal.NewFromInt(int64(linea.Cantidad)))
			if err := s.repo.CreateServicioTx(tx, &model.ReservaServicio{
				ReservaID:      reserva.ID,
				ServicioID:     servicio.ID,
				Cantidad:       linea.Cantidad,
				PrecioUnitario: servicio.Precio, // price at time of sale, never re-read
				Subtotal:       subtotal,
			}); err != nil {
				return err
			}
			total = total.Add(subtotal)
		}

		now := time.Now()
		reserva.CheckOut = &now
		reserva.PrecioTotal = total
		reserva.Estado = model.ReservaFinalizada
		if err := s.repo.UpdateTx(tx, reserva); err != nil {
			return err
		}

		pago = model.Pago{
			ReservaID: reserva.ID,
			Monto:     total,
			Metodo:    req.MetodoPago,
			Fecha:     now,
		}
		if err := s.repo.CreatePagoTx(tx, &pago); err != nil {
			return err
		}

		// Unconditional — no check of the room's prior state.
		return s.habitaciones.UpdateEstadoTx(tx, reserva.HabitacionID, model.HabitacionLimpieza)
	})
	if txErr != nil {
		var ae *apierror.Error
		if errors.As(txErr, &ae) {
			return nil, ae
		}
		return nil, apierror.Store("El checkout no pudo completarse", txErr)
	}

	// Async receipt job — best effort, never blocks the checkout.
	if s.dispatcher != nil {
		_ = s.dispatcher.EnqueueRecibo(ctx, worker.ReciboPayload{ReservaID: reservaID.String()})
	}

	return &dto.CheckoutResponse{
		ReservaID:  reservaID.String(),
		TotalFinal: total,
		Pago: dto.PagoResponse{
			ID:     pago.ID.String(),
			Monto:  pago.Monto,
			Metodo: pago.Metodo,
			Fecha:  pago.Fecha.Format(time.RFC3339),
		},
	}, nil
}

// ── Crear (check-in) ──────────────────────────────────────────────────────────

func (s *reservaService) Crear(ctx context.Context, req dto.CrearReservaRequest) (*dto.ReservaResponse, error) {
	habitacionID, err := uuid.Parse(req.HabitacionID)
	if err != nil {
		return nil, apierror.Validation("habitacion_id invalido")
	}

	habitacion, err := s.habitaciones.FindByID(ctx, habitacionID)
	if err != nil {
		return nil, apierror.NotFound("Habitacion no encontrada")
	}
	if !habitacion.Activa || habitacion.Estado != model.HabitacionDisponible {
		return nil, apierror.Conflict("La habitacion no esta disponible")
	}

	horas := req.HorasContratadas
	if req.TipoEstadia == "hora" && horas < 1 {
		return nil, apierror.Validation("horas_contratadas es obligatorio para estadias por hora")
	}

	precio := habitacion.PrecioNoche
	if req.TipoEstadia == "hora" {
		precio = habitacion.PrecioHora.Mul(decimal.NewFromInt(int64(horas)))
	}

	var jornadaID *uuid.UUID
	if abierta, err := s.jornadas.JornadaActiva(ctx); err == nil && abierta != nil {
		jornadaID = &abierta.ID
	}

	var reserva model.Reserva
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		cliente, err := s.clientes.FindByDocumentoTx(tx, req.Cliente.Documento)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			cliente = &model.Cliente{
				Documento: req.Cliente.Documento,
				Nombre:    req.Cliente.Nombre,
				Telefono:  req.Cliente.Telefono,
				Email:     req.Cliente.Email,
				Activo:    true,
			}
			if err := s.clientes.CreateTx(tx, cliente); err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		reserva = model.Reserva{
			HabitacionID:     habitacion.ID,
			ClienteID:        cliente.ID,
			JornadaID:        jornadaID,
			CheckIn:          time.Now(),
			TipoEstadia:      req.TipoEstadia,
			HorasContratadas: horas,
			PrecioTotal:      precio,
			Estado:           model.ReservaActiva,
		}
		if err := s.repo.CreateTx(tx, &reserva); err != nil {
			return err
		}

		return s.habitaciones.UpdateEstadoTx(tx, habitacion.ID, model.HabitacionOcupada)
	})
	if txErr != nil {
		return nil, apierror.Store("No se pudo crear la reserva", txErr)
	}

	return s.ObtenerPorID(ctx, reserva.ID)
}

// ── Cancelar ──────────────────────────────────────────────────────────────────

func (s *reservaService) Cancelar(ctx context.Context, reservaID uuid.UUID) error {
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		reserva, err := s.repo.FindByIDForUpdateTx(tx, reservaID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apierror.NotFound("Reserva no encontrada")
			}
			return err
		}
		if reserva.Estado != model.ReservaActiva {
			return apierror.Conflict("Solo una reserva activa puede cancelarse")
		}
		reserva.Estado = model.ReservaCancelada
		if err := s.repo.UpdateTx(tx, reserva); err != nil {
			return err
		}
		return s.habitaciones.UpdateEstadoTx(tx, reserva.HabitacionID, model.HabitacionLimpieza)
	})
	if txErr != nil {
		var ae *apierror.Error
		if errors.As(txErr, &ae) {
			return ae
		}
		return apierror.Store("No se pudo cancelar la reserva", txErr)
	}
	return nil
}

// ── Reads ─────────────────────────────────────────────────────────────────────

func (s *reservaService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.ReservaResponse, error) {
	reserva, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("Reserva no encontrada")
	}
	return s.toResponse(ctx, reserva), nil
}

func (s *reservaService) Listar(ctx context.Context, filter dto.ReservaFilter) (*dto.ReservaListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	reservas, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, apierror.Store("No se pudieron listar las reservas", err)
	}
	items := make([]dto.ReservaResponse, 0, len(reservas))
	for i := range reservas {
		items = append(items, *s.toResponse(ctx, &reservas[i]))
	}
	return &dto.ReservaListResponse{
		Data:  items,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

func (s *reservaService) toResponse(ctx context.Context, r *model.Reserva) *dto.ReservaResponse {
	resp := &dto.ReservaResponse{
		ID:               r.ID.String(),
		CheckIn:          r.CheckIn.Format(time.RFC3339),
		TipoEstadia:      r.TipoEstadia,
		HorasContratadas: r.HorasContratadas,
		PrecioTotal:      r.PrecioTotal,
		Estado:           r.Estado,
		Servicios:        make([]dto.ServicioLineaResponse, 0, len(r.Servicios)),
	}
	if r.CheckOut != nil {
		t := r.CheckOut.Format(time.RFC3339)
		resp.CheckOut = &t
	}
	if r.Habitacion != nil {
		resp.HabitacionNumero = r.Habitacion.Numero
	}
	if r.Cliente != nil {
		resp.ClienteDocumento = r.Cliente.Documento
		resp.ClienteNombre = r.Cliente.Nombre
	}
	for _, linea := range r.Servicios {
		nombre := ""
		if servicio, err := s.servicios.FindByID(ctx, linea.ServicioID); err == nil {
			nombre = servicio.Nombre
		}
		resp.Servicios = append(resp.Servicios, dto.ServicioLineaResponse{
			Servicio:       nombre,
			Cantidad:       linea.Cantidad,
			PrecioUnitario: linea.PrecioUnitario,
			Subtotal:       linea.Subtotal,
		})
	}
	return resp
}
