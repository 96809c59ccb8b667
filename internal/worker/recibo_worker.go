package worker

// Processes receipt jobs from QueueRecibos. Re-reads the already-committed
// reservation, resolves the default printer's paper width, renders the PDF
// ticket and, when the guest left an email, enqueues a send job.

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"moteldb/internal/infra"
	"moteldb/internal/model"
	"moteldb/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type ReciboWorker struct {
	reservas    repository.ReservaRepository
	impresoras  repository.ImpresoraRepository
	dispatcher  *Dispatcher
	storagePath string
	negocio     string
}

func NewReciboWorker(
	reservas repository.ReservaRepository,
	impresoras repository.ImpresoraRepository,
	dispatcher *Dispatcher,
	storagePath string,
	negocio string,
) *ReciboWorker {
	return &ReciboWorker{
		reservas:    reservas,
		impresoras:  impresoras,
		dispatcher:  dispatcher,
		storagePath: storagePath,
		negocio:     negocio,
	}
}

// Process renders the receipt for one finished reservation. The store read
// is retried before giving up: the enqueue races the commit's visibility on
// read replicas.
func (w *ReciboWorker) Process(ctx context.Context, raw json.RawMessage) {
	var payload ReciboPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("recibo_worker: invalid payload")
		return
	}

	reservaID, err := uuid.Parse(payload.ReservaID)
	if err != nil {
		log.Error().Str("reserva_id", payload.ReservaID).Msg("recibo_worker: invalid reserva_id")
		return
	}

	var reserva *model.Reserva
	loadErr := withRetry(ctx, 3, func(attempt int) error {
		r, err := w.reservas.FindByID(ctx, reservaID)
		if err != nil {
			log.Warn().
				Err(err).
				Int("attempt", attempt+1).
				Str("reserva_id", payload.ReservaID).
				Msg("recibo_worker: load attempt failed, retrying")
			return err
		}
		reserva = r
		return nil
	})
	if loadErr != nil {
		log.Error().Err(loadErr).Str("reserva_id", payload.ReservaID).Msg("recibo_worker: reserva not found")
		return
	}

	if reserva.Estado != model.ReservaFinalizada {
		log.Warn().
			Str("reserva_id", payload.ReservaID).
			Str("estado", reserva.Estado).
			Msg("recibo_worker: reserva is not finalized — skipping")
		return
	}
	if len(reserva.Pagos) == 0 || reserva.Habitacion == nil || reserva.Cliente == nil {
		log.Error().Str("reserva_id", payload.ReservaID).Msg("recibo_worker: incomplete reserva data")
		return
	}

	anchoMM := 74
	if imp, err := w.impresoras.FindDefecto(ctx); err == nil {
		anchoMM = imp.AnchoMM
	}

	lineas := make([]infra.ReciboLinea, 0, len(reserva.Servicios))
	for _, sv := range reserva.Servicios {
		nombre := sv.ServicioID.String()
		if sv.Servicio != nil {
			nombre = sv.Servicio.Nombre
		}
		lineas = append(lineas, infra.ReciboLinea{
			Nombre:   nombre,
			Cantidad: sv.Cantidad,
			Subtotal: "$" + sv.Subtotal.StringFixed(2),
		})
	}

	recibo := &infra.Recibo{
		Negocio:    w.negocio,
		Reserva:    reserva,
		Habitacion: reserva.Habitacion,
		Cliente:    reserva.Cliente,
		Pago:       &reserva.Pagos[0],
		Lineas:     lineas,
		AnchoMM:    anchoMM,
	}

	pdfPath, err := infra.GenerateReciboPDF(recibo, w.storagePath)
	if err != nil {
		log.Error().Err(err).Str("reserva_id", payload.ReservaID).Msg("recibo_worker: PDF generation failed")
		return
	}
	log.Info().Str("pdf", pdfPath).Str("reserva_id", payload.ReservaID).Msg("recibo_worker: receipt generated")

	if reserva.Cliente.Email != nil && *reserva.Cliente.Email != "" {
		emailJob := EmailPayload{
			ToEmail: *reserva.Cliente.Email,
			Subject: fmt.Sprintf("%s — Comprobante de estadia", w.negocio),
			Body:    fmt.Sprintf("Adjunto encontrara su comprobante.\nTotal: $%s", reserva.Pagos[0].Monto.StringFixed(2)),
			PDFPath: pdfPath,
		}
		if err := w.dispatcher.EnqueueEmail(ctx, emailJob); err != nil {
			log.Warn().Err(err).Str("email", *reserva.Cliente.Email).Msg("recibo_worker: failed to enqueue email")
		}
	}
}

// withRetry calls fn up to maxAttempts times with exponential backoff
// (immediate, 1s, 2s). Returns nil if any attempt succeeds.
func withRetry(ctx context.Context, maxAttempts int, fn func(attempt int) error) error {
	var lastErr error
	for i := 0; i < maxAttempts; i++ {
		if i > 0 {
			wait := time.Duration(1<<uint(i-1)) * time.Second
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(wait):
			}
		}
		if err := fn(i); err != nil {
			lastErr = err
			continue
		}
		return nil
	}
	return lastErr
}
