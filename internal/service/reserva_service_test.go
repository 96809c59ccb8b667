package service_test

import (
	"context"
	"testing"

	"moteldb/internal/apierror"
	"moteldb/internal/dto"
	"moteldb/internal/model"
	"moteldb/internal/repository"
	"moteldb/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// ── Stubs ─────────────────────────────────────────────────────────────────────

// stubReservaRepo is an in-memory ReservaRepository.
type stubReservaRepo struct {
	reservas map[uuid.UUID]*model.Reserva
	lineas   []model.ReservaServicio
	pagos    []model.Pago
}

func newStubReservaRepo() *stubReservaRepo {
	return &stubReservaRepo{reservas: make(map[uuid.UUID]*model.Reserva)}
}

func (r *stubReservaRepo) CreateTx(_ *gorm.DB, res *model.Reserva) error {
	if res.ID == uuid.Nil {
		res.ID = uuid.New()
	}
	r.reservas[res.ID] = res
	return nil
}

func (r *stubReservaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Reserva, error) {
	res, ok := r.reservas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return res, nil
}

func (r *stubReservaRepo) FindByIDForUpdateTx(_ *gorm.DB, id uuid.UUID) (*model.Reserva, error) {
	res, ok := r.reservas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return res, nil
}

func (r *stubReservaRepo) UpdateTx(_ *gorm.DB, res *model.Reserva) error {
	r.reservas[res.ID] = res
	return nil
}

func (r *stubReservaRepo) CreateServicioTx(_ *gorm.DB, s *model.ReservaServicio) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	r.lineas = append(r.lineas, *s)
	return nil
}

func (r *stubReservaRepo) CreatePagoTx(_ *gorm.DB, p *model.Pago) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.pagos = append(r.pagos, *p)
	return nil
}

func (r *stubReservaRepo) FindActivaPorHabitacion(_ context.Context, habitacionID uuid.UUID) (*model.Reserva, error) {
	for _, res := range r.reservas {
		if res.HabitacionID == habitacionID && res.Estado == model.ReservaActiva {
			return res, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubReservaRepo) List(_ context.Context, _ dto.ReservaFilter) ([]model.Reserva, int64, error) {
	out := make([]model.Reserva, 0, len(r.reservas))
	for _, res := range r.reservas {
		out = append(out, *res)
	}
	return out, int64(len(out)), nil
}

func (r *stubReservaRepo) DB() *gorm.DB { return nil }

var _ repository.ReservaRepository = (*stubReservaRepo)(nil)

// stubHabitacionRepo tracks room state transitions.
type stubHabitacionRepo struct {
	habitaciones map[uuid.UUID]*model.Habitacion
}

func newStubHabitacionRepo() *stubHabitacionRepo {
	return &stubHabitacionRepo{habitaciones: make(map[uuid.UUID]*model.Habitacion)}
}

func (r *stubHabitacionRepo) Create(_ context.Context, h *model.Habitacion) error {
	return r.CreateTx(nil, h)
}

func (r *stubHabitacionRepo) CreateTx(_ *gorm.DB, h *model.Habitacion) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	r.habitaciones[h.ID] = h
	return nil
}

func (r *stubHabitacionRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Habitacion, error) {
	h, ok := r.habitaciones[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return h, nil
}

func (r *stubHabitacionRepo) FindByNumero(_ context.Context, numero int) (*model.Habitacion, error) {
	return r.FindByNumeroTx(nil, numero)
}

func (r *stubHabitacionRepo) FindByNumeroTx(_ *gorm.DB, numero int) (*model.Habitacion, error) {
	for _, h := range r.habitaciones {
		if h.Numero == numero {
			return h, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubHabitacionRepo) List(_ context.Context, _ dto.HabitacionFilter) ([]model.Habitacion, error) {
	out := make([]model.Habitacion, 0, len(r.habitaciones))
	for _, h := range r.habitaciones {
		out = append(out, *h)
	}
	return out, nil
}

func (r *stubHabitacionRepo) Update(_ context.Context, h *model.Habitacion) error {
	r.habitaciones[h.ID] = h
	return nil
}

func (r *stubHabitacionRepo) UpdateEstadoTx(_ *gorm.DB, id uuid.UUID, estado string) error {
	h, ok := r.habitaciones[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	h.Estado = estado
	return nil
}

func (r *stubHabitacionRepo) DB() *gorm.DB { return nil }

var _ repository.HabitacionRepository = (*stubHabitacionRepo)(nil)

// stubClienteRepo keys guests by documento.
type stubClienteRepo struct {
	clientes      map[string]*model.Cliente
	countReservas int64
}

func newStubClienteRepo() *stubClienteRepo {
	return &stubClienteRepo{clientes: make(map[string]*model.Cliente)}
}

func (r *stubClienteRepo) Create(_ context.Context, c *model.Cliente) error {
	return r.CreateTx(nil, c)
}

func (r *stubClienteRepo) CreateTx(_ *gorm.DB, c *model.Cliente) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.clientes[c.Documento] = c
	return nil
}

func (r *stubClienteRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Cliente, error) {
	for _, c := range r.clientes {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubClienteRepo) FindByDocumento(_ context.Context, documento string) (*model.Cliente, error) {
	return r.FindByDocumentoTx(nil, documento)
}

func (r *stubClienteRepo) FindByDocumentoTx(_ *gorm.DB, documento string) (*model.Cliente, error) {
	c, ok := r.clientes[documento]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *stubClienteRepo) List(_ context.Context, _ dto.ClienteFilter) ([]model.Cliente, int64, error) {
	out := make([]model.Cliente, 0, len(r.clientes))
	for _, c := range r.clientes {
		out = append(out, *c)
	}
	return out, int64(len(out)), nil
}

func (r *stubClienteRepo) Update(_ context.Context, c *model.Cliente) error {
	r.clientes[c.Documento] = c
	return nil
}

func (r *stubClienteRepo) CountReservas(_ context.Context, _ uuid.UUID) (int64, error) {
	return r.countReservas, nil
}

func (r *stubClienteRepo) Delete(_ context.Context, id uuid.UUID) error {
	for doc, c := range r.clientes {
		if c.ID == id {
			delete(r.clientes, doc)
		}
	}
	return nil
}

var _ repository.ClienteRepository = (*stubClienteRepo)(nil)

// stubServicioRepo is the in-memory service catalog.
type stubServicioRepo struct {
	servicios map[uuid.UUID]*model.Servicio
}

func newStubServicioRepo() *stubServicioRepo {
	return &stubServicioRepo{servicios: make(map[uuid.UUID]*model.Servicio)}
}

func (r *stubServicioRepo) Create(_ context.Context, s *model.Servicio) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	r.servicios[s.ID] = s
	return nil
}

func (r *stubServicioRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Servicio, error) {
	return r.FindByIDTx(nil, id)
}

func (r *stubServicioRepo) FindByIDTx(_ *gorm.DB, id uuid.UUID) (*model.Servicio, error) {
	s, ok := r.servicios[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return s, nil
}

func (r *stubServicioRepo) FindByCodigo(_ context.Context, codigo string) (*model.Servicio, error) {
	for _, s := range r.servicios {
		if s.Codigo == codigo {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubServicioRepo) List(_ context.Context, _ bool) ([]model.Servicio, error) {
	out := make([]model.Servicio, 0, len(r.servicios))
	for _, s := range r.servicios {
		out = append(out, *s)
	}
	return out, nil
}

func (r *stubServicioRepo) Update(_ context.Context, s *model.Servicio) error {
	r.servicios[s.ID] = s
	return nil
}

var _ repository.ServicioRepository = (*stubServicioRepo)(nil)

// stubJornadaService controls the guard outcome per test.
type stubJornadaService struct {
	abierta  *model.JornadaAbierta
	guardErr error
}

func (s *stubJornadaService) JornadaActiva(_ context.Context) (*model.JornadaAbierta, error) {
	if s.guardErr != nil {
		return nil, s.guardErr
	}
	return s.abierta, nil
}

func (s *stubJornadaService) EstadoActual(_ context.Context) (*dto.JornadaActivaResponse, error) {
	return nil, nil
}

func (s *stubJornadaService) Abrir(_ context.Context, _ uuid.UUID, _ dto.AbrirJornadaRequest) (*dto.JornadaAbiertaResponse, error) {
	return nil, nil
}

func (s *stubJornadaService) Cerrar(_ context.Context, _ uuid.UUID, _ dto.CerrarJornadaRequest) (*dto.ResumenJornadaResponse, error) {
	return nil, nil
}

func (s *stubJornadaService) CrearDefinicion(_ context.Context, _ dto.CrearJornadaRequest) (*dto.JornadaResponse, error) {
	return nil, nil
}

func (s *stubJornadaService) ListarDefiniciones(_ context.Context) ([]dto.JornadaResponse, error) {
	return nil, nil
}

func (s *stubJornadaService) ActualizarDefinicion(_ context.Context, _ uuid.UUID, _ dto.ActualizarJornadaRequest) (*dto.JornadaResponse, error) {
	return nil, nil
}

var _ service.JornadaService = (*stubJornadaService)(nil)

// ── Fixture ───────────────────────────────────────────────────────────────────

type fixture struct {
	svc          service.ReservaService
	reservas     *stubReservaRepo
	habitaciones *stubHabitacionRepo
	clientes     *stubClienteRepo
	servicios    *stubServicioRepo
	jornadas     *stubJornadaService
}

func buildFixture(jornadaAbierta bool) *fixture {
	f := &fixture{
		reservas:     newStubReservaRepo(),
		habitaciones: newStubHabitacionRepo(),
		clientes:     newStubClienteRepo(),
		servicios:    newStubServicioRepo(),
		jornadas:     &stubJornadaService{},
	}
	if jornadaAbierta {
		f.jornadas.abierta = &model.JornadaAbierta{ID: uuid.New(), Estado: model.JornadaAbiertaEstado}
	}
	f.svc = service.NewReservaService(f.reservas, f.habitaciones, f.clientes, f.servicios, f.jornadas, nil)
	return f
}

func (f *fixture) seedReservaActiva(base string) *model.Reserva {
	hab := &model.Habitacion{
		Numero:     101,
		Tipo:       "doble",
		PrecioHora: decimal.NewFromInt(10),
		Estado:     model.HabitacionOcupada,
		Activa:     true,
	}
	_ = f.habitaciones.CreateTx(nil, hab)
	cli := &model.Cliente{Documento: "30111222", Nombre: "Juan Gomez", Activo: true}
	_ = f.clientes.CreateTx(nil, cli)

	res := &model.Reserva{
		HabitacionID: hab.ID,
		ClienteID:    cli.ID,
		TipoEstadia:  "noche",
		PrecioTotal:  decimal.RequireFromString(base),
		Estado:       model.ReservaActiva,
	}
	_ = f.reservas.CreateTx(nil, res)
	return res
}

func (f *fixture) seedServicio(nombre, precio string) *model.Servicio {
	s := &model.Servicio{Codigo: nombre, Nombre: nombre, Precio: decimal.RequireFromString(precio), Activo: true}
	_ = f.servicios.Create(context.Background(), s)
	return s
}

// ── Checkout tests ────────────────────────────────────────────────────────────

func TestCheckout_TotalConServicios(t *testing.T) {
	f := buildFixture(true)
	res := f.seedReservaActiva("50.00")
	minibar := f.seedServicio("Minibar", "10.00")

	resp, err := f.svc.Checkout(context.Background(), res.ID, dto.CheckoutRequest{
		ServiciosAdicionales: []dto.ServicioAdicionalRequest{
			{ServicioID: minibar.ID.String(), Cantidad: 2},
		},
		MetodoPago: "efectivo",
	})
	require.NoError(t, err)

	// 50.00 + 2 × 10.00 = 70.00, decimal exact
	assert.Equal(t, "70", resp.TotalFinal.String())
	assert.Equal(t, "70", resp.Pago.Monto.String())
	assert.Equal(t, "efectivo", resp.Pago.Metodo)

	// Exactly one payment, one line with the captured unit price
	require.Len(t, f.reservas.pagos, 1)
	require.Len(t, f.reservas.lineas, 1)
	assert.Equal(t, "10", f.reservas.lineas[0].PrecioUnitario.String())
	assert.Equal(t, "20", f.reservas.lineas[0].Subtotal.String())

	// Reservation finalized with checkout timestamp, room in cleaning
	stored := f.reservas.reservas[res.ID]
	assert.Equal(t, model.ReservaFinalizada, stored.Estado)
	require.NotNil(t, stored.CheckOut)
	assert.Equal(t, model.HabitacionLimpieza, f.habitaciones.habitaciones[res.HabitacionID].Estado)
}

func TestCheckout_SinServicios(t *testing.T) {
	f := buildFixture(true)
	res := f.seedReservaActiva("120.50")

	resp, err := f.svc.Checkout(context.Background(), res.ID, dto.CheckoutRequest{MetodoPago: "tarjeta"})
	require.NoError(t, err)

	assert.Equal(t, "120.5", resp.TotalFinal.String())
	assert.Empty(t, f.reservas.lineas)
	require.Len(t, f.reservas.pagos, 1)
}

func TestCheckout_SinJornadaAbierta(t *testing.T) {
	f := buildFixture(false)
	res := f.seedReservaActiva("50.00")

	_, err := f.svc.Checkout(context.Background(), res.ID, dto.CheckoutRequest{MetodoPago: "efectivo"})
	require.Error(t, err)
	assert.Equal(t, apierror.KindForbidden, apierror.KindOf(err))

	// Nothing was written
	assert.Empty(t, f.reservas.pagos)
	assert.Equal(t, model.ReservaActiva, f.reservas.reservas[res.ID].Estado)
	assert.Equal(t, model.HabitacionOcupada, f.habitaciones.habitaciones[res.HabitacionID].Estado)
}

func TestCheckout_GuardStoreErrorEsHardStop(t *testing.T) {
	f := buildFixture(false)
	f.jornadas.guardErr = apierror.Store("No se pudo validar la jornada", gorm.ErrInvalidDB)
	res := f.seedReservaActiva("50.00")

	_, err := f.svc.Checkout(context.Background(), res.ID, dto.CheckoutRequest{MetodoPago: "efectivo"})
	require.Error(t, err)
	// A failure verifying the guard is 500, never mistaken for "no jornada" (403)
	assert.Equal(t, apierror.KindStore, apierror.KindOf(err))
	assert.Empty(t, f.reservas.pagos)
}

func TestCheckout_ReservaInexistente(t *testing.T) {
	f := buildFixture(true)

	_, err := f.svc.Checkout(context.Background(), uuid.New(), dto.CheckoutRequest{MetodoPago: "efectivo"})
	require.Error(t, err)
	assert.Equal(t, apierror.KindNotFound, apierror.KindOf(err))
}

func TestCheckout_DobleCheckoutNoDuplicaPago(t *testing.T) {
	f := buildFixture(true)
	res := f.seedReservaActiva("80.00")

	_, err := f.svc.Checkout(context.Background(), res.ID, dto.CheckoutRequest{MetodoPago: "efectivo"})
	require.NoError(t, err)

	// Second attempt sees Finalizada and gets 404; no second payment
	_, err = f.svc.Checkout(context.Background(), res.ID, dto.CheckoutRequest{MetodoPago: "efectivo"})
	require.Error(t, err)
	assert.Equal(t, apierror.KindNotFound, apierror.KindOf(err))
	assert.Len(t, f.reservas.pagos, 1)
}

func TestCheckout_ServicioDesconocidoSeOmite(t *testing.T) {
	f := buildFixture(true)
	res := f.seedReservaActiva("50.00")
	minibar := f.seedServicio("Minibar", "10.00")

	resp, err := f.svc.Checkout(context.Background(), res.ID, dto.CheckoutRequest{
		ServiciosAdicionales: []dto.ServicioAdicionalRequest{
			{ServicioID: uuid.New().String(), Cantidad: 3},  // unknown id
			{ServicioID: "no-es-un-uuid", Cantidad: 1},      // malformed id
			{ServicioID: minibar.ID.String(), Cantidad: 1},  // known
		},
		MetodoPago: "efectivo",
	})
	require.NoError(t, err)

	// Only the known line counted: 50 + 10 = 60
	assert.Equal(t, "60", resp.TotalFinal.String())
	assert.Len(t, f.reservas.lineas, 1)
}

func TestCheckout_PrecioAlMomentoDeVenta(t *testing.T) {
	f := buildFixture(true)
	res := f.seedReservaActiva("0.00")
	lavanderia := f.seedServicio("Lavanderia", "25.50")

	_, err := f.svc.Checkout(context.Background(), res.ID, dto.CheckoutRequest{
		ServiciosAdicionales: []dto.ServicioAdicionalRequest{
			{ServicioID: lavanderia.ID.String(), Cantidad: 1},
		},
		MetodoPago: "efectivo",
	})
	require.NoError(t, err)

	// Catalog price changes afterwards; the stored line keeps the sale price
	lavanderia.Precio = decimal.RequireFromString("99.99")
	assert.Equal(t, "25.5", f.reservas.lineas[0].PrecioUnitario.String())
	assert.Equal(t, "25.5", f.reservas.pagos[0].Monto.String())
}

// ── Check-in tests ────────────────────────────────────────────────────────────

func TestCrear_CheckInPorNoche(t *testing.T) {
	f := buildFixture(true)
	hab := &model.Habitacion{
		Numero:      102,
		Tipo:        "suite",
		PrecioNoche: decimal.RequireFromString("300.00"),
		Estado:      model.HabitacionDisponible,
		Activa:      true,
	}
	_ = f.habitaciones.CreateTx(nil, hab)

	resp, err := f.svc.Crear(context.Background(), dto.CrearReservaRequest{
		HabitacionID: hab.ID.String(),
		Cliente:      dto.ClienteInline{Documento: "28999888", Nombre: "Ana Diaz"},
		TipoEstadia:  "noche",
	})
	require.NoError(t, err)

	assert.Equal(t, "300", resp.PrecioTotal.String())
	assert.Equal(t, model.ReservaActiva, resp.Estado)
	assert.Equal(t, model.HabitacionOcupada, f.habitaciones.habitaciones[hab.ID].Estado)
	// Guest auto-registered by documento
	_, err = f.clientes.FindByDocumento(context.Background(), "28999888")
	assert.NoError(t, err)
}

func TestCrear_CheckInPorHora(t *testing.T) {
	f := buildFixture(true)
	hab := &model.Habitacion{
		Numero:     103,
		Tipo:       "simple",
		PrecioHora: decimal.RequireFromString("45.00"),
		Estado:     model.HabitacionDisponible,
		Activa:     true,
	}
	_ = f.habitaciones.CreateTx(nil, hab)

	resp, err := f.svc.Crear(context.Background(), dto.CrearReservaRequest{
		HabitacionID:     hab.ID.String(),
		Cliente:          dto.ClienteInline{Documento: "27111333", Nombre: "Luis Sosa"},
		TipoEstadia:      "hora",
		HorasContratadas: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, "135", resp.PrecioTotal.String())
}

func TestCrear_HabitacionOcupada(t *testing.T) {
	f := buildFixture(true)
	hab := &model.Habitacion{
		Numero: 104, Tipo: "simple",
		PrecioNoche: decimal.NewFromInt(200),
		Estado:      model.HabitacionOcupada,
		Activa:      true,
	}
	_ = f.habitaciones.CreateTx(nil, hab)

	_, err := f.svc.Crear(context.Background(), dto.CrearReservaRequest{
		HabitacionID: hab.ID.String(),
		Cliente:      dto.ClienteInline{Documento: "26000111", Nombre: "Eva Ruiz"},
		TipoEstadia:  "noche",
	})
	require.Error(t, err)
	assert.Equal(t, apierror.KindConflict, apierror.KindOf(err))
}

// ── Cancel tests ──────────────────────────────────────────────────────────────

func TestCancelar_LiberaHabitacion(t *testing.T) {
	f := buildFixture(true)
	res := f.seedReservaActiva("50.00")

	require.NoError(t, f.svc.Cancelar(context.Background(), res.ID))
	assert.Equal(t, model.ReservaCancelada, f.reservas.reservas[res.ID].Estado)
	assert.Equal(t, model.HabitacionLimpieza, f.habitaciones.habitaciones[res.HabitacionID].Estado)
	// No payment is ever created by a cancellation
	assert.Empty(t, f.reservas.pagos)
}

func TestCancelar_SoloActivas(t *testing.T) {
	f := buildFixture(true)
	res := f.seedReservaActiva("50.00")
	res.Estado = model.ReservaFinalizada

	err := f.svc.Cancelar(context.Background(), res.ID)
	require.Error(t, err)
	assert.Equal(t, apierror.KindConflict, apierror.KindOf(err))
}
