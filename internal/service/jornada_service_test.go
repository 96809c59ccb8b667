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

// stubJornadaRepo keeps definitions and occurrences in memory, with an
// optional injected error to simulate a store outage.
type stubJornadaRepo struct {
	definiciones map[uuid.UUID]*model.Jornada
	abiertas     []*model.JornadaAbierta
	secuencia    int64
	findErr      error

	sums  map[string]decimal.Decimal
	pagos int64
}

func newStubJornadaRepo() *stubJornadaRepo {
	return &stubJornadaRepo{definiciones: make(map[uuid.UUID]*model.Jornada)}
}

func (r *stubJornadaRepo) CreateDefinicion(_ context.Context, j *model.Jornada) error {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	for _, d := range r.definiciones {
		if d.Nombre == j.Nombre {
			return gorm.ErrDuplicatedKey
		}
	}
	r.definiciones[j.ID] = j
	return nil
}

func (r *stubJornadaRepo) FindDefinicionByID(_ context.Context, id uuid.UUID) (*model.Jornada, error) {
	d, ok := r.definiciones[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return d, nil
}

func (r *stubJornadaRepo) ListDefiniciones(_ context.Context) ([]model.Jornada, error) {
	out := make([]model.Jornada, 0, len(r.definiciones))
	for _, d := range r.definiciones {
		out = append(out, *d)
	}
	return out, nil
}

func (r *stubJornadaRepo) UpdateDefinicion(_ context.Context, j *model.Jornada) error {
	r.definiciones[j.ID] = j
	return nil
}

func (r *stubJornadaRepo) CreateAbierta(_ context.Context, j *model.JornadaAbierta) error {
	r.secuencia++
	j.Secuencia = r.secuencia
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	r.abiertas = append(r.abiertas, j)
	return nil
}

func (r *stubJornadaRepo) FindAbiertaByID(_ context.Context, id uuid.UUID) (*model.JornadaAbierta, error) {
	for _, j := range r.abiertas {
		if j.ID == id {
			return j, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubJornadaRepo) FindUltimaAbierta(_ context.Context) (*model.JornadaAbierta, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	var ultima *model.JornadaAbierta
	for _, j := range r.abiertas {
		if !j.Abierta() {
			continue
		}
		if ultima == nil || j.Secuencia > ultima.Secuencia {
			ultima = j
		}
	}
	if ultima == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return ultima, nil
}

func (r *stubJornadaRepo) UpdateAbierta(_ context.Context, j *model.JornadaAbierta) error {
	for i, existente := range r.abiertas {
		if existente.ID == j.ID {
			r.abiertas[i] = j
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *stubJornadaRepo) SumPagosPorMetodo(_ context.Context, _ *model.JornadaAbierta) (map[string]decimal.Decimal, int64, error) {
	if r.sums == nil {
		return map[string]decimal.Decimal{}, 0, nil
	}
	return r.sums, r.pagos, nil
}

var _ repository.JornadaRepository = (*stubJornadaRepo)(nil)

type stubUsuarioRepo struct {
	usuarios map[uuid.UUID]*model.Usuario
}

func newStubUsuarioRepo() *stubUsuarioRepo {
	return &stubUsuarioRepo{usuarios: make(map[uuid.UUID]*model.Usuario)}
}

func (r *stubUsuarioRepo) Create(_ context.Context, u *model.Usuario) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.usuarios[u.ID] = u
	return nil
}

func (r *stubUsuarioRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Usuario, error) {
	u, ok := r.usuarios[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *stubUsuarioRepo) FindByUsername(_ context.Context, username string) (*model.Usuario, error) {
	for _, u := range r.usuarios {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUsuarioRepo) List(_ context.Context, _ bool) ([]model.Usuario, error) {
	out := make([]model.Usuario, 0, len(r.usuarios))
	for _, u := range r.usuarios {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUsuarioRepo) Update(_ context.Context, u *model.Usuario) error {
	r.usuarios[u.ID] = u
	return nil
}

var _ repository.UsuarioRepository = (*stubUsuarioRepo)(nil)

func buildJornadaSvc() (service.JornadaService, *stubJornadaRepo, *stubUsuarioRepo) {
	repo := newStubJornadaRepo()
	usuarios := newStubUsuarioRepo()
	return service.NewJornadaService(repo, usuarios), repo, usuarios
}

func seedDefinicion(repo *stubJornadaRepo, nombre string) *model.Jornada {
	def := &model.Jornada{Nombre: nombre, HoraInicio: "06:00", HoraFin: "14:00", Activa: true}
	_ = repo.CreateDefinicion(context.Background(), def)
	return def
}

func seedUsuario(repo *stubUsuarioRepo, username string) *model.Usuario {
	u := &model.Usuario{Username: username, Nombre: username, Rol: "recepcionista", Activo: true}
	_ = repo.Create(context.Background(), u)
	return u
}

// ── Tests ─────────────────────────────────────────────────────────────────────

func TestAbrirJornada_OK(t *testing.T) {
	svc, repo, usuarios := buildJornadaSvc()
	def := seedDefinicion(repo, "Mañana")
	u := seedUsuario(usuarios, "recepcion1")

	resp, err := svc.Abrir(context.Background(), u.ID, dto.AbrirJornadaRequest{JornadaID: def.ID.String()})
	require.NoError(t, err)
	assert.Equal(t, "Mañana", resp.Jornada)
	assert.Equal(t, "recepcion1", resp.Usuario)
	assert.Equal(t, model.JornadaAbiertaEstado, resp.Estado)
	assert.Nil(t, resp.Cierre)
}

func TestAbrirJornada_YaHayUnaAbierta(t *testing.T) {
	svc, repo, usuarios := buildJornadaSvc()
	def := seedDefinicion(repo, "Mañana")
	tarde := seedDefinicion(repo, "Tarde")
	u := seedUsuario(usuarios, "recepcion1")

	_, err := svc.Abrir(context.Background(), u.ID, dto.AbrirJornadaRequest{JornadaID: def.ID.String()})
	require.NoError(t, err)

	_, err = svc.Abrir(context.Background(), u.ID, dto.AbrirJornadaRequest{JornadaID: tarde.ID.String()})
	require.Error(t, err)
	assert.Equal(t, apierror.KindConflict, apierror.KindOf(err))
}

func TestAbrirJornada_DefinicionInactiva(t *testing.T) {
	svc, repo, usuarios := buildJornadaSvc()
	def := seedDefinicion(repo, "Noche")
	def.Activa = false
	u := seedUsuario(usuarios, "recepcion1")

	_, err := svc.Abrir(context.Background(), u.ID, dto.AbrirJornadaRequest{JornadaID: def.ID.String()})
	require.Error(t, err)
	assert.Equal(t, apierror.KindValidation, apierror.KindOf(err))
}

func TestCerrarJornada_Resumen(t *testing.T) {
	svc, repo, usuarios := buildJornadaSvc()
	def := seedDefinicion(repo, "Mañana")
	u := seedUsuario(usuarios, "recepcion1")
	repo.sums = map[string]decimal.Decimal{
		"efectivo": decimal.RequireFromString("150.00"),
		"tarjeta":  decimal.RequireFromString("80.50"),
	}
	repo.pagos = 5

	abierta, err := svc.Abrir(context.Background(), u.ID, dto.AbrirJornadaRequest{JornadaID: def.ID.String()})
	require.NoError(t, err)

	resumen, err := svc.Cerrar(context.Background(), uuid.MustParse(abierta.ID), dto.CerrarJornadaRequest{})
	require.NoError(t, err)
	assert.Equal(t, "230.5", resumen.TotalCobrado.String())
	assert.Equal(t, int64(5), resumen.Pagos)
	assert.Equal(t, model.JornadaCerradaEstado, resumen.Estado)
	require.NotNil(t, resumen.Cierre)
}

func TestCerrarJornada_YaCerrada(t *testing.T) {
	svc, repo, usuarios := buildJornadaSvc()
	def := seedDefinicion(repo, "Mañana")
	u := seedUsuario(usuarios, "recepcion1")

	abierta, err := svc.Abrir(context.Background(), u.ID, dto.AbrirJornadaRequest{JornadaID: def.ID.String()})
	require.NoError(t, err)
	id := uuid.MustParse(abierta.ID)

	_, err = svc.Cerrar(context.Background(), id, dto.CerrarJornadaRequest{})
	require.NoError(t, err)

	_, err = svc.Cerrar(context.Background(), id, dto.CerrarJornadaRequest{})
	require.Error(t, err)
	assert.Equal(t, apierror.KindConflict, apierror.KindOf(err))
}

func TestEstadoActual_SinJornada(t *testing.T) {
	svc, _, _ := buildJornadaSvc()

	resp, err := svc.EstadoActual(context.Background())
	require.NoError(t, err)
	assert.False(t, resp.Activa)
	require.NotNil(t, resp.Motivo)
	assert.Equal(t, "No hay jornada abierta", *resp.Motivo)
	assert.Nil(t, resp.JornadaID)
}

func TestEstadoActual_ConJornada(t *testing.T) {
	svc, repo, usuarios := buildJornadaSvc()
	def := seedDefinicion(repo, "Mañana")
	u := seedUsuario(usuarios, "recepcion1")

	abierta, err := svc.Abrir(context.Background(), u.ID, dto.AbrirJornadaRequest{JornadaID: def.ID.String()})
	require.NoError(t, err)

	resp, err := svc.EstadoActual(context.Background())
	require.NoError(t, err)
	assert.True(t, resp.Activa)
	require.NotNil(t, resp.JornadaID)
	assert.Equal(t, abierta.ID, *resp.JornadaID)
	assert.Nil(t, resp.Motivo)
}

func TestJornadaActiva_ErrorDeStoreNoEsAusencia(t *testing.T) {
	svc, repo, _ := buildJornadaSvc()
	repo.findErr = gorm.ErrInvalidDB

	_, err := svc.JornadaActiva(context.Background())
	require.Error(t, err)
	assert.Equal(t, apierror.KindStore, apierror.KindOf(err))
}

func TestJornadaActiva_EstadoLegado(t *testing.T) {
	svc, repo, _ := buildJornadaSvc()
	// Historical rows carry lowercase estados; Abierta() must still see them
	// as open.
	_ = repo.CreateAbierta(context.Background(), &model.JornadaAbierta{
		JornadaID: uuid.New(),
		UsuarioID: uuid.New(),
		Estado:    "abierta",
	})

	j, err := svc.JornadaActiva(context.Background())
	require.NoError(t, err)
	require.NotNil(t, j)
}

func TestCrearDefinicion_NombreDuplicado(t *testing.T) {
	svc, _, _ := buildJornadaSvc()

	_, err := svc.CrearDefinicion(context.Background(), dto.CrearJornadaRequest{
		Nombre: "Mañana", HoraInicio: "06:00", HoraFin: "14:00",
	})
	require.NoError(t, err)

	_, err = svc.CrearDefinicion(context.Background(), dto.CrearJornadaRequest{
		Nombre: "Mañana", HoraInicio: "07:00", HoraFin: "15:00",
	})
	require.Error(t, err)
	assert.Equal(t, apierror.KindConflict, apierror.KindOf(err))
}
