package service_test

import (
	"context"
	"testing"

	"moteldb/internal/apierror"
	"moteldb/internal/dto"
	"moteldb/internal/model"
	"moteldb/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildHabitacionSvc() (service.HabitacionService, *stubHabitacionRepo, *stubReservaRepo) {
	habitaciones := newStubHabitacionRepo()
	reservas := newStubReservaRepo()
	return service.NewHabitacionService(habitaciones, reservas), habitaciones, reservas
}

func TestCrearHabitacion_OK(t *testing.T) {
	svc, _, _ := buildHabitacionSvc()

	resp, err := svc.Crear(context.Background(), dto.CrearHabitacionRequest{
		Numero:      201,
		Tipo:        "doble",
		PrecioHora:  decimal.RequireFromString("40.00"),
		PrecioNoche: decimal.RequireFromString("250.00"),
		Capacidad:   2,
	})
	require.NoError(t, err)
	assert.Equal(t, 201, resp.Numero)
	assert.Equal(t, model.HabitacionDisponible, resp.Estado)
	assert.True(t, resp.Activa)
}

func TestCrearHabitacion_NumeroDuplicado(t *testing.T) {
	svc, _, _ := buildHabitacionSvc()
	req := dto.CrearHabitacionRequest{
		Numero:      201,
		Tipo:        "doble",
		PrecioHora:  decimal.NewFromInt(40),
		PrecioNoche: decimal.NewFromInt(250),
		Capacidad:   2,
	}

	_, err := svc.Crear(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Crear(context.Background(), req)
	require.Error(t, err)
	assert.Equal(t, apierror.KindConflict, apierror.KindOf(err))
}

func TestActualizarHabitacion_CamposParciales(t *testing.T) {
	svc, habitaciones, _ := buildHabitacionSvc()
	resp, err := svc.Crear(context.Background(), dto.CrearHabitacionRequest{
		Numero: 202, Tipo: "simple",
		PrecioHora:  decimal.NewFromInt(30),
		PrecioNoche: decimal.NewFromInt(180),
		Capacidad:   1,
	})
	require.NoError(t, err)

	nuevoPrecio := decimal.RequireFromString("35.50")
	id := findHabitacionID(habitaciones, 202)
	actualizada, err := svc.Actualizar(context.Background(), id, dto.ActualizarHabitacionRequest{
		PrecioHora: &nuevoPrecio,
	})
	require.NoError(t, err)
	assert.Equal(t, "35.5", actualizada.PrecioHora.String())
	// Untouched fields survive
	assert.Equal(t, resp.Tipo, actualizada.Tipo)
	assert.Equal(t, "180", actualizada.PrecioNoche.String())
}

func TestDesactivarHabitacion_ConReservaActiva(t *testing.T) {
	svc, habitaciones, reservas := buildHabitacionSvc()
	_, err := svc.Crear(context.Background(), dto.CrearHabitacionRequest{
		Numero: 203, Tipo: "simple",
		PrecioHora:  decimal.NewFromInt(30),
		PrecioNoche: decimal.NewFromInt(180),
		Capacidad:   1,
	})
	require.NoError(t, err)
	id := findHabitacionID(habitaciones, 203)

	_ = reservas.CreateTx(nil, &model.Reserva{HabitacionID: id, Estado: model.ReservaActiva})

	err = svc.Desactivar(context.Background(), id)
	require.Error(t, err)
	assert.Equal(t, apierror.KindConflict, apierror.KindOf(err))
	assert.True(t, habitaciones.habitaciones[id].Activa)
}

func TestDesactivarHabitacion_SinReservas(t *testing.T) {
	svc, habitaciones, _ := buildHabitacionSvc()
	_, err := svc.Crear(context.Background(), dto.CrearHabitacionRequest{
		Numero: 204, Tipo: "simple",
		PrecioHora:  decimal.NewFromInt(30),
		PrecioNoche: decimal.NewFromInt(180),
		Capacidad:   1,
	})
	require.NoError(t, err)
	id := findHabitacionID(habitaciones, 204)

	require.NoError(t, svc.Desactivar(context.Background(), id))
	assert.False(t, habitaciones.habitaciones[id].Activa)
}

func findHabitacionID(repo *stubHabitacionRepo, numero int) uuid.UUID {
	for _, h := range repo.habitaciones {
		if h.Numero == numero {
			return h.ID
		}
	}
	return uuid.Nil
}
