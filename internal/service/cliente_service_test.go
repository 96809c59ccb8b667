package service_test

import (
	"context"
	"testing"

	"moteldb/internal/apierror"
	"moteldb/internal/dto"
	"moteldb/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustUUID(t *testing.T, s string) uuid.UUID {
	t.Helper()
	id, err := uuid.Parse(s)
	require.NoError(t, err)
	return id
}

func buildClienteSvc() (service.ClienteService, *stubClienteRepo) {
	repo := newStubClienteRepo()
	return service.NewClienteService(repo), repo
}

func TestCrearCliente_OK(t *testing.T) {
	svc, _ := buildClienteSvc()

	resp, err := svc.Crear(context.Background(), dto.CrearClienteRequest{
		Documento: "30555666",
		Nombre:    "Maria Lopez",
	})
	require.NoError(t, err)
	assert.Equal(t, "30555666", resp.Documento)
	assert.True(t, resp.Activo)
}

func TestCrearCliente_DocumentoDuplicado(t *testing.T) {
	svc, _ := buildClienteSvc()
	req := dto.CrearClienteRequest{Documento: "30555666", Nombre: "Maria Lopez"}

	_, err := svc.Crear(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Crear(context.Background(), req)
	require.Error(t, err)
	assert.Equal(t, apierror.KindConflict, apierror.KindOf(err))
}

func TestObtenerClientePorDocumento(t *testing.T) {
	svc, _ := buildClienteSvc()
	_, err := svc.Crear(context.Background(), dto.CrearClienteRequest{Documento: "27888999", Nombre: "Pedro Paz"})
	require.NoError(t, err)

	resp, err := svc.ObtenerPorDocumento(context.Background(), "27888999")
	require.NoError(t, err)
	assert.Equal(t, "Pedro Paz", resp.Nombre)

	_, err = svc.ObtenerPorDocumento(context.Background(), "00000000")
	require.Error(t, err)
	assert.Equal(t, apierror.KindNotFound, apierror.KindOf(err))
}

func TestEliminarCliente_ConReservas(t *testing.T) {
	svc, repo := buildClienteSvc()
	resp, err := svc.Crear(context.Background(), dto.CrearClienteRequest{Documento: "26111444", Nombre: "Laura Vega"})
	require.NoError(t, err)
	repo.countReservas = 2

	err = svc.Eliminar(context.Background(), mustUUID(t, resp.ID))
	require.Error(t, err)
	assert.Equal(t, apierror.KindConflict, apierror.KindOf(err))
}

func TestEliminarCliente_SinReservas(t *testing.T) {
	svc, repo := buildClienteSvc()
	resp, err := svc.Crear(context.Background(), dto.CrearClienteRequest{Documento: "26111444", Nombre: "Laura Vega"})
	require.NoError(t, err)

	require.NoError(t, svc.Eliminar(context.Background(), mustUUID(t, resp.ID)))
	assert.Empty(t, repo.clientes)
}
