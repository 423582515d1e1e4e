package service

import (
	"context"
	"testing"

	"github.com/MotoWorkShop/MWSBackend/internal/apierror"
	"github.com/MotoWorkShop/MWSBackend/internal/dto"
	"github.com/MotoWorkShop/MWSBackend/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClienteService(t *testing.T) (ClienteService, *entorno) {
	e := newEntorno(t)
	return NewClienteService(repository.NewClienteRepository(e.db)), e
}

func TestCrearClienteYConsultarlo(t *testing.T) {
	svc, _ := newClienteService(t)
	ctx := context.Background()

	c, err := svc.Crear(ctx, dto.CrearClienteRequest{
		NombreCliente: "Ana Gómez",
		Cedula:        "400001",
		Correo:        "ana@test.local",
		Telefono:      "3001112233",
	})
	require.NoError(t, err)

	leido, err := svc.Obtener(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana Gómez", leido.NombreCliente)
	assert.Equal(t, "400001", leido.Cedula)
}

func TestCrearClienteCedulaDuplicada(t *testing.T) {
	svc, _ := newClienteService(t)
	ctx := context.Background()

	req := dto.CrearClienteRequest{
		NombreCliente: "Ana Gómez",
		Cedula:        "400002",
		Correo:        "ana2@test.local",
		Telefono:      "3001112234",
	}
	_, err := svc.Crear(ctx, req)
	require.NoError(t, err)

	req.Correo = "otro@test.local"
	req.Telefono = "3009998877"
	_, err = svc.Crear(ctx, req)
	require.Error(t, err)
	assert.Equal(t, 409, apierror.StatusOf(err))
	assert.Contains(t, err.Error(), "400002")
}

func TestActualizarClienteParcial(t *testing.T) {
	svc, _ := newClienteService(t)
	ctx := context.Background()

	c, err := svc.Crear(ctx, dto.CrearClienteRequest{
		NombreCliente: "Pedro Ruiz",
		Cedula:        "400003",
		Correo:        "pedro@test.local",
		Telefono:      "3000000001",
	})
	require.NoError(t, err)

	nuevoNombre := "Pedro A. Ruiz"
	actualizado, err := svc.Actualizar(ctx, c.ID, dto.ActualizarClienteRequest{NombreCliente: &nuevoNombre})
	require.NoError(t, err)
	assert.Equal(t, nuevoNombre, actualizado.NombreCliente)
	// Los campos no enviados se conservan.
	assert.Equal(t, "400003", actualizado.Cedula)
	assert.Equal(t, "pedro@test.local", actualizado.Correo)
}

func TestEliminarClienteInexistente(t *testing.T) {
	svc, _ := newClienteService(t)
	err := svc.Eliminar(context.Background(), uuid.New())
	require.Error(t, err)
	assert.Equal(t, 404, apierror.StatusOf(err))
}
