package service

import (
	"context"
	"testing"

	"github.com/MotoWorkShop/MWSBackend/internal/apierror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObtenerFacturaInexistente(t *testing.T) {
	e := newEntorno(t)
	_, err := e.facturas.Obtener(context.Background(), uuid.New())
	require.Error(t, err)
	assert.Equal(t, 404, apierror.StatusOf(err))
}

func TestGenerarPDFDeVenta(t *testing.T) {
	e := newEntorno(t)
	ctx := context.Background()
	cliente := e.crearCliente(t, "300001")
	rep := e.crearRepuesto(t, "990001", "Kit de carburación", 5)

	v, err := e.ventas.Crear(ctx, reqVenta(cliente.ID.String(), linea(rep, 2)))
	require.NoError(t, err)
	require.NotNil(t, v.Factura)

	pdf, err := e.facturas.GenerarPDF(ctx, v.Factura.ID)
	require.NoError(t, err)
	require.NotEmpty(t, pdf)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}

func TestGenerarPDFDeOrdenCompletada(t *testing.T) {
	e := newEntorno(t)
	ctx := context.Background()
	cliente := e.crearCliente(t, "300002")
	moto := e.crearMoto(t, "XYZ99A", cliente)
	rep := e.crearRepuesto(t, "990002", "Empaque de culata", 5)

	o, err := e.ordenes.Crear(ctx, reqOrden("PENDIENTE", moto.ID.String(), linea(rep, 1)))
	require.NoError(t, err)
	completada, err := e.ordenes.Actualizar(ctx, o.ID, reqOrden("COMPLETADO", moto.ID.String(), linea(rep, 1)))
	require.NoError(t, err)
	require.NotNil(t, completada.Factura)

	pdf, err := e.facturas.GenerarPDF(ctx, completada.Factura.ID)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}

func TestListarFacturas(t *testing.T) {
	e := newEntorno(t)
	ctx := context.Background()
	cliente := e.crearCliente(t, "300003")
	rep := e.crearRepuesto(t, "990003", "Rodamiento", 20)

	for i := 0; i < 3; i++ {
		_, err := e.ventas.Crear(ctx, reqVenta(cliente.ID.String(), linea(rep, 1)))
		require.NoError(t, err)
	}

	facturas, total, err := e.facturas.Listar(ctx, filtroPorDefecto())
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Len(t, facturas, 3)
}
