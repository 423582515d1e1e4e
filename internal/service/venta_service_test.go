package service

import (
	"context"
	"testing"
	"time"

	"github.com/MotoWorkShop/MWSBackend/internal/apierror"
	"github.com/MotoWorkShop/MWSBackend/internal/dto"
	"github.com/MotoWorkShop/MWSBackend/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reqVenta(clienteID string, lineas ...dto.LineaRepuestoRequest) dto.CrearVentaRequest {
	return dto.CrearVentaRequest{
		Fecha:        time.Now(),
		Subtotal:     decimal.NewFromInt(30000),
		IVA:          decimal.NewFromInt(5700),
		Total:        decimal.NewFromInt(35700),
		PagoEfectivo: decimal.NewFromInt(35700),
		Vendedor:     "Lucía",
		ClienteID:    clienteID,
		Repuestos:    lineas,
	}
}

func TestCrearVentaReservaStockYEmiteFactura(t *testing.T) {
	e := newEntorno(t)
	ctx := context.Background()
	cliente := e.crearCliente(t, "200001")
	rep := e.crearRepuesto(t, "880001", "Casco integral", 5)

	v, err := e.ventas.Crear(ctx, reqVenta(cliente.ID.String(), linea(rep, 2)))
	require.NoError(t, err)

	assert.Equal(t, 3, e.stockDe(t, rep))
	require.NotNil(t, v.Factura)
	assert.Equal(t, cliente.ID, v.Factura.ClienteID)
	require.NotNil(t, v.Factura.VentaDirectaID)
	assert.Equal(t, v.ID, *v.Factura.VentaDirectaID)
	assert.True(t, v.Factura.Total.Equal(v.Total))
}

func TestCrearVentaClienteInexistente(t *testing.T) {
	e := newEntorno(t)
	rep := e.crearRepuesto(t, "880002", "Guantes", 5)

	_, err := e.ventas.Crear(context.Background(), reqVenta("0b5e7cbb-52bd-4dbc-8f6b-6a3e51a1c2de", linea(rep, 1)))
	require.Error(t, err)
	assert.Equal(t, 404, apierror.StatusOf(err))
	assert.Equal(t, 5, e.stockDe(t, rep))
}

func TestCrearVentaStockInsuficienteRevierteTodo(t *testing.T) {
	e := newEntorno(t)
	ctx := context.Background()
	cliente := e.crearCliente(t, "200002")
	sobrado := e.crearRepuesto(t, "880003", "Espejo", 10)
	escaso := e.crearRepuesto(t, "880004", "Exosto", 1)

	_, err := e.ventas.Crear(ctx, reqVenta(cliente.ID.String(), linea(sobrado, 1), linea(escaso, 3)))
	require.Error(t, err)
	assert.Equal(t, 409, apierror.StatusOf(err))
	assert.Equal(t, 10, e.stockDe(t, sobrado))
	assert.Equal(t, 1, e.stockDe(t, escaso))

	var ventas, facturas int64
	require.NoError(t, e.db.Model(&model.VentaDirecta{}).Count(&ventas).Error)
	require.NoError(t, e.db.Model(&model.Factura{}).Count(&facturas).Error)
	assert.Zero(t, ventas)
	assert.Zero(t, facturas)
}

func TestActualizarVentaReconciliaYRefrescaFactura(t *testing.T) {
	e := newEntorno(t)
	ctx := context.Background()
	cliente := e.crearCliente(t, "200003")
	rep := e.crearRepuesto(t, "880005", "Batería", 10)

	v, err := e.ventas.Crear(ctx, reqVenta(cliente.ID.String(), linea(rep, 2)))
	require.NoError(t, err)
	facturaOriginal := v.Factura.ID

	req := reqVenta(cliente.ID.String(), linea(rep, 5))
	req.Total = decimal.NewFromInt(75000)
	actualizada, err := e.ventas.Actualizar(ctx, v.ID, req)
	require.NoError(t, err)

	assert.Equal(t, 5, e.stockDe(t, rep))
	require.Len(t, actualizada.Repuestos, 1)
	assert.Equal(t, 5, actualizada.Repuestos[0].Cantidad)

	require.NotNil(t, actualizada.Factura)
	assert.Equal(t, facturaOriginal, actualizada.Factura.ID)
	assert.True(t, actualizada.Factura.Total.Equal(decimal.NewFromInt(75000)))

	var facturas int64
	require.NoError(t, e.db.Model(&model.Factura{}).Count(&facturas).Error)
	assert.EqualValues(t, 1, facturas)
}

func TestActualizarVentaSinFactura(t *testing.T) {
	e := newEntorno(t)
	ctx := context.Background()
	cliente := e.crearCliente(t, "200004")
	rep := e.crearRepuesto(t, "880006", "Direccionales", 4)

	v, err := e.ventas.Crear(ctx, reqVenta(cliente.ID.String(), linea(rep, 1)))
	require.NoError(t, err)

	// Si la factura desapareció, la actualización no puede continuar.
	require.NoError(t, e.db.Where("venta_directa_id = ?", v.ID).Delete(&model.Factura{}).Error)

	_, err = e.ventas.Actualizar(ctx, v.ID, reqVenta(cliente.ID.String(), linea(rep, 2)))
	require.Error(t, err)
	assert.Equal(t, 404, apierror.StatusOf(err))
	// El fallo revierte el movimiento de stock de la reconciliación.
	assert.Equal(t, 3, e.stockDe(t, rep))
}

func TestActualizarVentaClienteEliminado(t *testing.T) {
	e := newEntorno(t)
	ctx := context.Background()
	cliente := e.crearCliente(t, "200006")
	rep := e.crearRepuesto(t, "880008", "Kit de arrastre", 6)

	v, err := e.ventas.Crear(ctx, reqVenta(cliente.ID.String(), linea(rep, 2)))
	require.NoError(t, err)
	assert.Equal(t, 4, e.stockDe(t, rep))

	// El cliente desaparece entre la venta y su actualización.
	require.NoError(t, e.db.Delete(&model.Cliente{}, "id = ?", cliente.ID).Error)

	_, err = e.ventas.Actualizar(ctx, v.ID, reqVenta(cliente.ID.String(), linea(rep, 5)))
	require.Error(t, err)
	assert.Equal(t, 404, apierror.StatusOf(err))
	assert.Equal(t, 4, e.stockDe(t, rep))
}

func TestEliminarVentaLiberaStockYBorraFactura(t *testing.T) {
	e := newEntorno(t)
	ctx := context.Background()
	cliente := e.crearCliente(t, "200005")
	rep := e.crearRepuesto(t, "880007", "Farola LED", 7)

	v, err := e.ventas.Crear(ctx, reqVenta(cliente.ID.String(), linea(rep, 3)))
	require.NoError(t, err)
	assert.Equal(t, 4, e.stockDe(t, rep))

	require.NoError(t, e.ventas.Eliminar(ctx, v.ID))

	assert.Equal(t, 7, e.stockDe(t, rep))
	_, err = e.ventas.Obtener(ctx, v.ID)
	assert.Equal(t, 404, apierror.StatusOf(err))

	var facturas, lineas int64
	require.NoError(t, e.db.Model(&model.Factura{}).Count(&facturas).Error)
	require.NoError(t, e.db.Model(&model.RepuestoVenta{}).Count(&lineas).Error)
	assert.Zero(t, facturas)
	assert.Zero(t, lineas)
}
