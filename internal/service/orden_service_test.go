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

func TestPlanearTransicion(t *testing.T) {
	casos := []struct {
		nombre  string
		actual  model.EstadoOrden
		deseado model.EstadoOrden
		quiere  PlanTransicion
		falla   bool
	}{
		{
			nombre: "pendiente a pendiente",
			actual: model.EstadoPendiente, deseado: model.EstadoPendiente,
			quiere: PlanTransicion{Estado: model.EstadoPendiente, Factura: FacturaNinguna},
		},
		{
			nombre: "pendiente a completado",
			actual: model.EstadoPendiente, deseado: model.EstadoCompletado,
			quiere: PlanTransicion{Estado: model.EstadoCompletado, Factura: FacturaUpsert},
		},
		{
			nombre: "completado a completado",
			actual: model.EstadoCompletado, deseado: model.EstadoCompletado,
			quiere: PlanTransicion{Estado: model.EstadoCompletado, Factura: FacturaUpsert},
		},
		{
			nombre: "completado de vuelta a pendiente",
			actual: model.EstadoCompletado, deseado: model.EstadoPendiente,
			quiere: PlanTransicion{Estado: model.EstadoPendiente, Factura: FacturaEliminar},
		},
		{
			nombre: "pendiente a cancelado",
			actual: model.EstadoPendiente, deseado: model.EstadoCancelado,
			quiere: PlanTransicion{Estado: model.EstadoCancelado, Cancelar: true, Factura: FacturaAnular},
		},
		{
			nombre: "cancelado es terminal",
			actual: model.EstadoCancelado, deseado: model.EstadoPendiente,
			falla:  true,
		},
		{
			nombre: "estado desconocido",
			actual: model.EstadoPendiente, deseado: model.EstadoOrden("ARCHIVADO"),
			falla:  true,
		},
	}

	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			plan, err := PlanearTransicion(c.actual, c.deseado)
			if c.falla {
				require.Error(t, err)
				assert.Equal(t, 409, apierror.StatusOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.quiere, plan)
		})
	}
}

func reqOrden(estado string, motoID string, lineas ...dto.LineaRepuestoRequest) dto.CrearOrdenRequest {
	return dto.CrearOrdenRequest{
		Fecha:         time.Now(),
		Estado:        estado,
		Subtotal:      decimal.NewFromInt(45000),
		IVA:           decimal.NewFromInt(8550),
		Total:         decimal.NewFromInt(53550),
		Mecanico:      "Carlos",
		Vendedor:      "Lucía",
		MotoClienteID: motoID,
		Repuestos:     lineas,
	}
}

func linea(repuesto *model.Repuesto, cantidad int) dto.LineaRepuestoRequest {
	return dto.LineaRepuestoRequest{
		RepuestoID: repuesto.ID.String(),
		Cantidad:   cantidad,
		Precio:     repuesto.ValorUnitario,
	}
}

func TestCrearOrdenReservaStock(t *testing.T) {
	e := newEntorno(t)
	ctx := context.Background()
	cliente := e.crearCliente(t, "100001")
	moto := e.crearMoto(t, "ABC12D", cliente)
	rep := e.crearRepuesto(t, "770001", "Pastillas de freno", 10)

	o, err := e.ordenes.Crear(ctx, reqOrden("PENDIENTE", moto.ID.String(), linea(rep, 3)))
	require.NoError(t, err)

	assert.Equal(t, model.EstadoPendiente, o.Estado)
	assert.Len(t, o.Repuestos, 1)
	assert.Equal(t, 7, e.stockDe(t, rep))
	assert.Nil(t, o.Factura)
}

func TestCrearOrdenEstadoNoPendiente(t *testing.T) {
	e := newEntorno(t)
	cliente := e.crearCliente(t, "100002")
	moto := e.crearMoto(t, "ABC13D", cliente)

	_, err := e.ordenes.Crear(context.Background(), reqOrden("COMPLETADO", moto.ID.String()))
	require.Error(t, err)
	assert.Equal(t, 409, apierror.StatusOf(err))
}

func TestCrearOrdenStockInsuficienteNoDejaRastro(t *testing.T) {
	e := newEntorno(t)
	ctx := context.Background()
	cliente := e.crearCliente(t, "100003")
	moto := e.crearMoto(t, "ABC14D", cliente)
	sobrado := e.crearRepuesto(t, "770002", "Filtro de aire", 10)
	escaso := e.crearRepuesto(t, "770003", "Cadena reforzada", 1)

	_, err := e.ordenes.Crear(ctx, reqOrden("PENDIENTE", moto.ID.String(), linea(sobrado, 2), linea(escaso, 5)))
	require.Error(t, err)
	assert.Equal(t, 409, apierror.StatusOf(err))

	// La transacción revierte también la reserva que sí había pasado.
	assert.Equal(t, 10, e.stockDe(t, sobrado))
	assert.Equal(t, 1, e.stockDe(t, escaso))

	var total int64
	require.NoError(t, e.db.Model(&model.OrdenServicio{}).Count(&total).Error)
	assert.Zero(t, total)
}

func TestCrearOrdenMotoInexistente(t *testing.T) {
	e := newEntorno(t)
	_, err := e.ordenes.Crear(context.Background(), reqOrden("PENDIENTE", "6f1c1c8e-58b1-4c2c-9f6f-86f0e4a6b431"))
	require.Error(t, err)
	assert.Equal(t, 404, apierror.StatusOf(err))
}

func TestActualizarOrdenReconciliaLineas(t *testing.T) {
	e := newEntorno(t)
	ctx := context.Background()
	cliente := e.crearCliente(t, "100004")
	moto := e.crearMoto(t, "ABC15D", cliente)
	frenos := e.crearRepuesto(t, "770004", "Pastillas de freno", 10)
	aceite := e.crearRepuesto(t, "770005", "Aceite 10W40", 20)

	o, err := e.ordenes.Crear(ctx, reqOrden("PENDIENTE", moto.ID.String(), linea(frenos, 2), linea(aceite, 1)))
	require.NoError(t, err)
	assert.Equal(t, 8, e.stockDe(t, frenos))
	assert.Equal(t, 19, e.stockDe(t, aceite))

	// frenos sube a 5, aceite sale, y no hay líneas nuevas
	_, err = e.ordenes.Actualizar(ctx, o.ID, reqOrden("PENDIENTE", moto.ID.String(), linea(frenos, 5)))
	require.NoError(t, err)
	assert.Equal(t, 5, e.stockDe(t, frenos))
	assert.Equal(t, 20, e.stockDe(t, aceite))

	actualizada, err := e.ordenes.Obtener(ctx, o.ID)
	require.NoError(t, err)
	require.Len(t, actualizada.Repuestos, 1)
	assert.Equal(t, frenos.ID, actualizada.Repuestos[0].RepuestoID)
	assert.Equal(t, 5, actualizada.Repuestos[0].Cantidad)
}

func TestActualizarOrdenEsIdempotenteEnStock(t *testing.T) {
	e := newEntorno(t)
	ctx := context.Background()
	cliente := e.crearCliente(t, "100005")
	moto := e.crearMoto(t, "ABC16D", cliente)
	rep := e.crearRepuesto(t, "770006", "Bujía iridium", 10)

	o, err := e.ordenes.Crear(ctx, reqOrden("PENDIENTE", moto.ID.String(), linea(rep, 4)))
	require.NoError(t, err)

	// Reenviar el mismo cuerpo no mueve el inventario.
	for i := 0; i < 3; i++ {
		_, err = e.ordenes.Actualizar(ctx, o.ID, reqOrden("PENDIENTE", moto.ID.String(), linea(rep, 4)))
		require.NoError(t, err)
		assert.Equal(t, 6, e.stockDe(t, rep))
	}
}

func TestCompletarOrdenEmiteUnaSolaFactura(t *testing.T) {
	e := newEntorno(t)
	ctx := context.Background()
	cliente := e.crearCliente(t, "100006")
	moto := e.crearMoto(t, "ABC17D", cliente)
	rep := e.crearRepuesto(t, "770007", "Disco de freno", 10)

	o, err := e.ordenes.Crear(ctx, reqOrden("PENDIENTE", moto.ID.String(), linea(rep, 2)))
	require.NoError(t, err)

	completada, err := e.ordenes.Actualizar(ctx, o.ID, reqOrden("COMPLETADO", moto.ID.String(), linea(rep, 2)))
	require.NoError(t, err)
	require.NotNil(t, completada.Factura)
	assert.Equal(t, cliente.ID, completada.Factura.ClienteID)
	assert.True(t, completada.Factura.Total.Equal(completada.Total))
	primeraFactura := completada.Factura.ID

	// Completar de nuevo refresca la misma factura, nunca crea otra.
	req := reqOrden("COMPLETADO", moto.ID.String(), linea(rep, 2))
	req.Total = decimal.NewFromInt(60000)
	recompletada, err := e.ordenes.Actualizar(ctx, o.ID, req)
	require.NoError(t, err)
	require.NotNil(t, recompletada.Factura)
	assert.Equal(t, primeraFactura, recompletada.Factura.ID)
	assert.True(t, recompletada.Factura.Total.Equal(decimal.NewFromInt(60000)))

	var total int64
	require.NoError(t, e.db.Model(&model.Factura{}).Count(&total).Error)
	assert.EqualValues(t, 1, total)
}

func TestVolverAPendienteRetiraLaFactura(t *testing.T) {
	e := newEntorno(t)
	ctx := context.Background()
	cliente := e.crearCliente(t, "100007")
	moto := e.crearMoto(t, "ABC18D", cliente)
	rep := e.crearRepuesto(t, "770008", "Llanta trasera", 5)

	o, err := e.ordenes.Crear(ctx, reqOrden("PENDIENTE", moto.ID.String(), linea(rep, 1)))
	require.NoError(t, err)
	_, err = e.ordenes.Actualizar(ctx, o.ID, reqOrden("COMPLETADO", moto.ID.String(), linea(rep, 1)))
	require.NoError(t, err)

	reabierta, err := e.ordenes.Actualizar(ctx, o.ID, reqOrden("PENDIENTE", moto.ID.String(), linea(rep, 1)))
	require.NoError(t, err)
	assert.Equal(t, model.EstadoPendiente, reabierta.Estado)
	assert.Nil(t, reabierta.Factura)
}

func TestCancelarOrdenLiberaStockYAnulaFactura(t *testing.T) {
	e := newEntorno(t)
	ctx := context.Background()
	cliente := e.crearCliente(t, "100008")
	moto := e.crearMoto(t, "ABC19D", cliente)
	rep := e.crearRepuesto(t, "770009", "Amortiguador", 6)

	o, err := e.ordenes.Crear(ctx, reqOrden("PENDIENTE", moto.ID.String(), linea(rep, 4)))
	require.NoError(t, err)
	_, err = e.ordenes.Actualizar(ctx, o.ID, reqOrden("COMPLETADO", moto.ID.String(), linea(rep, 4)))
	require.NoError(t, err)
	assert.Equal(t, 2, e.stockDe(t, rep))

	fechaCancelacion := time.Date(2030, time.March, 15, 10, 0, 0, 0, time.UTC)
	reqCancelar := reqOrden("CANCELADO", moto.ID.String(), linea(rep, 4))
	reqCancelar.Fecha = fechaCancelacion
	cancelada, err := e.ordenes.Actualizar(ctx, o.ID, reqCancelar)
	require.NoError(t, err)

	assert.Equal(t, model.EstadoCancelado, cancelada.Estado)
	assert.Empty(t, cancelada.Repuestos)
	assert.True(t, cancelada.Total.IsZero())
	assert.True(t, cancelada.Subtotal.IsZero())
	require.NotNil(t, cancelada.Observaciones)
	assert.Equal(t, "Orden cancelada", *cancelada.Observaciones)
	require.NotNil(t, cancelada.ObservacionesMecanico)
	assert.Equal(t, "Orden cancelada", *cancelada.ObservacionesMecanico)
	require.NotNil(t, cancelada.ObservacionesFactura)
	assert.Equal(t, "Orden cancelada", *cancelada.ObservacionesFactura)
	assert.Equal(t, 6, e.stockDe(t, rep))

	// La factura sobrevive como registro anulado, con importes en cero y la
	// fecha de la cancelación.
	require.NotNil(t, cancelada.Factura)
	assert.True(t, cancelada.Factura.Total.IsZero())
	assert.True(t, cancelada.Factura.Subtotal.IsZero())
	assert.True(t, cancelada.Factura.Fecha.Equal(fechaCancelacion))
}

func TestOrdenCanceladaEsTerminal(t *testing.T) {
	e := newEntorno(t)
	ctx := context.Background()
	cliente := e.crearCliente(t, "100009")
	moto := e.crearMoto(t, "ABC20D", cliente)

	o, err := e.ordenes.Crear(ctx, reqOrden("PENDIENTE", moto.ID.String()))
	require.NoError(t, err)
	_, err = e.ordenes.Actualizar(ctx, o.ID, reqOrden("CANCELADO", moto.ID.String()))
	require.NoError(t, err)

	for _, estado := range []string{"PENDIENTE", "COMPLETADO", "CANCELADO"} {
		_, err = e.ordenes.Actualizar(ctx, o.ID, reqOrden(estado, moto.ID.String()))
		require.Error(t, err)
		assert.Equal(t, 409, apierror.StatusOf(err))
	}
}

func TestEliminarOrdenLiberaStockYBorraFactura(t *testing.T) {
	e := newEntorno(t)
	ctx := context.Background()
	cliente := e.crearCliente(t, "100010")
	moto := e.crearMoto(t, "ABC21D", cliente)
	rep := e.crearRepuesto(t, "770010", "Piñón", 8)

	o, err := e.ordenes.Crear(ctx, reqOrden("PENDIENTE", moto.ID.String(), linea(rep, 3)))
	require.NoError(t, err)
	_, err = e.ordenes.Actualizar(ctx, o.ID, reqOrden("COMPLETADO", moto.ID.String(), linea(rep, 3)))
	require.NoError(t, err)

	require.NoError(t, e.ordenes.Eliminar(ctx, o.ID))

	assert.Equal(t, 8, e.stockDe(t, rep))
	_, err = e.ordenes.Obtener(ctx, o.ID)
	assert.Equal(t, 404, apierror.StatusOf(err))

	var facturas, lineas int64
	require.NoError(t, e.db.Model(&model.Factura{}).Count(&facturas).Error)
	require.NoError(t, e.db.Model(&model.RepuestoOrden{}).Count(&lineas).Error)
	assert.Zero(t, facturas)
	assert.Zero(t, lineas)
}
