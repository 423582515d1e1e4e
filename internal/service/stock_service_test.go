package service

import (
	"testing"

	"github.com/MotoWorkShop/MWSBackend/internal/apierror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReservarDescuentaStock(t *testing.T) {
	e := newEntorno(t)
	r := e.crearRepuesto(t, "750001", "Pastillas de freno", 10)

	require.NoError(t, e.stock.Reservar(e.db, r.ID, 4))
	assert.Equal(t, 6, e.stockDe(t, r))
}

func TestReservarTodoElStock(t *testing.T) {
	e := newEntorno(t)
	r := e.crearRepuesto(t, "750002", "Kit de arrastre", 3)

	require.NoError(t, e.stock.Reservar(e.db, r.ID, 3))
	assert.Equal(t, 0, e.stockDe(t, r))
}

func TestReservarStockInsuficiente(t *testing.T) {
	e := newEntorno(t)
	r := e.crearRepuesto(t, "750003", "Filtro de aceite", 2)

	err := e.stock.Reservar(e.db, r.ID, 5)
	require.Error(t, err)
	assert.Equal(t, 409, apierror.StatusOf(err))
	assert.Contains(t, err.Error(), "Filtro de aceite")
	assert.Contains(t, err.Error(), "Stock actual: 2")
	assert.Contains(t, err.Error(), "cantidad solicitada: 5")
	// El rechazo no toca el stock.
	assert.Equal(t, 2, e.stockDe(t, r))
}

func TestReservarRepuestoInexistente(t *testing.T) {
	e := newEntorno(t)
	err := e.stock.Reservar(e.db, uuid.New(), 1)
	require.Error(t, err)
	assert.Equal(t, 404, apierror.StatusOf(err))
}

func TestLiberarReponeStock(t *testing.T) {
	e := newEntorno(t)
	r := e.crearRepuesto(t, "750004", "Bujía", 1)

	require.NoError(t, e.stock.Liberar(e.db, r.ID, 4))
	assert.Equal(t, 5, e.stockDe(t, r))
}

func TestAplicarCambiosAbortaEnElPrimerFallo(t *testing.T) {
	e := newEntorno(t)
	escaso := e.crearRepuesto(t, "750005", "Cadena", 1)
	sobrado := e.crearRepuesto(t, "750006", "Manubrio", 10)

	cambios := []CambioStock{
		{RepuestoID: escaso.ID, Delta: -3},
		{RepuestoID: sobrado.ID, Delta: -1},
	}
	err := e.stock.AplicarCambios(e.db, cambios)
	require.Error(t, err)
	assert.Equal(t, 409, apierror.StatusOf(err))
	assert.Equal(t, 1, e.stockDe(t, escaso))
	assert.Equal(t, 10, e.stockDe(t, sobrado))
}
