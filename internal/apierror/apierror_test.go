package apierror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusOf(t *testing.T) {
	assert.Equal(t, 404, StatusOf(NotFound("no está")))
	assert.Equal(t, 409, StatusOf(Conflict("duplicado")))
	assert.Equal(t, 500, StatusOf(Internal(errors.New("se rompió"))))
	assert.Equal(t, 500, StatusOf(errors.New("error cualquiera")))
}

func TestClassifyConservaElErrorEnvuelto(t *testing.T) {
	causa := NotFound("Cliente con id %s no encontrado", "abc")
	envuelto := fmt.Errorf("consultando: %w", causa)

	clasificado := Classify(envuelto)
	assert.Equal(t, KindNotFound, clasificado.Kind)
	assert.Equal(t, "Cliente con id abc no encontrado", clasificado.Detail)
}

func TestInternalNoExponeDetalle(t *testing.T) {
	err := Internal(errors.New("pq: deadlock detected"))
	assert.Equal(t, "Error interno del servidor", err.Detail)
	// La causa queda disponible para los logs.
	assert.ErrorContains(t, err.Unwrap(), "deadlock")
}

func TestConflictFormatea(t *testing.T) {
	err := Conflict("Stock insuficiente para el repuesto %s. Stock actual: %d, cantidad solicitada: %d", "Cadena", 1, 3)
	assert.Contains(t, err.Detail, "Cadena")
	assert.Contains(t, err.Detail, "Stock actual: 1")
}
