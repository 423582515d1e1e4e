package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestDiffLineasConjuntosVacios(t *testing.T) {
	assert.Empty(t, DiffLineas(nil, nil))
	assert.Empty(t, DiffLineas([]Linea{}, []Linea{}))
}

func TestDiffLineasAltas(t *testing.T) {
	a := uuid.New()
	cambios := DiffLineas(nil, []Linea{{RepuestoID: a, Cantidad: 3}})
	assert.Equal(t, []CambioStock{{RepuestoID: a, Delta: -3}}, cambios)
}

func TestDiffLineasBajas(t *testing.T) {
	a := uuid.New()
	cambios := DiffLineas([]Linea{{RepuestoID: a, Cantidad: 5}}, nil)
	assert.Equal(t, []CambioStock{{RepuestoID: a, Delta: 5}}, cambios)
}

func TestDiffLineasCantidadModificada(t *testing.T) {
	a := uuid.New()

	subida := DiffLineas([]Linea{{RepuestoID: a, Cantidad: 2}}, []Linea{{RepuestoID: a, Cantidad: 5}})
	assert.Equal(t, []CambioStock{{RepuestoID: a, Delta: -3}}, subida)

	bajada := DiffLineas([]Linea{{RepuestoID: a, Cantidad: 5}}, []Linea{{RepuestoID: a, Cantidad: 2}})
	assert.Equal(t, []CambioStock{{RepuestoID: a, Delta: 3}}, bajada)
}

func TestDiffLineasSinCambios(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	prev := []Linea{{RepuestoID: a, Cantidad: 2}, {RepuestoID: b, Cantidad: 1}}
	assert.Empty(t, DiffLineas(prev, prev))
}

func TestDiffLineasDuplicadosSeAgrupan(t *testing.T) {
	a := uuid.New()
	cambios := DiffLineas(nil, []Linea{
		{RepuestoID: a, Cantidad: 2},
		{RepuestoID: a, Cantidad: 3},
	})
	assert.Equal(t, []CambioStock{{RepuestoID: a, Delta: -5}}, cambios)
}

func TestDiffLineasOrdenDeterminista(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	next := []Linea{
		{RepuestoID: c, Cantidad: 1},
		{RepuestoID: a, Cantidad: 1},
		{RepuestoID: b, Cantidad: 1},
	}
	primera := DiffLineas(nil, next)
	for i := 0; i < 10; i++ {
		assert.Equal(t, primera, DiffLineas(nil, next))
	}
	for i := 1; i < len(primera); i++ {
		assert.Less(t, primera[i-1].RepuestoID.String(), primera[i].RepuestoID.String())
	}
}

func TestDiffLineasMezcla(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	prev := []Linea{
		{RepuestoID: a, Cantidad: 2}, // sube a 4
		{RepuestoID: b, Cantidad: 3}, // desaparece
	}
	next := []Linea{
		{RepuestoID: a, Cantidad: 4},
		{RepuestoID: c, Cantidad: 1}, // nueva
	}

	cambios := DiffLineas(prev, next)
	porID := map[uuid.UUID]int{}
	for _, cambio := range cambios {
		porID[cambio.RepuestoID] = cambio.Delta
	}
	assert.Equal(t, map[uuid.UUID]int{a: -2, b: 3, c: -1}, porID)
}
