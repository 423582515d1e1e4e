package service

import (
	"sort"

	"github.com/google/uuid"
)

// Linea is the minimal view of a line item that stock reconciliation needs.
type Linea struct {
	RepuestoID uuid.UUID
	Cantidad   int
}

// CambioStock is one pending stock movement. A negative Delta takes units
// from stock, a positive Delta returns them.
type CambioStock struct {
	RepuestoID uuid.UUID
	Delta      int
}

// DiffLineas compares the stored line items of a document against the desired
// ones and returns the stock movements that take the warehouse from one state
// to the other. Parts present in both sets contribute the difference of
// quantities, new parts a full reservation, removed parts a full release.
// Duplicated part ids within a set are summed. The result is sorted by part id
// so the movements apply in a deterministic order.
func DiffLineas(prev, next []Linea) []CambioStock {
	prevPorID := agruparCantidades(prev)
	nextPorID := agruparCantidades(next)

	cambios := make([]CambioStock, 0, len(prevPorID)+len(nextPorID))
	for id, cantidad := range nextPorID {
		delta := prevPorID[id] - cantidad
		if delta != 0 {
			cambios = append(cambios, CambioStock{RepuestoID: id, Delta: delta})
		}
	}
	for id, cantidad := range prevPorID {
		if _, sigue := nextPorID[id]; !sigue {
			cambios = append(cambios, CambioStock{RepuestoID: id, Delta: cantidad})
		}
	}

	sort.Slice(cambios, func(i, j int) bool {
		return cambios[i].RepuestoID.String() < cambios[j].RepuestoID.String()
	})
	return cambios
}

func agruparCantidades(lineas []Linea) map[uuid.UUID]int {
	porID := make(map[uuid.UUID]int, len(lineas))
	for _, l := range lineas {
		porID[l.RepuestoID] += l.Cantidad
	}
	return porID
}
