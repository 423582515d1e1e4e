package service

import (
	"errors"

	"github.com/MotoWorkShop/MWSBackend/internal/apierror"
	"github.com/MotoWorkShop/MWSBackend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StockService applies stock movements inside a caller-owned transaction.
// Reservations use a guarded single-statement decrement so stock never goes
// below zero even under concurrent writers.
type StockService interface {
	Reservar(tx *gorm.DB, repuestoID uuid.UUID, cantidad int) error
	Liberar(tx *gorm.DB, repuestoID uuid.UUID, cantidad int) error
	AplicarCambios(tx *gorm.DB, cambios []CambioStock) error
}

type stockService struct {
	repuestos repository.RepuestoRepository
}

func NewStockService(repuestos repository.RepuestoRepository) StockService {
	return &stockService{repuestos: repuestos}
}

func (s *stockService) Reservar(tx *gorm.DB, repuestoID uuid.UUID, cantidad int) error {
	if cantidad <= 0 {
		return apierror.Conflict("La cantidad a reservar debe ser mayor a cero")
	}
	rows, err := s.repuestos.DescontarStockTx(tx, repuestoID, cantidad)
	if err != nil {
		return apierror.Internal(err)
	}
	if rows > 0 {
		return nil
	}
	// The guard rejected the decrement: distinguish a missing part from
	// insufficient stock with a follow-up read in the same transaction.
	rep, err := s.repuestos.FindByIDTx(tx, repuestoID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apierror.NotFound("Repuesto con id %s no encontrado", repuestoID)
	}
	if err != nil {
		return apierror.Internal(err)
	}
	return apierror.Conflict(
		"Stock insuficiente para el repuesto %s. Stock actual: %d, cantidad solicitada: %d",
		rep.NombreRepuesto, rep.Stock, cantidad,
	)
}

func (s *stockService) Liberar(tx *gorm.DB, repuestoID uuid.UUID, cantidad int) error {
	if cantidad <= 0 {
		return apierror.Conflict("La cantidad a liberar debe ser mayor a cero")
	}
	if err := s.repuestos.ReponerStockTx(tx, repuestoID, cantidad); err != nil {
		return apierror.Internal(err)
	}
	return nil
}

// AplicarCambios applies a reconciliation result atomically with respect to
// the caller's transaction. Any failed movement aborts the whole batch.
func (s *stockService) AplicarCambios(tx *gorm.DB, cambios []CambioStock) error {
	for _, c := range cambios {
		switch {
		case c.Delta < 0:
			if err := s.Reservar(tx, c.RepuestoID, -c.Delta); err != nil {
				return err
			}
		case c.Delta > 0:
			if err := s.Liberar(tx, c.RepuestoID, c.Delta); err != nil {
				return err
			}
		}
	}
	return nil
}
