package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Repuesto is an inventory part. Stock is the single source of truth for
// availability and never goes negative: the decrement path is a guarded
// single-statement UPDATE (see repository.RepuestoRepository.DescontarStockTx)
// so the check and the write cannot be separated by a concurrent transaction.
type Repuesto struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CodigoBarras   string          `gorm:"uniqueIndex;not null"`
	NombreRepuesto string          `gorm:"index;not null"`
	ValorCompra    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	ValorUnitario  decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Ubicacion      *string
	Stock          int        `gorm:"not null;default:0"`
	MarcaID        *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Marca        *Marca        `gorm:"foreignKey:MarcaID"`
	MotosMercado []MotoMercado `gorm:"many2many:moto_repuestos"`
	Proveedores  []Proveedor   `gorm:"many2many:proveedor_repuestos"`
}

func (Repuesto) TableName() string { return "repuestos" }

func (r *Repuesto) BeforeCreate(*gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
