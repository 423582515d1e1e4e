package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Factura is a billing record derived from exactly one of {OrdenServicio,
// VentaDirecta}. The unique indexes on both FKs enforce at most one invoice per
// order/sale at the schema level.
type Factura struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Fecha             time.Time       `gorm:"not null;index"`
	PagoEfectivo      decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	PagoTarjeta       decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	PagoTransferencia decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Descuento         decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Subtotal          decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	IVA               decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0;column:iva"`
	Total             decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Vendedor          string          `gorm:"not null"`
	ClienteID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	OrdenServicioID   *uuid.UUID      `gorm:"type:uuid;uniqueIndex"`
	VentaDirectaID    *uuid.UUID      `gorm:"type:uuid;uniqueIndex"`
	CreatedAt         time.Time
	UpdatedAt         time.Time

	Cliente *Cliente `gorm:"foreignKey:ClienteID"`
}

func (Factura) TableName() string { return "facturas" }

func (f *Factura) BeforeCreate(*gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}
