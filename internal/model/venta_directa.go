package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// VentaDirecta is a walk-in parts sale. There is no status workflow; every sale
// produces exactly one Factura at creation time.
type VentaDirecta struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Fecha              time.Time       `gorm:"not null;index"`
	Subtotal           decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Descuento          decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	IVA                decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0;column:iva"`
	Total              decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	PagoEfectivo       decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	PagoTarjeta        decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	PagoTransferencia  decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Vendedor           string          `gorm:"not null"`
	ClienteID          uuid.UUID       `gorm:"type:uuid;not null;index"`
	CreatedAt          time.Time
	UpdatedAt          time.Time

	Cliente   *Cliente        `gorm:"foreignKey:ClienteID"`
	Repuestos []RepuestoVenta `gorm:"foreignKey:VentaDirectaID;constraint:OnDelete:CASCADE"`
	Factura   *Factura        `gorm:"foreignKey:VentaDirectaID"`
}

func (VentaDirecta) TableName() string { return "ventas_directas" }

func (v *VentaDirecta) BeforeCreate(*gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}

// RepuestoVenta is a part line of a direct sale.
type RepuestoVenta struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	VentaDirectaID uuid.UUID       `gorm:"type:uuid;not null;index"`
	RepuestoID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Cantidad       int             `gorm:"not null"`
	Precio         decimal.Decimal `gorm:"type:decimal(12,2);not null"`

	Repuesto *Repuesto `gorm:"foreignKey:RepuestoID"`
}

func (RepuestoVenta) TableName() string { return "repuestos_venta" }

func (r *RepuestoVenta) BeforeCreate(*gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
