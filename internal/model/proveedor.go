package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Proveedor is a parts supplier. Nombre, NIT and telefono are natural keys.
type Proveedor struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	NombreProveedor string    `gorm:"uniqueIndex;not null"`
	Nit             string    `gorm:"uniqueIndex;not null"`
	Telefono        string    `gorm:"uniqueIndex;not null"`
	Asesor          *string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Repuestos []Repuesto `gorm:"many2many:proveedor_repuestos"`
}

func (Proveedor) TableName() string { return "proveedores" }

func (p *Proveedor) BeforeCreate(*gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
