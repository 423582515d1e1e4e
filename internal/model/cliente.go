package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Cliente is a customer of the workshop. Cedula, correo and telefono are all
// natural keys; duplicates are rejected at the service layer and backed by
// unique indexes.
type Cliente struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	NombreCliente string    `gorm:"index;not null"`
	Cedula        string    `gorm:"uniqueIndex;not null"`
	Correo        string    `gorm:"uniqueIndex;not null"`
	Telefono      string    `gorm:"uniqueIndex;not null"`
	Direccion     *string
	CreatedAt     time.Time
	UpdatedAt     time.Time

	MotosCliente []MotoCliente `gorm:"foreignKey:ClienteID"`
}

func (Cliente) TableName() string { return "clientes" }

func (c *Cliente) BeforeCreate(*gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
