package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MotoCliente is a customer-owned motorcycle. Service orders reference the bike,
// not the customer directly; the owning Cliente is reached through ClienteID.
type MotoCliente struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Placa     string    `gorm:"uniqueIndex;not null"`
	Marca     string    `gorm:"not null"`
	Modelo    string    `gorm:"not null"`
	Anio      int       `gorm:"column:anio"`
	ClienteID uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Cliente *Cliente `gorm:"foreignKey:ClienteID"`
}

func (MotoCliente) TableName() string { return "motos_cliente" }

func (m *MotoCliente) BeforeCreate(*gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
