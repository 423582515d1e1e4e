package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MotoMercado is a market bike model used to tag which repuestos fit which bikes.
type MotoMercado struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Modelo    string    `gorm:"uniqueIndex;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Repuestos []Repuesto `gorm:"many2many:moto_repuestos"`
}

func (MotoMercado) TableName() string { return "motos_mercado" }

func (m *MotoMercado) BeforeCreate(*gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
