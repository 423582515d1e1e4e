package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Servicio is a workshop labor item (oil change, brake adjustment, etc.).
// Consuming a servicio in an order has no stock implication.
type Servicio struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	NombreServicio string          `gorm:"uniqueIndex;not null"`
	Precio         decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (Servicio) TableName() string { return "servicios" }

func (s *Servicio) BeforeCreate(*gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
