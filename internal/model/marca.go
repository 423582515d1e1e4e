package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Marca is a spare-part brand.
type Marca struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	NombreMarca string    `gorm:"uniqueIndex;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Marca) TableName() string { return "marcas" }

func (m *Marca) BeforeCreate(*gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
