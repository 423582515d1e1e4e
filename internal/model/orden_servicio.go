package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// EstadoOrden is the service-order lifecycle state.
// PENDIENTE → {COMPLETADO, CANCELADO}; COMPLETADO stays editable (re-entering
// the stock diff logic), CANCELADO is terminal and financially zeroed.
type EstadoOrden string

const (
	EstadoPendiente  EstadoOrden = "PENDIENTE"
	EstadoCompletado EstadoOrden = "COMPLETADO"
	EstadoCancelado  EstadoOrden = "CANCELADO"
)

// Valida reports whether e is one of the known states.
func (e EstadoOrden) Valida() bool {
	switch e {
	case EstadoPendiente, EstadoCompletado, EstadoCancelado:
		return true
	}
	return false
}

// OrdenServicio is a workshop job on a customer motorcycle. It exclusively owns
// its part and service lines (cascade delete).
type OrdenServicio struct {
	ID                    uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Fecha                 time.Time       `gorm:"not null;index"`
	Estado                EstadoOrden     `gorm:"type:varchar(20);not null;default:'PENDIENTE'"`
	Subtotal              decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Descuento             decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	IVA                   decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0;column:iva"`
	Total                 decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	AdelantoEfectivo      decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	AdelantoTarjeta       decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	AdelantoTransferencia decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	GuardarCascos         bool            `gorm:"not null;default:false"`
	GuardarPapeles        bool            `gorm:"not null;default:false"`
	Observaciones         *string
	ObservacionesMecanico *string
	ObservacionesFactura  *string
	Mecanico              string    `gorm:"not null"`
	Vendedor              string    `gorm:"not null"`
	MotoClienteID         uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt             time.Time
	UpdatedAt             time.Time

	MotoCliente *MotoCliente    `gorm:"foreignKey:MotoClienteID"`
	Repuestos   []RepuestoOrden `gorm:"foreignKey:OrdenServicioID;constraint:OnDelete:CASCADE"`
	Servicios   []ServicioOrden `gorm:"foreignKey:OrdenServicioID;constraint:OnDelete:CASCADE"`
	Factura     *Factura        `gorm:"foreignKey:OrdenServicioID"`
}

func (OrdenServicio) TableName() string { return "ordenes_servicio" }

func (o *OrdenServicio) BeforeCreate(*gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// RepuestoOrden is a part line of a service order. Precio is a snapshot of the
// unit price at the time the line was written.
type RepuestoOrden struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrdenServicioID uuid.UUID       `gorm:"type:uuid;not null;index"`
	RepuestoID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Cantidad        int             `gorm:"not null"`
	Precio          decimal.Decimal `gorm:"type:decimal(12,2);not null"`

	Repuesto *Repuesto `gorm:"foreignKey:RepuestoID"`
}

func (RepuestoOrden) TableName() string { return "repuestos_orden" }

func (r *RepuestoOrden) BeforeCreate(*gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// ServicioOrden is a labor line of a service order.
type ServicioOrden struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrdenServicioID uuid.UUID       `gorm:"type:uuid;not null;index"`
	ServicioID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Precio          decimal.Decimal `gorm:"type:decimal(12,2);not null"`

	Servicio *Servicio `gorm:"foreignKey:ServicioID"`
}

func (ServicioOrden) TableName() string { return "servicios_orden" }

func (s *ServicioOrden) BeforeCreate(*gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
