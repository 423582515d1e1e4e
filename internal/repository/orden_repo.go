package repository

import (
	"context"

	"github.com/MotoWorkShop/MWSBackend/internal/dto"
	"github.com/MotoWorkShop/MWSBackend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrdenRepository persists service orders and their line items.
type OrdenRepository interface {
	CreateTx(tx *gorm.DB, o *model.OrdenServicio) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.OrdenServicio, error)
	FindByIDTx(tx *gorm.DB, id uuid.UUID) (*model.OrdenServicio, error)
	List(ctx context.Context, filter dto.ListFilter) ([]model.OrdenServicio, int64, error)
	UpdateTx(tx *gorm.DB, o *model.OrdenServicio) error
	DeleteTx(tx *gorm.DB, id uuid.UUID) error

	// ReplaceLineasTx drops every line of the order and recreates the given
	// set in one shot, after stock deltas were already applied.
	ReplaceLineasTx(tx *gorm.DB, ordenID uuid.UUID, repuestos []model.RepuestoOrden, servicios []model.ServicioOrden) error
	DeleteLineasTx(tx *gorm.DB, ordenID uuid.UUID) error

	DB() *gorm.DB
}

type ordenRepo struct{ db *gorm.DB }

func NewOrdenRepository(db *gorm.DB) OrdenRepository { return &ordenRepo{db: db} }

func (r *ordenRepo) DB() *gorm.DB { return r.db }

func (r *ordenRepo) CreateTx(tx *gorm.DB, o *model.OrdenServicio) error {
	return tx.Create(o).Error
}

func (r *ordenRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.OrdenServicio, error) {
	var o model.OrdenServicio
	err := r.db.WithContext(ctx).
		Preload("MotoCliente").Preload("MotoCliente.Cliente").
		Preload("Repuestos").Preload("Repuestos.Repuesto").
		Preload("Servicios").Preload("Servicios.Servicio").
		Preload("Factura").
		First(&o, "id = ?", id).Error
	return &o, err
}

func (r *ordenRepo) FindByIDTx(tx *gorm.DB, id uuid.UUID) (*model.OrdenServicio, error) {
	var o model.OrdenServicio
	err := tx.Preload("MotoCliente").Preload("Repuestos").Preload("Servicios").
		First(&o, "id = ?", id).Error
	return &o, err
}

func (r *ordenRepo) List(ctx context.Context, filter dto.ListFilter) ([]model.OrdenServicio, int64, error) {
	var ordenes []model.OrdenServicio
	var total int64

	q := r.db.WithContext(ctx).Model(&model.OrdenServicio{})
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		q = q.Joins("JOIN motos_cliente ON motos_cliente.id = ordenes_servicio.moto_cliente_id").
			Where("motos_cliente.placa ILIKE ? OR ordenes_servicio.estado ILIKE ?", pattern, pattern)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (filter.Page - 1) * filter.Limit
	err := q.Preload("MotoCliente").Preload("MotoCliente.Cliente").
		Preload("Repuestos").Preload("Repuestos.Repuesto").
		Preload("Servicios").Preload("Servicios.Servicio").
		Preload("Factura").
		Order("fecha DESC").
		Offset(offset).Limit(filter.Limit).
		Find(&ordenes).Error
	return ordenes, total, err
}

func (r *ordenRepo) UpdateTx(tx *gorm.DB, o *model.OrdenServicio) error {
	return tx.Omit("Repuestos", "Servicios", "MotoCliente", "Factura").Save(o).Error
}

func (r *ordenRepo) DeleteTx(tx *gorm.DB, id uuid.UUID) error {
	return tx.Delete(&model.OrdenServicio{}, "id = ?", id).Error
}

func (r *ordenRepo) ReplaceLineasTx(tx *gorm.DB, ordenID uuid.UUID, repuestos []model.RepuestoOrden, servicios []model.ServicioOrden) error {
	if err := r.DeleteLineasTx(tx, ordenID); err != nil {
		return err
	}
	if len(repuestos) > 0 {
		if err := tx.Create(&repuestos).Error; err != nil {
			return err
		}
	}
	if len(servicios) > 0 {
		if err := tx.Create(&servicios).Error; err != nil {
			return err
		}
	}
	return nil
}

func (r *ordenRepo) DeleteLineasTx(tx *gorm.DB, ordenID uuid.UUID) error {
	if err := tx.Where("orden_servicio_id = ?", ordenID).Delete(&model.RepuestoOrden{}).Error; err != nil {
		return err
	}
	return tx.Where("orden_servicio_id = ?", ordenID).Delete(&model.ServicioOrden{}).Error
}
