package repository

import (
	"context"

	"github.com/MotoWorkShop/MWSBackend/internal/dto"
	"github.com/MotoWorkShop/MWSBackend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FacturaRepository persists invoices. An invoice belongs to exactly one
// source document, enforced by unique indexes on orden_servicio_id and
// venta_directa_id.
type FacturaRepository interface {
	CreateTx(tx *gorm.DB, f *model.Factura) error
	UpdateTx(tx *gorm.DB, f *model.Factura) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Factura, error)
	FindByOrdenTx(tx *gorm.DB, ordenID uuid.UUID) (*model.Factura, error)
	FindByVentaTx(tx *gorm.DB, ventaID uuid.UUID) (*model.Factura, error)
	DeleteByOrdenTx(tx *gorm.DB, ordenID uuid.UUID) error
	DeleteByVentaTx(tx *gorm.DB, ventaID uuid.UUID) error
	List(ctx context.Context, filter dto.ListFilter) ([]model.Factura, int64, error)
	DB() *gorm.DB
}

type facturaRepo struct{ db *gorm.DB }

func NewFacturaRepository(db *gorm.DB) FacturaRepository { return &facturaRepo{db: db} }

func (r *facturaRepo) DB() *gorm.DB { return r.db }

func (r *facturaRepo) CreateTx(tx *gorm.DB, f *model.Factura) error {
	return tx.Create(f).Error
}

func (r *facturaRepo) UpdateTx(tx *gorm.DB, f *model.Factura) error {
	return tx.Omit("Cliente").Save(f).Error
}

func (r *facturaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Factura, error) {
	var f model.Factura
	err := r.db.WithContext(ctx).Preload("Cliente").First(&f, "id = ?", id).Error
	return &f, err
}

func (r *facturaRepo) FindByOrdenTx(tx *gorm.DB, ordenID uuid.UUID) (*model.Factura, error) {
	var f model.Factura
	err := tx.Where("orden_servicio_id = ?", ordenID).First(&f).Error
	return &f, err
}

func (r *facturaRepo) FindByVentaTx(tx *gorm.DB, ventaID uuid.UUID) (*model.Factura, error) {
	var f model.Factura
	err := tx.Where("venta_directa_id = ?", ventaID).First(&f).Error
	return &f, err
}

func (r *facturaRepo) DeleteByOrdenTx(tx *gorm.DB, ordenID uuid.UUID) error {
	return tx.Where("orden_servicio_id = ?", ordenID).Delete(&model.Factura{}).Error
}

func (r *facturaRepo) DeleteByVentaTx(tx *gorm.DB, ventaID uuid.UUID) error {
	return tx.Where("venta_directa_id = ?", ventaID).Delete(&model.Factura{}).Error
}

func (r *facturaRepo) List(ctx context.Context, filter dto.ListFilter) ([]model.Factura, int64, error) {
	var facturas []model.Factura
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Factura{})
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		q = q.Joins("JOIN clientes ON clientes.id = facturas.cliente_id").
			Where("clientes.nombre_cliente ILIKE ? OR clientes.cedula LIKE ?", pattern, pattern)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (filter.Page - 1) * filter.Limit
	err := q.Preload("Cliente").
		Order("fecha DESC").
		Offset(offset).Limit(filter.Limit).
		Find(&facturas).Error
	return facturas, total, err
}
