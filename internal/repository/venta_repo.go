package repository

import (
	"context"

	"github.com/MotoWorkShop/MWSBackend/internal/dto"
	"github.com/MotoWorkShop/MWSBackend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VentaRepository persists direct sales and their line items.
type VentaRepository interface {
	CreateTx(tx *gorm.DB, v *model.VentaDirecta) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.VentaDirecta, error)
	FindByIDTx(tx *gorm.DB, id uuid.UUID) (*model.VentaDirecta, error)
	List(ctx context.Context, filter dto.ListFilter) ([]model.VentaDirecta, int64, error)
	UpdateTx(tx *gorm.DB, v *model.VentaDirecta) error
	DeleteTx(tx *gorm.DB, id uuid.UUID) error

	ReplaceLineasTx(tx *gorm.DB, ventaID uuid.UUID, repuestos []model.RepuestoVenta) error
	DeleteLineasTx(tx *gorm.DB, ventaID uuid.UUID) error

	DB() *gorm.DB
}

type ventaRepo struct{ db *gorm.DB }

func NewVentaRepository(db *gorm.DB) VentaRepository { return &ventaRepo{db: db} }

func (r *ventaRepo) DB() *gorm.DB { return r.db }

func (r *ventaRepo) CreateTx(tx *gorm.DB, v *model.VentaDirecta) error {
	return tx.Create(v).Error
}

func (r *ventaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.VentaDirecta, error) {
	var v model.VentaDirecta
	err := r.db.WithContext(ctx).
		Preload("Cliente").
		Preload("Repuestos").Preload("Repuestos.Repuesto").
		Preload("Factura").
		First(&v, "id = ?", id).Error
	return &v, err
}

func (r *ventaRepo) FindByIDTx(tx *gorm.DB, id uuid.UUID) (*model.VentaDirecta, error) {
	var v model.VentaDirecta
	err := tx.Preload("Repuestos").First(&v, "id = ?", id).Error
	return &v, err
}

func (r *ventaRepo) List(ctx context.Context, filter dto.ListFilter) ([]model.VentaDirecta, int64, error) {
	var ventas []model.VentaDirecta
	var total int64

	q := r.db.WithContext(ctx).Model(&model.VentaDirecta{})
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		q = q.Joins("JOIN clientes ON clientes.id = ventas_directas.cliente_id").
			Where("clientes.nombre_cliente ILIKE ? OR clientes.cedula LIKE ?", pattern, pattern)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (filter.Page - 1) * filter.Limit
	err := q.Preload("Cliente").
		Preload("Repuestos").Preload("Repuestos.Repuesto").
		Preload("Factura").
		Order("fecha DESC").
		Offset(offset).Limit(filter.Limit).
		Find(&ventas).Error
	return ventas, total, err
}

func (r *ventaRepo) UpdateTx(tx *gorm.DB, v *model.VentaDirecta) error {
	return tx.Omit("Repuestos", "Cliente", "Factura").Save(v).Error
}

func (r *ventaRepo) DeleteTx(tx *gorm.DB, id uuid.UUID) error {
	return tx.Delete(&model.VentaDirecta{}, "id = ?", id).Error
}

func (r *ventaRepo) ReplaceLineasTx(tx *gorm.DB, ventaID uuid.UUID, repuestos []model.RepuestoVenta) error {
	if err := r.DeleteLineasTx(tx, ventaID); err != nil {
		return err
	}
	if len(repuestos) > 0 {
		return tx.Create(&repuestos).Error
	}
	return nil
}

func (r *ventaRepo) DeleteLineasTx(tx *gorm.DB, ventaID uuid.UUID) error {
	return tx.Where("venta_directa_id = ?", ventaID).Delete(&model.RepuestoVenta{}).Error
}
