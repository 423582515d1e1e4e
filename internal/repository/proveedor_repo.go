package repository

import (
	"context"

	"github.com/MotoWorkShop/MWSBackend/internal/dto"
	"github.com/MotoWorkShop/MWSBackend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProveedorRepository interface {
	Create(ctx context.Context, p *model.Proveedor) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Proveedor, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Proveedor, error)
	FindByNit(ctx context.Context, nit string) (*model.Proveedor, error)
	List(ctx context.Context, filter dto.ListFilter) ([]model.Proveedor, int64, error)
	Update(ctx context.Context, p *model.Proveedor) error
	Delete(ctx context.Context, id uuid.UUID) error
	DB() *gorm.DB
}

type proveedorRepo struct{ db *gorm.DB }

func NewProveedorRepository(db *gorm.DB) ProveedorRepository { return &proveedorRepo{db: db} }

func (r *proveedorRepo) DB() *gorm.DB { return r.db }

func (r *proveedorRepo) Create(ctx context.Context, p *model.Proveedor) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *proveedorRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Proveedor, error) {
	var p model.Proveedor
	err := r.db.WithContext(ctx).Preload("Repuestos").First(&p, "id = ?", id).Error
	return &p, err
}

func (r *proveedorRepo) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Proveedor, error) {
	var proveedores []model.Proveedor
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&proveedores).Error
	return proveedores, err
}

func (r *proveedorRepo) FindByNit(ctx context.Context, nit string) (*model.Proveedor, error) {
	var p model.Proveedor
	err := r.db.WithContext(ctx).Where("nit = ?", nit).First(&p).Error
	return &p, err
}

func (r *proveedorRepo) List(ctx context.Context, filter dto.ListFilter) ([]model.Proveedor, int64, error) {
	var proveedores []model.Proveedor
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Proveedor{})
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		q = q.Where("nombre_proveedor ILIKE ? OR nit LIKE ?", pattern, pattern)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (filter.Page - 1) * filter.Limit
	err := q.Preload("Repuestos").
		Order("nombre_proveedor ASC").
		Offset(offset).Limit(filter.Limit).
		Find(&proveedores).Error
	return proveedores, total, err
}

func (r *proveedorRepo) Update(ctx context.Context, p *model.Proveedor) error {
	return r.db.WithContext(ctx).Omit("Repuestos").Save(p).Error
}

func (r *proveedorRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		p := model.Proveedor{ID: id}
		if err := tx.Model(&p).Association("Repuestos").Clear(); err != nil {
			return err
		}
		return tx.Delete(&p).Error
	})
}
