package repository

import (
	"context"

	"github.com/MotoWorkShop/MWSBackend/internal/dto"
	"github.com/MotoWorkShop/MWSBackend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MarcaRepository interface {
	Create(ctx context.Context, m *model.Marca) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Marca, error)
	FindByNombre(ctx context.Context, nombre string) (*model.Marca, error)
	List(ctx context.Context, filter dto.ListFilter) ([]model.Marca, int64, error)
	Update(ctx context.Context, m *model.Marca) error
	Delete(ctx context.Context, id uuid.UUID) error
	DB() *gorm.DB
}

type marcaRepo struct{ db *gorm.DB }

func NewMarcaRepository(db *gorm.DB) MarcaRepository { return &marcaRepo{db: db} }

func (r *marcaRepo) DB() *gorm.DB { return r.db }

func (r *marcaRepo) Create(ctx context.Context, m *model.Marca) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *marcaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Marca, error) {
	var m model.Marca
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	return &m, err
}

func (r *marcaRepo) FindByNombre(ctx context.Context, nombre string) (*model.Marca, error) {
	var m model.Marca
	err := r.db.WithContext(ctx).Where("nombre_marca = ?", nombre).First(&m).Error
	return &m, err
}

func (r *marcaRepo) List(ctx context.Context, filter dto.ListFilter) ([]model.Marca, int64, error) {
	var marcas []model.Marca
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Marca{})
	if filter.Search != "" {
		q = q.Where("nombre_marca ILIKE ?", "%"+filter.Search+"%")
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (filter.Page - 1) * filter.Limit
	err := q.Order("nombre_marca ASC").
		Offset(offset).Limit(filter.Limit).
		Find(&marcas).Error
	return marcas, total, err
}

func (r *marcaRepo) Update(ctx context.Context, m *model.Marca) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *marcaRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Marca{}, "id = ?", id).Error
}
