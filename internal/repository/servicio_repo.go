package repository

import (
	"context"

	"github.com/MotoWorkShop/MWSBackend/internal/dto"
	"github.com/MotoWorkShop/MWSBackend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ServicioRepository interface {
	Create(ctx context.Context, s *model.Servicio) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Servicio, error)
	FindByIDTx(tx *gorm.DB, id uuid.UUID) (*model.Servicio, error)
	FindByNombre(ctx context.Context, nombre string) (*model.Servicio, error)
	List(ctx context.Context, filter dto.ListFilter) ([]model.Servicio, int64, error)
	Update(ctx context.Context, s *model.Servicio) error
	Delete(ctx context.Context, id uuid.UUID) error
	DB() *gorm.DB
}

type servicioRepo struct{ db *gorm.DB }

func NewServicioRepository(db *gorm.DB) ServicioRepository { return &servicioRepo{db: db} }

func (r *servicioRepo) DB() *gorm.DB { return r.db }

func (r *servicioRepo) Create(ctx context.Context, s *model.Servicio) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *servicioRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Servicio, error) {
	var s model.Servicio
	err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error
	return &s, err
}

func (r *servicioRepo) FindByIDTx(tx *gorm.DB, id uuid.UUID) (*model.Servicio, error) {
	var s model.Servicio
	err := tx.First(&s, "id = ?", id).Error
	return &s, err
}

func (r *servicioRepo) FindByNombre(ctx context.Context, nombre string) (*model.Servicio, error) {
	var s model.Servicio
	err := r.db.WithContext(ctx).Where("nombre_servicio = ?", nombre).First(&s).Error
	return &s, err
}

func (r *servicioRepo) List(ctx context.Context, filter dto.ListFilter) ([]model.Servicio, int64, error) {
	var servicios []model.Servicio
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Servicio{})
	if filter.Search != "" {
		q = q.Where("nombre_servicio ILIKE ?", "%"+filter.Search+"%")
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (filter.Page - 1) * filter.Limit
	err := q.Order("nombre_servicio ASC").
		Offset(offset).Limit(filter.Limit).
		Find(&servicios).Error
	return servicios, total, err
}

func (r *servicioRepo) Update(ctx context.Context, s *model.Servicio) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *servicioRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Servicio{}, "id = ?", id).Error
}
