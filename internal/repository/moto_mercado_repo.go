package repository

import (
	"context"

	"github.com/MotoWorkShop/MWSBackend/internal/dto"
	"github.com/MotoWorkShop/MWSBackend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MotoMercadoRepository interface {
	Create(ctx context.Context, m *model.MotoMercado) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.MotoMercado, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]model.MotoMercado, error)
	FindByModelo(ctx context.Context, modelo string) (*model.MotoMercado, error)
	List(ctx context.Context, filter dto.ListFilter) ([]model.MotoMercado, int64, error)
	Update(ctx context.Context, m *model.MotoMercado) error
	Delete(ctx context.Context, id uuid.UUID) error
	DB() *gorm.DB
}

type motoMercadoRepo struct{ db *gorm.DB }

func NewMotoMercadoRepository(db *gorm.DB) MotoMercadoRepository { return &motoMercadoRepo{db: db} }

func (r *motoMercadoRepo) DB() *gorm.DB { return r.db }

func (r *motoMercadoRepo) Create(ctx context.Context, m *model.MotoMercado) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *motoMercadoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.MotoMercado, error) {
	var m model.MotoMercado
	err := r.db.WithContext(ctx).Preload("Repuestos").First(&m, "id = ?", id).Error
	return &m, err
}

func (r *motoMercadoRepo) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]model.MotoMercado, error) {
	var motos []model.MotoMercado
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&motos).Error
	return motos, err
}

func (r *motoMercadoRepo) FindByModelo(ctx context.Context, modelo string) (*model.MotoMercado, error) {
	var m model.MotoMercado
	err := r.db.WithContext(ctx).Where("modelo = ?", modelo).First(&m).Error
	return &m, err
}

func (r *motoMercadoRepo) List(ctx context.Context, filter dto.ListFilter) ([]model.MotoMercado, int64, error) {
	var motos []model.MotoMercado
	var total int64

	q := r.db.WithContext(ctx).Model(&model.MotoMercado{})
	if filter.Search != "" {
		q = q.Where("modelo ILIKE ?", "%"+filter.Search+"%")
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (filter.Page - 1) * filter.Limit
	err := q.Order("modelo ASC").
		Offset(offset).Limit(filter.Limit).
		Find(&motos).Error
	return motos, total, err
}

func (r *motoMercadoRepo) Update(ctx context.Context, m *model.MotoMercado) error {
	return r.db.WithContext(ctx).Omit("Repuestos").Save(m).Error
}

func (r *motoMercadoRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m := model.MotoMercado{ID: id}
		if err := tx.Model(&m).Association("Repuestos").Clear(); err != nil {
			return err
		}
		return tx.Delete(&m).Error
	})
}
