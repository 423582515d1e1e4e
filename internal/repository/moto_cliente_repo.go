package repository

import (
	"context"

	"github.com/MotoWorkShop/MWSBackend/internal/dto"
	"github.com/MotoWorkShop/MWSBackend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MotoClienteRepository interface {
	Create(ctx context.Context, m *model.MotoCliente) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.MotoCliente, error)
	FindByIDTx(tx *gorm.DB, id uuid.UUID) (*model.MotoCliente, error)
	FindByPlaca(ctx context.Context, placa string) (*model.MotoCliente, error)
	List(ctx context.Context, filter dto.ListFilter) ([]model.MotoCliente, int64, error)
	Update(ctx context.Context, m *model.MotoCliente) error
	Delete(ctx context.Context, id uuid.UUID) error
	DB() *gorm.DB
}

type motoClienteRepo struct{ db *gorm.DB }

func NewMotoClienteRepository(db *gorm.DB) MotoClienteRepository { return &motoClienteRepo{db: db} }

func (r *motoClienteRepo) DB() *gorm.DB { return r.db }

func (r *motoClienteRepo) Create(ctx context.Context, m *model.MotoCliente) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *motoClienteRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.MotoCliente, error) {
	var m model.MotoCliente
	err := r.db.WithContext(ctx).Preload("Cliente").First(&m, "id = ?", id).Error
	return &m, err
}

func (r *motoClienteRepo) FindByIDTx(tx *gorm.DB, id uuid.UUID) (*model.MotoCliente, error) {
	var m model.MotoCliente
	err := tx.First(&m, "id = ?", id).Error
	return &m, err
}

func (r *motoClienteRepo) FindByPlaca(ctx context.Context, placa string) (*model.MotoCliente, error) {
	var m model.MotoCliente
	err := r.db.WithContext(ctx).Where("placa = ?", placa).First(&m).Error
	return &m, err
}

func (r *motoClienteRepo) List(ctx context.Context, filter dto.ListFilter) ([]model.MotoCliente, int64, error) {
	var motos []model.MotoCliente
	var total int64

	q := r.db.WithContext(ctx).Model(&model.MotoCliente{})
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		q = q.Where("placa ILIKE ? OR marca ILIKE ? OR modelo ILIKE ?", pattern, pattern, pattern)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (filter.Page - 1) * filter.Limit
	err := q.Preload("Cliente").
		Order("placa ASC").
		Offset(offset).Limit(filter.Limit).
		Find(&motos).Error
	return motos, total, err
}

func (r *motoClienteRepo) Update(ctx context.Context, m *model.MotoCliente) error {
	return r.db.WithContext(ctx).Omit("Cliente").Save(m).Error
}

func (r *motoClienteRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.MotoCliente{}, "id = ?", id).Error
}
