package repository

import (
	"context"

	"github.com/MotoWorkShop/MWSBackend/internal/dto"
	"github.com/MotoWorkShop/MWSBackend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RepuestoRepository is the data access contract for parts.
//
// The *Tx methods run inside a caller-owned transaction; callers must pass the
// live tx instance. Stock arithmetic is expressed as single guarded UPDATE
// statements so the non-negative invariant holds under concurrent transactions.
type RepuestoRepository interface {
	Create(ctx context.Context, r *model.Repuesto) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Repuesto, error)
	FindByIDTx(tx *gorm.DB, id uuid.UUID) (*model.Repuesto, error)
	FindByBarcode(ctx context.Context, codigo string) (*model.Repuesto, error)
	List(ctx context.Context, filter dto.ListFilter) ([]model.Repuesto, int64, error)
	Update(ctx context.Context, r *model.Repuesto) error
	Delete(ctx context.Context, id uuid.UUID) error

	// Compatibility / supplier links are replaced wholesale.
	ReplaceMotosMercado(ctx context.Context, r *model.Repuesto, motos []model.MotoMercado) error
	ReplaceProveedores(ctx context.Context, r *model.Repuesto, proveedores []model.Proveedor) error

	// DescontarStockTx decrements stock only when enough is available; the
	// returned row count is 0 when the part is missing or stock < cantidad.
	DescontarStockTx(tx *gorm.DB, id uuid.UUID, cantidad int) (int64, error)
	// ReponerStockTx increments stock unconditionally.
	ReponerStockTx(tx *gorm.DB, id uuid.UUID, cantidad int) error

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type repuestoRepo struct{ db *gorm.DB }

func NewRepuestoRepository(db *gorm.DB) RepuestoRepository { return &repuestoRepo{db: db} }

func (r *repuestoRepo) DB() *gorm.DB { return r.db }

func (r *repuestoRepo) Create(ctx context.Context, m *model.Repuesto) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *repuestoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Repuesto, error) {
	var m model.Repuesto
	err := r.db.WithContext(ctx).
		Preload("Marca").Preload("MotosMercado").Preload("Proveedores").
		First(&m, "id = ?", id).Error
	return &m, err
}

func (r *repuestoRepo) FindByIDTx(tx *gorm.DB, id uuid.UUID) (*model.Repuesto, error) {
	var m model.Repuesto
	err := tx.First(&m, "id = ?", id).Error
	return &m, err
}

func (r *repuestoRepo) FindByBarcode(ctx context.Context, codigo string) (*model.Repuesto, error) {
	var m model.Repuesto
	err := r.db.WithContext(ctx).Where("codigo_barras = ?", codigo).First(&m).Error
	return &m, err
}

func (r *repuestoRepo) List(ctx context.Context, filter dto.ListFilter) ([]model.Repuesto, int64, error) {
	var repuestos []model.Repuesto
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Repuesto{})
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		q = q.Where(
			"nombre_repuesto ILIKE ? OR codigo_barras LIKE ? OR id IN (?)",
			pattern, pattern,
			r.db.Table("moto_repuestos").
				Select("moto_repuestos.repuesto_id").
				Joins("JOIN motos_mercado ON motos_mercado.id = moto_repuestos.moto_mercado_id").
				Where("motos_mercado.modelo ILIKE ?", pattern),
		)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (filter.Page - 1) * filter.Limit
	err := q.Preload("Marca").Preload("MotosMercado").Preload("Proveedores").
		Order("nombre_repuesto ASC").
		Offset(offset).Limit(filter.Limit).
		Find(&repuestos).Error
	return repuestos, total, err
}

func (r *repuestoRepo) Update(ctx context.Context, m *model.Repuesto) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *repuestoRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m := model.Repuesto{ID: id}
		if err := tx.Model(&m).Association("MotosMercado").Clear(); err != nil {
			return err
		}
		if err := tx.Model(&m).Association("Proveedores").Clear(); err != nil {
			return err
		}
		return tx.Delete(&m).Error
	})
}

func (r *repuestoRepo) ReplaceMotosMercado(ctx context.Context, m *model.Repuesto, motos []model.MotoMercado) error {
	return r.db.WithContext(ctx).Model(m).Association("MotosMercado").Replace(motos)
}

func (r *repuestoRepo) ReplaceProveedores(ctx context.Context, m *model.Repuesto, proveedores []model.Proveedor) error {
	return r.db.WithContext(ctx).Model(m).Association("Proveedores").Replace(proveedores)
}

func (r *repuestoRepo) DescontarStockTx(tx *gorm.DB, id uuid.UUID, cantidad int) (int64, error) {
	res := tx.Model(&model.Repuesto{}).
		Where("id = ? AND stock >= ?", id, cantidad).
		Update("stock", gorm.Expr("stock - ?", cantidad))
	return res.RowsAffected, res.Error
}

func (r *repuestoRepo) ReponerStockTx(tx *gorm.DB, id uuid.UUID, cantidad int) error {
	return tx.Model(&model.Repuesto{}).
		Where("id = ?", id).
		Update("stock", gorm.Expr("stock + ?", cantidad)).Error
}
