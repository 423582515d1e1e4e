package infra

import (
	"time"

	"github.com/MotoWorkShop/MWSBackend/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase opens the Postgres pool and migrates the schema.
func NewDatabase(databaseURL string, env string) (*gorm.DB, error) {
	nivel := logger.Warn
	if env == "development" {
		nivel = logger.Info
	}

	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(nivel),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate applies the schema for every persisted model. Shared with the
// sqlite-backed tests.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Cliente{},
		&model.MotoCliente{},
		&model.MotoMercado{},
		&model.Marca{},
		&model.Servicio{},
		&model.Proveedor{},
		&model.Repuesto{},
		&model.OrdenServicio{},
		&model.RepuestoOrden{},
		&model.ServicioOrden{},
		&model.VentaDirecta{},
		&model.RepuestoVenta{},
		&model.Factura{},
		&model.Usuario{},
	)
}
