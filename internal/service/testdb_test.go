package service

import (
	"testing"

	"github.com/MotoWorkShop/MWSBackend/internal/dto"
	"github.com/MotoWorkShop/MWSBackend/internal/infra"
	"github.com/MotoWorkShop/MWSBackend/internal/model"
	"github.com/MotoWorkShop/MWSBackend/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory sqlite database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A single connection keeps every query on the same in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, infra.Migrate(db))
	return db
}

type entorno struct {
	db        *gorm.DB
	stock     StockService
	facturas  FacturaService
	ordenes   OrdenService
	ventas    VentaService
	repuestos repository.RepuestoRepository
}

func newEntorno(t *testing.T) *entorno {
	t.Helper()
	db := newTestDB(t)

	repuestoRepo := repository.NewRepuestoRepository(db)
	ordenRepo := repository.NewOrdenRepository(db)
	ventaRepo := repository.NewVentaRepository(db)
	facturaRepo := repository.NewFacturaRepository(db)
	clienteRepo := repository.NewClienteRepository(db)
	motoRepo := repository.NewMotoClienteRepository(db)

	stock := NewStockService(repuestoRepo)
	facturas := NewFacturaService(facturaRepo, ordenRepo, ventaRepo, infra.NewGeneradorPDF("Taller de Prueba"))

	return &entorno{
		db:        db,
		stock:     stock,
		facturas:  facturas,
		ordenes:   NewOrdenService(ordenRepo, motoRepo, stock, facturas, nil),
		ventas:    NewVentaService(ventaRepo, clienteRepo, stock, facturas, nil),
		repuestos: repuestoRepo,
	}
}

func (e *entorno) crearCliente(t *testing.T, cedula string) *model.Cliente {
	t.Helper()
	c := &model.Cliente{
		NombreCliente: "Juan Pérez",
		Cedula:        cedula,
		Correo:        cedula + "@test.local",
		Telefono:      "300" + cedula,
	}
	require.NoError(t, e.db.Create(c).Error)
	return c
}

func (e *entorno) crearMoto(t *testing.T, placa string, cliente *model.Cliente) *model.MotoCliente {
	t.Helper()
	m := &model.MotoCliente{
		Placa:     placa,
		Marca:     "Yamaha",
		Modelo:    "FZ 2.0",
		Anio:      2020,
		ClienteID: cliente.ID,
	}
	require.NoError(t, e.db.Create(m).Error)
	return m
}

func (e *entorno) crearRepuesto(t *testing.T, codigo, nombre string, stock int) *model.Repuesto {
	t.Helper()
	r := &model.Repuesto{
		CodigoBarras:   codigo,
		NombreRepuesto: nombre,
		ValorCompra:    decimal.NewFromInt(10000),
		ValorUnitario:  decimal.NewFromInt(15000),
		Stock:          stock,
	}
	require.NoError(t, e.db.Create(r).Error)
	return r
}

func filtroPorDefecto() dto.ListFilter {
	return dto.ListFilter{Page: 1, Limit: 20}
}

func (e *entorno) stockDe(t *testing.T, r *model.Repuesto) int {
	t.Helper()
	var actual model.Repuesto
	require.NoError(t, e.db.First(&actual, "id = ?", r.ID).Error)
	return actual.Stock
}
