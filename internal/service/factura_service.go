package service

import (
	"context"
	"errors"
	"time"

	"github.com/MotoWorkShop/MWSBackend/internal/apierror"
	"github.com/MotoWorkShop/MWSBackend/internal/dto"
	"github.com/MotoWorkShop/MWSBackend/internal/infra"
	"github.com/MotoWorkShop/MWSBackend/internal/model"
	"github.com/MotoWorkShop/MWSBackend/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// FacturaService projects invoices out of their source documents. Invoices
// are never written through the API: every mutation happens here, inside the
// transaction of the order or sale that caused it.
type FacturaService interface {
	// UpsertParaOrdenTx creates the invoice of a completed order, or refreshes
	// it if the order was completed before.
	UpsertParaOrdenTx(tx *gorm.DB, o *model.OrdenServicio, clienteID uuid.UUID) (*model.Factura, error)
	// AnularParaOrdenTx zeroes the amounts of the order's invoice and stamps
	// it with the cancellation date. Orders without an invoice are a no-op.
	AnularParaOrdenTx(tx *gorm.DB, ordenID uuid.UUID, fecha time.Time) error
	EliminarParaOrdenTx(tx *gorm.DB, ordenID uuid.UUID) error

	CrearParaVentaTx(tx *gorm.DB, v *model.VentaDirecta) (*model.Factura, error)
	// ActualizarParaVentaTx refreshes the sale's invoice, which must exist.
	ActualizarParaVentaTx(tx *gorm.DB, v *model.VentaDirecta) (*model.Factura, error)
	EliminarParaVentaTx(tx *gorm.DB, ventaID uuid.UUID) error

	Obtener(ctx context.Context, id uuid.UUID) (*model.Factura, error)
	Listar(ctx context.Context, filter dto.ListFilter) ([]model.Factura, int64, error)
	GenerarPDF(ctx context.Context, id uuid.UUID) ([]byte, error)
}

type facturaService struct {
	facturas repository.FacturaRepository
	ordenes  repository.OrdenRepository
	ventas   repository.VentaRepository
	pdf      *infra.GeneradorPDF
}

func NewFacturaService(
	facturas repository.FacturaRepository,
	ordenes repository.OrdenRepository,
	ventas repository.VentaRepository,
	pdf *infra.GeneradorPDF,
) FacturaService {
	return &facturaService{facturas: facturas, ordenes: ordenes, ventas: ventas, pdf: pdf}
}

func (s *facturaService) UpsertParaOrdenTx(tx *gorm.DB, o *model.OrdenServicio, clienteID uuid.UUID) (*model.Factura, error) {
	f, err := s.facturas.FindByOrdenTx(tx, o.ID)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		f = &model.Factura{OrdenServicioID: &o.ID, ClienteID: clienteID}
		proyectarDesdeOrden(f, o)
		if err := s.facturas.CreateTx(tx, f); err != nil {
			return nil, apierror.Internal(err)
		}
		return f, nil
	case err != nil:
		return nil, apierror.Internal(err)
	}

	f.ClienteID = clienteID
	proyectarDesdeOrden(f, o)
	if err := s.facturas.UpdateTx(tx, f); err != nil {
		return nil, apierror.Internal(err)
	}
	return f, nil
}

func (s *facturaService) AnularParaOrdenTx(tx *gorm.DB, ordenID uuid.UUID, fecha time.Time) error {
	f, err := s.facturas.FindByOrdenTx(tx, ordenID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return apierror.Internal(err)
	}

	cero := decimal.Zero
	f.Fecha = fecha
	f.PagoEfectivo = cero
	f.PagoTarjeta = cero
	f.PagoTransferencia = cero
	f.Descuento = cero
	f.Subtotal = cero
	f.IVA = cero
	f.Total = cero
	if err := s.facturas.UpdateTx(tx, f); err != nil {
		return apierror.Internal(err)
	}
	return nil
}

func (s *facturaService) EliminarParaOrdenTx(tx *gorm.DB, ordenID uuid.UUID) error {
	if err := s.facturas.DeleteByOrdenTx(tx, ordenID); err != nil {
		return apierror.Internal(err)
	}
	return nil
}

func (s *facturaService) CrearParaVentaTx(tx *gorm.DB, v *model.VentaDirecta) (*model.Factura, error) {
	f := &model.Factura{VentaDirectaID: &v.ID, ClienteID: v.ClienteID}
	proyectarDesdeVenta(f, v)
	if err := s.facturas.CreateTx(tx, f); err != nil {
		return nil, apierror.Internal(err)
	}
	return f, nil
}

func (s *facturaService) ActualizarParaVentaTx(tx *gorm.DB, v *model.VentaDirecta) (*model.Factura, error) {
	f, err := s.facturas.FindByVentaTx(tx, v.ID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierror.NotFound("La venta %s no tiene factura asociada", v.ID)
	}
	if err != nil {
		return nil, apierror.Internal(err)
	}

	f.ClienteID = v.ClienteID
	proyectarDesdeVenta(f, v)
	if err := s.facturas.UpdateTx(tx, f); err != nil {
		return nil, apierror.Internal(err)
	}
	return f, nil
}

func (s *facturaService) EliminarParaVentaTx(tx *gorm.DB, ventaID uuid.UUID) error {
	if err := s.facturas.DeleteByVentaTx(tx, ventaID); err != nil {
		return apierror.Internal(err)
	}
	return nil
}

func (s *facturaService) Obtener(ctx context.Context, id uuid.UUID) (*model.Factura, error) {
	f, err := s.facturas.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierror.NotFound("Factura con id %s no encontrada", id)
	}
	if err != nil {
		return nil, apierror.Internal(err)
	}
	return f, nil
}

func (s *facturaService) Listar(ctx context.Context, filter dto.ListFilter) ([]model.Factura, int64, error) {
	facturas, total, err := s.facturas.List(ctx, filter)
	if err != nil {
		return nil, 0, apierror.Internal(err)
	}
	return facturas, total, nil
}

func (s *facturaService) GenerarPDF(ctx context.Context, id uuid.UUID) ([]byte, error) {
	f, err := s.Obtener(ctx, id)
	if err != nil {
		return nil, err
	}

	datos := infra.DatosFactura{Factura: *f}
	switch {
	case f.OrdenServicioID != nil:
		o, err := s.ordenes.FindByID(ctx, *f.OrdenServicioID)
		if err != nil {
			return nil, apierror.Internal(err)
		}
		for _, l := range o.Repuestos {
			datos.Lineas = append(datos.Lineas, infra.LineaFactura{
				Descripcion: l.Repuesto.NombreRepuesto,
				Cantidad:    l.Cantidad,
				Precio:      l.Precio,
			})
		}
		for _, l := range o.Servicios {
			datos.Lineas = append(datos.Lineas, infra.LineaFactura{
				Descripcion: l.Servicio.NombreServicio,
				Cantidad:    1,
				Precio:      l.Precio,
			})
		}
	case f.VentaDirectaID != nil:
		v, err := s.ventas.FindByID(ctx, *f.VentaDirectaID)
		if err != nil {
			return nil, apierror.Internal(err)
		}
		for _, l := range v.Repuestos {
			datos.Lineas = append(datos.Lineas, infra.LineaFactura{
				Descripcion: l.Repuesto.NombreRepuesto,
				Cantidad:    l.Cantidad,
				Precio:      l.Precio,
			})
		}
	}

	out, err := s.pdf.Generar(datos)
	if err != nil {
		return nil, apierror.Internal(err)
	}
	return out, nil
}

func proyectarDesdeOrden(f *model.Factura, o *model.OrdenServicio) {
	f.Fecha = o.Fecha
	f.PagoEfectivo = o.AdelantoEfectivo
	f.PagoTarjeta = o.AdelantoTarjeta
	f.PagoTransferencia = o.AdelantoTransferencia
	f.Descuento = o.Descuento
	f.Subtotal = o.Subtotal
	f.IVA = o.IVA
	f.Total = o.Total
	f.Vendedor = o.Vendedor
}

func proyectarDesdeVenta(f *model.Factura, v *model.VentaDirecta) {
	f.Fecha = v.Fecha
	f.PagoEfectivo = v.PagoEfectivo
	f.PagoTarjeta = v.PagoTarjeta
	f.PagoTransferencia = v.PagoTransferencia
	f.Descuento = v.Descuento
	f.Subtotal = v.Subtotal
	f.IVA = v.IVA
	f.Total = v.Total
	f.Vendedor = v.Vendedor
}
