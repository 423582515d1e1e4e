package service

import (
	"context"
	"errors"

	"github.com/MotoWorkShop/MWSBackend/internal/apierror"
	"github.com/MotoWorkShop/MWSBackend/internal/dto"
	"github.com/MotoWorkShop/MWSBackend/internal/model"
	"github.com/MotoWorkShop/MWSBackend/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// VentaService orchestrates direct sales. Unlike service orders there is no
// state machine: a sale reserves stock and emits its invoice in one shot.
type VentaService interface {
	Crear(ctx context.Context, req dto.CrearVentaRequest) (*model.VentaDirecta, error)
	Obtener(ctx context.Context, id uuid.UUID) (*model.VentaDirecta, error)
	Listar(ctx context.Context, filter dto.ListFilter) ([]model.VentaDirecta, int64, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarVentaRequest) (*model.VentaDirecta, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type ventaService struct {
	ventas      repository.VentaRepository
	clientes    repository.ClienteRepository
	stock       StockService
	facturas    FacturaService
	notificador Notificador
}

func NewVentaService(
	ventas repository.VentaRepository,
	clientes repository.ClienteRepository,
	stock StockService,
	facturas FacturaService,
	notificador Notificador,
) VentaService {
	return &ventaService{
		ventas:      ventas,
		clientes:    clientes,
		stock:       stock,
		facturas:    facturas,
		notificador: notificador,
	}
}

func (s *ventaService) Crear(ctx context.Context, req dto.CrearVentaRequest) (*model.VentaDirecta, error) {
	clienteID, err := uuid.Parse(req.ClienteID)
	if err != nil {
		return nil, apierror.Internal(err)
	}

	lineasVenta, lineas, err := lineasRepuestoVenta(req.Repuestos)
	if err != nil {
		return nil, err
	}

	v := &model.VentaDirecta{
		Fecha:             req.Fecha,
		Subtotal:          req.Subtotal,
		Descuento:         req.Descuento,
		IVA:               req.IVA,
		Total:             req.Total,
		PagoEfectivo:      req.PagoEfectivo,
		PagoTarjeta:       req.PagoTarjeta,
		PagoTransferencia: req.PagoTransferencia,
		Vendedor:          req.Vendedor,
		ClienteID:         clienteID,
		Repuestos:         lineasVenta,
	}

	var factura *model.Factura
	err = runTx(ctx, s.ventas.DB(), func(tx *gorm.DB) error {
		if err := s.validarClienteTx(tx, clienteID); err != nil {
			return err
		}
		if err := s.stock.AplicarCambios(tx, DiffLineas(nil, lineas)); err != nil {
			return err
		}
		if err := s.ventas.CreateTx(tx, v); err != nil {
			return apierror.Internal(err)
		}
		factura, err = s.facturas.CrearParaVentaTx(tx, v)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.notificar(ctx, factura)
	return s.Obtener(ctx, v.ID)
}

func (s *ventaService) Obtener(ctx context.Context, id uuid.UUID) (*model.VentaDirecta, error) {
	v, err := s.ventas.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierror.NotFound("Venta directa con id %s no encontrada", id)
	}
	if err != nil {
		return nil, apierror.Internal(err)
	}
	return v, nil
}

func (s *ventaService) Listar(ctx context.Context, filter dto.ListFilter) ([]model.VentaDirecta, int64, error) {
	ventas, total, err := s.ventas.List(ctx, filter)
	if err != nil {
		return nil, 0, apierror.Internal(err)
	}
	return ventas, total, nil
}

func (s *ventaService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarVentaRequest) (*model.VentaDirecta, error) {
	clienteID, err := uuid.Parse(req.ClienteID)
	if err != nil {
		return nil, apierror.Internal(err)
	}

	var factura *model.Factura
	err = runTx(ctx, s.ventas.DB(), func(tx *gorm.DB) error {
		v, err := s.ventas.FindByIDTx(tx, id)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound("Venta directa con id %s no encontrada", id)
		}
		if err != nil {
			return apierror.Internal(err)
		}
		if err := s.validarClienteTx(tx, clienteID); err != nil {
			return err
		}

		lineasVenta, lineas, err := lineasRepuestoVenta(req.Repuestos)
		if err != nil {
			return err
		}
		for i := range lineasVenta {
			lineasVenta[i].VentaDirectaID = v.ID
		}

		if err := s.stock.AplicarCambios(tx, DiffLineas(lineasDeVenta(v), lineas)); err != nil {
			return err
		}
		if err := s.ventas.ReplaceLineasTx(tx, v.ID, lineasVenta); err != nil {
			return apierror.Internal(err)
		}

		v.Fecha = req.Fecha
		v.Subtotal = req.Subtotal
		v.Descuento = req.Descuento
		v.IVA = req.IVA
		v.Total = req.Total
		v.PagoEfectivo = req.PagoEfectivo
		v.PagoTarjeta = req.PagoTarjeta
		v.PagoTransferencia = req.PagoTransferencia
		v.Vendedor = req.Vendedor
		v.ClienteID = clienteID
		if err := s.ventas.UpdateTx(tx, v); err != nil {
			return apierror.Internal(err)
		}

		factura, err = s.facturas.ActualizarParaVentaTx(tx, v)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.notificar(ctx, factura)
	return s.Obtener(ctx, id)
}

func (s *ventaService) Eliminar(ctx context.Context, id uuid.UUID) error {
	return runTx(ctx, s.ventas.DB(), func(tx *gorm.DB) error {
		v, err := s.ventas.FindByIDTx(tx, id)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound("Venta directa con id %s no encontrada", id)
		}
		if err != nil {
			return apierror.Internal(err)
		}

		if err := s.stock.AplicarCambios(tx, DiffLineas(lineasDeVenta(v), nil)); err != nil {
			return err
		}
		if err := s.facturas.EliminarParaVentaTx(tx, v.ID); err != nil {
			return err
		}
		if err := s.ventas.DeleteLineasTx(tx, v.ID); err != nil {
			return apierror.Internal(err)
		}
		if err := s.ventas.DeleteTx(tx, v.ID); err != nil {
			return apierror.Internal(err)
		}
		return nil
	})
}

// validarClienteTx resolves the client inside the sale's own transaction so a
// concurrent deletion surfaces as a 404 and rolls the sale back.
func (s *ventaService) validarClienteTx(tx *gorm.DB, clienteID uuid.UUID) error {
	if _, err := s.clientes.FindByIDTx(tx, clienteID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound("Cliente con id %s no encontrado", clienteID)
		}
		return apierror.Internal(err)
	}
	return nil
}

func (s *ventaService) notificar(ctx context.Context, f *model.Factura) {
	if f == nil || s.notificador == nil {
		return
	}
	if err := s.notificador.EncolarEmailFactura(ctx, f.ID); err != nil {
		log.Warn().Err(err).Str("factura_id", f.ID.String()).
			Msg("no se pudo encolar el email de la factura")
	}
}

func lineasDeVenta(v *model.VentaDirecta) []Linea {
	lineas := make([]Linea, 0, len(v.Repuestos))
	for _, l := range v.Repuestos {
		lineas = append(lineas, Linea{RepuestoID: l.RepuestoID, Cantidad: l.Cantidad})
	}
	return lineas
}

func lineasRepuestoVenta(reqs []dto.LineaRepuestoRequest) ([]model.RepuestoVenta, []Linea, error) {
	modelos := make([]model.RepuestoVenta, 0, len(reqs))
	lineas := make([]Linea, 0, len(reqs))
	for _, r := range reqs {
		id, err := uuid.Parse(r.RepuestoID)
		if err != nil {
			return nil, nil, apierror.Internal(err)
		}
		modelos = append(modelos, model.RepuestoVenta{
			RepuestoID: id,
			Cantidad:   r.Cantidad,
			Precio:     r.Precio,
		})
		lineas = append(lineas, Linea{RepuestoID: id, Cantidad: r.Cantidad})
	}
	return modelos, lineas, nil
}
