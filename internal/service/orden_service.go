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
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Notificador enqueues post-commit invoice notifications. Implementations must
// be safe to call from request goroutines; a nil Notificador disables them.
type Notificador interface {
	EncolarEmailFactura(ctx context.Context, facturaID uuid.UUID) error
}

// AccionFactura is the invoice side effect a state transition demands.
type AccionFactura int

const (
	FacturaNinguna AccionFactura = iota
	FacturaUpsert
	FacturaAnular
	FacturaEliminar
)

// PlanTransicion is the outcome of planning an order state change: the state
// to store, whether the order's lines and amounts get wiped, and what happens
// to its invoice. Planning is pure; applying it is the transactional part.
type PlanTransicion struct {
	Estado   model.EstadoOrden
	Cancelar bool
	Factura  AccionFactura
}

// PlanearTransicion decides what an update from estado actual to deseado
// entails. CANCELADO is terminal: any update on a cancelled order conflicts.
// Leaving COMPLETADO back to PENDIENTE removes the invoice so that an invoice
// exists exactly while the order is completed.
func PlanearTransicion(actual, deseado model.EstadoOrden) (PlanTransicion, error) {
	if !deseado.Valida() {
		return PlanTransicion{}, apierror.Conflict("Estado de orden inválido: %s", deseado)
	}
	if actual == model.EstadoCancelado {
		return PlanTransicion{}, apierror.Conflict("La orden ya fue cancelada y no admite cambios")
	}

	switch deseado {
	case model.EstadoCancelado:
		return PlanTransicion{Estado: deseado, Cancelar: true, Factura: FacturaAnular}, nil
	case model.EstadoCompletado:
		return PlanTransicion{Estado: deseado, Factura: FacturaUpsert}, nil
	default:
		accion := FacturaNinguna
		if actual == model.EstadoCompletado {
			accion = FacturaEliminar
		}
		return PlanTransicion{Estado: deseado, Factura: accion}, nil
	}
}

type OrdenService interface {
	Crear(ctx context.Context, req dto.CrearOrdenRequest) (*model.OrdenServicio, error)
	Obtener(ctx context.Context, id uuid.UUID) (*model.OrdenServicio, error)
	Listar(ctx context.Context, filter dto.ListFilter) ([]model.OrdenServicio, int64, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarOrdenRequest) (*model.OrdenServicio, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type ordenService struct {
	ordenes     repository.OrdenRepository
	motos       repository.MotoClienteRepository
	stock       StockService
	facturas    FacturaService
	notificador Notificador
}

func NewOrdenService(
	ordenes repository.OrdenRepository,
	motos repository.MotoClienteRepository,
	stock StockService,
	facturas FacturaService,
	notificador Notificador,
) OrdenService {
	return &ordenService{
		ordenes:     ordenes,
		motos:       motos,
		stock:       stock,
		facturas:    facturas,
		notificador: notificador,
	}
}

func (s *ordenService) Crear(ctx context.Context, req dto.CrearOrdenRequest) (*model.OrdenServicio, error) {
	estado := model.EstadoOrden(req.Estado)
	if estado != model.EstadoPendiente {
		return nil, apierror.Conflict("Una orden nueva debe crearse en estado PENDIENTE")
	}

	motoID, err := uuid.Parse(req.MotoClienteID)
	if err != nil {
		return nil, apierror.Internal(err)
	}
	lineasRepuesto, lineas, err := lineasRepuestoOrden(req.Repuestos)
	if err != nil {
		return nil, err
	}
	lineasServicio, err := lineasServicioOrden(req.Servicios)
	if err != nil {
		return nil, err
	}

	o := &model.OrdenServicio{
		Fecha:                 req.Fecha,
		Estado:                estado,
		Subtotal:              req.Subtotal,
		Descuento:             req.Descuento,
		IVA:                   req.IVA,
		Total:                 req.Total,
		AdelantoEfectivo:      req.AdelantoEfectivo,
		AdelantoTarjeta:       req.AdelantoTarjeta,
		AdelantoTransferencia: req.AdelantoTransferencia,
		GuardarCascos:         req.GuardarCascos,
		GuardarPapeles:        req.GuardarPapeles,
		Observaciones:         req.Observaciones,
		ObservacionesMecanico: req.ObservacionesMecanico,
		ObservacionesFactura:  req.ObservacionesFactura,
		Mecanico:              req.Mecanico,
		Vendedor:              req.Vendedor,
		MotoClienteID:         motoID,
		Repuestos:             lineasRepuesto,
		Servicios:             lineasServicio,
	}

	err = runTx(ctx, s.ordenes.DB(), func(tx *gorm.DB) error {
		if _, err := s.motos.FindByIDTx(tx, motoID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apierror.NotFound("Moto de cliente con id %s no encontrada", motoID)
			}
			return apierror.Internal(err)
		}
		if err := s.stock.AplicarCambios(tx, DiffLineas(nil, lineas)); err != nil {
			return err
		}
		if err := s.ordenes.CreateTx(tx, o); err != nil {
			return apierror.Internal(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Obtener(ctx, o.ID)
}

func (s *ordenService) Obtener(ctx context.Context, id uuid.UUID) (*model.OrdenServicio, error) {
	o, err := s.ordenes.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierror.NotFound("Orden de servicio con id %s no encontrada", id)
	}
	if err != nil {
		return nil, apierror.Internal(err)
	}
	return o, nil
}

func (s *ordenService) Listar(ctx context.Context, filter dto.ListFilter) ([]model.OrdenServicio, int64, error) {
	ordenes, total, err := s.ordenes.List(ctx, filter)
	if err != nil {
		return nil, 0, apierror.Internal(err)
	}
	return ordenes, total, nil
}

func (s *ordenService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarOrdenRequest) (*model.OrdenServicio, error) {
	motoID, err := uuid.Parse(req.MotoClienteID)
	if err != nil {
		return nil, apierror.Internal(err)
	}

	var facturaEmitida *model.Factura
	err = runTx(ctx, s.ordenes.DB(), func(tx *gorm.DB) error {
		o, err := s.ordenes.FindByIDTx(tx, id)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound("Orden de servicio con id %s no encontrada", id)
		}
		if err != nil {
			return apierror.Internal(err)
		}

		plan, err := PlanearTransicion(o.Estado, model.EstadoOrden(req.Estado))
		if err != nil {
			return err
		}

		if plan.Cancelar {
			return s.cancelarTx(tx, o, req)
		}

		moto, err := s.motos.FindByIDTx(tx, motoID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apierror.NotFound("Moto de cliente con id %s no encontrada", motoID)
			}
			return apierror.Internal(err)
		}

		lineasRepuesto, lineas, err := lineasRepuestoOrden(req.Repuestos)
		if err != nil {
			return err
		}
		lineasServicio, err := lineasServicioOrden(req.Servicios)
		if err != nil {
			return err
		}
		for i := range lineasRepuesto {
			lineasRepuesto[i].OrdenServicioID = o.ID
		}
		for i := range lineasServicio {
			lineasServicio[i].OrdenServicioID = o.ID
		}

		if err := s.stock.AplicarCambios(tx, DiffLineas(lineasDeOrden(o), lineas)); err != nil {
			return err
		}
		if err := s.ordenes.ReplaceLineasTx(tx, o.ID, lineasRepuesto, lineasServicio); err != nil {
			return apierror.Internal(err)
		}

		o.Fecha = req.Fecha
		o.Estado = plan.Estado
		o.Subtotal = req.Subtotal
		o.Descuento = req.Descuento
		o.IVA = req.IVA
		o.Total = req.Total
		o.AdelantoEfectivo = req.AdelantoEfectivo
		o.AdelantoTarjeta = req.AdelantoTarjeta
		o.AdelantoTransferencia = req.AdelantoTransferencia
		o.GuardarCascos = req.GuardarCascos
		o.GuardarPapeles = req.GuardarPapeles
		o.Observaciones = req.Observaciones
		o.ObservacionesMecanico = req.ObservacionesMecanico
		o.ObservacionesFactura = req.ObservacionesFactura
		o.Mecanico = req.Mecanico
		o.Vendedor = req.Vendedor
		o.MotoClienteID = motoID
		if err := s.ordenes.UpdateTx(tx, o); err != nil {
			return apierror.Internal(err)
		}

		switch plan.Factura {
		case FacturaUpsert:
			facturaEmitida, err = s.facturas.UpsertParaOrdenTx(tx, o, moto.ClienteID)
			return err
		case FacturaEliminar:
			return s.facturas.EliminarParaOrdenTx(tx, o.ID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if facturaEmitida != nil && s.notificador != nil {
		if err := s.notificador.EncolarEmailFactura(ctx, facturaEmitida.ID); err != nil {
			log.Warn().Err(err).Str("factura_id", facturaEmitida.ID.String()).
				Msg("no se pudo encolar el email de la factura")
		}
	}
	return s.Obtener(ctx, id)
}

// cancelarTx wipes the order: every reserved part goes back to stock, the
// lines are dropped and money fields end at zero, mirroring the zeroed invoice.
func (s *ordenService) cancelarTx(tx *gorm.DB, o *model.OrdenServicio, req dto.ActualizarOrdenRequest) error {
	if err := s.stock.AplicarCambios(tx, DiffLineas(lineasDeOrden(o), nil)); err != nil {
		return err
	}
	if err := s.ordenes.DeleteLineasTx(tx, o.ID); err != nil {
		return apierror.Internal(err)
	}

	cero := decimal.Zero
	o.Estado = model.EstadoCancelado
	o.Fecha = req.Fecha
	o.Subtotal = cero
	o.Descuento = cero
	o.IVA = cero
	o.Total = cero
	o.AdelantoEfectivo = cero
	o.AdelantoTarjeta = cero
	o.AdelantoTransferencia = cero
	o.Observaciones = oMotivoCancelacion(req.Observaciones)
	o.ObservacionesMecanico = oMotivoCancelacion(req.ObservacionesMecanico)
	o.ObservacionesFactura = oMotivoCancelacion(req.ObservacionesFactura)
	if err := s.ordenes.UpdateTx(tx, o); err != nil {
		return apierror.Internal(err)
	}
	return s.facturas.AnularParaOrdenTx(tx, o.ID, req.Fecha)
}

// oMotivoCancelacion keeps the caller's note or falls back to the marker.
func oMotivoCancelacion(nota *string) *string {
	if nota != nil {
		return nota
	}
	motivo := "Orden cancelada"
	return &motivo
}

func (s *ordenService) Eliminar(ctx context.Context, id uuid.UUID) error {
	return runTx(ctx, s.ordenes.DB(), func(tx *gorm.DB) error {
		o, err := s.ordenes.FindByIDTx(tx, id)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound("Orden de servicio con id %s no encontrada", id)
		}
		if err != nil {
			return apierror.Internal(err)
		}

		if err := s.stock.AplicarCambios(tx, DiffLineas(lineasDeOrden(o), nil)); err != nil {
			return err
		}
		if err := s.facturas.EliminarParaOrdenTx(tx, o.ID); err != nil {
			return err
		}
		if err := s.ordenes.DeleteLineasTx(tx, o.ID); err != nil {
			return apierror.Internal(err)
		}
		if err := s.ordenes.DeleteTx(tx, o.ID); err != nil {
			return apierror.Internal(err)
		}
		return nil
	})
}

func lineasDeOrden(o *model.OrdenServicio) []Linea {
	lineas := make([]Linea, 0, len(o.Repuestos))
	for _, l := range o.Repuestos {
		lineas = append(lineas, Linea{RepuestoID: l.RepuestoID, Cantidad: l.Cantidad})
	}
	return lineas
}

func lineasRepuestoOrden(reqs []dto.LineaRepuestoRequest) ([]model.RepuestoOrden, []Linea, error) {
	modelos := make([]model.RepuestoOrden, 0, len(reqs))
	lineas := make([]Linea, 0, len(reqs))
	for _, r := range reqs {
		id, err := uuid.Parse(r.RepuestoID)
		if err != nil {
			return nil, nil, apierror.Internal(err)
		}
		modelos = append(modelos, model.RepuestoOrden{
			RepuestoID: id,
			Cantidad:   r.Cantidad,
			Precio:     r.Precio,
		})
		lineas = append(lineas, Linea{RepuestoID: id, Cantidad: r.Cantidad})
	}
	return modelos, lineas, nil
}

func lineasServicioOrden(reqs []dto.LineaServicioRequest) ([]model.ServicioOrden, error) {
	modelos := make([]model.ServicioOrden, 0, len(reqs))
	for _, r := range reqs {
		id, err := uuid.Parse(r.ServicioID)
		if err != nil {
			return nil, apierror.Internal(err)
		}
		modelos = append(modelos, model.ServicioOrden{ServicioID: id, Precio: r.Precio})
	}
	return modelos, nil
}
