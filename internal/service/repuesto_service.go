package service

import (
	"context"
	"errors"

	"github.com/MotoWorkShop/MWSBackend/internal/apierror"
	"github.com/MotoWorkShop/MWSBackend/internal/dto"
	"github.com/MotoWorkShop/MWSBackend/internal/infra"
	"github.com/MotoWorkShop/MWSBackend/internal/model"
	"github.com/MotoWorkShop/MWSBackend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RepuestoService manages the parts catalog. The barcode lookup is served
// through redis; every mutation invalidates the affected entry.
type RepuestoService interface {
	Crear(ctx context.Context, req dto.CrearRepuestoRequest) (*model.Repuesto, error)
	Obtener(ctx context.Context, id uuid.UUID) (*model.Repuesto, error)
	ConsultarPorBarcode(ctx context.Context, codigo string) (*dto.ConsultaBarcodeResponse, error)
	Listar(ctx context.Context, filter dto.ListFilter) ([]model.Repuesto, int64, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarRepuestoRequest) (*model.Repuesto, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type repuestoService struct {
	repuestos   repository.RepuestoRepository
	marcas      repository.MarcaRepository
	motos       repository.MotoMercadoRepository
	proveedores repository.ProveedorRepository
	cache       *infra.CacheBarcode
}

func NewRepuestoService(
	repuestos repository.RepuestoRepository,
	marcas repository.MarcaRepository,
	motos repository.MotoMercadoRepository,
	proveedores repository.ProveedorRepository,
	cache *infra.CacheBarcode,
) RepuestoService {
	return &repuestoService{
		repuestos:   repuestos,
		marcas:      marcas,
		motos:       motos,
		proveedores: proveedores,
		cache:       cache,
	}
}

func (s *repuestoService) Crear(ctx context.Context, req dto.CrearRepuestoRequest) (*model.Repuesto, error) {
	if _, err := s.repuestos.FindByBarcode(ctx, req.CodigoBarras); err == nil {
		return nil, apierror.Conflict("Ya existe un repuesto con el código de barras %s", req.CodigoBarras)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierror.Internal(err)
	}

	r := &model.Repuesto{
		CodigoBarras:   req.CodigoBarras,
		NombreRepuesto: req.NombreRepuesto,
		ValorCompra:    req.ValorCompra,
		ValorUnitario:  req.ValorUnitario,
		Ubicacion:      req.Ubicacion,
		Stock:          req.Stock,
	}
	if req.MarcaID != nil {
		marcaID, err := s.resolverMarca(ctx, *req.MarcaID)
		if err != nil {
			return nil, err
		}
		r.MarcaID = marcaID
	}
	motos, err := s.resolverMotos(ctx, req.MotosMercado)
	if err != nil {
		return nil, err
	}
	proveedores, err := s.resolverProveedores(ctx, req.Proveedores)
	if err != nil {
		return nil, err
	}
	r.MotosMercado = motos
	r.Proveedores = proveedores

	if err := s.repuestos.Create(ctx, r); err != nil {
		return nil, apierror.Internal(err)
	}
	return s.Obtener(ctx, r.ID)
}

func (s *repuestoService) Obtener(ctx context.Context, id uuid.UUID) (*model.Repuesto, error) {
	r, err := s.repuestos.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierror.NotFound("Repuesto con id %s no encontrado", id)
	}
	if err != nil {
		return nil, apierror.Internal(err)
	}
	return r, nil
}

func (s *repuestoService) ConsultarPorBarcode(ctx context.Context, codigo string) (*dto.ConsultaBarcodeResponse, error) {
	if resp, ok := s.cache.Get(ctx, codigo); ok {
		return resp, nil
	}

	r, err := s.repuestos.FindByBarcode(ctx, codigo)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierror.NotFound("Repuesto con código de barras %s no encontrado", codigo)
	}
	if err != nil {
		return nil, apierror.Internal(err)
	}

	resp := &dto.ConsultaBarcodeResponse{
		NombreRepuesto: r.NombreRepuesto,
		ValorUnitario:  r.ValorUnitario,
		Stock:          r.Stock,
		Ubicacion:      r.Ubicacion,
	}
	s.cache.Set(ctx, codigo, resp)
	return resp, nil
}

func (s *repuestoService) Listar(ctx context.Context, filter dto.ListFilter) ([]model.Repuesto, int64, error) {
	repuestos, total, err := s.repuestos.List(ctx, filter)
	if err != nil {
		return nil, 0, apierror.Internal(err)
	}
	return repuestos, total, nil
}

func (s *repuestoService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarRepuestoRequest) (*model.Repuesto, error) {
	r, err := s.Obtener(ctx, id)
	if err != nil {
		return nil, err
	}
	codigoAnterior := r.CodigoBarras

	if req.CodigoBarras != nil && *req.CodigoBarras != r.CodigoBarras {
		if otro, err := s.repuestos.FindByBarcode(ctx, *req.CodigoBarras); err == nil && otro.ID != id {
			return nil, apierror.Conflict("Ya existe un repuesto con el código de barras %s", *req.CodigoBarras)
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.Internal(err)
		}
		r.CodigoBarras = *req.CodigoBarras
	}
	if req.NombreRepuesto != nil {
		r.NombreRepuesto = *req.NombreRepuesto
	}
	if req.ValorCompra != nil {
		r.ValorCompra = *req.ValorCompra
	}
	if req.ValorUnitario != nil {
		r.ValorUnitario = *req.ValorUnitario
	}
	if req.Ubicacion != nil {
		r.Ubicacion = req.Ubicacion
	}
	if req.Stock != nil {
		r.Stock = *req.Stock
	}
	if req.MarcaID != nil {
		marcaID, err := s.resolverMarca(ctx, *req.MarcaID)
		if err != nil {
			return nil, err
		}
		r.MarcaID = marcaID
	}

	if err := s.repuestos.Update(ctx, r); err != nil {
		return nil, apierror.Internal(err)
	}

	if req.MotosMercado != nil {
		motos, err := s.resolverMotos(ctx, req.MotosMercado)
		if err != nil {
			return nil, err
		}
		if err := s.repuestos.ReplaceMotosMercado(ctx, r, motos); err != nil {
			return nil, apierror.Internal(err)
		}
	}
	if req.Proveedores != nil {
		proveedores, err := s.resolverProveedores(ctx, req.Proveedores)
		if err != nil {
			return nil, err
		}
		if err := s.repuestos.ReplaceProveedores(ctx, r, proveedores); err != nil {
			return nil, apierror.Internal(err)
		}
	}

	s.cache.Invalidate(ctx, codigoAnterior)
	if r.CodigoBarras != codigoAnterior {
		s.cache.Invalidate(ctx, r.CodigoBarras)
	}
	return s.Obtener(ctx, id)
}

func (s *repuestoService) Eliminar(ctx context.Context, id uuid.UUID) error {
	r, err := s.Obtener(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repuestos.Delete(ctx, id); err != nil {
		return apierror.Internal(err)
	}
	s.cache.Invalidate(ctx, r.CodigoBarras)
	return nil
}

func (s *repuestoService) resolverMarca(ctx context.Context, raw string) (*uuid.UUID, error) {
	marcaID, err := uuid.Parse(raw)
	if err != nil {
		return nil, apierror.Internal(err)
	}
	if _, err := s.marcas.FindByID(ctx, marcaID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Marca con id %s no encontrada", marcaID)
		}
		return nil, apierror.Internal(err)
	}
	return &marcaID, nil
}

func (s *repuestoService) resolverMotos(ctx context.Context, raw []string) ([]model.MotoMercado, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	ids, err := parseUUIDs(raw)
	if err != nil {
		return nil, err
	}
	motos, err := s.motos.FindByIDs(ctx, ids)
	if err != nil {
		return nil, apierror.Internal(err)
	}
	if len(motos) != len(ids) {
		return nil, apierror.NotFound("Alguna de las motos de mercado indicadas no existe")
	}
	return motos, nil
}

func (s *repuestoService) resolverProveedores(ctx context.Context, raw []string) ([]model.Proveedor, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	ids, err := parseUUIDs(raw)
	if err != nil {
		return nil, err
	}
	proveedores, err := s.proveedores.FindByIDs(ctx, ids)
	if err != nil {
		return nil, apierror.Internal(err)
	}
	if len(proveedores) != len(ids) {
		return nil, apierror.NotFound("Alguno de los proveedores indicados no existe")
	}
	return proveedores, nil
}

func parseUUIDs(raw []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(raw))
	vistos := make(map[uuid.UUID]struct{}, len(raw))
	for _, r := range raw {
		id, err := uuid.Parse(r)
		if err != nil {
			return nil, apierror.Internal(err)
		}
		if _, ok := vistos[id]; ok {
			continue
		}
		vistos[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids, nil
}
