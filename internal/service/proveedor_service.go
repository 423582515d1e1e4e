package service

import (
	"context"
	"errors"

	"github.com/MotoWorkShop/MWSBackend/internal/apierror"
	"github.com/MotoWorkShop/MWSBackend/internal/dto"
	"github.com/MotoWorkShop/MWSBackend/internal/model"
	"github.com/MotoWorkShop/MWSBackend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProveedorService interface {
	Crear(ctx context.Context, req dto.CrearProveedorRequest) (*model.Proveedor, error)
	Obtener(ctx context.Context, id uuid.UUID) (*model.Proveedor, error)
	Listar(ctx context.Context, filter dto.ListFilter) ([]model.Proveedor, int64, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarProveedorRequest) (*model.Proveedor, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type proveedorService struct {
	proveedores repository.ProveedorRepository
}

func NewProveedorService(proveedores repository.ProveedorRepository) ProveedorService {
	return &proveedorService{proveedores: proveedores}
}

func (s *proveedorService) Crear(ctx context.Context, req dto.CrearProveedorRequest) (*model.Proveedor, error) {
	if _, err := s.proveedores.FindByNit(ctx, req.Nit); err == nil {
		return nil, apierror.Conflict("Ya existe un proveedor con el NIT %s", req.Nit)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierror.Internal(err)
	}

	p := &model.Proveedor{
		NombreProveedor: req.NombreProveedor,
		Nit:             req.Nit,
		Telefono:        req.Telefono,
		Asesor:          req.Asesor,
	}
	if err := s.proveedores.Create(ctx, p); err != nil {
		return nil, apierror.Internal(err)
	}
	return p, nil
}

func (s *proveedorService) Obtener(ctx context.Context, id uuid.UUID) (*model.Proveedor, error) {
	p, err := s.proveedores.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierror.NotFound("Proveedor con id %s no encontrado", id)
	}
	if err != nil {
		return nil, apierror.Internal(err)
	}
	return p, nil
}

func (s *proveedorService) Listar(ctx context.Context, filter dto.ListFilter) ([]model.Proveedor, int64, error) {
	proveedores, total, err := s.proveedores.List(ctx, filter)
	if err != nil {
		return nil, 0, apierror.Internal(err)
	}
	return proveedores, total, nil
}

func (s *proveedorService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarProveedorRequest) (*model.Proveedor, error) {
	p, err := s.Obtener(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Nit != nil && *req.Nit != p.Nit {
		if otro, err := s.proveedores.FindByNit(ctx, *req.Nit); err == nil && otro.ID != id {
			return nil, apierror.Conflict("Ya existe un proveedor con el NIT %s", *req.Nit)
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.Internal(err)
		}
		p.Nit = *req.Nit
	}
	if req.NombreProveedor != nil {
		p.NombreProveedor = *req.NombreProveedor
	}
	if req.Telefono != nil {
		p.Telefono = *req.Telefono
	}
	if req.Asesor != nil {
		p.Asesor = req.Asesor
	}
	if err := s.proveedores.Update(ctx, p); err != nil {
		return nil, apierror.Internal(err)
	}
	return p, nil
}

func (s *proveedorService) Eliminar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.Obtener(ctx, id); err != nil {
		return err
	}
	if err := s.proveedores.Delete(ctx, id); err != nil {
		return apierror.Internal(err)
	}
	return nil
}
