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

// ServicioService manages the labor catalog (oil change, brake tune, etc).
type ServicioService interface {
	Crear(ctx context.Context, req dto.CrearServicioRequest) (*model.Servicio, error)
	Obtener(ctx context.Context, id uuid.UUID) (*model.Servicio, error)
	Listar(ctx context.Context, filter dto.ListFilter) ([]model.Servicio, int64, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarServicioRequest) (*model.Servicio, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type servicioService struct {
	servicios repository.ServicioRepository
}

func NewServicioService(servicios repository.ServicioRepository) ServicioService {
	return &servicioService{servicios: servicios}
}

func (s *servicioService) Crear(ctx context.Context, req dto.CrearServicioRequest) (*model.Servicio, error) {
	if _, err := s.servicios.FindByNombre(ctx, req.NombreServicio); err == nil {
		return nil, apierror.Conflict("Ya existe un servicio con el nombre %s", req.NombreServicio)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierror.Internal(err)
	}

	m := &model.Servicio{NombreServicio: req.NombreServicio, Precio: req.Precio}
	if err := s.servicios.Create(ctx, m); err != nil {
		return nil, apierror.Internal(err)
	}
	return m, nil
}

func (s *servicioService) Obtener(ctx context.Context, id uuid.UUID) (*model.Servicio, error) {
	m, err := s.servicios.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierror.NotFound("Servicio con id %s no encontrado", id)
	}
	if err != nil {
		return nil, apierror.Internal(err)
	}
	return m, nil
}

func (s *servicioService) Listar(ctx context.Context, filter dto.ListFilter) ([]model.Servicio, int64, error) {
	servicios, total, err := s.servicios.List(ctx, filter)
	if err != nil {
		return nil, 0, apierror.Internal(err)
	}
	return servicios, total, nil
}

func (s *servicioService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarServicioRequest) (*model.Servicio, error) {
	m, err := s.Obtener(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.NombreServicio != nil && *req.NombreServicio != m.NombreServicio {
		if otro, err := s.servicios.FindByNombre(ctx, *req.NombreServicio); err == nil && otro.ID != id {
			return nil, apierror.Conflict("Ya existe un servicio con el nombre %s", *req.NombreServicio)
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.Internal(err)
		}
		m.NombreServicio = *req.NombreServicio
	}
	if req.Precio != nil {
		m.Precio = *req.Precio
	}
	if err := s.servicios.Update(ctx, m); err != nil {
		return nil, apierror.Internal(err)
	}
	return m, nil
}

func (s *servicioService) Eliminar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.Obtener(ctx, id); err != nil {
		return err
	}
	if err := s.servicios.Delete(ctx, id); err != nil {
		return apierror.Internal(err)
	}
	return nil
}
