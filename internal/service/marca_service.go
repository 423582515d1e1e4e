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

type MarcaService interface {
	Crear(ctx context.Context, req dto.CrearMarcaRequest) (*model.Marca, error)
	Obtener(ctx context.Context, id uuid.UUID) (*model.Marca, error)
	Listar(ctx context.Context, filter dto.ListFilter) ([]model.Marca, int64, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.CrearMarcaRequest) (*model.Marca, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type marcaService struct {
	marcas repository.MarcaRepository
}

func NewMarcaService(marcas repository.MarcaRepository) MarcaService {
	return &marcaService{marcas: marcas}
}

func (s *marcaService) Crear(ctx context.Context, req dto.CrearMarcaRequest) (*model.Marca, error) {
	if _, err := s.marcas.FindByNombre(ctx, req.NombreMarca); err == nil {
		return nil, apierror.Conflict("Ya existe una marca con el nombre %s", req.NombreMarca)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierror.Internal(err)
	}

	m := &model.Marca{NombreMarca: req.NombreMarca}
	if err := s.marcas.Create(ctx, m); err != nil {
		return nil, apierror.Internal(err)
	}
	return m, nil
}

func (s *marcaService) Obtener(ctx context.Context, id uuid.UUID) (*model.Marca, error) {
	m, err := s.marcas.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierror.NotFound("Marca con id %s no encontrada", id)
	}
	if err != nil {
		return nil, apierror.Internal(err)
	}
	return m, nil
}

func (s *marcaService) Listar(ctx context.Context, filter dto.ListFilter) ([]model.Marca, int64, error) {
	marcas, total, err := s.marcas.List(ctx, filter)
	if err != nil {
		return nil, 0, apierror.Internal(err)
	}
	return marcas, total, nil
}

func (s *marcaService) Actualizar(ctx context.Context, id uuid.UUID, req dto.CrearMarcaRequest) (*model.Marca, error) {
	m, err := s.Obtener(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.NombreMarca != m.NombreMarca {
		if otra, err := s.marcas.FindByNombre(ctx, req.NombreMarca); err == nil && otra.ID != id {
			return nil, apierror.Conflict("Ya existe una marca con el nombre %s", req.NombreMarca)
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.Internal(err)
		}
		m.NombreMarca = req.NombreMarca
	}
	if err := s.marcas.Update(ctx, m); err != nil {
		return nil, apierror.Internal(err)
	}
	return m, nil
}

func (s *marcaService) Eliminar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.Obtener(ctx, id); err != nil {
		return err
	}
	if err := s.marcas.Delete(ctx, id); err != nil {
		return apierror.Internal(err)
	}
	return nil
}
