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

type MotoMercadoService interface {
	Crear(ctx context.Context, req dto.CrearMotoMercadoRequest) (*model.MotoMercado, error)
	Obtener(ctx context.Context, id uuid.UUID) (*model.MotoMercado, error)
	Listar(ctx context.Context, filter dto.ListFilter) ([]model.MotoMercado, int64, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.CrearMotoMercadoRequest) (*model.MotoMercado, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type motoMercadoService struct {
	motos repository.MotoMercadoRepository
}

func NewMotoMercadoService(motos repository.MotoMercadoRepository) MotoMercadoService {
	return &motoMercadoService{motos: motos}
}

func (s *motoMercadoService) Crear(ctx context.Context, req dto.CrearMotoMercadoRequest) (*model.MotoMercado, error) {
	if _, err := s.motos.FindByModelo(ctx, req.Modelo); err == nil {
		return nil, apierror.Conflict("Ya existe una moto de mercado con el modelo %s", req.Modelo)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierror.Internal(err)
	}

	m := &model.MotoMercado{Modelo: req.Modelo}
	if err := s.motos.Create(ctx, m); err != nil {
		return nil, apierror.Internal(err)
	}
	return m, nil
}

func (s *motoMercadoService) Obtener(ctx context.Context, id uuid.UUID) (*model.MotoMercado, error) {
	m, err := s.motos.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierror.NotFound("Moto de mercado con id %s no encontrada", id)
	}
	if err != nil {
		return nil, apierror.Internal(err)
	}
	return m, nil
}

func (s *motoMercadoService) Listar(ctx context.Context, filter dto.ListFilter) ([]model.MotoMercado, int64, error) {
	motos, total, err := s.motos.List(ctx, filter)
	if err != nil {
		return nil, 0, apierror.Internal(err)
	}
	return motos, total, nil
}

func (s *motoMercadoService) Actualizar(ctx context.Context, id uuid.UUID, req dto.CrearMotoMercadoRequest) (*model.MotoMercado, error) {
	m, err := s.Obtener(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Modelo != m.Modelo {
		if otra, err := s.motos.FindByModelo(ctx, req.Modelo); err == nil && otra.ID != id {
			return nil, apierror.Conflict("Ya existe una moto de mercado con el modelo %s", req.Modelo)
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.Internal(err)
		}
		m.Modelo = req.Modelo
	}
	if err := s.motos.Update(ctx, m); err != nil {
		return nil, apierror.Internal(err)
	}
	return m, nil
}

func (s *motoMercadoService) Eliminar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.Obtener(ctx, id); err != nil {
		return err
	}
	if err := s.motos.Delete(ctx, id); err != nil {
		return apierror.Internal(err)
	}
	return nil
}
