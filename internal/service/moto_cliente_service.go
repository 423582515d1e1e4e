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

type MotoClienteService interface {
	Crear(ctx context.Context, req dto.CrearMotoClienteRequest) (*model.MotoCliente, error)
	Obtener(ctx context.Context, id uuid.UUID) (*model.MotoCliente, error)
	Listar(ctx context.Context, filter dto.ListFilter) ([]model.MotoCliente, int64, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarMotoClienteRequest) (*model.MotoCliente, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type motoClienteService struct {
	motos    repository.MotoClienteRepository
	clientes repository.ClienteRepository
}

func NewMotoClienteService(motos repository.MotoClienteRepository, clientes repository.ClienteRepository) MotoClienteService {
	return &motoClienteService{motos: motos, clientes: clientes}
}

func (s *motoClienteService) Crear(ctx context.Context, req dto.CrearMotoClienteRequest) (*model.MotoCliente, error) {
	if _, err := s.motos.FindByPlaca(ctx, req.Placa); err == nil {
		return nil, apierror.Conflict("Ya existe una moto con la placa %s", req.Placa)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierror.Internal(err)
	}

	clienteID, err := uuid.Parse(req.ClienteID)
	if err != nil {
		return nil, apierror.Internal(err)
	}
	if _, err := s.clientes.FindByID(ctx, clienteID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Cliente con id %s no encontrado", clienteID)
		}
		return nil, apierror.Internal(err)
	}

	m := &model.MotoCliente{
		Placa:     req.Placa,
		Marca:     req.Marca,
		Modelo:    req.Modelo,
		Anio:      req.Anio,
		ClienteID: clienteID,
	}
	if err := s.motos.Create(ctx, m); err != nil {
		return nil, apierror.Internal(err)
	}
	return m, nil
}

func (s *motoClienteService) Obtener(ctx context.Context, id uuid.UUID) (*model.MotoCliente, error) {
	m, err := s.motos.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierror.NotFound("Moto de cliente con id %s no encontrada", id)
	}
	if err != nil {
		return nil, apierror.Internal(err)
	}
	return m, nil
}

func (s *motoClienteService) Listar(ctx context.Context, filter dto.ListFilter) ([]model.MotoCliente, int64, error) {
	motos, total, err := s.motos.List(ctx, filter)
	if err != nil {
		return nil, 0, apierror.Internal(err)
	}
	return motos, total, nil
}

func (s *motoClienteService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarMotoClienteRequest) (*model.MotoCliente, error) {
	m, err := s.Obtener(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Placa != nil && *req.Placa != m.Placa {
		if otra, err := s.motos.FindByPlaca(ctx, *req.Placa); err == nil && otra.ID != id {
			return nil, apierror.Conflict("Ya existe una moto con la placa %s", *req.Placa)
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.Internal(err)
		}
		m.Placa = *req.Placa
	}
	if req.Marca != nil {
		m.Marca = *req.Marca
	}
	if req.Modelo != nil {
		m.Modelo = *req.Modelo
	}
	if req.Anio != nil {
		m.Anio = *req.Anio
	}
	if req.ClienteID != nil {
		clienteID, err := uuid.Parse(*req.ClienteID)
		if err != nil {
			return nil, apierror.Internal(err)
		}
		if _, err := s.clientes.FindByID(ctx, clienteID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apierror.NotFound("Cliente con id %s no encontrado", clienteID)
			}
			return nil, apierror.Internal(err)
		}
		m.ClienteID = clienteID
	}

	if err := s.motos.Update(ctx, m); err != nil {
		return nil, apierror.Internal(err)
	}
	return m, nil
}

func (s *motoClienteService) Eliminar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.Obtener(ctx, id); err != nil {
		return err
	}
	if err := s.motos.Delete(ctx, id); err != nil {
		return apierror.Internal(err)
	}
	return nil
}
