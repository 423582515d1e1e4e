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

type ClienteService interface {
	Crear(ctx context.Context, req dto.CrearClienteRequest) (*model.Cliente, error)
	Obtener(ctx context.Context, id uuid.UUID) (*model.Cliente, error)
	Listar(ctx context.Context, filter dto.ListFilter) ([]model.Cliente, int64, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarClienteRequest) (*model.Cliente, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type clienteService struct {
	clientes repository.ClienteRepository
}

func NewClienteService(clientes repository.ClienteRepository) ClienteService {
	return &clienteService{clientes: clientes}
}

func (s *clienteService) Crear(ctx context.Context, req dto.CrearClienteRequest) (*model.Cliente, error) {
	if existente, err := s.clientes.FindByCedula(ctx, req.Cedula); err == nil {
		return nil, apierror.Conflict("Ya existe un cliente con la cédula %s", existente.Cedula)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierror.Internal(err)
	}

	c := &model.Cliente{
		NombreCliente: req.NombreCliente,
		Cedula:        req.Cedula,
		Correo:        req.Correo,
		Telefono:      req.Telefono,
		Direccion:     req.Direccion,
	}
	if err := s.clientes.Create(ctx, c); err != nil {
		return nil, apierror.Internal(err)
	}
	return c, nil
}

func (s *clienteService) Obtener(ctx context.Context, id uuid.UUID) (*model.Cliente, error) {
	c, err := s.clientes.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierror.NotFound("Cliente con id %s no encontrado", id)
	}
	if err != nil {
		return nil, apierror.Internal(err)
	}
	return c, nil
}

func (s *clienteService) Listar(ctx context.Context, filter dto.ListFilter) ([]model.Cliente, int64, error) {
	clientes, total, err := s.clientes.List(ctx, filter)
	if err != nil {
		return nil, 0, apierror.Internal(err)
	}
	return clientes, total, nil
}

func (s *clienteService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarClienteRequest) (*model.Cliente, error) {
	c, err := s.Obtener(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Cedula != nil && *req.Cedula != c.Cedula {
		if otro, err := s.clientes.FindByCedula(ctx, *req.Cedula); err == nil && otro.ID != id {
			return nil, apierror.Conflict("Ya existe un cliente con la cédula %s", *req.Cedula)
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.Internal(err)
		}
		c.Cedula = *req.Cedula
	}
	if req.NombreCliente != nil {
		c.NombreCliente = *req.NombreCliente
	}
	if req.Correo != nil {
		c.Correo = *req.Correo
	}
	if req.Telefono != nil {
		c.Telefono = *req.Telefono
	}
	if req.Direccion != nil {
		c.Direccion = req.Direccion
	}

	if err := s.clientes.Update(ctx, c); err != nil {
		return nil, apierror.Internal(err)
	}
	return c, nil
}

func (s *clienteService) Eliminar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.Obtener(ctx, id); err != nil {
		return err
	}
	if err := s.clientes.Delete(ctx, id); err != nil {
		return apierror.Internal(err)
	}
	return nil
}
