package handler

import (
	"net/http"

	"github.com/MotoWorkShop/MWSBackend/internal/dto"
	"github.com/MotoWorkShop/MWSBackend/internal/service"

	"github.com/gin-gonic/gin"
)

type ClienteHandler struct {
	clientes service.ClienteService
}

func NewClienteHandler(clientes service.ClienteService) *ClienteHandler {
	return &ClienteHandler{clientes: clientes}
}

func (h *ClienteHandler) Crear(c *gin.Context) {
	var req dto.CrearClienteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	cliente, err := h.clientes.Crear(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, aClienteResponse(cliente))
}

func (h *ClienteHandler) Listar(c *gin.Context) {
	filter, ok := bindFilter(c)
	if !ok {
		return
	}
	clientes, total, err := h.clientes.Listar(c.Request.Context(), filter)
	if err != nil {
		fail(c, err)
		return
	}
	data := make([]dto.ClienteResponse, 0, len(clientes))
	for i := range clientes {
		data = append(data, aClienteResponse(&clientes[i]))
	}
	c.JSON(http.StatusOK, dto.NewListResponse(data, total, filter))
}

func (h *ClienteHandler) Obtener(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	cliente, err := h.clientes.Obtener(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, aClienteResponse(cliente))
}

func (h *ClienteHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.ActualizarClienteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	cliente, err := h.clientes.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, aClienteResponse(cliente))
}

func (h *ClienteHandler) Eliminar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.clientes.Eliminar(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
