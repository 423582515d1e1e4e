package handler

import (
	"net/http"

	"github.com/MotoWorkShop/MWSBackend/internal/dto"
	"github.com/MotoWorkShop/MWSBackend/internal/service"

	"github.com/gin-gonic/gin"
)

type RepuestoHandler struct {
	repuestos service.RepuestoService
}

func NewRepuestoHandler(repuestos service.RepuestoService) *RepuestoHandler {
	return &RepuestoHandler{repuestos: repuestos}
}

func (h *RepuestoHandler) Crear(c *gin.Context) {
	var req dto.CrearRepuestoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	r, err := h.repuestos.Crear(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, aRepuestoResponse(r))
}

func (h *RepuestoHandler) Listar(c *gin.Context) {
	filter, ok := bindFilter(c)
	if !ok {
		return
	}
	repuestos, total, err := h.repuestos.Listar(c.Request.Context(), filter)
	if err != nil {
		fail(c, err)
		return
	}
	data := make([]dto.RepuestoResponse, 0, len(repuestos))
	for i := range repuestos {
		data = append(data, aRepuestoResponse(&repuestos[i]))
	}
	c.JSON(http.StatusOK, dto.NewListResponse(data, total, filter))
}

func (h *RepuestoHandler) Obtener(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	r, err := h.repuestos.Obtener(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, aRepuestoResponse(r))
}

// ConsultarBarcode resolves a part by scanner code, served through redis.
func (h *RepuestoHandler) ConsultarBarcode(c *gin.Context) {
	resp, err := h.repuestos.ConsultarPorBarcode(c.Request.Context(), c.Param("codigo"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *RepuestoHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.ActualizarRepuestoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	r, err := h.repuestos.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, aRepuestoResponse(r))
}

func (h *RepuestoHandler) Eliminar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.repuestos.Eliminar(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
