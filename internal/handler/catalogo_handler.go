package handler

import (
	"net/http"

	"github.com/MotoWorkShop/MWSBackend/internal/dto"
	"github.com/MotoWorkShop/MWSBackend/internal/service"

	"github.com/gin-gonic/gin"
)

// ── Marcas de repuesto ───────────────────────────────────────────────────────

type MarcaHandler struct {
	marcas service.MarcaService
}

func NewMarcaHandler(marcas service.MarcaService) *MarcaHandler {
	return &MarcaHandler{marcas: marcas}
}

func (h *MarcaHandler) Crear(c *gin.Context) {
	var req dto.CrearMarcaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	m, err := h.marcas.Crear(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, aMarcaResponse(m))
}

func (h *MarcaHandler) Listar(c *gin.Context) {
	filter, ok := bindFilter(c)
	if !ok {
		return
	}
	marcas, total, err := h.marcas.Listar(c.Request.Context(), filter)
	if err != nil {
		fail(c, err)
		return
	}
	data := make([]dto.MarcaResponse, 0, len(marcas))
	for i := range marcas {
		data = append(data, aMarcaResponse(&marcas[i]))
	}
	c.JSON(http.StatusOK, dto.NewListResponse(data, total, filter))
}

func (h *MarcaHandler) Obtener(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	m, err := h.marcas.Obtener(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, aMarcaResponse(m))
}

func (h *MarcaHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.CrearMarcaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	m, err := h.marcas.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, aMarcaResponse(m))
}

func (h *MarcaHandler) Eliminar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.marcas.Eliminar(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ── Servicios (mano de obra) ─────────────────────────────────────────────────

type ServicioHandler struct {
	servicios service.ServicioService
}

func NewServicioHandler(servicios service.ServicioService) *ServicioHandler {
	return &ServicioHandler{servicios: servicios}
}

func (h *ServicioHandler) Crear(c *gin.Context) {
	var req dto.CrearServicioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	s, err := h.servicios.Crear(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, aServicioResponse(s))
}

func (h *ServicioHandler) Listar(c *gin.Context) {
	filter, ok := bindFilter(c)
	if !ok {
		return
	}
	servicios, total, err := h.servicios.Listar(c.Request.Context(), filter)
	if err != nil {
		fail(c, err)
		return
	}
	data := make([]dto.ServicioResponse, 0, len(servicios))
	for i := range servicios {
		data = append(data, aServicioResponse(&servicios[i]))
	}
	c.JSON(http.StatusOK, dto.NewListResponse(data, total, filter))
}

func (h *ServicioHandler) Obtener(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	s, err := h.servicios.Obtener(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, aServicioResponse(s))
}

func (h *ServicioHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.ActualizarServicioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	s, err := h.servicios.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, aServicioResponse(s))
}

func (h *ServicioHandler) Eliminar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.servicios.Eliminar(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
