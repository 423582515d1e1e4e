package handler

import (
	"net/http"

	"github.com/MotoWorkShop/MWSBackend/internal/dto"
	"github.com/MotoWorkShop/MWSBackend/internal/service"

	"github.com/gin-gonic/gin"
)

// ── Motos de clientes ────────────────────────────────────────────────────────

type MotoClienteHandler struct {
	motos service.MotoClienteService
}

func NewMotoClienteHandler(motos service.MotoClienteService) *MotoClienteHandler {
	return &MotoClienteHandler{motos: motos}
}

func (h *MotoClienteHandler) Crear(c *gin.Context) {
	var req dto.CrearMotoClienteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	m, err := h.motos.Crear(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, aMotoClienteResponse(m))
}

func (h *MotoClienteHandler) Listar(c *gin.Context) {
	filter, ok := bindFilter(c)
	if !ok {
		return
	}
	motos, total, err := h.motos.Listar(c.Request.Context(), filter)
	if err != nil {
		fail(c, err)
		return
	}
	data := make([]dto.MotoClienteResponse, 0, len(motos))
	for i := range motos {
		data = append(data, aMotoClienteResponse(&motos[i]))
	}
	c.JSON(http.StatusOK, dto.NewListResponse(data, total, filter))
}

func (h *MotoClienteHandler) Obtener(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	m, err := h.motos.Obtener(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, aMotoClienteResponse(m))
}

func (h *MotoClienteHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.ActualizarMotoClienteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	m, err := h.motos.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, aMotoClienteResponse(m))
}

func (h *MotoClienteHandler) Eliminar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.motos.Eliminar(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ── Motos de mercado ─────────────────────────────────────────────────────────

type MotoMercadoHandler struct {
	motos service.MotoMercadoService
}

func NewMotoMercadoHandler(motos service.MotoMercadoService) *MotoMercadoHandler {
	return &MotoMercadoHandler{motos: motos}
}

func (h *MotoMercadoHandler) Crear(c *gin.Context) {
	var req dto.CrearMotoMercadoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	m, err := h.motos.Crear(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, aMotoMercadoResponse(m))
}

func (h *MotoMercadoHandler) Listar(c *gin.Context) {
	filter, ok := bindFilter(c)
	if !ok {
		return
	}
	motos, total, err := h.motos.Listar(c.Request.Context(), filter)
	if err != nil {
		fail(c, err)
		return
	}
	data := make([]dto.MotoMercadoResponse, 0, len(motos))
	for i := range motos {
		data = append(data, aMotoMercadoResponse(&motos[i]))
	}
	c.JSON(http.StatusOK, dto.NewListResponse(data, total, filter))
}

func (h *MotoMercadoHandler) Obtener(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	m, err := h.motos.Obtener(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, aMotoMercadoResponse(m))
}

func (h *MotoMercadoHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.CrearMotoMercadoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	m, err := h.motos.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, aMotoMercadoResponse(m))
}

func (h *MotoMercadoHandler) Eliminar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.motos.Eliminar(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
