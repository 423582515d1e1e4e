package handler

import (
	"net/http"

	"github.com/MotoWorkShop/MWSBackend/internal/dto"
	"github.com/MotoWorkShop/MWSBackend/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	auth service.AuthService
}

func NewAuthHandler(auth service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.auth.Login(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.auth.Refresh(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) CrearUsuario(c *gin.Context) {
	var req dto.CrearUsuarioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	u, err := h.auth.CrearUsuario(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, aUsuarioResponse(u))
}

func (h *AuthHandler) ListarUsuarios(c *gin.Context) {
	filter, ok := bindFilter(c)
	if !ok {
		return
	}
	usuarios, total, err := h.auth.ListarUsuarios(c.Request.Context(), filter)
	if err != nil {
		fail(c, err)
		return
	}
	data := make([]dto.UsuarioResponse, 0, len(usuarios))
	for i := range usuarios {
		data = append(data, aUsuarioResponse(&usuarios[i]))
	}
	c.JSON(http.StatusOK, dto.NewListResponse(data, total, filter))
}

func (h *AuthHandler) ObtenerUsuario(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	u, err := h.auth.ObtenerUsuario(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, aUsuarioResponse(u))
}

func (h *AuthHandler) ActualizarUsuario(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.ActualizarUsuarioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	u, err := h.auth.ActualizarUsuario(c.Request.Context(), id, req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, aUsuarioResponse(u))
}

func (h *AuthHandler) EliminarUsuario(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.auth.EliminarUsuario(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
