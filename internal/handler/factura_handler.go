package handler

import (
	"fmt"
	"net/http"

	"github.com/MotoWorkShop/MWSBackend/internal/dto"
	"github.com/MotoWorkShop/MWSBackend/internal/service"

	"github.com/gin-gonic/gin"
)

// FacturaHandler is read-only: invoices only change through their order/sale.
type FacturaHandler struct {
	facturas service.FacturaService
}

func NewFacturaHandler(facturas service.FacturaService) *FacturaHandler {
	return &FacturaHandler{facturas: facturas}
}

func (h *FacturaHandler) Listar(c *gin.Context) {
	filter, ok := bindFilter(c)
	if !ok {
		return
	}
	facturas, total, err := h.facturas.Listar(c.Request.Context(), filter)
	if err != nil {
		fail(c, err)
		return
	}
	data := make([]dto.FacturaResponse, 0, len(facturas))
	for i := range facturas {
		data = append(data, aFacturaResponse(&facturas[i]))
	}
	c.JSON(http.StatusOK, dto.NewListResponse(data, total, filter))
}

func (h *FacturaHandler) Obtener(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	f, err := h.facturas.Obtener(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, aFacturaResponse(f))
}

func (h *FacturaHandler) DescargarPDF(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	pdf, err := h.facturas.GenerarPDF(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="factura-%s.pdf"`, id))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
