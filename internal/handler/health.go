package handler

import (
	"net/http"

	"github.com/MotoWorkShop/MWSBackend/internal/infra"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db      *gorm.DB
	breaker *infra.CircuitBreaker
}

func NewHealthHandler(db *gorm.DB, breaker *infra.CircuitBreaker) *HealthHandler {
	return &HealthHandler{db: db, breaker: breaker}
}

func (h *HealthHandler) Check(c *gin.Context) {
	estado := "ok"
	codigo := http.StatusOK

	if h.db != nil {
		sqlDB, err := h.db.DB()
		if err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
			estado = "degraded"
			codigo = http.StatusServiceUnavailable
		}
	}

	smtp := "ok"
	if h.breaker != nil && h.breaker.Abierta() {
		smtp = "degraded"
	}
	c.JSON(codigo, gin.H{"status": estado, "smtp": smtp})
}
