package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/MotoWorkShop/MWSBackend/internal/apierror"

	"github.com/gin-gonic/gin"
)

type cubeta struct {
	tokens        float64
	ultReposicion time.Time
}

// RateLimiter is a per-IP token bucket. Mostly here to slow down brute force
// attempts on /auth/login.
func RateLimiter(porSegundo float64, rafaga float64) gin.HandlerFunc {
	var mu sync.Mutex
	cubetas := make(map[string]*cubeta)

	return func(c *gin.Context) {
		ip := c.ClientIP()
		ahora := time.Now()

		mu.Lock()
		b, ok := cubetas[ip]
		if !ok {
			b = &cubeta{tokens: rafaga, ultReposicion: ahora}
			cubetas[ip] = b
		}
		b.tokens += ahora.Sub(b.ultReposicion).Seconds() * porSegundo
		if b.tokens > rafaga {
			b.tokens = rafaga
		}
		b.ultReposicion = ahora

		permitido := b.tokens >= 1
		if permitido {
			b.tokens--
		}
		mu.Unlock()

		if !permitido {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New("Demasiadas peticiones, intente más tarde"))
			return
		}
		c.Next()
	}
}
