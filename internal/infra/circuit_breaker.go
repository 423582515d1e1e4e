package infra

import (
	"errors"
	"sync"
	"time"
)

// ErrCircuitAbierto is returned while the breaker refuses calls.
var ErrCircuitAbierto = errors.New("circuito abierto: el servicio externo está fallando")

// CircuitBreaker protects a flaky external dependency (the SMTP relay). After
// umbral consecutive failures it opens and rejects calls until enfriamiento
// has passed, then lets one probe through.
type CircuitBreaker struct {
	mu           sync.Mutex
	fallos       int
	umbral       int
	enfriamiento time.Duration
	abiertoHasta time.Time
}

func NewCircuitBreaker(umbral int, enfriamiento time.Duration) *CircuitBreaker {
	return &CircuitBreaker{umbral: umbral, enfriamiento: enfriamiento}
}

// Abierta reports whether the breaker is currently rejecting calls.
func (cb *CircuitBreaker) Abierta() bool {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return time.Now().Before(cb.abiertoHasta)
}

// Ejecutar runs fn under the breaker's policy.
func (cb *CircuitBreaker) Ejecutar(fn func() error) error {
	cb.mu.Lock()
	if time.Now().Before(cb.abiertoHasta) {
		cb.mu.Unlock()
		return ErrCircuitAbierto
	}
	cb.mu.Unlock()

	err := fn()

	cb.mu.Lock()
	defer cb.mu.Unlock()
	if err != nil {
		cb.fallos++
		if cb.fallos >= cb.umbral {
			cb.abiertoHasta = time.Now().Add(cb.enfriamiento)
			cb.fallos = 0
		}
		return err
	}
	cb.fallos = 0
	return nil
}
