package worker

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	colaFacturas = "mws:jobs:facturas"
	colaDLQ      = "mws:jobs:facturas:dlq"
	maxIntentos  = 3
)

// Job is one unit of work: mail the PDF of a freshly emitted invoice.
type Job struct {
	FacturaID string `json:"factura_id"`
	Intentos  int    `json:"intentos"`
}

// Encolador pushes jobs onto the redis list consumed by the pool. It
// implements service.Notificador.
type Encolador struct {
	rdb *redis.Client
}

func NewEncolador(rdb *redis.Client) *Encolador {
	return &Encolador{rdb: rdb}
}

func (e *Encolador) EncolarEmailFactura(ctx context.Context, facturaID uuid.UUID) error {
	raw, err := json.Marshal(Job{FacturaID: facturaID.String()})
	if err != nil {
		return err
	}
	return e.rdb.LPush(ctx, colaFacturas, raw).Err()
}

// Procesador handles one job; a non-nil error triggers a retry.
type Procesador interface {
	Procesar(ctx context.Context, job Job) error
}

// Pool consumes the invoice queue with n blocking workers. Failed jobs are
// re-enqueued up to maxIntentos and then parked on the dead letter queue for
// manual inspection.
type Pool struct {
	rdb        *redis.Client
	procesador Procesador
	n          int
	wg         sync.WaitGroup
}

func NewPool(rdb *redis.Client, procesador Procesador, n int) *Pool {
	if n < 1 {
		n = 1
	}
	return &Pool{rdb: rdb, procesador: procesador, n: n}
}

// Start launches the workers. They stop when ctx is cancelled.
func (p *Pool) Start(ctx context.Context) {
	for i := 0; i < p.n; i++ {
		p.wg.Add(1)
		go p.worker(ctx, i)
	}
}

// Wait blocks until every worker has drained out.
func (p *Pool) Wait() { p.wg.Wait() }

func (p *Pool) worker(ctx context.Context, id int) {
	defer p.wg.Done()
	logger := log.With().Int("worker", id).Logger()
	logger.Info().Msg("worker de facturas iniciado")

	for {
		if ctx.Err() != nil {
			logger.Info().Msg("worker de facturas detenido")
			return
		}

		res, err := p.rdb.BRPop(ctx, 5*time.Second, colaFacturas).Result()
		if errors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			if ctx.Err() != nil {
				logger.Info().Msg("worker de facturas detenido")
				return
			}
			logger.Warn().Err(err).Msg("fallo leyendo la cola de facturas")
			time.Sleep(time.Second)
			continue
		}

		// BRPop returns [key, value].
		var job Job
		if err := json.Unmarshal([]byte(res[1]), &job); err != nil {
			logger.Error().Err(err).Str("raw", res[1]).Msg("job ilegible, descartado a la DLQ")
			p.rdb.LPush(ctx, colaDLQ, res[1])
			continue
		}

		if err := p.procesador.Procesar(ctx, job); err != nil {
			p.reintentar(ctx, logger, job, err)
		}
	}
}

func (p *Pool) reintentar(ctx context.Context, logger zerolog.Logger, job Job, causa error) {
	job.Intentos++
	raw, _ := json.Marshal(job)
	if job.Intentos >= maxIntentos {
		logger.Error().Err(causa).Str("factura_id", job.FacturaID).
			Int("intentos", job.Intentos).Msg("job agotó reintentos, movido a la DLQ")
		p.rdb.LPush(ctx, colaDLQ, raw)
		return
	}
	logger.Warn().Err(causa).Str("factura_id", job.FacturaID).
		Int("intentos", job.Intentos).Msg("job fallido, reencolado")
	p.rdb.LPush(ctx, colaFacturas, raw)
}
