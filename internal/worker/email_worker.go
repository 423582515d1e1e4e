package worker

import (
	"context"
	"errors"
	"fmt"

	"github.com/MotoWorkShop/MWSBackend/internal/infra"
	"github.com/MotoWorkShop/MWSBackend/internal/service"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// EmailFacturaWorker renders the invoice PDF and mails it to the customer.
// The SMTP relay sits behind a circuit breaker so a dead relay fails fast
// instead of burning all the retries in the queue.
type EmailFacturaWorker struct {
	facturas service.FacturaService
	mailer   *infra.Mailer
	breaker  *infra.CircuitBreaker
}

func NewEmailFacturaWorker(facturas service.FacturaService, mailer *infra.Mailer, breaker *infra.CircuitBreaker) *EmailFacturaWorker {
	return &EmailFacturaWorker{facturas: facturas, mailer: mailer, breaker: breaker}
}

func (w *EmailFacturaWorker) Procesar(ctx context.Context, job Job) error {
	facturaID, err := uuid.Parse(job.FacturaID)
	if err != nil {
		return fmt.Errorf("factura_id inválido %q: %w", job.FacturaID, err)
	}

	f, err := w.facturas.Obtener(ctx, facturaID)
	if err != nil {
		return err
	}
	if f.Cliente == nil || f.Cliente.Correo == "" {
		// Nothing to send; not an error worth retrying.
		log.Info().Str("factura_id", job.FacturaID).Msg("factura sin correo de cliente, email omitido")
		return nil
	}

	pdf, err := w.facturas.GenerarPDF(ctx, facturaID)
	if err != nil {
		return err
	}

	err = w.breaker.Ejecutar(func() error {
		return w.mailer.EnviarFactura(f.Cliente.Correo, f.Cliente.NombreCliente, f.ID.String(), pdf)
	})
	if errors.Is(err, infra.ErrCircuitAbierto) {
		return fmt.Errorf("smtp no disponible: %w", err)
	}
	if err != nil {
		return fmt.Errorf("enviando factura %s: %w", f.ID, err)
	}

	log.Info().Str("factura_id", job.FacturaID).Str("correo", f.Cliente.Correo).
		Msg("factura enviada por email")
	return nil
}
