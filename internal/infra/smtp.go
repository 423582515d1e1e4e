package infra

import (
	"bytes"
	"fmt"
	"net/smtp"

	"github.com/MotoWorkShop/MWSBackend/internal/config"

	"github.com/jordan-wright/email"
)

// Mailer sends transactional mail over plain SMTP.
type Mailer struct {
	addr string
	auth smtp.Auth
	from string
}

func NewMailer(cfg config.Config) *Mailer {
	return &Mailer{
		addr: fmt.Sprintf("%s:%d", cfg.SMTPHost, cfg.SMTPPort),
		auth: smtp.PlainAuth("", cfg.SMTPUser, cfg.SMTPPassword, cfg.SMTPHost),
		from: cfg.SMTPFrom,
	}
}

// EnviarFactura mails the invoice PDF to the customer.
func (m *Mailer) EnviarFactura(destinatario, nombreCliente string, facturaID string, pdf []byte) error {
	e := email.NewEmail()
	e.From = m.from
	e.To = []string{destinatario}
	e.Subject = fmt.Sprintf("Factura %s", facturaID)
	e.Text = []byte(fmt.Sprintf(
		"Hola %s,\n\nAdjuntamos la factura de tu visita al taller.\n\nGracias por tu compra.",
		nombreCliente,
	))
	if _, err := e.Attach(bytes.NewReader(pdf), fmt.Sprintf("factura-%s.pdf", facturaID), "application/pdf"); err != nil {
		return err
	}
	return e.Send(m.addr, m.auth)
}
