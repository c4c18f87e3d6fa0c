package service

import (
	"context"
	"fmt"
	"html"
	"time"

	"github.com/onexocoder/Escova/internal/entity"
	"github.com/onexocoder/Escova/pkg/logger"
	"github.com/onexocoder/Escova/pkg/mail"
	"github.com/onexocoder/Escova/pkg/metric"
)

const (
	_recipientAdmin    = "admin"
	_recipientCustomer = "customer"
)

// NotificationService is the best-effort email side-channel. It always
// attempts the admin notification and acknowledges the customer only when a
// contact address was supplied. Failures are logged and counted, never
// propagated to the order-creation path; each message gets exactly one
// delivery attempt.
type NotificationService struct {
	mailer  mail.Mailer
	metrics metric.Mail
	logger  logger.Logger

	from       string
	adminEmail string
}

func NewNotificationService(
	mailer mail.Mailer,
	metrics metric.Mail,
	logger logger.Logger,
	from string,
	adminEmail string,
) *NotificationService {
	return &NotificationService{
		mailer:     mailer,
		metrics:    metrics,
		logger:     logger,
		from:       from,
		adminEmail: adminEmail,
	}
}

// Dispatch reports true when the admin notification went out, regardless of
// the customer acknowledgment's fate. The customer address is taken as-is;
// the mail provider is the judge of whether it is deliverable.
func (s *NotificationService) Dispatch(ctx context.Context, n *entity.Notification) bool {
	const op = "service.notification.Dispatch"
	log := s.logger.Ctx(ctx)

	if err := s.send(ctx, _recipientAdmin, s.adminMessage(n)); err != nil {
		log.Errorw("admin notification failed",
			"op", op,
			"error", err,
		)
		return false
	}

	log.Infow("admin notification sent",
		"op", op,
		"customer_email_present", n.EmailCliente != "",
	)

	if n.EmailCliente == "" {
		return true
	}

	if err := s.send(ctx, _recipientCustomer, s.customerMessage(n)); err != nil {
		log.Errorw("customer acknowledgment failed",
			"op", op,
			"error", err,
		)
		return true
	}

	log.Infow("customer acknowledgment sent", "op", op)
	return true
}

func (s *NotificationService) send(
	ctx context.Context,
	recipient string,
	msg *mail.Message,
) error {
	start := time.Now()
	err := s.mailer.Send(ctx, msg)
	s.metrics.ObserveDuration(recipient, time.Since(start))

	if err != nil {
		s.metrics.Failed(recipient)
		return err
	}

	s.metrics.Sent(recipient)
	return nil
}

func (s *NotificationService) adminMessage(n *entity.Notification) *mail.Message {
	emailCliente := n.EmailCliente
	if emailCliente == "" {
		emailCliente = "não informou"
	}

	body := fmt.Sprintf(`<h2>Nova encomenda</h2>
<p><b>Nome:</b> %s</p>
<p><b>Telefone:</b> %s</p>
<p><b>Email cliente:</b> %s</p>
<p><b>Morada:</b> %s</p>
<p><b>Código Postal:</b> %s</p>
<p><b>Quantidade:</b> %d</p>`,
		html.EscapeString(n.Nome),
		html.EscapeString(n.Telefone),
		html.EscapeString(emailCliente),
		html.EscapeString(n.Morada),
		html.EscapeString(n.CodigoPostal),
		n.Quantidade,
	)

	return &mail.Message{
		From:    s.from,
		To:      s.adminEmail,
		Subject: fmt.Sprintf("📦 Nova encomenda - %s", n.Nome),
		HTML:    body,
	}
}

func (s *NotificationService) customerMessage(n *entity.Notification) *mail.Message {
	body := fmt.Sprintf(`<p>Olá %s,</p>
<p>Recebemos a tua encomenda da <b>Escova 3 em 1 PetBrush™</b>.</p>
<p>Em breve vamos contactar-te pelo número <b>%s</b> para combinar a entrega.</p>
<p><b>Entrega:</b> Pague na Entrega</p>
<p><b>Morada:</b> %s, %s</p>
<p>Obrigado 💙</p>`,
		html.EscapeString(n.Nome),
		html.EscapeString(n.Telefone),
		html.EscapeString(n.Morada),
		html.EscapeString(n.CodigoPostal),
	)

	return &mail.Message{
		From:    s.from,
		To:      n.EmailCliente,
		Subject: "Recebemos a tua encomenda 🐾",
		HTML:    body,
	}
}
