// Package smtpmail implements the notifier port over plain SMTP. Customers
// get an email when their order enters production, ships, or is delivered;
// other transitions stay silent.
package smtpmail

import (
	"context"
	"fmt"
	"log/slog"
	"mime"
	"net/smtp"
	"strings"

	"atelier/internal/core/domain/model/customer"
	"atelier/internal/core/domain/model/order"
)

// sendFunc matches smtp.SendMail and exists so tests can capture messages
// without a live server.
type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// Notifier sends order status emails through an SMTP relay.
type Notifier struct {
	addr     string
	auth     smtp.Auth
	from     string
	fromName string
	send     sendFunc
	logger   *slog.Logger
}

// NewNotifier creates a notifier for the given SMTP relay. Username may be
// empty for relays that accept unauthenticated mail.
func NewNotifier(host string, port int, username, password, from, fromName string, logger *slog.Logger) *Notifier {
	var auth smtp.Auth
	if username != "" {
		auth = smtp.PlainAuth("", username, password, host)
	}

	return &Notifier{
		addr:     fmt.Sprintf("%s:%d", host, port),
		auth:     auth,
		from:     from,
		fromName: fromName,
		send:     smtp.SendMail,
		logger:   logger.With("component", "smtpmail"),
	}
}

// NotifyOrderStatusChange emails the customer about the order's current
// status. Statuses without a message template and customers without an email
// address are skipped without error.
func (n *Notifier) NotifyOrderStatusChange(_ context.Context, ord *order.Order, cust *customer.Customer) error {
	subject, body, ok := composeMessage(ord, cust)
	if !ok {
		return nil
	}

	if cust.Email() == "" {
		n.logger.Warn("customer has no email address, skipping notification",
			"order", ord.Number(),
			"status", ord.Status().String())
		return nil
	}

	msg := n.buildMessage(cust.Email(), subject, body)
	if err := n.send(n.addr, n.auth, n.from, []string{cust.Email()}, msg); err != nil {
		return fmt.Errorf("send status email: %w", err)
	}

	n.logger.Info("status email sent",
		"order", ord.Number(),
		"status", ord.Status().String(),
		"to", cust.Email())
	return nil
}

func composeMessage(ord *order.Order, cust *customer.Customer) (subject string, body string, ok bool) {
	switch ord.Status() {
	case order.InProduction:
		subject = "Seu pedido entrou em produção"
		body = fmt.Sprintf(
			"<p>Olá, %s!</p>"+
				"<p>Seu pedido <strong>%s</strong> entrou em produção. Estamos preparando tudo com carinho!</p>"+
				"<p>Assim que ele sair para entrega, você receberá uma nova mensagem.</p>"+
				"<p>Atenciosamente,<br/>Equipe Atelier</p>",
			cust.Name(), ord.Number())
	case order.Shipped:
		subject = "Seu pedido saiu para entrega"
		body = fmt.Sprintf(
			"<p>Olá, %s!</p>"+
				"<p>Seu pedido <strong>%s</strong> já saiu para entrega!</p>"+
				"<p>Em breve ele deve chegar até você.</p>"+
				"<p>Atenciosamente,<br/>Equipe Atelier</p>",
			cust.Name(), ord.Number())
	case order.Delivered:
		subject = "Seu pedido foi entregue"
		body = fmt.Sprintf(
			"<p>Olá, %s!</p>"+
				"<p>Seu pedido <strong>%s</strong> foi entregue.</p>"+
				"<p>Esperamos que você goste muito da sua peça! Qualquer feedback é muito bem-vindo.</p>"+
				"<p>Atenciosamente,<br/>Equipe Atelier</p>",
			cust.Name(), ord.Number())
	default:
		return "", "", false
	}

	return subject, body, true
}

func (n *Notifier) buildMessage(to, subject, body string) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s <%s>\r\n", mime.QEncoding.Encode("utf-8", n.fromName), n.from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", subject))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)
	return []byte(b.String())
}
