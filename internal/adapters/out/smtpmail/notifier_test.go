package smtpmail

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/smtp"
	"testing"
	"time"

	"atelier/internal/core/domain/model/customer"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sentMail struct {
	addr string
	from string
	to   []string
	msg  []byte
}

func captureNotifier(t *testing.T, failWith error) (*Notifier, *[]sentMail) {
	t.Helper()

	var sent []sentMail
	n := NewNotifier("smtp.example.com", 587, "", "", "no-reply@atelier.local", "Atelier",
		slog.New(slog.NewTextHandler(io.Discard, nil)))
	n.send = func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
		if failWith != nil {
			return failWith
		}
		sent = append(sent, sentMail{addr: addr, from: from, to: to, msg: msg})
		return nil
	}
	return n, &sent
}

func testOrder(t *testing.T, status order.Status) *order.Order {
	t.Helper()

	price, err := kernel.MoneyFromString("35.00")
	require.NoError(t, err)

	item, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), "Camiseta Bordada", 1, price, "M", "Azul", "")
	require.NoError(t, err)

	var deliveredDate *time.Time
	if status == order.Delivered {
		now := time.Now()
		deliveredDate = &now
	}

	ord, err := order.RestoreOrder(kernel.NewUUID(), "PED-20260828-0001", kernel.NewUUID(),
		[]*order.Item{item}, status, price, kernel.ZeroMoney(), time.Now(), nil,
		deliveredDate, order.Pix, order.PaymentPending, "")
	require.NoError(t, err)
	return ord
}

func testCustomer(t *testing.T, email string) *customer.Customer {
	t.Helper()

	now := time.Now()
	cust, err := customer.RestoreCustomer(kernel.NewUUID(), "Ana Souza", email, "", "", now, now)
	require.NoError(t, err)
	return cust
}

func TestNotifyOrderStatusChange_SendsEmailForNotifiableStatuses(t *testing.T) {
	for _, status := range []order.Status{order.InProduction, order.Shipped, order.Delivered} {
		t.Run(status.String(), func(t *testing.T) {
			n, sent := captureNotifier(t, nil)

			err := n.NotifyOrderStatusChange(context.Background(), testOrder(t, status), testCustomer(t, "ana@example.com"))
			require.NoError(t, err)

			require.Len(t, *sent, 1)
			mail := (*sent)[0]
			assert.Equal(t, "smtp.example.com:587", mail.addr)
			assert.Equal(t, "no-reply@atelier.local", mail.from)
			assert.Equal(t, []string{"ana@example.com"}, mail.to)
			assert.Contains(t, string(mail.msg), "PED-20260828-0001")
			assert.Contains(t, string(mail.msg), "Content-Type: text/html")
		})
	}
}

func TestNotifyOrderStatusChange_SilentStatuses(t *testing.T) {
	for _, status := range []order.Status{order.Pending, order.Cancelled} {
		t.Run(status.String(), func(t *testing.T) {
			n, sent := captureNotifier(t, nil)

			err := n.NotifyOrderStatusChange(context.Background(), testOrder(t, status), testCustomer(t, "ana@example.com"))
			require.NoError(t, err)
			assert.Empty(t, *sent)
		})
	}
}

func TestNotifyOrderStatusChange_MissingEmail_SkipsWithoutError(t *testing.T) {
	n, sent := captureNotifier(t, nil)

	err := n.NotifyOrderStatusChange(context.Background(), testOrder(t, order.Shipped), testCustomer(t, ""))
	require.NoError(t, err)
	assert.Empty(t, *sent)
}

func TestNotifyOrderStatusChange_SendFailure_ReturnsError(t *testing.T) {
	n, _ := captureNotifier(t, errors.New("connection refused"))

	err := n.NotifyOrderStatusChange(context.Background(), testOrder(t, order.Shipped), testCustomer(t, "ana@example.com"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "send status email")
}
