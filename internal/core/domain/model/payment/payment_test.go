package payment_test

import (
	"testing"
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/payment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPayment(t *testing.T) *payment.Payment {
	t.Helper()
	amount, err := kernel.MoneyFromString("120.00")
	require.NoError(t, err)

	p, err := payment.NewPayment(kernel.NewUUID(), kernel.NewUUID(), amount,
		"mp-123456789", "00020126...", "iVBORw0KGgo=", time.Now())
	require.NoError(t, err)
	return p
}

func TestNewPayment(t *testing.T) {
	t.Run("starts pending with mercado pago", func(t *testing.T) {
		p := newTestPayment(t)
		assert.Equal(t, payment.Pending, p.Status())
		assert.Equal(t, payment.ProviderMercadoPago, p.Provider())
		assert.Equal(t, "mp-123456789", p.ExternalID())
	})

	t.Run("missing external id rejected", func(t *testing.T) {
		_, err := payment.NewPayment(kernel.NewUUID(), kernel.NewUUID(),
			kernel.ZeroMoney(), "", "", "", time.Now())
		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var p payment.Payment
		require.ErrorIs(t, p.Validate(), payment.ErrPaymentIsNotConstructed)
	})
}

func TestStatusFromProvider(t *testing.T) {
	assert.Equal(t, payment.Paid, payment.StatusFromProvider("approved"))
	assert.Equal(t, payment.Canceled, payment.StatusFromProvider("cancelled"))
	assert.Equal(t, payment.Canceled, payment.StatusFromProvider("rejected"))
	assert.Equal(t, payment.Pending, payment.StatusFromProvider("in_process"))
	assert.Equal(t, payment.Pending, payment.StatusFromProvider(""))
}

func TestPayment_ApplyProviderStatus(t *testing.T) {
	t.Run("approved marks paid", func(t *testing.T) {
		p := newTestPayment(t)

		changed := p.ApplyProviderStatus("approved", time.Now())
		assert.True(t, changed)
		assert.Equal(t, payment.Paid, p.Status())
	})

	t.Run("repeated notification is a no-op", func(t *testing.T) {
		p := newTestPayment(t)
		p.ApplyProviderStatus("approved", time.Now())

		changed := p.ApplyProviderStatus("approved", time.Now())
		assert.False(t, changed)
		assert.Equal(t, payment.Paid, p.Status())
	})

	t.Run("terminal status never changes again", func(t *testing.T) {
		p := newTestPayment(t)
		p.ApplyProviderStatus("rejected", time.Now())

		changed := p.ApplyProviderStatus("approved", time.Now())
		assert.False(t, changed)
		assert.Equal(t, payment.Canceled, p.Status())
	})

	t.Run("pending provider state keeps pending but stamps updatedAt", func(t *testing.T) {
		p := newTestPayment(t)
		later := time.Now().Add(time.Hour)

		changed := p.ApplyProviderStatus("in_process", later)
		assert.False(t, changed)
		assert.Equal(t, payment.Pending, p.Status())
		assert.Equal(t, later, p.UpdatedAt())
	})
}

func TestStatusFromString(t *testing.T) {
	for _, name := range []string{"PENDING", "PAID", "CANCELED"} {
		status, err := payment.StatusFromString(name)
		require.NoError(t, err, name)
		assert.Equal(t, name, status.String())
	}

	_, err := payment.StatusFromString("approved")
	require.Error(t, err)
}
