package order_test

import (
	"testing"

	"atelier/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFromString(t *testing.T) {
	for _, name := range []string{"PENDING", "IN_PRODUCTION", "SHIPPED", "DELIVERED", "CANCELLED"} {
		status, err := order.StatusFromString(name)
		require.NoError(t, err, name)
		assert.Equal(t, name, status.String())
	}

	_, err := order.StatusFromString("ARCHIVED")
	require.Error(t, err)
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, order.Delivered.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())
	assert.False(t, order.Pending.IsTerminal())
	assert.False(t, order.InProduction.IsTerminal())
	assert.False(t, order.Shipped.IsTerminal())
}

func TestStatus_Validate(t *testing.T) {
	require.Error(t, order.StatusUnknown.Validate())
	require.Error(t, order.Status(99).Validate())
	require.NoError(t, order.Shipped.Validate())
}

func TestPaymentMethodFromString(t *testing.T) {
	method, err := order.PaymentMethodFromString("PIX")
	require.NoError(t, err)
	assert.Equal(t, order.Pix, method)

	method, err = order.PaymentMethodFromString("")
	require.NoError(t, err)
	assert.Equal(t, order.PaymentMethodUnknown, method)

	_, err = order.PaymentMethodFromString("BARTER")
	require.Error(t, err)
}

func TestPaymentStateFromString(t *testing.T) {
	state, err := order.PaymentStateFromString("")
	require.NoError(t, err)
	assert.Equal(t, order.PaymentPending, state)

	state, err = order.PaymentStateFromString("REFUNDED")
	require.NoError(t, err)
	assert.Equal(t, order.PaymentRefunded, state)
}
