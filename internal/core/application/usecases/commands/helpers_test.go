package commands_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"atelier/internal/core/domain/model/customer"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/domain/model/product"

	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func mustMoney(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func storedProduct(t *testing.T, name string, price string, stock int) *product.Product {
	t.Helper()
	p, err := product.RestoreProduct(kernel.NewUUID(), name, "", product.Clothing,
		mustMoney(t, price), stock, "SKU-1", true, true)
	require.NoError(t, err)
	return p
}

func storedCustomer(t *testing.T, name, email string) *customer.Customer {
	t.Helper()
	c, err := customer.NewCustomer(kernel.NewUUID(), name, email, "", time.Now())
	require.NoError(t, err)
	return c
}

func storedOrder(t *testing.T, status order.Status) *order.Order {
	t.Helper()
	prod := storedProduct(t, "Embroidered towel", "35.00", 10)
	item, err := order.NewItem(kernel.NewUUID(), prod.ID(), prod.Name(),
		2, prod.Price(), "M", "blue", "")
	require.NoError(t, err)

	o, err := order.RestoreOrder(kernel.NewUUID(), "PED-20260828-0001", kernel.NewUUID(),
		[]*order.Item{item}, status, mustMoney(t, "70.00"), kernel.ZeroMoney(),
		time.Now(), nil, nil, order.Pix, order.PaymentPending, "")
	require.NoError(t, err)
	return o
}
