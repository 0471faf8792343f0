package mercadopago_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"atelier/internal/adapters/out/mercadopago"
	"atelier/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewClient_InvalidURL(t *testing.T) {
	_, err := mercadopago.NewClient("not-a-url", "token", testLogger())
	require.Error(t, err)
}

func TestCreateCharge_Success(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{
			"id": 123456789,
			"status": "pending",
			"point_of_interaction": {
				"transaction_data": {
					"qr_code": "00020126580014br.gov.bcb.pix",
					"qr_code_base64": "aVZCT1J3MEtH"
				}
			}
		}`))
	}))
	defer server.Close()

	client, err := mercadopago.NewClient(server.URL, "test-token", testLogger())
	require.NoError(t, err)

	amount, err := kernel.MoneyFromString("70.00")
	require.NoError(t, err)

	charge, err := client.CreateCharge(context.Background(), amount, "Pedido PED-20260828-0001", "ana@example.com")
	require.NoError(t, err)

	assert.Equal(t, "/v1/payments", gotPath)
	assert.Equal(t, "Bearer test-token", gotAuth)
	assert.Equal(t, "pix", gotBody["payment_method_id"])
	assert.Equal(t, 70.0, gotBody["transaction_amount"])
	assert.Equal(t, map[string]any{"email": "ana@example.com"}, gotBody["payer"])

	assert.Equal(t, "123456789", charge.ExternalID)
	assert.Equal(t, "pending", charge.Status)
	assert.Equal(t, "00020126580014br.gov.bcb.pix", charge.QRCode)
	assert.Equal(t, "aVZCT1J3MEtH", charge.QRCodeBase64)
}

func TestCreateCharge_ProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"invalid access token"}`))
	}))
	defer server.Close()

	client, err := mercadopago.NewClient(server.URL, "bad-token", testLogger())
	require.NoError(t, err)

	amount, err := kernel.MoneyFromString("10.00")
	require.NoError(t, err)

	_, err = client.CreateCharge(context.Background(), amount, "Pedido X", "a@b.c")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mercadopago error")
}

func TestGetChargeStatus_Success(t *testing.T) {
	var gotPath string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": 123456789, "status": "approved"}`))
	}))
	defer server.Close()

	client, err := mercadopago.NewClient(server.URL, "test-token", testLogger())
	require.NoError(t, err)

	status, err := client.GetChargeStatus(context.Background(), "123456789")
	require.NoError(t, err)

	assert.Equal(t, "/v1/payments/123456789", gotPath)
	assert.Equal(t, "approved", status)
}

func TestGetChargeStatus_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client, err := mercadopago.NewClient(server.URL, "test-token", testLogger())
	require.NoError(t, err)

	_, err = client.GetChargeStatus(context.Background(), "unknown")
	require.Error(t, err)
}
