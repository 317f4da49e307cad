package mockgw_test

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payway-go/internal/mockgw"
	"payway-go/payway"
)

// Full round trip: the SDK signs requests the mock gateway accepts, and the
// gateway rejects requests signed with the wrong key.
func TestRoundTrip(t *testing.T) {
	server := mockgw.New("merchant-1", "secret-key", zerolog.Nop())
	srv := httptest.NewServer(server.Router())
	defer srv.Close()

	client, err := payway.NewClient(payway.Config{
		BaseURL:    srv.URL,
		MerchantID: "merchant-1",
		APIKey:     "secret-key",
	})
	require.NoError(t, err)

	ctx := context.Background()

	created, err := client.CreateTransaction(ctx, payway.CreateTransactionParams{
		TranID:        "tr-1",
		Amount:        decimal.RequireFromString("19.99"),
		Currency:      payway.CurrencyUSD,
		PaymentOption: "abapay",
		Firstname:     "John",
		Email:         "john@example.com",
		ReturnURL:     "https://example.com/callback",
		Items:         []payway.Item{{Name: "book", Quantity: 1, Price: decimal.RequireFromString("19.99")}},
	})
	require.NoError(t, err)
	assert.Equal(t, float64(0), created["status"])
	assert.Equal(t, "tr-1", created["tran_id"])

	checked, err := client.CheckTransaction(ctx, "tr-1")
	require.NoError(t, err)
	assert.Equal(t, "APPROVED", checked["status"])
	assert.Equal(t, "19.99", checked["amount"])

	listed, err := client.TransactionList(ctx, payway.TransactionListParams{Status: "APPROVED"})
	require.NoError(t, err)
	data, ok := listed["data"].([]any)
	require.True(t, ok)
	assert.Len(t, data, 1)
}

func TestRoundTripUnknownTransaction(t *testing.T) {
	server := mockgw.New("merchant-1", "secret-key", zerolog.Nop())
	srv := httptest.NewServer(server.Router())
	defer srv.Close()

	client, err := payway.NewClient(payway.Config{
		BaseURL:    srv.URL,
		MerchantID: "merchant-1",
		APIKey:     "secret-key",
	})
	require.NoError(t, err)

	_, err = client.CheckTransaction(context.Background(), "missing")

	var ge *payway.GatewayError
	require.ErrorAs(t, err, &ge)
	assert.Equal(t, 400, ge.StatusCode)
	assert.Equal(t, "02", ge.ErrorCode)
	assert.Equal(t, "Transaction not found", ge.Message)
}

func TestRoundTripWrongKey(t *testing.T) {
	server := mockgw.New("merchant-1", "secret-key", zerolog.Nop())
	srv := httptest.NewServer(server.Router())
	defer srv.Close()

	client, err := payway.NewClient(payway.Config{
		BaseURL:    srv.URL,
		MerchantID: "merchant-1",
		APIKey:     "wrong-key",
	})
	require.NoError(t, err)

	_, err = client.CheckTransaction(context.Background(), "tr-1")

	var ge *payway.GatewayError
	require.ErrorAs(t, err, &ge)
	assert.Equal(t, 403, ge.StatusCode)
	assert.Equal(t, "06", ge.ErrorCode)
}

func TestRoundTripWrongMerchant(t *testing.T) {
	server := mockgw.New("merchant-1", "secret-key", zerolog.Nop())
	srv := httptest.NewServer(server.Router())
	defer srv.Close()

	client, err := payway.NewClient(payway.Config{
		BaseURL:    srv.URL,
		MerchantID: "merchant-2",
		APIKey:     "secret-key",
	})
	require.NoError(t, err)

	_, err = client.CheckTransaction(context.Background(), "tr-1")

	var ge *payway.GatewayError
	require.ErrorAs(t, err, &ge)
	assert.Equal(t, 403, ge.StatusCode)
	assert.Equal(t, "04", ge.ErrorCode)
}
