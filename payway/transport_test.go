package payway_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payway-go/payway"
)

func TestHTTPTransportSendsOrderedMultipart(t *testing.T) {
	var (
		gotPath        string
		gotContentType string
		gotNames       []string
		gotValues      map[string]string
	)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		gotValues = map[string]string{}

		// Read parts sequentially so the on-wire order is observable.
		reader, err := r.MultipartReader()
		require.NoError(t, err)
		for {
			part, err := reader.NextPart()
			if err == io.EOF {
				break
			}
			require.NoError(t, err)
			value, err := io.ReadAll(part)
			require.NoError(t, err)
			gotNames = append(gotNames, part.FormName())
			gotValues[part.FormName()] = string(value)
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status": 0}`))
	}))
	defer srv.Close()

	transport := payway.NewHTTPTransport(srv.URL)
	resp, err := transport.Send(context.Background(), "/api/payment-gateway/v1/payments/purchase", []payway.Field{
		{Name: "req_time", Value: "20260102030405"},
		{Name: "merchant_id", Value: "merchant-1"},
		{Name: "tran_id", Value: "tr-1"},
		{Name: "hash", Value: "aGFzaA=="},
	})
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status": 0}`, string(resp.Body))

	assert.Equal(t, "/api/payment-gateway/v1/payments/purchase", gotPath)
	assert.True(t, strings.HasPrefix(gotContentType, "multipart/form-data"), gotContentType)
	assert.Equal(t, []string{"req_time", "merchant_id", "tran_id", "hash"}, gotNames)
	assert.Equal(t, "tr-1", gotValues["tran_id"])
}

// An error status is still a response; the transport never maps it.
func TestHTTPTransportReturnsErrorStatusAsResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"code": "05", "message": "Invalid payment option"}`))
	}))
	defer srv.Close()

	transport := payway.NewHTTPTransport(srv.URL)
	resp, err := transport.Send(context.Background(), "/x", []payway.Field{{Name: "a", Value: "1"}})

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHTTPTransportNoResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	transport := payway.NewHTTPTransport(srv.URL)
	_, err := transport.Send(context.Background(), "/x", []payway.Field{{Name: "a", Value: "1"}})

	var te *payway.TransportError
	require.ErrorAs(t, err, &te)
	assert.Contains(t, te.Message, "Network error")
	assert.NotNil(t, te.Err)
}

func TestHTTPTransportRequestError(t *testing.T) {
	transport := payway.NewHTTPTransport("http://bad host")
	_, err := transport.Send(context.Background(), "/x", []payway.Field{{Name: "a", Value: "1"}})

	var te *payway.TransportError
	require.ErrorAs(t, err, &te)
	assert.Contains(t, te.Message, "Request error")
}

func TestHTTPTransportBaseURLTrailingSlash(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	transport := payway.NewHTTPTransport(srv.URL + "/")
	_, err := transport.Send(context.Background(), "/api/x", nil)
	require.NoError(t, err)
	assert.Equal(t, "/api/x", gotPath)
}
