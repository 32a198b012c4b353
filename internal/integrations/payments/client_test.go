package payments

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestClient_CreateOrder(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/v1/orders", r.URL.Path)

			user, pass, ok := r.BasicAuth()
			require.True(t, ok)
			assert.Equal(t, "key_id", user)
			assert.Equal(t, "key_secret", pass)

			var req CreateOrderRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, int64(37800), req.Amount)
			assert.Equal(t, "INR", req.Currency)

			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(GatewayOrder{
				ID:       "order_gw_1",
				Amount:   req.Amount,
				Currency: req.Currency,
				Receipt:  req.Receipt,
				Status:   "created",
			})
		}))
		defer server.Close()

		client := NewClient(server.URL, "key_id", "key_secret", 5*time.Second, nopLogger{})

		order, err := client.CreateOrder(context.Background(), 37800, "INR", "ref-1")
		require.NoError(t, err)
		assert.Equal(t, "order_gw_1", order.ID)
		assert.Equal(t, "ref-1", order.Receipt)
	})

	t.Run("gateway rejection", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(ErrorResponse{Code: "BAD_REQUEST_ERROR", Message: "amount too low"})
		}))
		defer server.Close()

		client := NewClient(server.URL, "key_id", "key_secret", 5*time.Second, nopLogger{})

		_, err := client.CreateOrder(context.Background(), 1, "INR", "ref-1")
		require.ErrorIs(t, err, ErrGatewayRejected)
		assert.Contains(t, err.Error(), "amount too low")
	})

	t.Run("unexpected status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		client := NewClient(server.URL, "key_id", "key_secret", 5*time.Second, nopLogger{})

		_, err := client.CreateOrder(context.Background(), 100, "INR", "ref-1")
		require.ErrorIs(t, err, ErrInvalidResponse)
	})

	t.Run("malformed body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("not json"))
		}))
		defer server.Close()

		client := NewClient(server.URL, "key_id", "key_secret", 5*time.Second, nopLogger{})

		_, err := client.CreateOrder(context.Background(), 100, "INR", "ref-1")
		require.ErrorIs(t, err, ErrInvalidResponse)
	})
}
