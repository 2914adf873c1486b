package adapters

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"cargo-tracker/internal/core/config"
	"cargo-tracker/internal/features/orders/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSMSGateway_StatusChanged(t *testing.T) {
	t.Run("SendsCustomerFacingStatus", func(t *testing.T) {
		var got SMSMessage
		var auth string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth = r.Header.Get("Authorization")
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			w.WriteHeader(http.StatusAccepted)
		}))
		defer server.Close()

		gw := NewSMSGateway(config.SMSConfig{URL: server.URL, APIKey: "k3y", TimeoutSeconds: 2})
		require.NoError(t, gw.StatusChanged(context.Background(), sampleEvent()))

		assert.Equal(t, "Bearer k3y", auth)
		assert.Equal(t, "99112233", got.To)
		assert.Contains(t, got.Text, "ORD1")
		assert.Contains(t, got.Text, "Ulaanbaatar")
	})

	t.Run("SkipsInternalStatusAndMissingPhone", func(t *testing.T) {
		var calls int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
		}))
		defer server.Close()

		gw := NewSMSGateway(config.SMSConfig{URL: server.URL})

		internal := sampleEvent()
		internal.To = domain.OrderStatusInTransit
		require.NoError(t, gw.StatusChanged(context.Background(), internal))

		noPhone := sampleEvent()
		noPhone.PhoneNumber = ""
		require.NoError(t, gw.StatusChanged(context.Background(), noPhone))

		assert.Equal(t, int32(0), atomic.LoadInt32(&calls))
	})

	t.Run("GatewayError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "quota exceeded", http.StatusTooManyRequests)
		}))
		defer server.Close()

		gw := NewSMSGateway(config.SMSConfig{URL: server.URL})
		err := gw.StatusChanged(context.Background(), sampleEvent())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "429")
	})
}
