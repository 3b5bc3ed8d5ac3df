package gateway_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/gateway"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_NewRefundClient(t *testing.T) {
	t.Run("valid base URL", func(t *testing.T) {
		client, err := gateway.NewRefundClient("http://localhost:8090", 5*time.Second)
		require.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("empty base URL", func(t *testing.T) {
		client, err := gateway.NewRefundClient("", 5*time.Second)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Nil(t, client)
	})
}

func Test_RefundClient_Refund(t *testing.T) {
	t.Run("gateway accepts refund", func(t *testing.T) {
		var gotPath, gotContentType string
		var gotBody map[string]interface{}
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotContentType = r.Header.Get("Content-Type")
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client, err := gateway.NewRefundClient(server.URL, 5*time.Second)
		require.NoError(t, err)

		err = client.Refund(context.Background(), "pay_123", 450)
		require.NoError(t, err)

		assert.Equal(t, "/api/refunds", gotPath)
		assert.Equal(t, "application/json", gotContentType)
		assert.Equal(t, "pay_123", gotBody["payment_id"])
		assert.Equal(t, float64(450), gotBody["amount"])
	})

	t.Run("gateway rejects refund", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
		}))
		defer server.Close()

		client, err := gateway.NewRefundClient(server.URL, 5*time.Second)
		require.NoError(t, err)

		err = client.Refund(context.Background(), "pay_123", 450)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrExternalService)
	})

	t.Run("gateway unreachable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		server.Close()

		client, err := gateway.NewRefundClient(server.URL, time.Second)
		require.NoError(t, err)

		err = client.Refund(context.Background(), "pay_123", 450)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrExternalService)
	})

	t.Run("empty payment id", func(t *testing.T) {
		client, err := gateway.NewRefundClient("http://localhost:8090", time.Second)
		require.NoError(t, err)

		err = client.Refund(context.Background(), "", 450)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}
