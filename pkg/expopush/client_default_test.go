package expopush_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/segmentio/encoding/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/festibalparty/festibal-push-backend/pkg/expopush"
)

func TestNewClient(t *testing.T) {
	t.Run("missing endpoint", func(t *testing.T) {
		client, err := expopush.NewClient(expopush.ClientDefaultConfig{})
		assert.Error(t, err)
		assert.Nil(t, client)
	})

	t.Run("endpoint must be a url", func(t *testing.T) {
		client, err := expopush.NewClient(expopush.ClientDefaultConfig{Endpoint: "not a url"})
		assert.Error(t, err)
		assert.Nil(t, client)
	})

	t.Run("valid", func(t *testing.T) {
		client, err := expopush.NewClient(expopush.ClientDefaultConfig{Endpoint: expopush.DefaultEndpoint})
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})
}

func TestClientDefault_SendBatch(t *testing.T) {
	ctx := context.Background()

	messages := []expopush.PushMessage{
		{To: "ExponentPushToken[aaa]", Title: "Hello", Body: "World"},
		{To: "ExponentPushToken[bbb]", Title: "Hello", Body: "World"},
	}

	t.Run("success returns one ticket per message", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var received []expopush.PushMessage
			err := json.NewDecoder(r.Body).Decode(&received)
			assert.NoError(t, err)
			assert.Len(t, received, 2)
			assert.Equal(t, "ExponentPushToken[aaa]", received[0].To)

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"data":[{"status":"ok","id":"t-1"},{"status":"ok","id":"t-2"}]}`))
		}))
		defer srv.Close()

		client, err := expopush.NewClient(expopush.ClientDefaultConfig{Endpoint: srv.URL})
		require.NoError(t, err)

		result, err := client.SendBatch(ctx, messages)
		assert.NoError(t, err)
		assert.Len(t, result.Tickets, 2)
		assert.Equal(t, "ok", result.Tickets[0].Status)
		assert.Equal(t, "t-1", result.Tickets[0].ID)
	})

	t.Run("empty data keeps raw payload", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"data":[]}`))
		}))
		defer srv.Close()

		client, err := expopush.NewClient(expopush.ClientDefaultConfig{Endpoint: srv.URL})
		require.NoError(t, err)

		result, err := client.SendBatch(ctx, messages)
		assert.Error(t, err)
		assert.ErrorIs(t, err, expopush.ErrNoTickets)
		assert.JSONEq(t, `{"data":[]}`, string(result.RawBody))
	})

	t.Run("absent data keeps raw payload", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"errors":[{"code":"INTERNAL"}]}`))
		}))
		defer srv.Close()

		client, err := expopush.NewClient(expopush.ClientDefaultConfig{Endpoint: srv.URL})
		require.NoError(t, err)

		result, err := client.SendBatch(ctx, messages)
		assert.ErrorIs(t, err, expopush.ErrNoTickets)
		assert.Contains(t, string(result.RawBody), "INTERNAL")
	})

	t.Run("non-json body means unavailable", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte("<html>Bad Gateway</html>"))
		}))
		defer srv.Close()

		client, err := expopush.NewClient(expopush.ClientDefaultConfig{Endpoint: srv.URL})
		require.NoError(t, err)

		_, err = client.SendBatch(ctx, messages)
		assert.Error(t, err)
		assert.ErrorIs(t, err, expopush.ErrUnavailable)
	})

	t.Run("network failure means unavailable", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close() // closed before any request

		client, err := expopush.NewClient(expopush.ClientDefaultConfig{Endpoint: srv.URL})
		require.NoError(t, err)

		_, err = client.SendBatch(ctx, messages)
		assert.Error(t, err)
		assert.ErrorIs(t, err, expopush.ErrUnavailable)
	})

	t.Run("no messages means no upstream call", func(t *testing.T) {
		var calls int
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
		}))
		defer srv.Close()

		client, err := expopush.NewClient(expopush.ClientDefaultConfig{Endpoint: srv.URL})
		require.NoError(t, err)

		result, err := client.SendBatch(ctx, nil)
		assert.NoError(t, err)
		assert.Empty(t, result.Tickets)
		assert.Zero(t, calls)
	})
}
