package rewards

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPRailGrant(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		var gotReq grantRequest
		var gotAuth, gotKey string

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "/v1/grants", r.URL.Path)
			require.Equal(t, "application/json", r.Header.Get("Content-Type"))
			gotAuth = r.Header.Get("Authorization")
			gotKey = r.Header.Get("Idempotency-Key")
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
			w.WriteHeader(http.StatusAccepted)
		}))
		defer server.Close()

		rail := NewHTTPRail(server.URL, WithToken("secret"))
		err := rail.Grant(context.Background(), "0xWALLET", 25, "module completed: gas-and-fees")
		require.NoError(t, err)

		assert.Equal(t, "Bearer secret", gotAuth)
		assert.NotEmpty(t, gotKey)
		assert.Equal(t, gotKey, gotReq.IdempotencyKey)
		assert.Equal(t, "0xWALLET", gotReq.Wallet)
		assert.Equal(t, 25, gotReq.Amount)
		assert.Equal(t, "module completed: gas-and-fees", gotReq.Reason)
	})

	t.Run("conflict means already granted", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
		}))
		defer server.Close()

		rail := NewHTTPRail(server.URL)
		err := rail.Grant(context.Background(), "0xWALLET", 10, "module completed: finality")
		assert.NoError(t, err)
	})

	t.Run("server error is temporary", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "rail overloaded", http.StatusServiceUnavailable)
		}))
		defer server.Close()

		rail := NewHTTPRail(server.URL)
		err := rail.Grant(context.Background(), "0xWALLET", 10, "box opened: abc")
		require.Error(t, err)

		var se *StatusError
		require.True(t, errors.As(err, &se))
		assert.Equal(t, http.StatusServiceUnavailable, se.StatusCode)
		assert.True(t, se.Temporary())
		assert.Contains(t, se.Body, "rail overloaded")
	})

	t.Run("client error is permanent", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "unknown wallet", http.StatusBadRequest)
		}))
		defer server.Close()

		rail := NewHTTPRail(server.URL)
		err := rail.Grant(context.Background(), "0xNOBODY", 10, "box opened: abc")
		require.Error(t, err)

		var se *StatusError
		require.True(t, errors.As(err, &se))
		assert.False(t, se.Temporary())
	})

	t.Run("no token means no auth header", func(t *testing.T) {
		var gotAuth string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
		}))
		defer server.Close()

		rail := NewHTTPRail(server.URL, WithHTTPClient(server.Client()))
		require.NoError(t, rail.Grant(context.Background(), "0xWALLET", 5, "test"))
		assert.Empty(t, gotAuth)
	})
}

func TestGrantKeyDeterministic(t *testing.T) {
	a := grantKey("0xWALLET", 25, "module completed: gas-and-fees")
	b := grantKey("0xWALLET", 25, "module completed: gas-and-fees")
	assert.Equal(t, a, b, "same grant should produce the same key")

	c := grantKey("0xWALLET", 25, "module completed: finality")
	assert.NotEqual(t, a, c, "different grants should produce different keys")

	d := grantKey("0xOTHER", 25, "module completed: gas-and-fees")
	assert.NotEqual(t, a, d, "different wallets should produce different keys")
}
