package gameserver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := NewClient("mc.example.org")
	client.baseURL = srv.URL
	return client
}

func TestStatusOnlineWithPlayers(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/mc.example.org", r.URL.Path)
		w.Write([]byte(`{"online":true,"players":{"online":2,"max":20,"list":["Alice","Bob"]}}`))
	})

	status, err := client.Status(context.Background())
	require.NoError(t, err)
	assert.True(t, status.Online)
	assert.Equal(t, []string{"Alice", "Bob"}, status.Players)
}

func TestStatusOffline(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"online":false}`))
	})

	status, err := client.Status(context.Background())
	require.NoError(t, err)
	assert.False(t, status.Online)
	assert.Empty(t, status.Players)
}

func TestStatusAPIErrorSurfaces(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.Status(context.Background())
	assert.Error(t, err)
}
