package health

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTP(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/core/db/info/" {
			w.WriteHeader(http.StatusOK)
			return
		}

		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	endpoint := strings.TrimPrefix(server.URL, "http://")

	assert.True(t, HTTP(server.Client(), "/api/core/db/info/", 0, time.Second)(context.Background(), endpoint))
	assert.True(t, HTTP(server.Client(), "api/core/db/info/", http.StatusOK, time.Second)(context.Background(), endpoint))
	assert.False(t, HTTP(server.Client(), "/missing", 0, time.Second)(context.Background(), endpoint))
	assert.True(t, HTTP(server.Client(), "/missing", http.StatusNotFound, time.Second)(context.Background(), endpoint))
}

func TestHTTPUnreachable(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	endpoint := listener.Addr().String()
	require.NoError(t, listener.Close())

	assert.False(t, HTTP(nil, "/", 0, time.Second)(context.Background(), endpoint))
}

func TestTCP(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	endpoint := listener.Addr().String()

	assert.True(t, TCP(time.Second)(context.Background(), endpoint))

	require.NoError(t, listener.Close())
	assert.False(t, TCP(time.Second)(context.Background(), endpoint))
}

func TestNew(t *testing.T) {
	check, err := New("", "", 0, 0)
	require.NoError(t, err)
	assert.Nil(t, check)

	check, err = New("HTTP", "/healthz", 200, time.Second)
	require.NoError(t, err)
	assert.NotNil(t, check)

	check, err = New(TYPE_TCP, "", 0, time.Second)
	require.NoError(t, err)
	assert.NotNil(t, check)

	_, err = New("grpc", "", 0, 0)
	assert.ErrorIs(t, err, ErrUnknownType)
}
