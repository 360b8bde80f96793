package ports

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockProber struct {
	mock.Mock
}

func (m *MockProber) Bound(ctx context.Context, host string, port int) bool {
	args := m.Called(host, port)
	return args.Bool(0)
}

func TestFindOpenPortSkipsBlacklist(t *testing.T) {
	prober := &MockProber{}
	prober.On("Bound", mock.Anything, mock.Anything).Return(false)

	allocator := New(prober, nil)

	port, err := allocator.FindOpenPort(context.Background(), 5000, []int{5000, 5001, 5003})

	require.NoError(t, err)
	assert.Equal(t, 5002, port)
	prober.AssertNotCalled(t, "Bound", mock.Anything, 5000)
	prober.AssertNotCalled(t, "Bound", mock.Anything, 5001)
}

func TestFindOpenPortSkipsBoundOnAnyAddress(t *testing.T) {
	prober := &MockProber{}
	prober.On("Bound", "localhost", 6000).Return(true)
	prober.On("Bound", "localhost", 6001).Return(false)
	prober.On("Bound", "127.0.0.1", 6001).Return(true)
	prober.On("Bound", "localhost", 6002).Return(false)
	prober.On("Bound", "127.0.0.1", 6002).Return(false)
	prober.On("Bound", "0.0.0.0", 6002).Return(true)
	prober.On("Bound", mock.Anything, 6003).Return(false)

	allocator := New(prober, []string{"localhost", "127.0.0.1", "0.0.0.0"})

	port, err := allocator.FindOpenPort(context.Background(), 6000, nil)

	require.NoError(t, err)
	assert.Equal(t, 6003, port)
	prober.AssertNumberOfCalls(t, "Bound", 9)
}

func TestFindOpenPortDefaultBase(t *testing.T) {
	prober := &MockProber{}
	prober.On("Bound", mock.Anything, mock.Anything).Return(false)

	port, err := New(prober, nil).FindOpenPort(context.Background(), 0, nil)

	require.NoError(t, err)
	assert.Equal(t, 5000, port)
}

func TestFindOpenPortExhausted(t *testing.T) {
	prober := &MockProber{}
	prober.On("Bound", mock.Anything, mock.Anything).Return(true)

	_, err := New(prober, nil).FindOpenPort(context.Background(), MAX_PORT-2, nil)

	assert.ErrorIs(t, err, ErrNoPortAvailable)
}

func TestFindOpenPortCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(&MockProber{}, nil).FindOpenPort(ctx, 5000, nil)

	assert.ErrorIs(t, err, context.Canceled)
}

func TestDialProber(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	port := listener.Addr().(*net.TCPAddr).Port
	prober := &DialProber{Timeout: time.Second}

	assert.True(t, prober.Bound(context.Background(), "127.0.0.1", port))

	require.NoError(t, listener.Close())
	assert.False(t, prober.Bound(context.Background(), "127.0.0.1", port))
}
