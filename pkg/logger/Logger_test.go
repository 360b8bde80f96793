package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	log, err := NewLogger("debug", []string{"stdout"}, []string{"stderr"})

	require.NoError(t, err)
	assert.NotNil(t, log)
	assert.True(t, log.Core().Enabled(-1))
}

func TestNewLoggerInvalidLevel(t *testing.T) {
	_, err := NewLogger("loud", []string{"stdout"}, []string{"stderr"})

	assert.Error(t, err)
}

func TestOrNop(t *testing.T) {
	assert.NotNil(t, OrNop(nil))
}
