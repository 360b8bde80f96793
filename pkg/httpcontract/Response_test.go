package httpcontract

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResponse(t *testing.T) {
	response := NewResponse(http.StatusOK, "ok", nil, []string{"127.0.0.1:5000"})

	assert.True(t, response.Success)
	assert.False(t, response.Error)
	assert.Empty(t, response.ErrorExplanation)

	var urls []string
	require.NoError(t, response.Decode(&urls))
	assert.Equal(t, []string{"127.0.0.1:5000"}, urls)
}

func TestNewResponseError(t *testing.T) {
	response := NewResponse(http.StatusNotFound, "", errors.New("not registered"), nil)

	assert.False(t, response.Success)
	assert.True(t, response.Error)
	assert.Equal(t, "not registered", response.ErrorExplanation)
	assert.Nil(t, response.Data)
}
