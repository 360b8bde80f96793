package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	assert.Equal(t, "1.2.0", (&Version{Version: "1.2.0"}).String())
	assert.Equal(t, "1.2.0 (abc123)", (&Version{Version: "1.2.0", Commit: "abc123"}).String())
	assert.Equal(t, "dev", New().String())
}
