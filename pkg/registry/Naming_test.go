package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNameClone(t *testing.T) {
	assert.Equal(t, "flukebook", NameClone("flukebook", nil))
	assert.Equal(t, "flukebook_clone_0", NameClone("flukebook", CloneIndex(0)))
	assert.Equal(t, "flukebook_clone_12", NameClone("flukebook", CloneIndex(12)))
}

func TestNameCloneInjective(t *testing.T) {
	seen := make(map[string]uint64)

	for i := uint64(0); i < 1000; i++ {
		name := NameClone("svc", CloneIndex(i))

		assert.NotEqual(t, "svc", name)

		previous, ok := seen[name]
		assert.False(t, ok, "index %d collides with %d", i, previous)

		seen[name] = i
	}
}
