package registry

import (
	"fmt"

	"github.com/wildme/dockerctl/pkg/static"
)

// NameClone returns the runtime name of a service instance. The primary instance keeps
// the logical name, clones get an index suffix.
func NameClone(name string, clone *uint64) string {
	if clone == nil {
		return name
	}

	return fmt.Sprintf("%s%s%d", name, static.CLONE_SEPARATOR, *clone)
}

func CloneIndex(index uint64) *uint64 {
	return &index
}
