package platforms

import (
	"sort"

	jsoniter "github.com/json-iterator/go"
	"github.com/wildme/dockerctl/pkg/static"
)

func (container *Container) IsRunning() bool {
	return container != nil && container.Status == static.STATUS_RUNNING
}

func (container *Container) ToJSON() ([]byte, error) {
	var json = jsoniter.ConfigCompatibleWithStandardLibrary
	return json.Marshal(container)
}

// Buckets groups container names by their runtime status. Names inside a bucket are
// sorted and unique.
func Buckets(containers []*Container) map[string][]string {
	seen := make(map[string]map[string]struct{})

	for _, c := range containers {
		if c == nil {
			continue
		}

		if seen[c.Status] == nil {
			seen[c.Status] = make(map[string]struct{})
		}

		seen[c.Status][c.Name] = struct{}{}
	}

	buckets := make(map[string][]string, len(seen))

	for status, names := range seen {
		list := make([]string, 0, len(names))

		for name := range names {
			list = append(list, name)
		}

		sort.Strings(list)
		buckets[status] = list
	}

	return buckets
}
