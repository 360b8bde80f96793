package orchestrator

import (
	"context"
	"sort"

	"github.com/wildme/dockerctl/pkg/endpoints"
	"github.com/wildme/dockerctl/pkg/metrics"
	"github.com/wildme/dockerctl/pkg/platforms"
	"github.com/wildme/dockerctl/pkg/registry"
	"github.com/wildme/dockerctl/pkg/static"
)

// Containers groups every container the runtime knows about by status.
func (o *Orchestrator) Containers(ctx context.Context) (map[string][]string, error) {
	containers, err := o.Runtime.List(ctx)

	if err != nil {
		return nil, err
	}

	buckets := platforms.Buckets(containers)

	metrics.Containers.Reset()
	for s, names := range buckets {
		metrics.Containers.Set(float64(len(names)), s)
	}

	return buckets, nil
}

// Status returns the runtime status of the service instance. found is false when the
// runtime does not know the container.
func (o *Orchestrator) Status(ctx context.Context, name string, clone *uint64) (string, bool, error) {
	return o.runtimeStatus(ctx, registry.NameClone(name, clone))
}

func (o *Orchestrator) runtimeStatus(ctx context.Context, runtimeName string) (string, bool, error) {
	buckets, err := o.Containers(ctx)

	if err != nil {
		return "", false, err
	}

	for s, names := range buckets {
		index := sort.SearchStrings(names, runtimeName)

		if index < len(names) && names[index] == runtimeName {
			return s, true, nil
		}
	}

	return "", false, nil
}

// URLs returns the endpoints of a running service instance. ok is false when it is not running.
func (o *Orchestrator) URLs(ctx context.Context, name string, clone *uint64) ([]string, bool, error) {
	config, err := o.Registry.Get(name)

	if err != nil {
		return nil, false, err
	}

	runtimeName := registry.NameClone(name, clone)

	current, _, err := o.runtimeStatus(ctx, runtimeName)

	if err != nil {
		return nil, false, err
	}

	if current != static.STATUS_RUNNING {
		return nil, false, nil
	}

	urls, err := o.resolve(ctx, config, runtimeName)

	if err != nil {
		return nil, false, err
	}

	return urls, true, nil
}

// ImageTags lists the local image tags, sorted and unique.
func (o *Orchestrator) ImageTags(ctx context.Context) ([]string, error) {
	tags, err := o.Runtime.ListImages(ctx)

	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(tags))
	result := make([]string, 0, len(tags))

	for _, tag := range tags {
		if _, ok := seen[tag]; ok {
			continue
		}

		seen[tag] = struct{}{}
		result = append(result, tag)
	}

	sort.Strings(result)

	return result, nil
}

// resolve inspects the container and returns its endpoints; a missing or stopped
// container has none.
func (o *Orchestrator) resolve(ctx context.Context, config registry.ServiceConfig, runtimeName string) ([]string, error) {
	container, err := o.Runtime.Inspect(ctx, runtimeName)

	if err != nil {
		return nil, err
	}

	if !container.IsRunning() {
		return []string{}, nil
	}

	return endpoints.Strings(endpoints.Resolve(container, config.Launch.InternalPort)), nil
}
