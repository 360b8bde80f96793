package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/wildme/dockerctl/pkg/endpoints"
	"github.com/wildme/dockerctl/pkg/metrics"
	"github.com/wildme/dockerctl/pkg/platforms"
	"github.com/wildme/dockerctl/pkg/registry"
	"github.com/wildme/dockerctl/pkg/static"
	"github.com/wildme/dockerctl/pkg/status"
	"go.uber.org/zap"
)

// DefaultRunArgs apply to every launch unless the service config overrides them.
var DefaultRunArgs = map[string]interface{}{
	static.RUN_ARG_DETACH:         true,
	static.RUN_ARG_RESTART_POLICY: static.RESTART_ON_FAILURE,
}

// Ensure makes sure the service instance is running and returns its endpoints. Unless
// SkipVerify is set only endpoints passing the service health check are returned.
func (o *Orchestrator) Ensure(ctx context.Context, name string, opts EnsureOptions) ([]string, error) {
	unlock := o.locks.Lock(name)
	defer unlock()

	urls, err := o.ensure(ctx, name, opts)

	switch {
	case err == nil:
		metrics.Ensure.Increment(name, "ok")
	case errors.Is(err, ErrVerificationFailed):
		metrics.Ensure.Increment(name, "unverified")
	default:
		metrics.Ensure.Increment(name, "error")
	}

	return urls, err
}

func (o *Orchestrator) ensure(ctx context.Context, name string, opts EnsureOptions) ([]string, error) {
	config, err := o.Registry.Get(name)

	if err != nil {
		return nil, err
	}

	runtimeName := registry.NameClone(name, opts.Clone)
	lifecycle := o.lifecycle(runtimeName)

	current, _, err := o.runtimeStatus(ctx, runtimeName)

	if err != nil {
		return nil, err
	}

	adopted := false

	if current != static.STATUS_RUNNING {
		lifecycle.Reset()
		lifecycle.TransitionState(status.STARTING)

		if adopted, err = o.launch(ctx, config, runtimeName, opts); err != nil {
			lifecycle.Reset()
			return nil, err
		}
	}

	container, err := o.Runtime.Inspect(ctx, runtimeName)

	if err != nil {
		lifecycle.Reset()
		return nil, err
	}

	if container == nil {
		lifecycle.Reset()
		return nil, fmt.Errorf("%w: %s", platforms.ErrNotFound, runtimeName)
	}

	if adopted && !container.IsRunning() {
		if container, err = o.resume(ctx, config, runtimeName); err != nil {
			lifecycle.Reset()
			return nil, err
		}
	}

	if container.IsRunning() {
		lifecycle.TransitionState(status.RUNNING)
	} else {
		o.logger.Warn("container is not running after ensure",
			zap.String("container", runtimeName),
			zap.String("status", container.Status),
		)
		lifecycle.Reset()
	}

	resolved := endpoints.Strings(endpoints.Resolve(container, config.Launch.InternalPort))

	if opts.SkipVerify {
		return resolved, nil
	}

	valid, err := o.check(ctx, config, runtimeName, CheckOptions{Clone: opts.Clone})

	if err != nil {
		return nil, err
	}

	if len(valid) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrVerificationFailed, runtimeName)
	}

	return valid, nil
}

// launch starts a new container under runtimeName. adopted reports that a container
// already held the name and was kept instead.
func (o *Orchestrator) launch(ctx context.Context, config registry.ServiceConfig, runtimeName string, opts EnsureOptions) (bool, error) {
	if _, err := o.Images.Ensure(ctx, config.Image); err != nil {
		return false, err
	}

	request := &platforms.LaunchRequest{
		Name:         runtimeName,
		Image:        config.Image,
		InternalPort: config.Launch.InternalPort,
		Labels:       o.labels(config.Name, opts.Clone),
		Options:      MergeRunArgs(config.RunArgs),
	}

	o.launchLock.Lock()
	defer o.launchLock.Unlock()

	if config.Launch.InternalPort > 0 {
		blacklist, err := o.blacklist(ctx)

		if err != nil {
			return false, err
		}

		hint := config.Launch.ExternalPortHint
		if hint == 0 {
			hint = o.PortBase
		}

		request.ExternalPort, err = o.Allocator.FindOpenPort(ctx, hint, blacklist)

		if err != nil {
			return false, err
		}

		metrics.PortAllocations.Increment()
	}

	o.logger.Info("starting container",
		zap.String("image", request.Image),
		zap.String("container", request.Name),
		zap.Int("internal_port", request.InternalPort),
		zap.Int("external_port", request.ExternalPort),
		zap.Any("options", request.Options),
	)

	_, err := o.Runtime.Start(ctx, request)

	if err != nil {
		if errors.Is(err, platforms.ErrNameConflict) && !opts.EnsureNew {
			o.logger.Info("container name already in use, adopting the existing container", zap.String("container", runtimeName))
			return true, nil
		}

		return false, err
	}

	metrics.ContainerStarts.Increment(config.Name)

	return false, nil
}

// resume starts an adopted container that is not running and returns its fresh state.
func (o *Orchestrator) resume(ctx context.Context, config registry.ServiceConfig, runtimeName string) (*platforms.Container, error) {
	o.logger.Info("starting adopted container", zap.String("container", runtimeName))

	if err := o.Runtime.Resume(ctx, runtimeName); err != nil {
		return nil, err
	}

	metrics.ContainerStarts.Increment(config.Name)

	container, err := o.Runtime.Inspect(ctx, runtimeName)

	if err != nil {
		return nil, err
	}

	if container == nil {
		return nil, fmt.Errorf("%w: %s", platforms.ErrNotFound, runtimeName)
	}

	return container, nil
}

// blacklist collects every host port published by any container the runtime knows about.
func (o *Orchestrator) blacklist(ctx context.Context) ([]int, error) {
	containers, err := o.Runtime.List(ctx)

	if err != nil {
		return nil, err
	}

	seen := make(map[int]struct{})

	for _, container := range containers {
		for _, port := range endpoints.Ports(endpoints.Resolve(container, 0)) {
			seen[port] = struct{}{}
		}
	}

	result := make([]int, 0, len(seen))
	for port := range seen {
		result = append(result, port)
	}

	sort.Ints(result)

	return result, nil
}

func (o *Orchestrator) labels(name string, clone *uint64) map[string]string {
	labels := map[string]string{
		static.LABEL_SERVICE: name,
		static.LABEL_SESSION: o.Session,
	}

	if clone != nil {
		labels[static.LABEL_CLONE] = strconv.FormatUint(*clone, 10)
	}

	return labels
}

// MergeRunArgs overlays the service run args on the defaults and drops private
// underscore directives, which never reach the runtime.
func MergeRunArgs(args map[string]interface{}) map[string]interface{} {
	merged := make(map[string]interface{}, len(DefaultRunArgs)+len(args))

	for k, v := range DefaultRunArgs {
		merged[k] = v
	}

	for k, v := range args {
		merged[k] = v
	}

	for k := range merged {
		if strings.HasPrefix(k, static.RUN_ARG_PRIVATE_PREFIX) {
			delete(merged, k)
		}
	}

	return merged
}
