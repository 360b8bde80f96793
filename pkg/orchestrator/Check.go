package orchestrator

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/wildme/dockerctl/pkg/metrics"
	"github.com/wildme/dockerctl/pkg/registry"
	"github.com/wildme/dockerctl/pkg/status"
	"go.uber.org/zap"
)

// Check polls the service health check and returns the endpoints that passed.
// Exhausting the budget returns an empty set and no error; the caller decides if that
// is fatal. Without a health check the resolved endpoints are returned as they are.
func (o *Orchestrator) Check(ctx context.Context, name string, opts CheckOptions) ([]string, error) {
	config, err := o.Registry.Get(name)

	if err != nil {
		return nil, err
	}

	return o.check(ctx, config, registry.NameClone(name, opts.Clone), opts)
}

func (o *Orchestrator) check(ctx context.Context, config registry.ServiceConfig, runtimeName string, opts CheckOptions) ([]string, error) {
	if config.Check == nil {
		return o.resolve(ctx, config, runtimeName)
	}

	retries := firstPositive(opts.Retries, config.Retries, o.Retries)
	interval := opts.Interval
	if interval <= 0 {
		interval = config.Interval
	}
	if interval <= 0 {
		interval = o.Interval
	}

	started := time.Now()
	defer func() {
		metrics.CheckDuration.Observe(time.Since(started).Seconds(), config.Name)
	}()

	var valid []string
	round := 0

	operation := func() error {
		round++

		o.logger.Info("performing container check",
			zap.String("container", runtimeName),
			zap.Int("attempt", round),
			zap.Int("max", retries),
		)

		urls, err := o.resolve(ctx, config, runtimeName)

		if err != nil {
			return backoff.Permanent(err)
		}

		valid = make([]string, 0, len(urls))

		for _, url := range urls {
			o.logger.Debug("checking url", zap.String("url", url))

			if config.Check(ctx, url) {
				valid = append(valid, url)
			}
		}

		if len(valid) > 0 {
			metrics.HealthRounds.Increment(config.Name, "pass")
			return nil
		}

		metrics.HealthRounds.Increment(config.Name, "fail")
		return errNoHealthyEndpoint
	}

	notify := func(err error, wait time.Duration) {
		o.logger.Info("container failed the health check, will try again",
			zap.String("container", runtimeName),
			zap.Duration("sleep", wait),
		)
	}

	var policy backoff.BackOff = &backoff.StopBackOff{}
	if retries > 1 {
		policy = backoff.WithMaxRetries(backoff.NewConstantBackOff(interval), uint64(retries-1))
	}

	err := backoff.RetryNotify(operation, backoff.WithContext(policy, ctx), notify)

	switch {
	case err == nil:
		// a passing round saw the container running
		lifecycle := o.lifecycle(runtimeName)
		lifecycle.TransitionState(status.RUNNING)
		lifecycle.TransitionState(status.VERIFIED)

		return valid, nil
	case ctx.Err() != nil:
		return nil, ctx.Err()
	case errors.Is(err, errNoHealthyEndpoint):
		return []string{}, nil
	default:
		return nil, err
	}
}

func firstPositive(values ...int) int {
	for _, v := range values {
		if v > 0 {
			return v
		}
	}

	return 1
}
