package registry

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/r3labs/diff/v3"
	"github.com/wildme/dockerctl/pkg/logger"
	"github.com/wildme/dockerctl/pkg/static"
	"go.uber.org/zap"
)

func New(prefixes []string, log *zap.Logger) *Registry {
	if len(prefixes) == 0 {
		prefixes = static.DEFAULT_IMAGE_PREFIXES
	}

	return &Registry{
		Services: make(map[string]*ServiceConfig),
		Prefixes: append([]string(nil), prefixes...),
		validate: validator.New(),
		logger:   logger.OrNop(log),
	}
}

// Register adds a service config. With ensureNew an existing name is an error,
// otherwise the new config replaces the old one.
func (registry *Registry) Register(config ServiceConfig, ensureNew bool) error {
	config = config.clone()

	if err := liftLegacyPorts(&config); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, err)
	}

	registry.Lock.Lock()
	defer registry.Lock.Unlock()

	existing, ok := registry.Services[config.Name]

	if ok && ensureNew {
		return fmt.Errorf("%w: %s", ErrAlreadyRegistered, config.Name)
	}

	if !registry.allowed(config.Image) {
		return fmt.Errorf("%w: %q not in %v", ErrInvalidImage, config.Image, registry.Prefixes)
	}

	if err := registry.validate.Struct(config); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, err)
	}

	if ok {
		registry.logger.Warn("register called on an existing config, overwriting",
			zap.String("container", config.Name),
			zap.Strings("changes", changes(existing, &config)),
		)
	}

	registry.Services[config.Name] = &config

	return nil
}

func (registry *Registry) Get(name string) (ServiceConfig, error) {
	registry.Lock.RLock()
	defer registry.Lock.RUnlock()

	config, ok := registry.Services[name]

	if !ok {
		return ServiceConfig{}, fmt.Errorf("%w: %s", ErrNotRegistered, name)
	}

	return config.clone(), nil
}

func (registry *Registry) Names() []string {
	registry.Lock.RLock()
	defer registry.Lock.RUnlock()

	names := make([]string, 0, len(registry.Services))

	for name := range registry.Services {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

func (registry *Registry) allowed(image string) bool {
	if image == "" {
		return false
	}

	for _, prefix := range registry.Prefixes {
		if strings.HasPrefix(image, prefix) {
			return true
		}
	}

	return false
}

func (config ServiceConfig) clone() ServiceConfig {
	if config.RunArgs != nil {
		args := make(map[string]interface{}, len(config.RunArgs))

		for k, v := range config.RunArgs {
			args[k] = v
		}

		config.RunArgs = args
	}

	return config
}

// liftLegacyPorts moves the underscore port directives of older configs into LaunchSpec.
func liftLegacyPorts(config *ServiceConfig) error {
	if value, ok := config.RunArgs[static.LEGACY_INTERNAL_PORT]; ok && config.Launch.InternalPort == 0 {
		port, err := toInt(value)

		if err != nil {
			return fmt.Errorf("%s: %w", static.LEGACY_INTERNAL_PORT, err)
		}

		config.Launch.InternalPort = port
	}

	if value, ok := config.RunArgs[static.LEGACY_SUGGESTED_PORT]; ok && config.Launch.ExternalPortHint == 0 {
		port, err := toInt(value)

		if err != nil {
			return fmt.Errorf("%s: %w", static.LEGACY_SUGGESTED_PORT, err)
		}

		config.Launch.ExternalPortHint = port
	}

	return nil
}

func toInt(value interface{}) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case uint64:
		return int(v), nil
	case float64:
		return int(v), nil
	case string:
		return strconv.Atoi(v)
	default:
		return 0, fmt.Errorf("unsupported port value %v", value)
	}
}

func changes(previous *ServiceConfig, updated *ServiceConfig) []string {
	changelog, err := diff.Diff(*previous, *updated)

	if err != nil {
		return []string{err.Error()}
	}

	result := make([]string, 0, len(changelog))

	for _, change := range changelog {
		result = append(result, fmt.Sprintf("%s %s", change.Type, strings.Join(change.Path, ".")))
	}

	return result
}
