package docker

import (
	"context"
	"sort"
	"strconv"
	"strings"

	TDTypes "github.com/docker/docker/api/types"
	TDContainer "github.com/docker/docker/api/types/container"
	TDNetwork "github.com/docker/docker/api/types/network"
	"github.com/docker/docker/errdefs"
	"github.com/docker/go-connections/nat"
	"github.com/pkg/errors"
	"github.com/wildme/dockerctl/pkg/platforms"
	"go.uber.org/zap"
)

func (docker *Docker) List(ctx context.Context) ([]*platforms.Container, error) {
	containers, err := docker.Client.ContainerList(ctx, TDContainer.ListOptions{
		All: true,
	})

	if err != nil {
		return nil, errors.Wrap(err, "list containers")
	}

	result := make([]*platforms.Container, 0, len(containers))

	for _, c := range containers {
		result = append(result, fromSummary(c))
	}

	return result, nil
}

func (docker *Docker) Inspect(ctx context.Context, name string) (*platforms.Container, error) {
	data, err := docker.Client.ContainerInspect(ctx, name)

	if err != nil {
		if errdefs.IsNotFound(err) {
			return nil, nil
		}

		return nil, errors.Wrapf(err, "inspect %s", name)
	}

	return fromInspect(data), nil
}

func (docker *Docker) Start(ctx context.Context, request *platforms.LaunchRequest) (*platforms.Container, error) {
	launch, err := buildLaunchConfig(request)

	if err != nil {
		return nil, err
	}

	if len(launch.Ignored) > 0 {
		docker.logger.Warn("ignoring unsupported run options",
			zap.String("container", request.Name),
			zap.Strings("options", launch.Ignored),
		)
	}

	resp, err := docker.Client.ContainerCreate(ctx, launch.Config, launch.HostConfig, &TDNetwork.NetworkingConfig{}, nil, request.Name)

	if err != nil {
		if errdefs.IsConflict(err) {
			return nil, errors.Wrapf(platforms.ErrNameConflict, "%s: %s", request.Name, err)
		}

		return nil, errors.Wrapf(err, "create %s", request.Name)
	}

	for _, warning := range resp.Warnings {
		docker.logger.Warn("docker create warning", zap.String("container", request.Name), zap.String("warning", warning))
	}

	if err = docker.Client.ContainerStart(ctx, resp.ID, TDContainer.StartOptions{}); err != nil {
		docker.discard(ctx, request.Name, resp.ID)
		return nil, errors.Wrapf(err, "start %s", request.Name)
	}

	docker.logger.Info("container started", zap.String("container", request.Name), zap.String("id", resp.ID))

	return docker.Inspect(ctx, resp.ID)
}

func (docker *Docker) Resume(ctx context.Context, name string) error {
	if err := docker.Client.ContainerStart(ctx, name, TDContainer.StartOptions{}); err != nil {
		return errors.Wrapf(err, "start %s", name)
	}

	docker.logger.Info("container resumed", zap.String("container", name))

	return nil
}

// discard removes a container that was created but never started, so the name is free
// for the next launch.
func (docker *Docker) discard(ctx context.Context, name string, id string) {
	err := docker.Client.ContainerRemove(context.WithoutCancel(ctx), id, TDContainer.RemoveOptions{
		Force: true,
	})

	if err != nil {
		docker.logger.Warn("failed to remove container after failed start",
			zap.String("container", name),
			zap.String("id", id),
			zap.Error(err),
		)

		return
	}

	docker.logger.Info("removed container after failed start", zap.String("container", name), zap.String("id", id))
}

func fromSummary(c TDTypes.Container) *platforms.Container {
	container := &platforms.Container{
		ID:     c.ID,
		Image:  c.Image,
		Status: c.State,
		Labels: c.Labels,
	}

	if len(c.Names) > 0 {
		container.Name = strings.TrimPrefix(c.Names[0], "/")
	}

	if c.NetworkSettings != nil {
		container.Networks = networks(c.NetworkSettings.Networks)
	}

	portMap := nat.PortMap{}

	for _, p := range c.Ports {
		port, err := nat.NewPort(p.Type, strconv.Itoa(int(p.PrivatePort)))

		if err != nil {
			continue
		}

		bindings := portMap[port]

		if p.PublicPort != 0 {
			bindings = append(bindings, nat.PortBinding{
				HostIP:   p.IP,
				HostPort: strconv.Itoa(int(p.PublicPort)),
			})
		}

		portMap[port] = bindings
	}

	container.Ports = mappings(portMap)

	return container
}

func fromInspect(data TDTypes.ContainerJSON) *platforms.Container {
	container := &platforms.Container{}

	if data.ContainerJSONBase != nil {
		container.ID = data.ID
		container.Name = strings.TrimPrefix(data.Name, "/")

		if data.State != nil {
			container.Status = data.State.Status
		}
	}

	if data.Config != nil {
		container.Image = data.Config.Image
		container.Labels = data.Config.Labels
	}

	if data.NetworkSettings != nil {
		container.Networks = networks(data.NetworkSettings.Networks)
		container.Ports = mappings(data.NetworkSettings.Ports)
	}

	return container
}

// networks flattens the endpoint settings, ordered by network name.
func networks(settings map[string]*TDNetwork.EndpointSettings) []platforms.Network {
	names := make([]string, 0, len(settings))

	for name := range settings {
		names = append(names, name)
	}

	sort.Strings(names)

	result := make([]platforms.Network, 0, len(names))

	for _, name := range names {
		network := platforms.Network{Name: name}

		if settings[name] != nil {
			network.IPAddress = settings[name].IPAddress
		}

		result = append(result, network)
	}

	return result
}

// mappings flattens the port map, ordered by port key.
func mappings(portMap nat.PortMap) []platforms.PortMapping {
	keys := make([]string, 0, len(portMap))

	for port := range portMap {
		keys = append(keys, string(port))
	}

	sort.Strings(keys)

	result := make([]platforms.PortMapping, 0, len(keys))

	for _, key := range keys {
		result = append(result, platforms.PortMapping{
			Port:     nat.Port(key),
			Bindings: portMap[nat.Port(key)],
		})
	}

	return result
}
