package docker

import (
	"context"

	TDTypes "github.com/docker/docker/api/types"
	TDContainer "github.com/docker/docker/api/types/container"
	TDImage "github.com/docker/docker/api/types/image"
	TDNetwork "github.com/docker/docker/api/types/network"
	ocispec "github.com/opencontainers/image-spec/specs-go/v1"
	"go.uber.org/zap"
)

// API is the part of the docker client the adapter talks to. *client.Client satisfies it.
type API interface {
	ContainerList(ctx context.Context, options TDContainer.ListOptions) ([]TDTypes.Container, error)
	ContainerInspect(ctx context.Context, containerID string) (TDTypes.ContainerJSON, error)
	ContainerCreate(ctx context.Context, config *TDContainer.Config, hostConfig *TDContainer.HostConfig, networkingConfig *TDNetwork.NetworkingConfig, platform *ocispec.Platform, containerName string) (TDContainer.CreateResponse, error)
	ContainerStart(ctx context.Context, containerID string, options TDContainer.StartOptions) error
	ContainerRemove(ctx context.Context, containerID string, options TDContainer.RemoveOptions) error
	ImageList(ctx context.Context, options TDImage.ListOptions) ([]TDImage.Summary, error)
	Close() error
}

type Docker struct {
	Client API
	logger *zap.Logger
}

// launchConfig is the docker side of a platforms.LaunchRequest.
type launchConfig struct {
	Config     *TDContainer.Config
	HostConfig *TDContainer.HostConfig
	Ignored    []string
}
