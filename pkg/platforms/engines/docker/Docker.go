package docker

import (
	IDClient "github.com/docker/docker/client"
	"github.com/pkg/errors"
	"github.com/wildme/dockerctl/pkg/logger"
	"go.uber.org/zap"
)

// New connects to the daemon described by the DOCKER_* environment.
func New(log *zap.Logger) (*Docker, error) {
	cli, err := IDClient.NewClientWithOpts(IDClient.FromEnv, IDClient.WithAPIVersionNegotiation())

	if err != nil {
		return nil, errors.Wrap(err, "docker client")
	}

	return NewWithClient(cli, log), nil
}

func NewWithClient(api API, log *zap.Logger) *Docker {
	return &Docker{
		Client: api,
		logger: logger.OrNop(log),
	}
}

func (docker *Docker) Close() error {
	return docker.Client.Close()
}
