package docker

import (
	"context"

	TDImage "github.com/docker/docker/api/types/image"
	"github.com/pkg/errors"
)

func (docker *Docker) ListImages(ctx context.Context) ([]string, error) {
	images, err := docker.Client.ImageList(ctx, TDImage.ListOptions{
		All: true,
	})

	if err != nil {
		return nil, errors.Wrap(err, "list images")
	}

	tags := make([]string, 0, len(images))

	for _, image := range images {
		tags = append(tags, image.RepoTags...)
	}

	return tags, nil
}
