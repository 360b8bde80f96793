package platforms

import (
	"context"
)

type Runtime interface {
	List(ctx context.Context) ([]*Container, error)
	ListImages(ctx context.Context) ([]string, error)
	Start(ctx context.Context, request *LaunchRequest) (*Container, error)
	// Resume starts an existing container that is not running.
	Resume(ctx context.Context, name string) error
	// Inspect returns nil, nil when no container carries the name.
	Inspect(ctx context.Context, name string) (*Container, error)
	Close() error
}

type ImageManager interface {
	Ensure(ctx context.Context, image string) (string, error)
}
