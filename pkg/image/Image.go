package image

import (
	"context"
	"fmt"
	"strings"

	"github.com/wildme/dockerctl/pkg/logger"
	"github.com/wildme/dockerctl/pkg/platforms"
	"go.uber.org/zap"
)

const defaultIndex = "docker.io"
const defaultTag = "latest"

func New(runtime platforms.Runtime, log *zap.Logger) *Manager {
	return &Manager{
		Runtime: runtime,
		logger:  logger.OrNop(log),
	}
}

// Ensure returns the local tag matching image, pulling it when missing.
func (manager *Manager) Ensure(ctx context.Context, image string) (string, error) {
	tag, err := manager.Find(ctx, image)

	if err != nil {
		return "", err
	}

	if tag != "" {
		return tag, nil
	}

	manager.logger.Info("image not present locally", zap.String("image", image))

	return manager.Pull(ctx, image)
}

// Find returns the local tag matching image, or "" if there is none.
func (manager *Manager) Find(ctx context.Context, image string) (string, error) {
	tags, err := manager.Runtime.ListImages(ctx)

	if err != nil {
		return "", err
	}

	wanted := normalize(image)

	for _, tag := range tags {
		if normalize(tag) == wanted {
			return tag, nil
		}
	}

	return "", nil
}

// Pull would fetch image from its registry. Registry authentication is done by hand for
// now, see Login.
func (manager *Manager) Pull(ctx context.Context, image string) (string, error) {
	return "", fmt.Errorf("pull %s: %w", image, ErrNotImplemented)
}

func (manager *Manager) Login(ctx context.Context) error {
	return fmt.Errorf("login: %w", ErrNotImplemented)
}

// normalize expands a reference to index/remote:tag so that "wildme/x" and
// "docker.io/wildme/x:latest" compare equal.
func normalize(reference string) string {
	index, remote := splitReposSearchTerm(reference)

	if !hasTag(remote) {
		remote = remote + ":" + defaultTag
	}

	return index + "/" + remote
}

func hasTag(remote string) bool {
	if strings.Contains(remote, "@") {
		return true
	}

	slash := strings.LastIndex(remote, "/")
	return strings.Contains(remote[slash+1:], ":")
}

func splitReposSearchTerm(reposName string) (string, string) {
	nameParts := strings.SplitN(reposName, "/", 2)
	var indexName, remoteName string
	if len(nameParts) == 1 || (!strings.Contains(nameParts[0], ".") &&
		!strings.Contains(nameParts[0], ":") && nameParts[0] != "localhost") {

		indexName = defaultIndex
		remoteName = reposName
	} else {
		indexName = nameParts[0]
		remoteName = nameParts[1]
	}
	return indexName, remoteName
}
