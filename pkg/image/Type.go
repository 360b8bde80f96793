package image

import (
	"errors"

	"github.com/wildme/dockerctl/pkg/platforms"
	"go.uber.org/zap"
)

var ErrNotImplemented = errors.New("not implemented: images must be pulled by a logged-in operator")

type Manager struct {
	Runtime platforms.Runtime
	logger  *zap.Logger
}
