package api

import (
	"errors"
	"net/http"

	"github.com/wildme/dockerctl/pkg/image"
	"github.com/wildme/dockerctl/pkg/orchestrator"
	"github.com/wildme/dockerctl/pkg/platforms"
	"github.com/wildme/dockerctl/pkg/ports"
	"github.com/wildme/dockerctl/pkg/registry"
)

var ErrInvalidQuery = errors.New("invalid query parameter")

func statusFor(err error) int {
	switch {
	case errors.Is(err, registry.ErrNotRegistered):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidQuery):
		return http.StatusBadRequest
	case errors.Is(err, platforms.ErrNameConflict):
		return http.StatusConflict
	case errors.Is(err, image.ErrNotImplemented):
		return http.StatusNotImplemented
	case errors.Is(err, orchestrator.ErrVerificationFailed), errors.Is(err, ports.ErrNoPortAvailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
