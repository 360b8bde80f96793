package helpers

import (
	"errors"
	"fmt"
	"io"

	"github.com/wildme/dockerctl/pkg/orchestrator"
	"github.com/wildme/dockerctl/pkg/registry"
)

const (
	EXIT_OK           = 0
	EXIT_FAILURE      = 1
	EXIT_USAGE        = 2
	EXIT_UNVERIFIED   = 3
	EXIT_UNREGISTERED = 4
)

// ExitCode maps an error to the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return EXIT_OK
	case errors.Is(err, orchestrator.ErrVerificationFailed):
		return EXIT_UNVERIFIED
	case errors.Is(err, registry.ErrNotRegistered):
		return EXIT_UNREGISTERED
	case errors.Is(err, registry.ErrInvalidImage), errors.Is(err, registry.ErrInvalidConfig), errors.Is(err, registry.ErrAlreadyRegistered):
		return EXIT_USAGE
	default:
		return EXIT_FAILURE
	}
}

func PrintError(w io.Writer, err error) int {
	if err == nil {
		return EXIT_OK
	}

	fmt.Fprintf(w, "error: %s\n", err)

	return ExitCode(err)
}
