package helpers

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wildme/dockerctl/pkg/orchestrator"
	"github.com/wildme/dockerctl/pkg/registry"
)

func TestExitCode(t *testing.T) {
	assert.Equal(t, EXIT_OK, ExitCode(nil))
	assert.Equal(t, EXIT_UNVERIFIED, ExitCode(fmt.Errorf("%w: svc", orchestrator.ErrVerificationFailed)))
	assert.Equal(t, EXIT_UNREGISTERED, ExitCode(registry.ErrNotRegistered))
	assert.Equal(t, EXIT_USAGE, ExitCode(registry.ErrInvalidImage))
	assert.Equal(t, EXIT_FAILURE, ExitCode(errors.New("boom")))
}

func TestPrintError(t *testing.T) {
	out := &bytes.Buffer{}

	assert.Equal(t, EXIT_FAILURE, PrintError(out, errors.New("boom")))
	assert.Equal(t, "error: boom\n", out.String())
}
