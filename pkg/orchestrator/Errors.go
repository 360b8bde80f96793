package orchestrator

import "errors"

var (
	ErrVerificationFailed = errors.New("could not validate container")
	errNoHealthyEndpoint  = errors.New("no endpoint passed the health check")
)
