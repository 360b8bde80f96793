package registry

import "errors"

var (
	ErrAlreadyRegistered = errors.New("container name has already been added to the config registry")
	ErrNotRegistered     = errors.New("container name has not been registered")
	ErrInvalidImage      = errors.New("image name does not have an allowed prefix")
	ErrInvalidConfig     = errors.New("invalid service config")
)
