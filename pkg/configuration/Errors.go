package configuration

import "errors"

var ErrInvalidConfiguration = errors.New("invalid configuration")
