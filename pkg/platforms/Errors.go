package platforms

import "errors"

var (
	ErrNameConflict = errors.New("container name already in use")
	ErrNotFound     = errors.New("container not found")
)
