package pin

import (
	"errors"
)

var (
	ErrNotFound       = errors.New("pin not found")
	ErrAlreadyPinned  = errors.New("content already pinned")
	ErrInvalidContent = errors.New("invalid pin content")
)
