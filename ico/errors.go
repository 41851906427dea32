package ico

import "errors"

// Common errors
var (
	ErrNoImages   = errors.New("no target images")
	ErrMissingDir = errors.New("destination directory does not exist")
)
