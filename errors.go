package screen

import (
	"errors"
	"fmt"
)

// Errors.
var (
	ErrInvalidConfig       = errors.New("screen: invalid configuration")
	ErrInvalidRotation     = fmt.Errorf("%w: invalid rotation", ErrInvalidConfig)
	ErrMissingConfig       = fmt.Errorf("%w: missing required setting", ErrInvalidConfig)
	ErrInvalidLevel        = fmt.Errorf("%w: invalid log level", ErrInvalidConfig)
	ErrUnsupportedRotation = errors.New("screen: rotation not supported by driver")
	ErrUnknownOperation    = errors.New("screen: unknown operation")
	ErrClosed              = errors.New("screen: device is closed")
)
