package autoposition

import "errors"

// ErrUnknownBox is returned when an operation references a box id that is not registered.
var ErrUnknownBox = errors.New("unknown box")
