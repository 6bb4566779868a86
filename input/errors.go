package input

import "errors"

// ErrLineTooLong indicates a line exceeded MaxLineSize.
var ErrLineTooLong = errors.New("input: line exceeds maximum size")
