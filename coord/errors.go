package coord

import "errors"

// ErrMalformed indicates a coordinate string is not of the form "x,y".
var ErrMalformed = errors.New("coord: malformed coordinate")
