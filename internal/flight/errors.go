package flight

import "errors"

// ErrInvalidPassengers is returned for a passenger count below one.
var ErrInvalidPassengers = errors.New("passenger count must be at least 1")
