package linear

import "errors"

// ErrEmpty is returned when an element is observed or removed from a container holding no elements.
var ErrEmpty = errors.New("container is empty")

// ErrCapacity is returned when a requested capacity cannot hold the current elements.
var ErrCapacity = errors.New("capacity too small")
