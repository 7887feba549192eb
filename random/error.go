package random

import "errors"

// Known errors.
var (
	ErrNoneAvailable  = errors.New("no item available")
	ErrNegativeWeight = errors.New("negative weight is not allowed")
)
