package weighted

import "errors"

// Known errors.
var (
	ErrNotSupportedMethod = errors.New("not supported selection method")
)
