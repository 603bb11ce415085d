package exception

import "errors"

// General errors
var (
	ErrInvalidArgument = errors.New("invalid argument")
)
