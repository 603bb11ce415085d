package exception

import "errors"

var (
	ErrConfigMissingCredentials = errors.New("config: api credentials required")
	ErrConfigInvalidLogLevel    = errors.New("config: invalid log level")
	ErrConfigInvalidBaseURL     = errors.New("config: invalid base url")
	ErrConfigInvalidRecvWindow  = errors.New("config: invalid recv window")
	ErrConfigInvalidTimeout     = errors.New("config: invalid timeout")
)
