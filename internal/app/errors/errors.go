package errors

import (
	"errors"
)

var (
	ErrFailedToReadConfig  = errors.New("failed to read config file")
	ErrFailedToParseConfig = errors.New("failed to parse config file")
	ErrInvalidConfig       = errors.New("invalid configuration")
	ErrInvalidLogsBuffer   = errors.New("logs buffer must be positive")
	ErrInvalidTailCount    = errors.New("tail count must be a positive integer or 'all'")
	ErrInvalidImageVersion = errors.New("invalid image version")

	ErrUnknownService  = errors.New("unknown service")
	ErrNoServicesMatch = errors.New("no services match pattern")
	ErrInvalidPattern  = errors.New("invalid service pattern")
)

var (
	As  = errors.As
	Is  = errors.Is
	New = errors.New
)
