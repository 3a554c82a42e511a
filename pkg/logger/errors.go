package logger

import "errors"

var (
	ErrInvalidFormat = errors.New("invalid log format: must be \"json\" or \"text\"")
	ErrInvalidLevel  = errors.New("invalid log level")
)
