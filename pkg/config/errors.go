package config

import "errors"

var (
	// ErrParsingConfig is returned when environment variables cannot be parsed into the config struct.
	ErrParsingConfig = errors.New("failed to parse environment variables into config")

	// ErrReadingDotenv is returned when an explicitly configured dotenv file cannot be read.
	ErrReadingDotenv = errors.New("failed to read dotenv file")
)
