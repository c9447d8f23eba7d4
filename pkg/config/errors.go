package config

import "errors"

var (
	ErrInvalidTarget = errors.New("config: target must be a non-nil pointer to a struct")
	ErrReadFile      = errors.New("config: failed to read file")
	ErrParseFile     = errors.New("config: failed to parse file")
	ErrParseEnv      = errors.New("config: failed to parse environment")
)
