package model

import "errors"

// Common errors used across the application
var (
	// Config errors
	ErrInvalidConfig = errors.New("invalid game configuration")

	// Bot errors
	ErrUnknownStrategy = errors.New("unknown bot strategy")

	// Storage errors
	ErrResultNotFound     = errors.New("session result not found")
	ErrInvalidStorageType = errors.New("invalid storage type")
)
