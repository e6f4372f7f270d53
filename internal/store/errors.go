package store

import "errors"

// Domain-level store error sentinels.
var (
	ErrNotFound      = errors.New("recommendation not found")
	ErrInvalidStatus = errors.New("invalid moderation status")
)
