package domain

import "errors"

var (
	ErrProfileNotFound  = errors.New("profile not found")
	ErrUserEmailTaken   = errors.New("user with this email already exists")
	ErrInvalidInput     = errors.New("invalid input")
	ErrCacheUnavailable = errors.New("profile cache unavailable")
)
