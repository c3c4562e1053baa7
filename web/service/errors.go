package service

import "errors"

// Business failures returned by the services. Controllers map them to
// HTTP status codes in one place.
var (
	ErrNotFound         = errors.New("entity not found")
	ErrForbidden        = errors.New("not the owner of this ad")
	ErrDuplicateEmail   = errors.New("email already registered")
	ErrDuplicateComment = errors.New("already commented on this ad")
	ErrInvalidToken     = errors.New("invalid authentication token")
)
