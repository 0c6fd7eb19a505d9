package usecase

import "errors"

var (
	ErrInvalidURL         = errors.New("invalid URL")
	ErrServiceUnavailable = errors.New("service unavailable")
	ErrURLNotFound        = errors.New("URL not found")
)
