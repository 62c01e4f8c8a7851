package utils

import "errors"

var (
	ErrInvalidTokenParams  = errors.New("invalid params for generating JWT token")
	ErrInvalidToken        = errors.New("invalid token")
	ErrTokenIsExpired      = errors.New("token is expired")
	ErrInvalidAuthHeader   = errors.New("invalid authorization header")
	ErrPasswordHashFailure = errors.New("password hashing failed")
)
