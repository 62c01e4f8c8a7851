package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("crm rejected the request")
	ErrUnauthorized        = errors.New("crm access token rejected")
	ErrForbidden           = errors.New("crm access forbidden")
	ErrNotFound            = errors.New("crm resource not found")
	ErrConflict            = errors.New("crm record conflict")
	ErrInternalServerError = errors.New("crm internal error")
	ErrBadGateway          = errors.New("crm unavailable")

	ErrMissingInstanceURL  = errors.New("crm credential has no instance url")
	ErrMissingRefreshToken = errors.New("crm credential has no refresh token")
	ErrMissingRecordID     = errors.New("crm response has no record id")
)
