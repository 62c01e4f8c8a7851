package service

import "errors"

var (
	ErrInvalidCredentials      = errors.New("invalid email or password")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrNoInventoriesFound = errors.New("no inventories found for user")

	ErrCRMNotConfigured = errors.New("crm is not connected for this user")
	ErrCRMFailure       = errors.New("crm request failed")
)
