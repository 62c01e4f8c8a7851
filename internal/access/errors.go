package access

import "errors"

var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrBlocked         = errors.New("account is blocked")
	ErrNotOwner        = errors.New("only the owner or an admin may do this")
	ErrAdminOnly       = errors.New("admin role required")
	ErrUnknownPolicy   = errors.New("unknown access policy")
)
