// Package utils provides general-purpose helpers shared by the server
// packages: typed context keys, bearer token issuance and verification,
// password hashing, JSON response writing, the outbound HTTP client and
// text normalization.
package utils

import (
	"context"

	"github.com/MKhiriev/inventory-keeper/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

var (
	// UserIDCtxKey holds the token subject (a user UUID string).
	UserIDCtxKey = contextKey("userID")

	// CallerCtxKey holds the resolved [models.Caller] of the request.
	CallerCtxKey = contextKey("caller")
)

// GetUserIDFromContext retrieves the token subject stored by the auth
// middleware. ok is false when the value is missing or has another type.
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(string)
	return userID, ok && userID != ""
}

// WithCaller returns a copy of ctx carrying caller and its user id.
func WithCaller(ctx context.Context, caller models.Caller) context.Context {
	ctx = context.WithValue(ctx, UserIDCtxKey, caller.UserID)
	return context.WithValue(ctx, CallerCtxKey, caller)
}

// GetCallerFromContext retrieves the caller stored by [WithCaller].
func GetCallerFromContext(ctx context.Context) (models.Caller, bool) {
	caller, ok := ctx.Value(CallerCtxKey).(models.Caller)
	return caller, ok
}
