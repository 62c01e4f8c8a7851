// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Token is both the JWT claims set issued to clients and the parsed result
// of verifying one.
//
// Only identity is carried in the token. Role and status are deliberately
// absent: they are re-read from storage on every request.
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// Email of the account at issuance time.
	Email string `json:"email"`

	// SignedString is the compact serialized form sent to clients.
	SignedString string `json:"-"`

	// UserID is extracted from the subject claim after verification.
	UserID string `json:"-"`
}

// String returns the signed compact form of the token.
func (t *Token) String() string {
	return t.SignedString
}
