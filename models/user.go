// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Role is the authorization role of an account.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	}
	return false
}

// Status is the lifecycle state of an account.
// Only [StatusBlocked] restricts access; the other states are informational.
type Status string

const (
	StatusUnverified Status = "unverified"
	StatusVerified   Status = "verified"
	StatusActive     Status = "active"
	StatusBlocked    Status = "blocked"
)

// IsValid reports whether s is one of the known statuses.
func (s Status) IsValid() bool {
	switch s {
	case StatusUnverified, StatusVerified, StatusActive, StatusBlocked:
		return true
	}
	return false
}

// User represents a registered account.
//
// PasswordHash is never serialized; Password is only read from incoming
// register/login payloads and never written back.
type User struct {
	// UserID is the server-assigned UUID of the account.
	UserID string `json:"id"`

	// Name is the display name supplied at registration.
	Name string `json:"name"`

	// Email is unique across accounts, compared case-insensitively.
	Email string `json:"email"`

	// Password is the plaintext secret received from the client.
	Password string `json:"password,omitempty"`

	// PasswordHash is the stored secret hash.
	PasswordHash string `json:"-"`

	Role   Role   `json:"role"`
	Status Status `json:"status"`

	// LastLogin is nil until the first successful login.
	LastLogin *time.Time `json:"last_login"`

	CreatedAt time.Time `json:"created_at"`
}

// Public returns a copy of u that is safe to send to clients.
func (u User) Public() User {
	u.Password = ""
	u.PasswordHash = ""
	return u
}

// UserUpdate is a partial role/status change for one account.
// Nil fields are left untouched.
type UserUpdate struct {
	UserID string  `json:"id"`
	Role   *Role   `json:"role,omitempty"`
	Status *Status `json:"status,omitempty"`
}

// BulkUserUpdateRequest is the body of the admin bulk update endpoint.
type BulkUserUpdateRequest struct {
	Users []UserUpdate `json:"users"`
}
