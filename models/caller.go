// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Caller is the authenticated principal of a request, resolved from the
// token subject and the live account record.
type Caller struct {
	UserID string
	Email  string
	Role   Role
	Status Status
}

// IsAdmin reports whether the caller currently holds the admin role.
func (c Caller) IsAdmin() bool {
	return c.Role == RoleAdmin
}
