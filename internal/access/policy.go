// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package access holds the authorization decision table applied to every
// authenticated request.
//
// A decision is a pure function of the live caller record, the route policy
// and, for owner-scoped resources, the owner id. The blocked short-circuit is
// evaluated before any policy.
package access

import (
	"github.com/MKhiriev/inventory-keeper/models"
)

// Policy names an authorization rule attached to a route or operation.
type Policy int

const (
	// PolicyAuthenticated admits any non-blocked caller.
	PolicyAuthenticated Policy = iota
	// PolicySelfOrAdmin admits the resource owner or an admin.
	PolicySelfOrAdmin
	// PolicyAdminOnly admits admins only.
	PolicyAdminOnly
)

func (p Policy) String() string {
	switch p {
	case PolicyAuthenticated:
		return "authenticated"
	case PolicySelfOrAdmin:
		return "self-or-admin"
	case PolicyAdminOnly:
		return "admin-only"
	}
	return "unknown"
}

type rule func(subject models.Caller, ownerID string) error

var decisionTable = map[Policy]rule{
	PolicyAuthenticated: func(models.Caller, string) error {
		return nil
	},
	PolicySelfOrAdmin: func(subject models.Caller, ownerID string) error {
		if subject.IsAdmin() || (ownerID != "" && subject.UserID == ownerID) {
			return nil
		}
		return ErrNotOwner
	},
	PolicyAdminOnly: func(subject models.Caller, _ string) error {
		if subject.IsAdmin() {
			return nil
		}
		return ErrAdminOnly
	},
}

// Decide returns nil when subject may proceed under policy.
//
// ownerID is only consulted by [PolicySelfOrAdmin]. A caller without a user
// id is [ErrUnauthenticated]; a blocked caller is [ErrBlocked] whatever the
// policy.
func Decide(subject models.Caller, policy Policy, ownerID string) error {
	if subject.UserID == "" {
		return ErrUnauthenticated
	}
	if subject.Status == models.StatusBlocked {
		return ErrBlocked
	}

	check, ok := decisionTable[policy]
	if !ok {
		return ErrUnknownPolicy
	}
	return check(subject, ownerID)
}
