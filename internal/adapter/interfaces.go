// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides outbound integrations of the inventory-keeper
// server.
//
// The primary abstraction is [CRMConnector], which decouples the service layer
// from the CRM REST API. The package ships a Salesforce implementation
// ([NewSalesforceConnector]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] to detect an expired access
// token ([ErrUnauthorized]) and refresh it.
package adapter

import (
	"context"

	"github.com/MKhiriev/inventory-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/crm_connector_mock.go -package=mock

// CRMConnector creates records in the CRM on behalf of a single user whose
// credential is passed on every call.
type CRMConnector interface {
	// CreateAccountAndContact creates an Account named after contact.Company
	// and a Contact linked to it. A non-empty accountID skips the Account step
	// and links the Contact to that Account.
	//
	// On a Contact failure the returned result still carries the Account id.
	// A rejected access token yields a wrapped [ErrUnauthorized], so the
	// caller can refresh and repeat only the failed step.
	CreateAccountAndContact(ctx context.Context, cred models.CRMCredential, contact models.CRMContact, accountID string) (models.CRMResult, error)

	// RefreshCredential exchanges cred.RefreshToken for a new access token.
	// The returned credential keeps the user and refresh token of cred unless
	// the token endpoint rotates them.
	RefreshCredential(ctx context.Context, cred models.CRMCredential) (models.CRMCredential, error)
}
