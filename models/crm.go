// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// CRMCredential is the per-user OAuth credential for the CRM.
type CRMCredential struct {
	UserID       string    `json:"-"`
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	InstanceURL  string    `json:"instance_url"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CRMContact is the lead data used to create an Account and a Contact.
type CRMContact struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Company  string `json:"company"`
	JobTitle string `json:"job_title"`
	Phone    string `json:"phone"`
	Notes    string `json:"notes"`
}

// CRMResult holds the identifiers of the created CRM records.
type CRMResult struct {
	AccountID string `json:"accountId"`
	ContactID string `json:"contactId"`
}

// CRMHealth reports whether the caller has a stored CRM credential.
type CRMHealth struct {
	OK       bool `json:"ok"`
	HasToken bool `json:"has_token"`
}
