// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ErrorResponse is the JSON body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`

	// Fields lists offending field names for validation failures.
	Fields []string `json:"fields,omitempty"`

	// AccountID is set when a CRM Account was created before the request failed.
	AccountID string `json:"account_id,omitempty"`
}

// LoginResponse is returned by POST /login.
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// UserResponse wraps a single user.
type UserResponse struct {
	User User `json:"user"`
}

// UsersResponse wraps a list of users.
type UsersResponse struct {
	Users []User `json:"users"`
}

// CategoryResponse wraps a single category.
type CategoryResponse struct {
	Category Category `json:"category"`
}

// CategoriesResponse wraps a list of categories.
type CategoriesResponse struct {
	Categories []Category `json:"categories"`
}

// InventoryResponse wraps a single inventory with its fields.
type InventoryResponse struct {
	Inventory Inventory         `json:"inventory"`
	Fields    []FieldDefinition `json:"fields"`
}

// InventoriesResponse wraps a list of inventories.
type InventoriesResponse struct {
	Total       int         `json:"total"`
	Inventories []Inventory `json:"inventories"`
}

// FieldsResponse wraps field definitions.
type FieldsResponse struct {
	Fields []FieldDefinition `json:"fields"`
}

// ItemResponse wraps a single item.
type ItemResponse struct {
	Item Item `json:"item"`
}

// ItemsResponse wraps the items of one inventory.
type ItemsResponse struct {
	InventoryID int64  `json:"inventory_id"`
	Items       []Item `json:"items"`
}

// MessageResponse acknowledges a mutation without a resource body.
type MessageResponse struct {
	Message string `json:"message"`
}

// ItemsDeletedResponse reports how many items a batch delete removed.
type ItemsDeletedResponse struct {
	Message      string `json:"message"`
	DeletedCount int64  `json:"deleted_count"`
}

// CRMContactResponse is returned by POST /crm/contacts.
type CRMContactResponse struct {
	OK bool `json:"ok"`
	CRMResult
}

// VersionResponse describes the running build.
type VersionResponse struct {
	Version     string `json:"version"`
	BuildDate   string `json:"build_date"`
	BuildCommit string `json:"build_commit"`
}
