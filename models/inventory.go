// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Inventory is a named collection of items owned by exactly one user.
// The pair (UserID, Name) is unique.
type Inventory struct {
	InventoryID int64  `json:"id"`
	Name        string `json:"name"`
	UserID      string `json:"user_id"`

	// UserName is filled by listing queries only.
	UserName string `json:"user_name,omitempty"`

	// CategoryID is nil when the category was removed or never set.
	CategoryID   *int64  `json:"category_id"`
	CategoryName *string `json:"category_name"`

	Fields []FieldDefinition `json:"fields"`

	CreatedAt time.Time `json:"created_at"`
}

// CreateInventoryRequest is the body of POST /inventories.
type CreateInventoryRequest struct {
	// UserID is the intended owner. Empty means the caller.
	UserID     string        `json:"userId"`
	CategoryID int64         `json:"categoryId"`
	Name       string        `json:"name"`
	Fields     []FieldSchema `json:"fields"`
}

// DeleteInventoryRequest is the optional body of DELETE /inventories/{id}.
type DeleteInventoryRequest struct {
	UserID string `json:"userId"`
}
