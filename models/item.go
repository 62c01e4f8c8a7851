// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// ItemValues maps field names to loosely typed values decoded from JSON.
// It is stored as JSONB.
type ItemValues map[string]any

// Value implements [driver.Valuer].
func (v ItemValues) Value() (driver.Value, error) {
	if v == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(v)
}

// Scan implements [sql.Scanner].
func (v *ItemValues) Scan(value any) error {
	if value == nil {
		*v = ItemValues{}
		return nil
	}

	var raw []byte
	switch val := value.(type) {
	case []byte:
		raw = val
	case string:
		raw = []byte(val)
	default:
		return errors.New("type assertion to []byte failed")
	}

	return json.Unmarshal(raw, v)
}

// Item is one record of an inventory. Every key of Values names a declared
// field of that inventory.
type Item struct {
	ItemID      int64      `json:"id"`
	InventoryID int64      `json:"inventory_id"`
	Values      ItemValues `json:"values"`
	CreatedAt   time.Time  `json:"created_at"`
}

// AddItemRequest is the body of POST /inventories/{id}.
type AddItemRequest struct {
	UserID string     `json:"userId"`
	Values ItemValues `json:"values"`
}

// DeleteItemsRequest is the body of DELETE /inventories/{id}/items.
type DeleteItemsRequest struct {
	UserID  string  `json:"userId"`
	ItemIDs []int64 `json:"itemIds"`
}
