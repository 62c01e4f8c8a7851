// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// FieldType is the declared type of an inventory field.
type FieldType string

const (
	FieldTypeString  FieldType = "string"
	FieldTypeNumber  FieldType = "number"
	FieldTypeBoolean FieldType = "boolean"
	FieldTypeDate    FieldType = "date"
)

// IsValid reports whether t is one of the supported field types.
func (t FieldType) IsValid() bool {
	switch t {
	case FieldTypeString, FieldTypeNumber, FieldTypeBoolean, FieldTypeDate:
		return true
	}
	return false
}

// FieldDefinition is one declared (name, type, visibility) entry of an
// inventory schema. (InventoryID, FieldName) is unique.
type FieldDefinition struct {
	FieldID     int64     `json:"field_id"`
	InventoryID int64     `json:"inventory_id"`
	FieldName   string    `json:"field_name"`
	FieldType   FieldType `json:"field_type"`
	IsVisible   bool      `json:"is_visible"`
}

// FieldSchema is a field declaration as submitted by clients.
// Empty FieldType means string, nil IsVisible means visible.
type FieldSchema struct {
	FieldName string    `json:"field_name"`
	FieldType FieldType `json:"field_type"`
	IsVisible *bool     `json:"is_visible,omitempty"`
}

// DefineFieldsRequest is the body of POST /inventories/{id}/fields.
type DefineFieldsRequest struct {
	Fields []FieldSchema `json:"fields"`
}
