// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"encoding/json"
	"slices"

	"github.com/MKhiriev/inventory-keeper/models"
)

// ValidateItemValues checks submitted item values against the declared
// fields of an inventory.
//
// Any key without a declaration rejects the whole submission with
// [ErrUnknownFields]. Otherwise every declared string field must hold a
// JSON string and every number field a JSON number; all offenders are
// reported together as [ErrTypeMismatch]. Boolean and date fields are not
// type-checked. Field names in errors are sorted.
func ValidateItemValues(fields []models.FieldDefinition, values models.ItemValues) error {
	if len(values) == 0 {
		return fieldError(ErrMissingField, "values")
	}

	declared := make(map[string]models.FieldType, len(fields))
	for _, f := range fields {
		declared[f.FieldName] = f.FieldType
	}

	var unknown []string
	for key := range values {
		if _, ok := declared[key]; !ok {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) > 0 {
		slices.Sort(unknown)
		return fieldError(ErrUnknownFields, unknown...)
	}

	var mismatched []string
	for key, value := range values {
		if !matchesType(declared[key], value) {
			mismatched = append(mismatched, key)
		}
	}
	if len(mismatched) > 0 {
		slices.Sort(mismatched)
		return fieldError(ErrTypeMismatch, mismatched...)
	}

	return nil
}

func matchesType(fieldType models.FieldType, value any) bool {
	switch fieldType {
	case models.FieldTypeString:
		_, ok := value.(string)
		return ok
	case models.FieldTypeNumber:
		return isNumber(value)
	default:
		// boolean and date are accepted as submitted
		return true
	}
}

func isNumber(value any) bool {
	switch v := value.(type) {
	case json.Number:
		_, err := v.Float64()
		return err == nil
	case float64, float32,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return true
	}
	return false
}
