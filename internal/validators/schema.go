package validators

import (
	"slices"
	"strings"

	"github.com/MKhiriev/inventory-keeper/models"
)

// ValidateFieldSchemas checks a batch of field declarations: the batch is
// non-empty, every name is set and unique within the batch, and every
// non-empty type is supported. Empty types are allowed and mean string.
func ValidateFieldSchemas(schemas []models.FieldSchema) error {
	if len(schemas) == 0 {
		return fieldError(ErrEmptyFields, "fields")
	}

	seen := make(map[string]int, len(schemas))
	var invalidTypes []string
	for _, s := range schemas {
		name := strings.TrimSpace(s.FieldName)
		if name == "" {
			return fieldError(ErrMissingField, "field_name")
		}
		seen[name]++

		if s.FieldType != "" && !s.FieldType.IsValid() {
			invalidTypes = append(invalidTypes, name)
		}
	}

	var duplicates []string
	for name, n := range seen {
		if n > 1 {
			duplicates = append(duplicates, name)
		}
	}
	if len(duplicates) > 0 {
		slices.Sort(duplicates)
		return fieldError(ErrDuplicateFieldName, duplicates...)
	}

	if len(invalidTypes) > 0 {
		slices.Sort(invalidTypes)
		return fieldError(ErrInvalidFieldType, invalidTypes...)
	}

	return nil
}
