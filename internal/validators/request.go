package validators

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"github.com/MKhiriev/inventory-keeper/internal/utils"
	"github.com/MKhiriev/inventory-keeper/models"
)

const (
	FieldUserID      = "id"
	FieldName        = "name"
	FieldEmail       = "email"
	FieldPassword    = "password"
	FieldRole        = "role"
	FieldStatus      = "status"
	FieldUsers       = "users"
	FieldLabel       = "category"
	FieldOwnerID     = "userId"
	FieldCategoryID  = "categoryId"
	FieldFields      = "fields"
	FieldItemIDs     = "itemIds"
	FieldCompany     = "company"
	FieldAccessToken = "access_token"
	FieldInstanceURL = "instance_url"
)

// bcrypt ignores input past this length.
const maxPasswordBytes = 72

// RequestValidator checks the shape of incoming request payloads before they
// reach business logic.
type RequestValidator struct {
}

func NewRequestValidator() Validator {
	return &RequestValidator{}
}

func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateUser(value, fields...)
	case *models.User:
		return v.validateUser(*value, fields...)

	case models.UserUpdate:
		return v.validateUserUpdate(value, fields...)
	case *models.UserUpdate:
		return v.validateUserUpdate(*value, fields...)

	case models.BulkUserUpdateRequest:
		return v.validateBulkUserUpdate(value)
	case *models.BulkUserUpdateRequest:
		return v.validateBulkUserUpdate(*value)

	case models.Category:
		return v.validateCategory(value)
	case *models.Category:
		return v.validateCategory(*value)

	case models.CreateInventoryRequest:
		return v.validateCreateInventory(value, fields...)
	case *models.CreateInventoryRequest:
		return v.validateCreateInventory(*value, fields...)

	case models.DefineFieldsRequest:
		return ValidateFieldSchemas(value.Fields)
	case *models.DefineFieldsRequest:
		return ValidateFieldSchemas(value.Fields)

	case models.DeleteItemsRequest:
		return v.validateDeleteItems(value)
	case *models.DeleteItemsRequest:
		return v.validateDeleteItems(*value)

	case models.CRMContact:
		return v.validateCRMContact(value)
	case *models.CRMContact:
		return v.validateCRMContact(*value)

	case models.CRMCredential:
		return v.validateCRMCredential(value)
	case *models.CRMCredential:
		return v.validateCRMCredential(*value)

	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateUser(user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if strings.TrimSpace(user.Name) == "" {
				return fieldError(ErrMissingField, FieldName)
			}
		case FieldEmail:
			if strings.TrimSpace(user.Email) == "" {
				return fieldError(ErrMissingField, FieldEmail)
			}
			if !isBareAddress(user.Email) {
				return fieldError(ErrInvalidField, FieldEmail)
			}
		case FieldPassword:
			if user.Password == "" {
				return fieldError(ErrMissingField, FieldPassword)
			}
			if len(user.Password) > maxPasswordBytes {
				return fieldError(ErrInvalidField, FieldPassword)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// isBareAddress reports whether email is a plain addr-spec, rejecting display
// names and angle brackets that mail.ParseAddress accepts.
func isBareAddress(email string) bool {
	email = strings.TrimSpace(email)
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}

func (v *RequestValidator) validateUserUpdate(update models.UserUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldRole, FieldStatus}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if !utils.IsValidUUID(update.UserID) {
				return fieldError(ErrInvalidField, FieldUserID)
			}
		case FieldRole:
			if update.Role != nil && !update.Role.IsValid() {
				return fieldError(ErrInvalidField, FieldRole)
			}
		case FieldStatus:
			if update.Status != nil && !update.Status.IsValid() {
				return fieldError(ErrInvalidField, FieldStatus)
			}
		default:
			return ErrUnknownField
		}
	}

	if update.Role == nil && update.Status == nil {
		return fieldError(ErrNoFieldsToUpdate, FieldRole, FieldStatus)
	}

	return nil
}

func (v *RequestValidator) validateBulkUserUpdate(request models.BulkUserUpdateRequest) error {
	if len(request.Users) == 0 {
		return fieldError(ErrEmptyUpdates, FieldUsers)
	}

	for i, update := range request.Users {
		if err := v.validateUserUpdate(update); err != nil {
			return fmt.Errorf("validation error at index %d: %w", i, err)
		}
	}

	return nil
}

func (v *RequestValidator) validateCategory(category models.Category) error {
	if strings.TrimSpace(category.Label) == "" {
		return fieldError(ErrMissingField, FieldLabel)
	}
	return nil
}

func (v *RequestValidator) validateCreateInventory(request models.CreateInventoryRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldOwnerID, FieldName, FieldCategoryID, FieldFields}
	}

	for _, f := range fields {
		switch f {
		case FieldOwnerID:
			if request.UserID != "" && !utils.IsValidUUID(request.UserID) {
				return fieldError(ErrInvalidField, FieldOwnerID)
			}
		case FieldName:
			if strings.TrimSpace(request.Name) == "" {
				return fieldError(ErrMissingField, FieldName)
			}
		case FieldCategoryID:
			if request.CategoryID <= 0 {
				return fieldError(ErrMissingField, FieldCategoryID)
			}
		case FieldFields:
			if err := ValidateFieldSchemas(request.Fields); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateDeleteItems(request models.DeleteItemsRequest) error {
	if len(request.ItemIDs) == 0 {
		return fieldError(ErrEmptyIDs, FieldItemIDs)
	}
	for _, id := range request.ItemIDs {
		if id <= 0 {
			return fieldError(ErrInvalidField, FieldItemIDs)
		}
	}
	return nil
}

func (v *RequestValidator) validateCRMContact(contact models.CRMContact) error {
	var missing []string
	if strings.TrimSpace(contact.Email) == "" {
		missing = append(missing, FieldEmail)
	}
	if strings.TrimSpace(contact.Company) == "" {
		missing = append(missing, FieldCompany)
	}
	if len(missing) > 0 {
		return fieldError(ErrMissingField, missing...)
	}
	return nil
}

func (v *RequestValidator) validateCRMCredential(credential models.CRMCredential) error {
	var missing []string
	if credential.AccessToken == "" {
		missing = append(missing, FieldAccessToken)
	}
	if credential.InstanceURL == "" {
		missing = append(missing, FieldInstanceURL)
	}
	if len(missing) > 0 {
		return fieldError(ErrMissingField, missing...)
	}
	return nil
}
