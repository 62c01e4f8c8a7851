package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/inventory-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validUUID = "0b6d8e4e-3f1a-4c55-9f0e-7a3c1d2b9e10"

func rolePtr(r models.Role) *models.Role       { return &r }
func statusPtr(s models.Status) *models.Status { return &s }

func TestNewRequestValidator(t *testing.T) {
	require.NotNil(t, NewRequestValidator())
}

func TestRequestValidator_UnsupportedType(t *testing.T) {
	v := NewRequestValidator()
	assert.ErrorIs(t, v.Validate(context.Background(), 42), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(context.Background(), "x"), ErrUnsupportedType)
}

func TestRequestValidator_User(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()
	valid := models.User{Name: "Alice", Email: "alice@example.com", Password: "pw"}

	tests := []struct {
		name      string
		user      models.User
		fields    []string
		wantErr   error
		wantField string
	}{
		{name: "valid registration", user: valid},
		{name: "login subset ignores name", user: models.User{Email: "a@b.c", Password: "pw"}, fields: []string{FieldEmail, FieldPassword}},
		{name: "missing name", user: models.User{Email: "a@b.c", Password: "pw"}, wantErr: ErrMissingField, wantField: FieldName},
		{name: "missing email", user: models.User{Name: "A", Password: "pw"}, wantErr: ErrMissingField, wantField: FieldEmail},
		{name: "malformed email", user: models.User{Name: "A", Email: "nope", Password: "pw"}, wantErr: ErrInvalidField, wantField: FieldEmail},
		{name: "display name email", user: models.User{Name: "A", Email: "Bob <bob@x.com>", Password: "pw"}, wantErr: ErrInvalidField, wantField: FieldEmail},
		{name: "angle bracket email", user: models.User{Name: "A", Email: "<bob@x.com>", Password: "pw"}, wantErr: ErrInvalidField, wantField: FieldEmail},
		{name: "padded email", user: models.User{Name: "A", Email: " bob@x.com ", Password: "pw"}},
		{name: "missing password", user: models.User{Name: "A", Email: "a@b.c"}, wantErr: ErrMissingField, wantField: FieldPassword},
		{
			name:      "password too long",
			user:      models.User{Name: "A", Email: "a@b.c", Password: string(make([]byte, 73))},
			wantErr:   ErrInvalidField,
			wantField: FieldPassword,
		},
		{name: "unknown selector", user: valid, fields: []string{"nickname"}, wantErr: ErrUnknownField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, &tt.user, tt.fields...)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
			if tt.wantField != "" {
				assert.Equal(t, []string{tt.wantField}, FieldsOf(err))
			}
		})
	}
}

func TestRequestValidator_UserUpdate(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.UserUpdate{UserID: validUUID, Role: rolePtr(models.RoleAdmin)}))
	assert.NoError(t, v.Validate(ctx, models.UserUpdate{UserID: validUUID, Status: statusPtr(models.StatusBlocked)}))

	assert.ErrorIs(t, v.Validate(ctx, models.UserUpdate{UserID: validUUID}), ErrNoFieldsToUpdate)
	assert.ErrorIs(t, v.Validate(ctx, models.UserUpdate{UserID: "7", Role: rolePtr(models.RoleUser)}), ErrInvalidField)
	assert.ErrorIs(t, v.Validate(ctx, models.UserUpdate{UserID: validUUID, Role: rolePtr("owner")}), ErrInvalidField)
	assert.ErrorIs(t, v.Validate(ctx, models.UserUpdate{UserID: validUUID, Status: statusPtr("asleep")}), ErrInvalidField)

	// path-addressed updates skip the id check
	assert.NoError(t, v.Validate(ctx, models.UserUpdate{Role: rolePtr(models.RoleUser)}, FieldRole, FieldStatus))
}

func TestRequestValidator_BulkUserUpdate(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	assert.ErrorIs(t, v.Validate(ctx, models.BulkUserUpdateRequest{}), ErrEmptyUpdates)

	err := v.Validate(ctx, &models.BulkUserUpdateRequest{Users: []models.UserUpdate{
		{UserID: validUUID, Role: rolePtr(models.RoleAdmin)},
		{UserID: validUUID},
	}})
	require.ErrorIs(t, err, ErrNoFieldsToUpdate)
	assert.Contains(t, err.Error(), "index 1")

	assert.NoError(t, v.Validate(ctx, models.BulkUserUpdateRequest{Users: []models.UserUpdate{
		{UserID: validUUID, Status: statusPtr(models.StatusActive)},
	}}))
}

func TestRequestValidator_Category(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.Category{Label: "Books"}))
	assert.ErrorIs(t, v.Validate(ctx, &models.Category{Label: "   "}), ErrMissingField)
}

func TestRequestValidator_CreateInventory(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()
	valid := func() models.CreateInventoryRequest {
		return models.CreateInventoryRequest{
			CategoryID: 1,
			Name:       "Books",
			Fields:     []models.FieldSchema{{FieldName: "title", FieldType: models.FieldTypeString}},
		}
	}

	require.NoError(t, v.Validate(ctx, valid()))

	withOwner := valid()
	withOwner.UserID = validUUID
	require.NoError(t, v.Validate(ctx, &withOwner))

	badOwner := valid()
	badOwner.UserID = "42"
	assert.ErrorIs(t, v.Validate(ctx, badOwner), ErrInvalidField)

	noName := valid()
	noName.Name = ""
	assert.ErrorIs(t, v.Validate(ctx, noName), ErrMissingField)

	noCategory := valid()
	noCategory.CategoryID = 0
	assert.ErrorIs(t, v.Validate(ctx, noCategory), ErrMissingField)

	noFields := valid()
	noFields.Fields = nil
	assert.ErrorIs(t, v.Validate(ctx, noFields), ErrEmptyFields)
}

func TestRequestValidator_DefineFields(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.DefineFieldsRequest{Fields: []models.FieldSchema{{FieldName: "isbn"}}}))
	assert.ErrorIs(t, v.Validate(ctx, &models.DefineFieldsRequest{}), ErrEmptyFields)
}

func TestRequestValidator_DeleteItems(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.DeleteItemsRequest{ItemIDs: []int64{1, 2}}))
	assert.ErrorIs(t, v.Validate(ctx, models.DeleteItemsRequest{}), ErrEmptyIDs)
	assert.ErrorIs(t, v.Validate(ctx, &models.DeleteItemsRequest{ItemIDs: []int64{1, 0}}), ErrInvalidField)
}

func TestRequestValidator_CRM(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.CRMContact{Email: "lead@acme.io", Company: "Acme"}))

	err := v.Validate(ctx, &models.CRMContact{Name: "Lead"})
	require.ErrorIs(t, err, ErrMissingField)
	assert.Equal(t, []string{FieldEmail, FieldCompany}, FieldsOf(err))

	assert.NoError(t, v.Validate(ctx, models.CRMCredential{AccessToken: "t", InstanceURL: "https://x.my.salesforce.com"}))
	err = v.Validate(ctx, &models.CRMCredential{RefreshToken: "r"})
	require.ErrorIs(t, err, ErrMissingField)
	assert.Equal(t, []string{FieldAccessToken, FieldInstanceURL}, FieldsOf(err))
}
