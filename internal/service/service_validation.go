package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/inventory-keeper/internal/access"
	"github.com/MKhiriev/inventory-keeper/internal/validators"
	"github.com/MKhiriev/inventory-keeper/models"
)

// The validation services decorate a service and reject malformed payloads
// before the inner service sees them. Methods without a payload pass through
// the embedded service unchanged.

type AuthValidationService struct {
	AuthService
	validator validators.Validator
}

func NewAuthValidationService() *AuthValidationService {
	return &AuthValidationService{validator: validators.NewRequestValidator()}
}

func (v *AuthValidationService) Wrap(inner AuthService) AuthService {
	v.AuthService = inner
	return v
}

func (v *AuthValidationService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	if err := v.validator.Validate(ctx, user); err != nil {
		return models.User{}, fmt.Errorf("invalid registration: %w", err)
	}
	return v.AuthService.RegisterUser(ctx, user)
}

func (v *AuthValidationService) Login(ctx context.Context, user models.User) (models.User, error) {
	if err := v.validator.Validate(ctx, user, validators.FieldEmail, validators.FieldPassword); err != nil {
		return models.User{}, fmt.Errorf("invalid login: %w", err)
	}
	return v.AuthService.Login(ctx, user)
}

type UserValidationService struct {
	UserService
	validator validators.Validator
}

func NewUserValidationService() *UserValidationService {
	return &UserValidationService{validator: validators.NewRequestValidator()}
}

func (v *UserValidationService) Wrap(inner UserService) UserService {
	v.UserService = inner
	return v
}

// UpdateUser and UpdateUsers are admin only, so the caller is checked before
// the payload.
func (v *UserValidationService) UpdateUser(ctx context.Context, caller models.Caller, update models.UserUpdate) (models.User, error) {
	if err := access.Decide(caller, access.PolicyAdminOnly, ""); err != nil {
		return models.User{}, err
	}
	if err := v.validator.Validate(ctx, update); err != nil {
		return models.User{}, fmt.Errorf("invalid user update: %w", err)
	}
	return v.UserService.UpdateUser(ctx, caller, update)
}

// UpdateUsers validates every entry before any of them is applied.
func (v *UserValidationService) UpdateUsers(ctx context.Context, caller models.Caller, request models.BulkUserUpdateRequest) error {
	if err := access.Decide(caller, access.PolicyAdminOnly, ""); err != nil {
		return err
	}
	if err := v.validator.Validate(ctx, request); err != nil {
		return fmt.Errorf("invalid bulk user update: %w", err)
	}
	return v.UserService.UpdateUsers(ctx, caller, request)
}

type CategoryValidationService struct {
	CategoryService
	validator validators.Validator
}

func NewCategoryValidationService() *CategoryValidationService {
	return &CategoryValidationService{validator: validators.NewRequestValidator()}
}

func (v *CategoryValidationService) Wrap(inner CategoryService) CategoryService {
	v.CategoryService = inner
	return v
}

func (v *CategoryValidationService) CreateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	if err := v.validator.Validate(ctx, category); err != nil {
		return models.Category{}, fmt.Errorf("invalid category: %w", err)
	}
	return v.CategoryService.CreateCategory(ctx, category)
}

type InventoryValidationService struct {
	InventoryService
	validator validators.Validator
}

func NewInventoryValidationService() *InventoryValidationService {
	return &InventoryValidationService{validator: validators.NewRequestValidator()}
}

func (v *InventoryValidationService) Wrap(inner InventoryService) InventoryService {
	v.InventoryService = inner
	return v
}

func (v *InventoryValidationService) CreateInventory(ctx context.Context, caller models.Caller, request models.CreateInventoryRequest) (models.Inventory, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.Inventory{}, fmt.Errorf("invalid inventory: %w", err)
	}
	return v.InventoryService.CreateInventory(ctx, caller, request)
}

type SchemaValidationService struct {
	SchemaService
	validator validators.Validator
}

func NewSchemaValidationService() *SchemaValidationService {
	return &SchemaValidationService{validator: validators.NewRequestValidator()}
}

func (v *SchemaValidationService) Wrap(inner SchemaService) SchemaService {
	v.SchemaService = inner
	return v
}

func (v *SchemaValidationService) DefineFields(ctx context.Context, caller models.Caller, inventoryID int64, request models.DefineFieldsRequest) ([]models.FieldDefinition, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return nil, fmt.Errorf("invalid field declarations: %w", err)
	}
	return v.SchemaService.DefineFields(ctx, caller, inventoryID, request)
}

type ItemValidationService struct {
	ItemService
	validator validators.Validator
}

func NewItemValidationService() *ItemValidationService {
	return &ItemValidationService{validator: validators.NewRequestValidator()}
}

func (v *ItemValidationService) Wrap(inner ItemService) ItemService {
	v.ItemService = inner
	return v
}

func (v *ItemValidationService) DeleteItems(ctx context.Context, caller models.Caller, inventoryID int64, request models.DeleteItemsRequest) (int64, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return 0, fmt.Errorf("invalid item deletion: %w", err)
	}
	return v.ItemService.DeleteItems(ctx, caller, inventoryID, request)
}

type CRMValidationService struct {
	CRMService
	validator validators.Validator
}

func NewCRMValidationService() *CRMValidationService {
	return &CRMValidationService{validator: validators.NewRequestValidator()}
}

func (v *CRMValidationService) Wrap(inner CRMService) CRMService {
	v.CRMService = inner
	return v
}

func (v *CRMValidationService) SaveCredential(ctx context.Context, caller models.Caller, credential models.CRMCredential) error {
	if err := v.validator.Validate(ctx, credential); err != nil {
		return fmt.Errorf("invalid crm credential: %w", err)
	}
	return v.CRMService.SaveCredential(ctx, caller, credential)
}

func (v *CRMValidationService) CreateContact(ctx context.Context, caller models.Caller, contact models.CRMContact) (models.CRMResult, error) {
	if err := v.validator.Validate(ctx, contact); err != nil {
		return models.CRMResult{}, fmt.Errorf("invalid crm contact: %w", err)
	}
	return v.CRMService.CreateContact(ctx, caller, contact)
}
