// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business rules of inventory-keeper: account
// lifecycle and tokens, access decisions, the per-inventory schema registry,
// item validation and the CRM integration.
//
// Methods acting on behalf of a user take the resolved [models.Caller]
// explicitly and apply the access policies of package access before touching
// storage.
package service

import (
	"context"

	"github.com/MKhiriev/inventory-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// AccessService resolves the caller of a request from the live account
// record. Role and status are never taken from the token.
type AccessService interface {
	ResolveCaller(ctx context.Context, userID string) (models.Caller, error)
}

type UserService interface {
	GetUser(ctx context.Context, caller models.Caller) (models.User, error)
	ListUsers(ctx context.Context, caller models.Caller) ([]models.User, error)
	UpdateUser(ctx context.Context, caller models.Caller, update models.UserUpdate) (models.User, error)
	UpdateUsers(ctx context.Context, caller models.Caller, request models.BulkUserUpdateRequest) error
	DeleteUser(ctx context.Context, caller models.Caller, userID string) error
}

type CategoryService interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	CreateCategory(ctx context.Context, category models.Category) (models.Category, error)
}

type InventoryService interface {
	CreateInventory(ctx context.Context, caller models.Caller, request models.CreateInventoryRequest) (models.Inventory, error)
	ListInventories(ctx context.Context) ([]models.Inventory, error)
	ListUserInventories(ctx context.Context, userID string) ([]models.Inventory, error)
	DeleteInventory(ctx context.Context, caller models.Caller, inventoryID int64, request models.DeleteInventoryRequest) error
}

// SchemaService is the registry of field declarations per inventory.
type SchemaService interface {
	DefineFields(ctx context.Context, caller models.Caller, inventoryID int64, request models.DefineFieldsRequest) ([]models.FieldDefinition, error)
	GetFields(ctx context.Context, inventoryID int64) ([]models.FieldDefinition, error)
}

type ItemService interface {
	// AddItem validates values against the inventory schema and stores them
	// unchanged. Unknown keys and type mismatches are reported together.
	AddItem(ctx context.Context, caller models.Caller, inventoryID int64, request models.AddItemRequest) (models.Item, error)
	ListItems(ctx context.Context, inventoryID int64) ([]models.Item, error)
	DeleteItems(ctx context.Context, caller models.Caller, inventoryID int64, request models.DeleteItemsRequest) (int64, error)
}

type CRMService interface {
	SaveCredential(ctx context.Context, caller models.Caller, credential models.CRMCredential) error
	Health(ctx context.Context, caller models.Caller) (models.CRMHealth, error)
	CreateContact(ctx context.Context, caller models.Caller, contact models.CRMContact) (models.CRMResult, error)
}

type AppInfoService interface {
	GetAppInfo(ctx context.Context) models.VersionResponse
}
