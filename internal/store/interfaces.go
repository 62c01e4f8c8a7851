// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements PostgreSQL persistence for accounts, categories,
// inventories with their field schemas, items and CRM credentials.
//
// Repositories translate unique and foreign key violations into the domain
// sentinels of errors.go so the service layer never inspects driver errors.
package store

import (
	"context"
	"time"

	"github.com/MKhiriev/inventory-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID string) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	UpdateLastLogin(ctx context.Context, userID string, at time.Time) error
	UpdateUser(ctx context.Context, update models.UserUpdate) (models.User, error)
	UpdateUsers(ctx context.Context, updates []models.UserUpdate) error
	DeleteUser(ctx context.Context, userID string) error
}

type CategoryRepository interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	FindCategoryByID(ctx context.Context, categoryID int64) (models.Category, error)
	FindCategoryByLabel(ctx context.Context, label string) (models.Category, error)
	CreateCategory(ctx context.Context, category models.Category) (models.Category, error)
}

type InventoryRepository interface {
	// CreateInventory inserts the inventory and its fields atomically.
	CreateInventory(ctx context.Context, inventory models.Inventory) (models.Inventory, error)
	FindInventoryByID(ctx context.Context, inventoryID int64) (models.Inventory, error)
	InventoryNameExists(ctx context.Context, userID, name string) (bool, error)
	// ListInventories returns inventories with their fields, newest first.
	// An empty ownerID lists every owner.
	ListInventories(ctx context.Context, ownerID string) ([]models.Inventory, error)
	DeleteInventory(ctx context.Context, inventoryID int64) error
}

type FieldRepository interface {
	CreateFields(ctx context.Context, inventoryID int64, fields []models.FieldDefinition) ([]models.FieldDefinition, error)
	ListFields(ctx context.Context, inventoryID int64) ([]models.FieldDefinition, error)
}

type ItemRepository interface {
	CreateItem(ctx context.Context, item models.Item) (models.Item, error)
	ListItems(ctx context.Context, inventoryID int64) ([]models.Item, error)
	// DeleteItems removes the listed items of one inventory and reports how
	// many rows were deleted.
	DeleteItems(ctx context.Context, inventoryID int64, itemIDs []int64) (int64, error)
}

type CRMCredentialRepository interface {
	SaveCRMCredential(ctx context.Context, credential models.CRMCredential) (models.CRMCredential, error)
	FindCRMCredential(ctx context.Context, userID string) (models.CRMCredential, error)
}
