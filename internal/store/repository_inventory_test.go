package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/inventory-keeper/internal/logger"
	"github.com/MKhiriev/inventory-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	inventoryRowColumns = []string{"id", "name", "user_id", "name", "category_id", "label", "created_at"}
	fieldRowColumns     = []string{"id", "inventory_id", "field_name", "field_type", "is_visible"}
)

func booksInventory() models.Inventory {
	categoryID := int64(1)
	return models.Inventory{
		Name:       "Books",
		UserID:     testUserID,
		CategoryID: &categoryID,
		Fields: []models.FieldDefinition{
			{FieldName: "title", FieldType: models.FieldTypeString, IsVisible: true},
			{FieldName: "qty", FieldType: models.FieldTypeNumber, IsVisible: true},
		},
	}
}

func TestCreateInventory_Success(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewInventoryRepository(db, logger.Nop())
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO inventories").
		WithArgs("Books", testUserID, int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(7, now))
	mock.ExpectQuery("INSERT INTO inventory_fields").
		WithArgs(int64(7), "title", "string", true, int64(7), "qty", "number", true).
		WillReturnRows(sqlmock.NewRows(fieldRowColumns).
			AddRow(1, 7, "title", "string", true).
			AddRow(2, 7, "qty", "number", true))
	mock.ExpectCommit()

	inv, err := repo.CreateInventory(context.Background(), booksInventory())
	require.NoError(t, err)

	assert.Equal(t, int64(7), inv.InventoryID)
	assert.Equal(t, now, inv.CreatedAt)
	require.Len(t, inv.Fields, 2)
	assert.Equal(t, models.FieldTypeNumber, inv.Fields[1].FieldType)
	assert.Equal(t, int64(7), inv.Fields[0].InventoryID)
}

func TestCreateInventory_NameTaken(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewInventoryRepository(db, logger.Nop())

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO inventories").
		WillReturnError(uniqueViolation(constraintInventoryName))
	mock.ExpectRollback()

	_, err := repo.CreateInventory(context.Background(), booksInventory())
	assert.ErrorIs(t, err, ErrInventoryNameTaken)
}

func TestCreateInventory_UnknownCategory(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewInventoryRepository(db, logger.Nop())

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO inventories").
		WillReturnError(fkViolation(constraintInventoryCategory))
	mock.ExpectRollback()

	_, err := repo.CreateInventory(context.Background(), booksInventory())
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestCreateInventory_FieldFailureRollsBack(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewInventoryRepository(db, logger.Nop())

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO inventories").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(7, time.Now()))
	mock.ExpectQuery("INSERT INTO inventory_fields").
		WillReturnError(uniqueViolation(constraintFieldName))
	mock.ExpectRollback()

	_, err := repo.CreateInventory(context.Background(), booksInventory())
	assert.ErrorIs(t, err, ErrFieldAlreadyExists)
}

func TestFindInventoryByID(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewInventoryRepository(db, logger.Nop())

	mock.ExpectQuery(`WHERE i.id = \$1`).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(inventoryRowColumns).
			AddRow(7, "Books", testUserID, "Alice", nil, nil, time.Now()))

	inv, err := repo.FindInventoryByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, testUserID, inv.UserID)
	assert.Equal(t, "Alice", inv.UserName)
	assert.Nil(t, inv.CategoryID)
	assert.Nil(t, inv.CategoryName)

	mock.ExpectQuery(`WHERE i.id = \$1`).WillReturnError(sql.ErrNoRows)
	_, err = repo.FindInventoryByID(context.Background(), 8)
	assert.ErrorIs(t, err, ErrInventoryNotFound)
}

func TestInventoryNameExists(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewInventoryRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(testUserID, "Books").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.InventoryNameExists(context.Background(), testUserID, "Books")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestListInventories_AttachesFields(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewInventoryRepository(db, logger.Nop())

	mock.ExpectQuery(`FROM inventories i .* WHERE i.user_id = \$1`).
		WithArgs(testUserID).
		WillReturnRows(sqlmock.NewRows(inventoryRowColumns).
			AddRow(9, "Tools", testUserID, "Alice", 2, "Hardware", time.Now()).
			AddRow(7, "Books", testUserID, "Alice", 1, "Books", time.Now().Add(-time.Hour)))
	mock.ExpectQuery(`FROM inventory_fields WHERE inventory_id IN \(\$1,\$2\)`).
		WithArgs(int64(9), int64(7)).
		WillReturnRows(sqlmock.NewRows(fieldRowColumns).
			AddRow(1, 7, "title", "string", true).
			AddRow(2, 7, "qty", "number", true).
			AddRow(3, 9, "brand", "string", false))

	inventories, err := repo.ListInventories(context.Background(), testUserID)
	require.NoError(t, err)
	require.Len(t, inventories, 2)

	assert.Equal(t, int64(9), inventories[0].InventoryID)
	require.Len(t, inventories[0].Fields, 1)
	assert.Equal(t, "brand", inventories[0].Fields[0].FieldName)
	require.Len(t, inventories[1].Fields, 2)
	require.NotNil(t, inventories[1].CategoryName)
	assert.Equal(t, "Books", *inventories[1].CategoryName)
}

func TestListInventories_Empty(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewInventoryRepository(db, logger.Nop())

	mock.ExpectQuery("FROM inventories i").
		WillReturnRows(sqlmock.NewRows(inventoryRowColumns))

	inventories, err := repo.ListInventories(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, inventories)
}

func TestDeleteInventory(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewInventoryRepository(db, logger.Nop())

	mock.ExpectExec("DELETE FROM inventories").
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.DeleteInventory(context.Background(), 7))

	mock.ExpectExec("DELETE FROM inventories").
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.DeleteInventory(context.Background(), 7), ErrInventoryNotFound)

	mock.ExpectExec("DELETE FROM inventories").
		WillReturnError(errors.New("lost connection"))
	assert.ErrorIs(t, repo.DeleteInventory(context.Background(), 7), ErrExecutingStatement)
}
