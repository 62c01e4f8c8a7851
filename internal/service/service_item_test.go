package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/MKhiriev/inventory-keeper/internal/access"
	"github.com/MKhiriev/inventory-keeper/internal/logger"
	"github.com/MKhiriev/inventory-keeper/internal/mock"
	"github.com/MKhiriev/inventory-keeper/internal/store"
	"github.com/MKhiriev/inventory-keeper/internal/validators"
	"github.com/MKhiriev/inventory-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type itemMocks struct {
	inventories *mock.MockInventoryRepository
	fields      *mock.MockFieldRepository
	items       *mock.MockItemRepository
}

func newTestItemSvc(t *testing.T) (ItemService, itemMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := itemMocks{
		inventories: mock.NewMockInventoryRepository(ctrl),
		fields:      mock.NewMockFieldRepository(ctrl),
		items:       mock.NewMockItemRepository(ctrl),
	}
	return NewItemService(m.inventories, m.fields, m.items, logger.Nop()), m
}

var booksFields = []models.FieldDefinition{
	{FieldID: 1, InventoryID: 7, FieldName: "title", FieldType: models.FieldTypeString, IsVisible: true},
	{FieldID: 2, InventoryID: 7, FieldName: "year", FieldType: models.FieldTypeNumber, IsVisible: true},
	{FieldID: 3, InventoryID: 7, FieldName: "read", FieldType: models.FieldTypeBoolean, IsVisible: true},
}

func expectBooks(m itemMocks) {
	m.inventories.EXPECT().FindInventoryByID(gomock.Any(), int64(7)).Return(models.Inventory{InventoryID: 7, Name: "Books", UserID: aliceID}, nil)
	m.fields.EXPECT().ListFields(gomock.Any(), int64(7)).Return(booksFields, nil)
}

func TestItemService_AddItem_Accepted(t *testing.T) {
	svc, m := newTestItemSvc(t)
	ctx := context.Background()
	expectBooks(m)

	values := models.ItemValues{"title": "Dune", "year": json.Number("1965")}
	m.items.EXPECT().CreateItem(ctx, models.Item{InventoryID: 7, Values: values}).
		Return(models.Item{ItemID: 1, InventoryID: 7, Values: values}, nil)

	got, err := svc.AddItem(ctx, alice, 7, models.AddItemRequest{Values: values})

	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ItemID)
	assert.Equal(t, "Dune", got.Values["title"])
}

func TestItemService_AddItem_UnknownFieldsWriteNothing(t *testing.T) {
	svc, m := newTestItemSvc(t)
	expectBooks(m)

	_, err := svc.AddItem(context.Background(), alice, 7, models.AddItemRequest{
		Values: models.ItemValues{"title": "Dune", "author": "Herbert", "pages": 412},
	})

	require.ErrorIs(t, err, validators.ErrUnknownFields)
	assert.Equal(t, []string{"author", "pages"}, validators.FieldsOf(err))
}

func TestItemService_AddItem_TypeMismatch(t *testing.T) {
	svc, m := newTestItemSvc(t)
	expectBooks(m)

	_, err := svc.AddItem(context.Background(), alice, 7, models.AddItemRequest{
		Values: models.ItemValues{"title": json.Number("42"), "year": "1965", "read": "yes"},
	})

	require.ErrorIs(t, err, validators.ErrTypeMismatch)
	assert.Equal(t, []string{"title", "year"}, validators.FieldsOf(err), "boolean fields are not type-checked")
}

func TestItemService_AddItem_NotOwner(t *testing.T) {
	svc, m := newTestItemSvc(t)
	m.inventories.EXPECT().FindInventoryByID(gomock.Any(), int64(7)).Return(models.Inventory{InventoryID: 7, UserID: aliceID}, nil)

	_, err := svc.AddItem(context.Background(), bob, 7, models.AddItemRequest{Values: models.ItemValues{"title": "Dune"}})
	assert.ErrorIs(t, err, access.ErrNotOwner)
}

func TestItemService_AddItem_ClaimedOwnerMismatch(t *testing.T) {
	svc, _ := newTestItemSvc(t)

	_, err := svc.AddItem(context.Background(), bob, 7, models.AddItemRequest{
		UserID: aliceID,
		Values: models.ItemValues{"title": "Dune"},
	})
	assert.ErrorIs(t, err, access.ErrNotOwner)
}

func TestItemService_AddItem_NoInventory(t *testing.T) {
	svc, m := newTestItemSvc(t)
	m.inventories.EXPECT().FindInventoryByID(gomock.Any(), int64(8)).Return(models.Inventory{}, store.ErrInventoryNotFound)

	_, err := svc.AddItem(context.Background(), alice, 8, models.AddItemRequest{Values: models.ItemValues{"title": "Dune"}})
	assert.ErrorIs(t, err, store.ErrInventoryNotFound)
}

func TestItemService_ListItems(t *testing.T) {
	svc, m := newTestItemSvc(t)
	ctx := context.Background()

	m.inventories.EXPECT().FindInventoryByID(ctx, int64(7)).Return(models.Inventory{InventoryID: 7}, nil)
	m.items.EXPECT().ListItems(ctx, int64(7)).Return([]models.Item{{ItemID: 2}, {ItemID: 1}}, nil)

	got, err := svc.ListItems(ctx, 7)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	m.inventories.EXPECT().FindInventoryByID(ctx, int64(8)).Return(models.Inventory{}, store.ErrInventoryNotFound)
	_, err = svc.ListItems(ctx, 8)
	assert.ErrorIs(t, err, store.ErrInventoryNotFound)
}

func TestItemService_DeleteItems(t *testing.T) {
	svc, m := newTestItemSvc(t)
	ctx := context.Background()

	m.inventories.EXPECT().FindInventoryByID(ctx, int64(7)).Return(models.Inventory{InventoryID: 7, UserID: aliceID}, nil).Times(2)
	m.items.EXPECT().DeleteItems(ctx, int64(7), []int64{1, 2, 99}).Return(int64(2), nil)

	deleted, err := svc.DeleteItems(ctx, alice, 7, models.DeleteItemsRequest{ItemIDs: []int64{1, 2, 99}})
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	_, err = svc.DeleteItems(ctx, bob, 7, models.DeleteItemsRequest{ItemIDs: []int64{1}})
	assert.ErrorIs(t, err, access.ErrNotOwner)
}
