package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/inventory-keeper/internal/access"
	"github.com/MKhiriev/inventory-keeper/internal/logger"
	"github.com/MKhiriev/inventory-keeper/internal/store"
	"github.com/MKhiriev/inventory-keeper/internal/validators"
	"github.com/MKhiriev/inventory-keeper/models"
)

type itemService struct {
	inventoryRepository store.InventoryRepository
	fieldRepository     store.FieldRepository
	itemRepository      store.ItemRepository

	logger *logger.Logger
}

func NewItemService(
	inventoryRepository store.InventoryRepository,
	fieldRepository store.FieldRepository,
	itemRepository store.ItemRepository,
	logger *logger.Logger,
) ItemService {
	return &itemService{
		inventoryRepository: inventoryRepository,
		fieldRepository:     fieldRepository,
		itemRepository:      itemRepository,
		logger:              logger,
	}
}

// AddItem checks the submission against the declared fields of the inventory
// and stores it verbatim. Nothing is written when validation fails.
func (s *itemService) AddItem(ctx context.Context, caller models.Caller, inventoryID int64, request models.AddItemRequest) (models.Item, error) {
	log := logger.FromContext(ctx)

	if err := checkClaimedOwner(caller, request.UserID); err != nil {
		return models.Item{}, err
	}

	inventory, err := s.inventoryRepository.FindInventoryByID(ctx, inventoryID)
	if err != nil {
		log.Err(err).Str("func", "itemService.AddItem").Int64("inventory_id", inventoryID).Msg("inventory lookup failed")
		return models.Item{}, fmt.Errorf("inventory lookup failed: %w", err)
	}

	if err = access.Decide(caller, access.PolicySelfOrAdmin, inventory.UserID); err != nil {
		log.Warn().Str("func", "itemService.AddItem").Int64("inventory_id", inventoryID).Str("caller", caller.UserID).Msg("item submission denied")
		return models.Item{}, err
	}

	fields, err := s.fieldRepository.ListFields(ctx, inventoryID)
	if err != nil {
		return models.Item{}, fmt.Errorf("listing fields failed: %w", err)
	}

	if err = validators.ValidateItemValues(fields, request.Values); err != nil {
		log.Info().Err(err).Str("func", "itemService.AddItem").Int64("inventory_id", inventoryID).Msg("item rejected")
		return models.Item{}, err
	}

	item, err := s.itemRepository.CreateItem(ctx, models.Item{InventoryID: inventoryID, Values: request.Values})
	if err != nil {
		log.Err(err).Str("func", "itemService.AddItem").Int64("inventory_id", inventoryID).Msg("creating item failed")
		return models.Item{}, fmt.Errorf("creating item failed: %w", err)
	}

	return item, nil
}

func (s *itemService) ListItems(ctx context.Context, inventoryID int64) ([]models.Item, error) {
	if _, err := s.inventoryRepository.FindInventoryByID(ctx, inventoryID); err != nil {
		return nil, fmt.Errorf("inventory lookup failed: %w", err)
	}

	items, err := s.itemRepository.ListItems(ctx, inventoryID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "itemService.ListItems").Int64("inventory_id", inventoryID).Msg("listing items failed")
		return nil, fmt.Errorf("listing items failed: %w", err)
	}
	return items, nil
}

// DeleteItems removes the listed items of one inventory and reports how many
// existed. Ids of other inventories are ignored.
func (s *itemService) DeleteItems(ctx context.Context, caller models.Caller, inventoryID int64, request models.DeleteItemsRequest) (int64, error) {
	log := logger.FromContext(ctx)

	if err := checkClaimedOwner(caller, request.UserID); err != nil {
		return 0, err
	}

	inventory, err := s.inventoryRepository.FindInventoryByID(ctx, inventoryID)
	if err != nil {
		log.Err(err).Str("func", "itemService.DeleteItems").Int64("inventory_id", inventoryID).Msg("inventory lookup failed")
		return 0, fmt.Errorf("inventory lookup failed: %w", err)
	}

	if err = access.Decide(caller, access.PolicySelfOrAdmin, inventory.UserID); err != nil {
		log.Warn().Str("func", "itemService.DeleteItems").Int64("inventory_id", inventoryID).Str("caller", caller.UserID).Msg("item deletion denied")
		return 0, err
	}

	deleted, err := s.itemRepository.DeleteItems(ctx, inventoryID, request.ItemIDs)
	if err != nil {
		log.Err(err).Str("func", "itemService.DeleteItems").Int64("inventory_id", inventoryID).Msg("deleting items failed")
		return 0, fmt.Errorf("deleting items failed: %w", err)
	}

	return deleted, nil
}
