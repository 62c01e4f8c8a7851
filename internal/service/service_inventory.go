package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/inventory-keeper/internal/access"
	"github.com/MKhiriev/inventory-keeper/internal/logger"
	"github.com/MKhiriev/inventory-keeper/internal/store"
	"github.com/MKhiriev/inventory-keeper/models"
)

type inventoryService struct {
	inventoryRepository store.InventoryRepository
	categoryRepository  store.CategoryRepository

	logger *logger.Logger
}

func NewInventoryService(inventoryRepository store.InventoryRepository, categoryRepository store.CategoryRepository, logger *logger.Logger) InventoryService {
	return &inventoryService{
		inventoryRepository: inventoryRepository,
		categoryRepository:  categoryRepository,
		logger:              logger,
	}
}

// CreateInventory creates an inventory with its initial schema.
//
// The owner defaults to the caller; naming another owner requires admin.
// Returns store.ErrCategoryNotFound for an unknown category and
// store.ErrInventoryNameTaken when the owner already has an inventory of that
// name.
func (s *inventoryService) CreateInventory(ctx context.Context, caller models.Caller, request models.CreateInventoryRequest) (models.Inventory, error) {
	log := logger.FromContext(ctx)

	ownerID := request.UserID
	if ownerID == "" {
		ownerID = caller.UserID
	}
	if err := access.Decide(caller, access.PolicySelfOrAdmin, ownerID); err != nil {
		log.Warn().Str("func", "inventoryService.CreateInventory").Str("owner", ownerID).Str("caller", caller.UserID).Msg("inventory creation denied")
		return models.Inventory{}, err
	}

	category, err := s.categoryRepository.FindCategoryByID(ctx, request.CategoryID)
	if err != nil {
		log.Err(err).Str("func", "inventoryService.CreateInventory").Int64("category_id", request.CategoryID).Msg("category lookup failed")
		return models.Inventory{}, fmt.Errorf("category lookup failed: %w", err)
	}

	name := strings.TrimSpace(request.Name)
	exists, err := s.inventoryRepository.InventoryNameExists(ctx, ownerID, name)
	if err != nil {
		return models.Inventory{}, fmt.Errorf("inventory name check failed: %w", err)
	}
	if exists {
		log.Warn().Str("func", "inventoryService.CreateInventory").Str("owner", ownerID).Str("name", name).Msg("inventory name taken")
		return models.Inventory{}, store.ErrInventoryNameTaken
	}

	inventory, err := s.inventoryRepository.CreateInventory(ctx, models.Inventory{
		Name:         name,
		UserID:       ownerID,
		CategoryID:   &category.CategoryID,
		CategoryName: &category.Label,
		Fields:       buildFieldDefinitions(0, request.Fields),
	})
	if err != nil {
		log.Err(err).Str("func", "inventoryService.CreateInventory").Str("owner", ownerID).Msg("creating inventory failed")
		return models.Inventory{}, fmt.Errorf("creating inventory failed: %w", err)
	}

	return inventory, nil
}

func (s *inventoryService) ListInventories(ctx context.Context) ([]models.Inventory, error) {
	inventories, err := s.inventoryRepository.ListInventories(ctx, "")
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "inventoryService.ListInventories").Msg("listing inventories failed")
		return nil, fmt.Errorf("listing inventories failed: %w", err)
	}
	return inventories, nil
}

// ListUserInventories returns the inventories of one owner, or
// ErrNoInventoriesFound when there are none.
func (s *inventoryService) ListUserInventories(ctx context.Context, userID string) ([]models.Inventory, error) {
	inventories, err := s.inventoryRepository.ListInventories(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "inventoryService.ListUserInventories").Str("owner", userID).Msg("listing inventories failed")
		return nil, fmt.Errorf("listing inventories failed: %w", err)
	}
	if len(inventories) == 0 {
		return nil, ErrNoInventoriesFound
	}
	return inventories, nil
}

// DeleteInventory removes an inventory of the caller, or of anyone when the
// caller is an admin. A userId in the request body must name the caller.
func (s *inventoryService) DeleteInventory(ctx context.Context, caller models.Caller, inventoryID int64, request models.DeleteInventoryRequest) error {
	log := logger.FromContext(ctx)

	if err := checkClaimedOwner(caller, request.UserID); err != nil {
		return err
	}

	inventory, err := s.inventoryRepository.FindInventoryByID(ctx, inventoryID)
	if err != nil {
		log.Err(err).Str("func", "inventoryService.DeleteInventory").Int64("inventory_id", inventoryID).Msg("inventory lookup failed")
		return fmt.Errorf("inventory lookup failed: %w", err)
	}

	if err = access.Decide(caller, access.PolicySelfOrAdmin, inventory.UserID); err != nil {
		log.Warn().Str("func", "inventoryService.DeleteInventory").Int64("inventory_id", inventoryID).Str("caller", caller.UserID).Msg("inventory deletion denied")
		return err
	}

	if err = s.inventoryRepository.DeleteInventory(ctx, inventoryID); err != nil {
		log.Err(err).Str("func", "inventoryService.DeleteInventory").Int64("inventory_id", inventoryID).Msg("deleting inventory failed")
		return fmt.Errorf("deleting inventory failed: %w", err)
	}

	return nil
}

// checkClaimedOwner rejects a body userId naming someone other than the
// caller, unless the caller is an admin.
func checkClaimedOwner(caller models.Caller, claimed string) error {
	if claimed == "" {
		return nil
	}
	return access.Decide(caller, access.PolicySelfOrAdmin, claimed)
}
