package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/inventory-keeper/internal/logger"
	"github.com/MKhiriev/inventory-keeper/models"
)

// inventoryRepository is the PostgreSQL-backed implementation of
// [InventoryRepository].
type inventoryRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewInventoryRepository(db *DB, logger *logger.Logger) InventoryRepository {
	logger.Debug().Msg("creating inventory repository")
	return &inventoryRepository{
		db:     db,
		logger: logger,
	}
}

func scanInventory(row rowScanner) (models.Inventory, error) {
	var inv models.Inventory
	err := row.Scan(
		&inv.InventoryID,
		&inv.Name,
		&inv.UserID,
		&inv.UserName,
		&inv.CategoryID,
		&inv.CategoryName,
		&inv.CreatedAt,
	)
	return inv, err
}

// CreateInventory inserts the inventory row and all of inventory.Fields in a
// single transaction and returns the stored inventory with its fields.
//
// Error handling:
//   - (owner, name) collision → [ErrInventoryNameTaken].
//   - unknown owner → [ErrUserNotFound]; unknown category → [ErrCategoryNotFound].
//   - duplicate field name → [ErrFieldAlreadyExists].
func (r *inventoryRepository) CreateInventory(ctx context.Context, inventory models.Inventory) (models.Inventory, error) {
	log := logger.FromContext(ctx)

	created := inventory
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx, createInventory, inventory.Name, inventory.UserID, inventory.CategoryID).
			Scan(&created.InventoryID, &created.CreatedAt)
		if err != nil {
			log.Err(err).
				Str("func", "*inventoryRepository.CreateInventory").
				Str("pg_code", postgresError(err)).
				Msg("failed to insert inventory")
			return dbError(err, ErrExecutingQuery)
		}

		fields, err := insertFields(ctx, tx, created.InventoryID, inventory.Fields)
		if err != nil {
			return err
		}
		created.Fields = fields
		return nil
	})
	if err != nil {
		return models.Inventory{}, err
	}

	log.Info().
		Str("func", "*inventoryRepository.CreateInventory").
		Int64("inventory_id", created.InventoryID).
		Int("fields", len(created.Fields)).
		Msg("inventory created")

	return created, nil
}

// FindInventoryByID returns the inventory with owner name and category label.
// Fields are not loaded.
func (r *inventoryRepository) FindInventoryByID(ctx context.Context, inventoryID int64) (models.Inventory, error) {
	inv, err := scanInventory(r.db.QueryRowContext(ctx, findInventoryByID, inventoryID))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Inventory{}, ErrInventoryNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*inventoryRepository.FindInventoryByID").
			Int64("inventory_id", inventoryID).
			Msg("failed to query inventory")
		return models.Inventory{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return inv, nil
}

func (r *inventoryRepository) InventoryNameExists(ctx context.Context, userID, name string) (bool, error) {
	var exists bool
	if err := r.db.QueryRowContext(ctx, inventoryNameExists, userID, name).Scan(&exists); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*inventoryRepository.InventoryNameExists").Msg("failed to query inventory name")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return exists, nil
}

func (r *inventoryRepository) ListInventories(ctx context.Context, ownerID string) ([]models.Inventory, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListInventoriesQuery(ownerID)
	if err != nil {
		log.Err(err).Str("func", "*inventoryRepository.ListInventories").Msg("failed to create query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*inventoryRepository.ListInventories").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	inventories := make([]models.Inventory, 0, 16)
	index := make(map[int64]int)
	for rows.Next() {
		inv, scanErr := scanInventory(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*inventoryRepository.ListInventories").Msg("failed to scan inventory row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		inv.Fields = []models.FieldDefinition{}
		index[inv.InventoryID] = len(inventories)
		inventories = append(inventories, inv)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	if len(inventories) == 0 {
		return inventories, nil
	}

	ids := make([]int64, 0, len(inventories))
	for _, inv := range inventories {
		ids = append(ids, inv.InventoryID)
	}

	fields, err := r.listFieldsFor(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, f := range fields {
		if i, ok := index[f.InventoryID]; ok {
			inventories[i].Fields = append(inventories[i].Fields, f)
		}
	}

	return inventories, nil
}

func (r *inventoryRepository) listFieldsFor(ctx context.Context, inventoryIDs []int64) ([]models.FieldDefinition, error) {
	query, args, err := buildListFieldsQuery(inventoryIDs)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*inventoryRepository.listFieldsFor").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return scanFields(rows)
}

// DeleteInventory removes the inventory; its fields and items go by cascade.
func (r *inventoryRepository) DeleteInventory(ctx context.Context, inventoryID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteInventory, inventoryID)
	if err != nil {
		log.Err(err).Str("func", "*inventoryRepository.DeleteInventory").Int64("inventory_id", inventoryID).Msg("failed to delete inventory")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrInventoryNotFound
	}

	return nil
}
