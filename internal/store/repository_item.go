package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/inventory-keeper/internal/logger"
	"github.com/MKhiriev/inventory-keeper/models"
)

type itemRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewItemRepository(db *DB, logger *logger.Logger) ItemRepository {
	logger.Debug().Msg("creating item repository")
	return &itemRepository{
		db:     db,
		logger: logger,
	}
}

// CreateItem stores already validated values; the creation time is assigned
// by the database.
func (r *itemRepository) CreateItem(ctx context.Context, item models.Item) (models.Item, error) {
	var created models.Item
	err := r.db.QueryRowContext(ctx, createItem, item.InventoryID, item.Values).
		Scan(&created.ItemID, &created.InventoryID, &created.Values, &created.CreatedAt)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*itemRepository.CreateItem").
			Str("pg_code", postgresError(err)).
			Int64("inventory_id", item.InventoryID).
			Msg("failed to insert item")
		return models.Item{}, dbError(err, ErrExecutingQuery)
	}
	return created, nil
}

func (r *itemRepository) ListItems(ctx context.Context, inventoryID int64) ([]models.Item, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listItems, inventoryID)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.ListItems").Int64("inventory_id", inventoryID).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.Item, 0, 32)
	for rows.Next() {
		var item models.Item
		if err = rows.Scan(&item.ItemID, &item.InventoryID, &item.Values, &item.CreatedAt); err != nil {
			log.Err(err).Str("func", "*itemRepository.ListItems").Msg("failed to scan item row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return items, nil
}

func (r *itemRepository) DeleteItems(ctx context.Context, inventoryID int64, itemIDs []int64) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteItemsQuery(inventoryID, itemIDs)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.DeleteItems").Msg("failed to create query")
		return 0, err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.DeleteItems").Int64("inventory_id", inventoryID).Msg("failed to delete items")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	log.Info().
		Str("func", "*itemRepository.DeleteItems").
		Int64("inventory_id", inventoryID).
		Int64("deleted", deleted).
		Int("requested", len(itemIDs)).
		Msg("items deleted")

	return deleted, nil
}
