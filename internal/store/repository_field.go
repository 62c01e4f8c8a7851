package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/inventory-keeper/internal/logger"
	"github.com/MKhiriev/inventory-keeper/models"
)

type fieldRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewFieldRepository(db *DB, logger *logger.Logger) FieldRepository {
	logger.Debug().Msg("creating field repository")
	return &fieldRepository{
		db:     db,
		logger: logger,
	}
}

// CreateFields adds definitions to an existing inventory in one transaction.
// A name already defined on the inventory is [ErrFieldAlreadyExists]; an
// unknown inventory is [ErrInventoryNotFound].
func (r *fieldRepository) CreateFields(ctx context.Context, inventoryID int64, fields []models.FieldDefinition) ([]models.FieldDefinition, error) {
	var created []models.FieldDefinition
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		var err error
		created, err = insertFields(ctx, tx, inventoryID, fields)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (r *fieldRepository) ListFields(ctx context.Context, inventoryID int64) ([]models.FieldDefinition, error) {
	rows, err := r.db.QueryContext(ctx, listFields, inventoryID)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*fieldRepository.ListFields").
			Int64("inventory_id", inventoryID).
			Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return scanFields(rows)
}

func insertFields(ctx context.Context, tx *sql.Tx, inventoryID int64, fields []models.FieldDefinition) ([]models.FieldDefinition, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertFieldsQuery(inventoryID, fields)
	if err != nil {
		log.Err(err).Str("func", "insertFields").Msg("failed to create query")
		return nil, err
	}

	rows, err := tx.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "insertFields").
			Str("pg_code", postgresError(err)).
			Int64("inventory_id", inventoryID).
			Msg("failed to insert fields")
		return nil, dbError(err, ErrExecutingQuery)
	}
	defer rows.Close()

	created, err := scanFields(rows)
	if err != nil {
		// constraint violations of multi-row inserts may surface on iteration
		if mapped := constraintError(err); mapped != nil {
			return nil, mapped
		}
		return nil, err
	}
	return created, nil
}

func scanFields(rows *sql.Rows) ([]models.FieldDefinition, error) {
	fields := make([]models.FieldDefinition, 0, 8)
	for rows.Next() {
		var f models.FieldDefinition
		if err := rows.Scan(&f.FieldID, &f.InventoryID, &f.FieldName, &f.FieldType, &f.IsVisible); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		fields = append(fields, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	return fields, nil
}
