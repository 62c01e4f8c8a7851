package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/inventory-keeper/internal/logger"
	"github.com/MKhiriev/inventory-keeper/models"
)

type categoryRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewCategoryRepository(db *DB, logger *logger.Logger) CategoryRepository {
	logger.Debug().Msg("creating category repository")
	return &categoryRepository{
		db:     db,
		logger: logger,
	}
}

func (r *categoryRepository) ListCategories(ctx context.Context) ([]models.Category, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listCategories)
	if err != nil {
		log.Err(err).Str("func", "*categoryRepository.ListCategories").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	categories := make([]models.Category, 0, 16)
	for rows.Next() {
		var c models.Category
		if err = rows.Scan(&c.CategoryID, &c.Label); err != nil {
			log.Err(err).Str("func", "*categoryRepository.ListCategories").Msg("failed to scan category row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		categories = append(categories, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return categories, nil
}

func (r *categoryRepository) FindCategoryByID(ctx context.Context, categoryID int64) (models.Category, error) {
	return r.findOne(ctx, findCategoryByID, categoryID)
}

// FindCategoryByLabel matches label case-insensitively.
func (r *categoryRepository) FindCategoryByLabel(ctx context.Context, label string) (models.Category, error) {
	return r.findOne(ctx, findCategoryByLabel, label)
}

func (r *categoryRepository) findOne(ctx context.Context, query string, arg any) (models.Category, error) {
	var c models.Category
	err := r.db.QueryRowContext(ctx, query, arg).Scan(&c.CategoryID, &c.Label)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Category{}, ErrCategoryNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*categoryRepository.findOne").Msg("failed to query category")
		return models.Category{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return c, nil
}

// CreateCategory inserts a category. A case-insensitive label collision is
// [ErrCategoryAlreadyExists].
func (r *categoryRepository) CreateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	var c models.Category
	err := r.db.QueryRowContext(ctx, createCategory, category.Label).Scan(&c.CategoryID, &c.Label)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*categoryRepository.CreateCategory").
			Str("pg_code", postgresError(err)).
			Msg("failed to insert category")
		return models.Category{}, dbError(err, ErrExecutingQuery)
	}
	return c, nil
}
