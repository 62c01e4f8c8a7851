package store

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/inventory-keeper/internal/logger"
	"github.com/MKhiriev/inventory-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryRepository(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewCategoryRepository(db, logger.Nop())
	ctx := context.Background()

	t.Run("list", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, label FROM categories ORDER BY label").
			WillReturnRows(sqlmock.NewRows([]string{"id", "label"}).AddRow(1, "Books").AddRow(2, "Tools"))

		categories, err := repo.ListCategories(ctx)
		require.NoError(t, err)
		assert.Equal(t, []models.Category{{CategoryID: 1, Label: "Books"}, {CategoryID: 2, Label: "Tools"}}, categories)
	})

	t.Run("find by label ignores case", func(t *testing.T) {
		mock.ExpectQuery(`WHERE LOWER\(label\) = LOWER\(\$1\)`).
			WithArgs("BOOKS").
			WillReturnRows(sqlmock.NewRows([]string{"id", "label"}).AddRow(1, "Books"))

		c, err := repo.FindCategoryByLabel(ctx, "BOOKS")
		require.NoError(t, err)
		assert.Equal(t, int64(1), c.CategoryID)
	})

	t.Run("find by id missing", func(t *testing.T) {
		mock.ExpectQuery(`WHERE id = \$1`).WithArgs(int64(9)).WillReturnError(sql.ErrNoRows)

		_, err := repo.FindCategoryByID(ctx, 9)
		assert.ErrorIs(t, err, ErrCategoryNotFound)
	})

	t.Run("create", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO categories").
			WithArgs("Games").
			WillReturnRows(sqlmock.NewRows([]string{"id", "label"}).AddRow(3, "Games"))

		c, err := repo.CreateCategory(ctx, models.Category{Label: "Games"})
		require.NoError(t, err)
		assert.Equal(t, models.Category{CategoryID: 3, Label: "Games"}, c)
	})

	t.Run("create race lost to constraint", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO categories").
			WillReturnError(uniqueViolation(constraintCategoryLabel))

		_, err := repo.CreateCategory(ctx, models.Category{Label: "games"})
		assert.ErrorIs(t, err, ErrCategoryAlreadyExists)
	})
}
