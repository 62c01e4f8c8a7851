package store

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// Constraint names declared by the schema migrations.
const (
	constraintUserEmail         = "users_email_lower_idx"
	constraintCategoryLabel     = "categories_label_lower_idx"
	constraintInventoryName     = "inventories_user_id_name_key"
	constraintInventoryOwner    = "inventories_user_id_fkey"
	constraintInventoryCategory = "inventories_category_id_fkey"
	constraintFieldName         = "inventory_fields_inventory_id_field_name_key"
	constraintFieldInventory    = "inventory_fields_inventory_id_fkey"
	constraintItemInventory     = "inventory_items_inventory_id_fkey"
	constraintCredentialOwner   = "crm_credentials_user_id_fkey"
)

var constraintErrors = map[string]error{
	constraintUserEmail:         ErrEmailAlreadyExists,
	constraintCategoryLabel:     ErrCategoryAlreadyExists,
	constraintInventoryName:     ErrInventoryNameTaken,
	constraintInventoryOwner:    ErrUserNotFound,
	constraintInventoryCategory: ErrCategoryNotFound,
	constraintFieldName:         ErrFieldAlreadyExists,
	constraintFieldInventory:    ErrInventoryNotFound,
	constraintItemInventory:     ErrInventoryNotFound,
	constraintCredentialOwner:   ErrUserNotFound,
}

func postgresError(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}

// constraintError translates unique and foreign key violations into domain
// sentinels keyed by constraint name. It returns nil for any other error.
func constraintError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return nil
	}

	switch pgErr.Code {
	case pgerrcode.UniqueViolation, pgerrcode.ForeignKeyViolation:
		if mapped, ok := constraintErrors[pgErr.ConstraintName]; ok {
			return mapped
		}
		if pgErr.Code == pgerrcode.UniqueViolation {
			return ErrDuplicate
		}
	}

	return nil
}

// dbError maps constraint violations to domain sentinels and wraps any other
// failure with the operation-level sentinel op.
func dbError(err, op error) error {
	if mapped := constraintError(err); mapped != nil {
		return mapped
	}
	return fmt.Errorf("%w: %w", op, err)
}
