package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/inventory-keeper/models"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const userColumns = `id, name, email, password_hash, role, status, last_login, created_at`

const (
	createUser = `INSERT INTO users (name, email, password_hash, role, status)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING ` + userColumns + `;`

	findUserByEmail = `SELECT ` + userColumns + `
    FROM users
    WHERE LOWER(email) = LOWER($1);`

	findUserByID = `SELECT ` + userColumns + `
    FROM users
    WHERE id = $1;`

	listUsers = `SELECT ` + userColumns + `
    FROM users
    ORDER BY created_at DESC, id;`

	updateLastLogin = `UPDATE users SET last_login = $2 WHERE id = $1;`

	deleteUser = `DELETE FROM users WHERE id = $1;`
)

const (
	listCategories = `SELECT id, label FROM categories ORDER BY label;`

	findCategoryByID = `SELECT id, label FROM categories WHERE id = $1;`

	findCategoryByLabel = `SELECT id, label FROM categories WHERE LOWER(label) = LOWER($1);`

	createCategory = `INSERT INTO categories (label) VALUES ($1) RETURNING id, label;`
)

const inventoryColumns = `i.id, i.name, i.user_id, u.name, i.category_id, c.label, i.created_at`

const (
	createInventory = `INSERT INTO inventories (name, user_id, category_id)
    VALUES ($1, $2, $3)
    RETURNING id, created_at;`

	inventoryNameExists = `SELECT EXISTS (
        SELECT 1 FROM inventories WHERE user_id = $1 AND name = $2
    );`

	findInventoryByID = `SELECT ` + inventoryColumns + `
    FROM inventories i
    JOIN users u ON u.id = i.user_id
    LEFT JOIN categories c ON c.id = i.category_id
    WHERE i.id = $1;`

	deleteInventory = `DELETE FROM inventories WHERE id = $1;`
)

const fieldColumns = `id, inventory_id, field_name, field_type, is_visible`

const (
	listFields = `SELECT ` + fieldColumns + `
    FROM inventory_fields
    WHERE inventory_id = $1
    ORDER BY id;`
)

const (
	createItem = `INSERT INTO inventory_items (inventory_id, values)
    VALUES ($1, $2)
    RETURNING id, inventory_id, values, created_at;`

	listItems = `SELECT id, inventory_id, values, created_at
    FROM inventory_items
    WHERE inventory_id = $1
    ORDER BY created_at DESC, id DESC;`
)

const (
	saveCRMCredential = `INSERT INTO crm_credentials (user_id, access_token, refresh_token, instance_url, updated_at)
    VALUES ($1, $2, $3, $4, NOW())
    ON CONFLICT (user_id) DO UPDATE SET
        access_token = EXCLUDED.access_token,
        refresh_token = CASE WHEN EXCLUDED.refresh_token = '' THEN crm_credentials.refresh_token ELSE EXCLUDED.refresh_token END,
        instance_url = EXCLUDED.instance_url,
        updated_at = NOW()
    RETURNING user_id, access_token, refresh_token, instance_url, updated_at;`

	findCRMCredential = `SELECT user_id, access_token, refresh_token, instance_url, updated_at
    FROM crm_credentials
    WHERE user_id = $1;`
)

// buildUpdateUserQuery builds a partial UPDATE of role and/or status that
// returns the updated row.
func buildUpdateUserQuery(update models.UserUpdate) (string, []any, error) {
	set := make(map[string]any, 2)
	if update.Role != nil {
		set["role"] = string(*update.Role)
	}
	if update.Status != nil {
		set["status"] = string(*update.Status)
	}
	if len(set) == 0 {
		return "", nil, fmt.Errorf("%w: nothing to update", ErrBuildingSQLQuery)
	}

	query, args, err := psql.Update("users").
		SetMap(set).
		Where(sq.Eq{"id": update.UserID}).
		Suffix("RETURNING " + userColumns).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildListInventoriesQuery selects inventories with owner name and category
// label, optionally restricted to one owner.
func buildListInventoriesQuery(ownerID string) (string, []any, error) {
	builder := psql.Select(inventoryColumns).
		From("inventories i").
		Join("users u ON u.id = i.user_id").
		LeftJoin("categories c ON c.id = i.category_id").
		OrderBy("i.created_at DESC", "i.id DESC")

	if ownerID != "" {
		builder = builder.Where(sq.Eq{"i.user_id": ownerID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildListFieldsQuery selects the fields of several inventories at once.
func buildListFieldsQuery(inventoryIDs []int64) (string, []any, error) {
	query, args, err := psql.Select(fieldColumns).
		From("inventory_fields").
		Where(sq.Eq{"inventory_id": inventoryIDs}).
		OrderBy("inventory_id", "id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildInsertFieldsQuery builds a multi-row INSERT of field definitions
// returning the stored rows.
func buildInsertFieldsQuery(inventoryID int64, fields []models.FieldDefinition) (string, []any, error) {
	if len(fields) == 0 {
		return "", nil, fmt.Errorf("%w: no fields to insert", ErrBuildingSQLQuery)
	}

	builder := psql.Insert("inventory_fields").
		Columns("inventory_id", "field_name", "field_type", "is_visible")
	for _, f := range fields {
		builder = builder.Values(inventoryID, f.FieldName, string(f.FieldType), f.IsVisible)
	}

	query, args, err := builder.Suffix("RETURNING " + fieldColumns).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildDeleteItemsQuery deletes the listed items only within inventoryID.
func buildDeleteItemsQuery(inventoryID int64, itemIDs []int64) (string, []any, error) {
	if len(itemIDs) == 0 {
		return "", nil, fmt.Errorf("%w: no item ids", ErrBuildingSQLQuery)
	}

	query, args, err := psql.Delete("inventory_items").
		Where(sq.Eq{"inventory_id": inventoryID}).
		Where(sq.Eq{"id": itemIDs}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
