package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/MKhiriev/inventory-keeper/internal/access"
	"github.com/MKhiriev/inventory-keeper/internal/logger"
	"github.com/MKhiriev/inventory-keeper/internal/store"
	"github.com/MKhiriev/inventory-keeper/models"
)

type schemaService struct {
	inventoryRepository store.InventoryRepository
	fieldRepository     store.FieldRepository

	logger *logger.Logger
}

func NewSchemaService(inventoryRepository store.InventoryRepository, fieldRepository store.FieldRepository, logger *logger.Logger) SchemaService {
	return &schemaService{
		inventoryRepository: inventoryRepository,
		fieldRepository:     fieldRepository,
		logger:              logger,
	}
}

// DefineFields extends the schema of an existing inventory. Fields are
// create-only: a name already defined on the inventory is rejected with
// store.ErrFieldAlreadyExists and nothing is written.
func (s *schemaService) DefineFields(ctx context.Context, caller models.Caller, inventoryID int64, request models.DefineFieldsRequest) ([]models.FieldDefinition, error) {
	log := logger.FromContext(ctx)

	inventory, err := s.inventoryRepository.FindInventoryByID(ctx, inventoryID)
	if err != nil {
		log.Err(err).Str("func", "schemaService.DefineFields").Int64("inventory_id", inventoryID).Msg("inventory lookup failed")
		return nil, fmt.Errorf("inventory lookup failed: %w", err)
	}

	if err = access.Decide(caller, access.PolicySelfOrAdmin, inventory.UserID); err != nil {
		log.Warn().Str("func", "schemaService.DefineFields").Int64("inventory_id", inventoryID).Str("caller", caller.UserID).Msg("schema change denied")
		return nil, err
	}

	existing, err := s.fieldRepository.ListFields(ctx, inventoryID)
	if err != nil {
		return nil, fmt.Errorf("listing fields failed: %w", err)
	}

	fields := buildFieldDefinitions(inventoryID, request.Fields)
	if taken := takenFieldNames(existing, fields); len(taken) > 0 {
		log.Warn().Str("func", "schemaService.DefineFields").Strs("fields", taken).Msg("fields already defined")
		return nil, fmt.Errorf("%w: %s", store.ErrFieldAlreadyExists, strings.Join(taken, ", "))
	}

	created, err := s.fieldRepository.CreateFields(ctx, inventoryID, fields)
	if err != nil {
		log.Err(err).Str("func", "schemaService.DefineFields").Int64("inventory_id", inventoryID).Msg("creating fields failed")
		return nil, fmt.Errorf("creating fields failed: %w", err)
	}

	return created, nil
}

// GetFields returns the schema of an existing inventory.
func (s *schemaService) GetFields(ctx context.Context, inventoryID int64) ([]models.FieldDefinition, error) {
	if _, err := s.inventoryRepository.FindInventoryByID(ctx, inventoryID); err != nil {
		return nil, fmt.Errorf("inventory lookup failed: %w", err)
	}

	fields, err := s.fieldRepository.ListFields(ctx, inventoryID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "schemaService.GetFields").Int64("inventory_id", inventoryID).Msg("listing fields failed")
		return nil, fmt.Errorf("listing fields failed: %w", err)
	}
	return fields, nil
}

// buildFieldDefinitions applies the declaration defaults: an empty type is
// string and a missing visibility is visible.
func buildFieldDefinitions(inventoryID int64, schemas []models.FieldSchema) []models.FieldDefinition {
	fields := make([]models.FieldDefinition, 0, len(schemas))
	for _, schema := range schemas {
		field := models.FieldDefinition{
			InventoryID: inventoryID,
			FieldName:   strings.TrimSpace(schema.FieldName),
			FieldType:   schema.FieldType,
			IsVisible:   true,
		}
		if field.FieldType == "" {
			field.FieldType = models.FieldTypeString
		}
		if schema.IsVisible != nil {
			field.IsVisible = *schema.IsVisible
		}
		fields = append(fields, field)
	}
	return fields
}

func takenFieldNames(existing, requested []models.FieldDefinition) []string {
	defined := make(map[string]struct{}, len(existing))
	for _, f := range existing {
		defined[f.FieldName] = struct{}{}
	}

	var taken []string
	for _, f := range requested {
		if _, ok := defined[f.FieldName]; ok {
			taken = append(taken, f.FieldName)
		}
	}
	sort.Strings(taken)
	return taken
}
