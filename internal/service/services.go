package service

import (
	"fmt"

	"github.com/MKhiriev/inventory-keeper/internal/adapter"
	"github.com/MKhiriev/inventory-keeper/internal/config"
	"github.com/MKhiriev/inventory-keeper/internal/logger"
	"github.com/MKhiriev/inventory-keeper/internal/store"
	"github.com/MKhiriev/inventory-keeper/models"
)

type Services struct {
	AuthService      AuthService
	AccessService    AccessService
	UserService      UserService
	CategoryService  CategoryService
	InventoryService InventoryService
	SchemaService    SchemaService
	ItemService      ItemService
	CRMService       CRMService
	AppInfoService   AppInfoService
}

// NewServices wires every service over repos and wraps the ones accepting
// client payloads with request validation.
func NewServices(repos *store.Repositories, crm adapter.CRMConnector, cfg config.StructuredConfig, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		AuthService:   NewAuthValidationService().Wrap(NewAuthService(repos.UserRepository, cfg.App, logger)),
		AccessService: NewAccessService(repos.UserRepository, logger),
		UserService:   NewUserValidationService().Wrap(NewUserService(repos.UserRepository, logger)),
		CategoryService: NewCategoryValidationService().Wrap(
			NewCategoryService(repos.CategoryRepository, logger),
		),
		InventoryService: NewInventoryValidationService().Wrap(
			NewInventoryService(repos.InventoryRepository, repos.CategoryRepository, logger),
		),
		SchemaService: NewSchemaValidationService().Wrap(
			NewSchemaService(repos.InventoryRepository, repos.FieldRepository, logger),
		),
		ItemService: NewItemValidationService().Wrap(
			NewItemService(repos.InventoryRepository, repos.FieldRepository, repos.ItemRepository, logger),
		),
		CRMService:     NewCRMValidationService().Wrap(NewCRMService(repos.CRMCredentialRepository, crm, logger)),
		AppInfoService: appInfoService,
	}, nil
}
