package store

import "github.com/MKhiriev/inventory-keeper/internal/logger"

// Repositories aggregates every repository backed by one [DB].
type Repositories struct {
	UserRepository          UserRepository
	CategoryRepository      CategoryRepository
	InventoryRepository     InventoryRepository
	FieldRepository         FieldRepository
	ItemRepository          ItemRepository
	CRMCredentialRepository CRMCredentialRepository
}

func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	logger.Debug().Msg("creating repositories")
	return &Repositories{
		UserRepository:          NewUserRepository(db, logger),
		CategoryRepository:      NewCategoryRepository(db, logger),
		InventoryRepository:     NewInventoryRepository(db, logger),
		FieldRepository:         NewFieldRepository(db, logger),
		ItemRepository:          NewItemRepository(db, logger),
		CRMCredentialRepository: NewCRMCredentialRepository(db, logger),
	}
}
