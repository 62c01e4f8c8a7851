package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/inventory-keeper/internal/logger"
	"github.com/MKhiriev/inventory-keeper/models"
)

type crmCredentialRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewCRMCredentialRepository(db *DB, logger *logger.Logger) CRMCredentialRepository {
	logger.Debug().Msg("creating crm credential repository")
	return &crmCredentialRepository{
		db:     db,
		logger: logger,
	}
}

func scanCredential(row rowScanner) (models.CRMCredential, error) {
	var c models.CRMCredential
	err := row.Scan(&c.UserID, &c.AccessToken, &c.RefreshToken, &c.InstanceURL, &c.UpdatedAt)
	return c, err
}

// SaveCRMCredential upserts the credential of credential.UserID. An empty
// refresh token keeps the stored one.
func (r *crmCredentialRepository) SaveCRMCredential(ctx context.Context, credential models.CRMCredential) (models.CRMCredential, error) {
	saved, err := scanCredential(r.db.QueryRowContext(ctx, saveCRMCredential,
		credential.UserID, credential.AccessToken, credential.RefreshToken, credential.InstanceURL))
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*crmCredentialRepository.SaveCRMCredential").
			Str("pg_code", postgresError(err)).
			Msg("failed to save crm credential")
		return models.CRMCredential{}, dbError(err, ErrExecutingQuery)
	}
	return saved, nil
}

func (r *crmCredentialRepository) FindCRMCredential(ctx context.Context, userID string) (models.CRMCredential, error) {
	credential, err := scanCredential(r.db.QueryRowContext(ctx, findCRMCredential, userID))
	if errors.Is(err, sql.ErrNoRows) {
		return models.CRMCredential{}, ErrCRMCredentialNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*crmCredentialRepository.FindCRMCredential").Msg("failed to query crm credential")
		return models.CRMCredential{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return credential, nil
}
