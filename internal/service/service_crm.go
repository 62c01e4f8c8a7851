package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/inventory-keeper/internal/access"
	"github.com/MKhiriev/inventory-keeper/internal/adapter"
	"github.com/MKhiriev/inventory-keeper/internal/logger"
	"github.com/MKhiriev/inventory-keeper/internal/store"
	"github.com/MKhiriev/inventory-keeper/models"
)

type crmService struct {
	credentialRepository store.CRMCredentialRepository
	connector            adapter.CRMConnector

	logger *logger.Logger
}

func NewCRMService(credentialRepository store.CRMCredentialRepository, connector adapter.CRMConnector, logger *logger.Logger) CRMService {
	return &crmService{
		credentialRepository: credentialRepository,
		connector:            connector,
		logger:               logger,
	}
}

// SaveCredential stores the caller's tokens. An empty refresh token keeps the
// previously stored one.
func (s *crmService) SaveCredential(ctx context.Context, caller models.Caller, credential models.CRMCredential) error {
	if err := access.Decide(caller, access.PolicyAuthenticated, ""); err != nil {
		return err
	}

	credential.UserID = caller.UserID
	credential.InstanceURL = strings.TrimRight(strings.TrimSpace(credential.InstanceURL), "/")

	if _, err := s.credentialRepository.SaveCRMCredential(ctx, credential); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "crmService.SaveCredential").Str("id", caller.UserID).Msg("saving crm credential failed")
		return fmt.Errorf("saving crm credential failed: %w", err)
	}
	return nil
}

func (s *crmService) Health(ctx context.Context, caller models.Caller) (models.CRMHealth, error) {
	if err := access.Decide(caller, access.PolicyAuthenticated, ""); err != nil {
		return models.CRMHealth{}, err
	}

	credential, err := s.credentialRepository.FindCRMCredential(ctx, caller.UserID)
	switch {
	case errors.Is(err, store.ErrCRMCredentialNotFound):
		return models.CRMHealth{OK: true, HasToken: false}, nil
	case err != nil:
		return models.CRMHealth{}, fmt.Errorf("crm credential lookup failed: %w", err)
	}

	return models.CRMHealth{OK: true, HasToken: credential.AccessToken != ""}, nil
}

// CreateContact creates an Account and a Contact with the caller's stored
// credential. On an expired access token the credential is refreshed,
// persisted and only the rejected step is retried, exactly once. Errors carry
// the id of an Account that was already created.
func (s *crmService) CreateContact(ctx context.Context, caller models.Caller, contact models.CRMContact) (models.CRMResult, error) {
	log := logger.FromContext(ctx)

	if err := access.Decide(caller, access.PolicyAuthenticated, ""); err != nil {
		return models.CRMResult{}, err
	}

	credential, err := s.credentialRepository.FindCRMCredential(ctx, caller.UserID)
	if err != nil {
		if errors.Is(err, store.ErrCRMCredentialNotFound) {
			return models.CRMResult{}, ErrCRMNotConfigured
		}
		return models.CRMResult{}, fmt.Errorf("crm credential lookup failed: %w", err)
	}

	result, err := s.connector.CreateAccountAndContact(ctx, credential, contact, "")
	if err == nil {
		return result, nil
	}
	if !errors.Is(err, adapter.ErrUnauthorized) {
		log.Err(err).Str("func", "crmService.CreateContact").Str("id", caller.UserID).Str("account_id", result.AccountID).Msg("crm create failed")
		return result, fmt.Errorf("%w: %w", ErrCRMFailure, err)
	}

	log.Info().Str("func", "crmService.CreateContact").Str("id", caller.UserID).Str("account_id", result.AccountID).Msg("crm access token rejected, refreshing")

	refreshed, err := s.connector.RefreshCredential(ctx, credential)
	if err != nil {
		log.Err(err).Str("func", "crmService.CreateContact").Str("id", caller.UserID).Msg("crm token refresh failed")
		return result, fmt.Errorf("%w: %w", ErrCRMFailure, err)
	}

	if refreshed, err = s.credentialRepository.SaveCRMCredential(ctx, refreshed); err != nil {
		log.Err(err).Str("func", "crmService.CreateContact").Str("id", caller.UserID).Msg("saving refreshed crm credential failed")
		return result, fmt.Errorf("saving refreshed crm credential failed: %w", err)
	}

	accountID := result.AccountID
	result, err = s.connector.CreateAccountAndContact(ctx, refreshed, contact, accountID)
	if result.AccountID == "" {
		result.AccountID = accountID
	}
	if err != nil {
		log.Err(err).Str("func", "crmService.CreateContact").Str("id", caller.UserID).Str("account_id", result.AccountID).Msg("crm create failed after refresh")
		return result, fmt.Errorf("%w: %w", ErrCRMFailure, err)
	}

	return result, nil
}
