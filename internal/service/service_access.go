package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/inventory-keeper/internal/access"
	"github.com/MKhiriev/inventory-keeper/internal/logger"
	"github.com/MKhiriev/inventory-keeper/internal/store"
	"github.com/MKhiriev/inventory-keeper/models"
)

type accessService struct {
	userRepository store.UserRepository

	logger *logger.Logger
}

func NewAccessService(userRepository store.UserRepository, logger *logger.Logger) AccessService {
	return &accessService{userRepository: userRepository, logger: logger}
}

// ResolveCaller re-reads the account of userID. An unknown account yields
// access.ErrUnauthenticated and a blocked one access.ErrBlocked, before any
// route policy is evaluated.
func (s *accessService) ResolveCaller(ctx context.Context, userID string) (models.Caller, error) {
	log := logger.FromContext(ctx)

	if userID == "" {
		return models.Caller{}, access.ErrUnauthenticated
	}

	user, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Warn().Str("func", "accessService.ResolveCaller").Str("id", userID).Msg("token subject no longer exists")
			return models.Caller{}, access.ErrUnauthenticated
		}
		log.Err(err).Str("func", "accessService.ResolveCaller").Str("id", userID).Msg("caller lookup failed")
		return models.Caller{}, fmt.Errorf("caller lookup failed: %w", err)
	}

	caller := models.Caller{
		UserID: user.UserID,
		Email:  user.Email,
		Role:   user.Role,
		Status: user.Status,
	}

	if err = access.Decide(caller, access.PolicyAuthenticated, ""); err != nil {
		log.Warn().Str("func", "accessService.ResolveCaller").Str("id", userID).Msg("blocked caller rejected")
		return models.Caller{}, err
	}

	return caller, nil
}
