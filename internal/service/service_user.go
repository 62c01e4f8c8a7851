package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/inventory-keeper/internal/access"
	"github.com/MKhiriev/inventory-keeper/internal/logger"
	"github.com/MKhiriev/inventory-keeper/internal/store"
	"github.com/MKhiriev/inventory-keeper/models"
)

type userService struct {
	userRepository store.UserRepository

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{userRepository: userRepository, logger: logger}
}

// GetUser returns the caller's own account without secrets.
func (s *userService) GetUser(ctx context.Context, caller models.Caller) (models.User, error) {
	if err := access.Decide(caller, access.PolicyAuthenticated, ""); err != nil {
		return models.User{}, err
	}

	user, err := s.userRepository.FindUserByID(ctx, caller.UserID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "userService.GetUser").Str("id", caller.UserID).Msg("user lookup failed")
		return models.User{}, fmt.Errorf("user lookup failed: %w", err)
	}

	return user.Public(), nil
}

func (s *userService) ListUsers(ctx context.Context, caller models.Caller) ([]models.User, error) {
	if err := access.Decide(caller, access.PolicyAdminOnly, ""); err != nil {
		return nil, err
	}

	users, err := s.userRepository.ListUsers(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "userService.ListUsers").Msg("listing users failed")
		return nil, fmt.Errorf("listing users failed: %w", err)
	}

	for i := range users {
		users[i] = users[i].Public()
	}
	return users, nil
}

func (s *userService) UpdateUser(ctx context.Context, caller models.Caller, update models.UserUpdate) (models.User, error) {
	if err := access.Decide(caller, access.PolicyAdminOnly, ""); err != nil {
		return models.User{}, err
	}

	user, err := s.userRepository.UpdateUser(ctx, update)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "userService.UpdateUser").Str("id", update.UserID).Msg("updating user failed")
		return models.User{}, fmt.Errorf("updating user failed: %w", err)
	}

	logger.FromContext(ctx).Info().
		Str("func", "userService.UpdateUser").
		Str("id", update.UserID).
		Str("by", caller.UserID).
		Msg("user updated")

	return user.Public(), nil
}

// UpdateUsers applies every update in one transaction; a single unknown user
// rolls the whole batch back.
func (s *userService) UpdateUsers(ctx context.Context, caller models.Caller, request models.BulkUserUpdateRequest) error {
	if err := access.Decide(caller, access.PolicyAdminOnly, ""); err != nil {
		return err
	}

	if err := s.userRepository.UpdateUsers(ctx, request.Users); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "userService.UpdateUsers").Int("count", len(request.Users)).Msg("bulk user update failed")
		return fmt.Errorf("bulk user update failed: %w", err)
	}

	return nil
}

// DeleteUser removes the account and, by cascade, everything it owns.
func (s *userService) DeleteUser(ctx context.Context, caller models.Caller, userID string) error {
	if err := access.Decide(caller, access.PolicySelfOrAdmin, userID); err != nil {
		return err
	}

	if err := s.userRepository.DeleteUser(ctx, userID); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "userService.DeleteUser").Str("id", userID).Msg("deleting user failed")
		return fmt.Errorf("deleting user failed: %w", err)
	}

	logger.FromContext(ctx).Info().
		Str("func", "userService.DeleteUser").
		Str("id", userID).
		Str("by", caller.UserID).
		Msg("user deleted")

	return nil
}
