package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/inventory-keeper/internal/access"
	"github.com/MKhiriev/inventory-keeper/internal/config"
	"github.com/MKhiriev/inventory-keeper/internal/logger"
	"github.com/MKhiriev/inventory-keeper/internal/store"
	"github.com/MKhiriev/inventory-keeper/internal/utils"
	"github.com/MKhiriev/inventory-keeper/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and bcrypt for password
// hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// hasher produces and checks salted password hashes.
	hasher *utils.PasswordHasher

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// registrationStatus is assigned to every new account.
	registrationStatus models.Status

	now func() time.Time

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:     userRepository,
		hasher:             utils.NewPasswordHasher(cfg.PasswordHashCost),
		tokenSignKey:       cfg.TokenSignKey,
		tokenIssuer:        cfg.TokenIssuer,
		tokenDuration:      cfg.TokenDuration,
		registrationStatus: models.Status(cfg.RegistrationStatus),
		now:                time.Now,
		logger:             logger,
	}
}

// RegisterUser creates a new account with the user role and the configured
// registration status.
//
// The email is normalised before the uniqueness pre-check; the unique index on
// LOWER(email) remains the final authority for concurrent registrations.
//
// Returns the persisted user without secrets or:
//   - store.ErrEmailAlreadyExists (wrapped) if the email is taken.
//   - utils.ErrPasswordHashFailure (wrapped) if hashing fails.
func (a *authService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	user.Email = utils.NormalizeEmail(user.Email)
	user.Name = strings.TrimSpace(user.Name)

	_, err := a.userRepository.FindUserByEmail(ctx, user.Email)
	switch {
	case err == nil:
		log.Warn().Str("func", "authService.RegisterUser").Str("email", user.Email).Msg("email already registered")
		return models.User{}, store.ErrEmailAlreadyExists
	case !errors.Is(err, store.ErrUserNotFound):
		log.Err(err).Str("func", "authService.RegisterUser").Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	hash, err := a.hasher.Hash(user.Password)
	if err != nil {
		log.Err(err).Str("func", "authService.RegisterUser").Msg("password hashing failed")
		return models.User{}, err
	}

	user.PasswordHash = hash
	user.Password = ""
	user.Role = models.RoleUser
	user.Status = a.registrationStatus

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("func", "authService.RegisterUser").Str("email", user.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser.Public(), nil
}

// Login authenticates an existing user by email and password and records the
// login time.
//
// Returns the authenticated user without secrets or:
//   - ErrInvalidCredentials if the email is unknown or the password does not
//     match. Both cases are indistinguishable to the caller.
//   - access.ErrBlocked if the account is blocked.
func (a *authService) Login(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	foundUser, err := a.userRepository.FindUserByEmail(ctx, utils.NormalizeEmail(user.Email))
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Warn().Str("func", "authService.Login").Msg("login with unknown email")
			return models.User{}, ErrInvalidCredentials
		}
		log.Err(err).Str("func", "authService.Login").Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !a.hasher.Compare(foundUser.PasswordHash, user.Password) {
		log.Warn().Str("func", "authService.Login").Str("id", foundUser.UserID).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	if foundUser.Status == models.StatusBlocked {
		log.Warn().Str("func", "authService.Login").Str("id", foundUser.UserID).Msg("blocked user tried to log in")
		return models.User{}, access.ErrBlocked
	}

	loginAt := a.now().UTC()
	if err = a.userRepository.UpdateLastLogin(ctx, foundUser.UserID, loginAt); err != nil {
		log.Err(err).Str("func", "authService.Login").Str("id", foundUser.UserID).Msg("updating last login failed")
		return models.User{}, fmt.Errorf("updating last login failed: %w", err)
	}
	foundUser.LastLogin = &loginAt

	return foundUser.Public(), nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token carries the user ID as subject and the email as a custom claim.
// Role and status are not embedded.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, user.Email, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, wrong algorithm, malformed)
// is normalised to ErrTokenIsExpiredOrInvalid. Expiry is logged separately.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		log := logger.FromContext(ctx)
		if errors.Is(err, utils.ErrTokenIsExpired) {
			log.Debug().Str("func", "authService.ParseToken").Msg("token is expired")
		} else {
			log.Debug().Err(err).Str("func", "authService.ParseToken").Msg("token is invalid")
		}
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenIsExpiredOrInvalid, err)
	}

	return token, nil
}
