package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mkarev/recipebox/internal/config"
	"github.com/mkarev/recipebox/internal/crypto"
	"github.com/mkarev/recipebox/internal/logger"
	"github.com/mkarev/recipebox/internal/store"
	"github.com/mkarev/recipebox/internal/utils"
	"github.com/mkarev/recipebox/models"
)

// authService is the concrete implementation of AuthService.
// It handles registration, credential verification, profile updates and the
// bearer token lifecycle using a UserRepository for persistence and bcrypt
// for password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// passwordMinLength is the minimum accepted password length, enforced
	// at registration and on password-changing profile updates.
	passwordMinLength int

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:    userRepository,
		tokenSignKey:      cfg.TokenSignKey,
		tokenIssuer:       cfg.TokenIssuer,
		tokenDuration:     cfg.TokenDuration,
		passwordMinLength: cfg.PasswordMinLength,
		logger:            logger,
	}
}

// Register creates a new user account.
//
// The email address is normalized (domain part lowercased) before any lookup
// or insert, so two registrations differing only in domain casing collide.
// New accounts are active immediately.
//
// Returns the persisted user (with a server-assigned ID) or:
//   - ErrInvalidDataProvided if the email is malformed.
//   - ErrShortPassword if the password is below the configured minimum.
//   - store.ErrEmailAlreadyExists if the address is already registered.
func (a *authService) Register(ctx context.Context, request models.CreateUserRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	email, err := utils.NormalizeEmail(request.Email)
	if err != nil {
		log.Error().Str("email", request.Email).Msg("invalid email provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if len(request.Password) < a.passwordMinLength {
		return models.User{}, ErrShortPassword
	}

	passwordHash, err := crypto.HashPassword(request.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Email:        email,
		Name:         request.Name,
		PasswordHash: passwordHash,
		IsActive:     true,
	})
	if err != nil {
		log.Err(err).Str("email", email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user by email and password.
//
// A missing account and a wrong password are both reported as
// ErrWrongCredentials so that callers cannot probe which addresses are
// registered. Inactive accounts fail with ErrInactiveUser even when the
// password is correct.
func (a *authService) Login(ctx context.Context, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if email == "" || password == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	normalized, err := utils.NormalizeEmail(email)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, normalized)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.User{}, ErrWrongCredentials
		}
		log.Err(err).Str("email", normalized).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !crypto.CheckPassword(foundUser.PasswordHash, password) {
		log.Error().Int64("id", foundUser.ID).Str("email", foundUser.Email).Msg("wrong password")
		return models.User{}, ErrWrongCredentials
	}

	if !foundUser.IsActive {
		return models.User{}, ErrInactiveUser
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the
// configured tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid so that callers do not need to inspect
// low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// GetProfile retrieves the account record for the authenticated user.
func (a *authService) GetProfile(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user, nil
}

// UpdateProfile applies a partial update to the authenticated user's
// profile. Nil request fields are left untouched; a non-nil Password is
// policy-checked and re-hashed before persistence. The email address is
// immutable.
func (a *authService) UpdateProfile(ctx context.Context, userID int64, request models.UpdateProfileRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	if request.Name != nil {
		user.Name = *request.Name
	}

	if request.Password != nil {
		if len(*request.Password) < a.passwordMinLength {
			return models.User{}, ErrShortPassword
		}
		passwordHash, hashErr := crypto.HashPassword(*request.Password)
		if hashErr != nil {
			log.Err(hashErr).Msg("password hashing failed")
			return models.User{}, fmt.Errorf("password hashing failed: %w", hashErr)
		}
		user.PasswordHash = passwordHash
	}

	updatedUser, err := a.userRepository.UpdateUser(ctx, user)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("profile update ended with error")
		return models.User{}, fmt.Errorf("profile update ended with error: %w", err)
	}

	return updatedUser, nil
}
