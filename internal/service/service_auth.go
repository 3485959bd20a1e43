package service

import (
	"context"
	"fmt"
	"time"

	"carmarket/internal/config"
	"carmarket/internal/logger"
	"carmarket/internal/store"
	"carmarket/internal/utils"
	"carmarket/internal/validators"
	"carmarket/models"
)

// authService is the concrete implementation of AuthService.
// It handles signup, credential verification, and the session token
// lifecycle using a UserRepository for persistence and HMAC-SHA256 for
// password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// validator checks signup/login payloads before they reach storage.
	validator *validators.Validator

	// hashKey is the HMAC secret used when hashing user passwords before
	// storage or comparison. Must match the value used at signup time.
	hashKey string

	// tokenSignKey is the HMAC secret used to sign and verify session JWTs.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued token.
	// Tokens whose issuer does not match this value are rejected during
	// validation.
	tokenIssuer string

	// tokenDuration controls how long a newly issued token remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, validator *validators.Validator, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		validator:      validator,
		hashKey:        cfg.PasswordHashKey,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Signup creates a new user account.
//
// It validates that both Username and Password are present, hashes the
// password with the configured HMAC key, and delegates persistence to the
// UserRepository.
//
// Returns the persisted user (with a server-assigned ID) or:
//   - ErrInvalidDataProvided if the credentials fail validation.
//   - A wrapped storage error if the repository call fails (e.g. username
//     already taken — see store.ErrUsernameTaken).
func (a *authService) Signup(ctx context.Context, creds models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.ValidateCredentials(creds); err != nil {
		log.Err(err).Str("username", creds.Username).Msg("invalid signup data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	user := models.User{
		Username: creds.Username,
		Password: utils.HashString(creds.Password, a.hashKey),
		Fullname: creds.Fullname,
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("username", creds.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// It validates that both Username and Password are present, hashes the
// supplied password, looks up the account by username, and compares the
// hashed passwords byte-exact.
//
// Returns the authenticated user record or:
//   - ErrInvalidDataProvided if Username or Password is empty.
//   - A wrapped storage error if the lookup fails (e.g. user not found —
//     see store.ErrNoUserWasFound).
//   - ErrWrongPassword if the hashed passwords do not match.
func (a *authService) Login(ctx context.Context, creds models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.ValidateCredentials(creds); err != nil {
		log.Err(err).Str("username", creds.Username).Msg("invalid login data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, creds.Username)
	if err != nil {
		log.Err(err).Str("username", creds.Username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if foundUser.Password != utils.HashString(creds.Password, a.hashKey) {
		log.Error().
			Str("id", foundUser.ID).
			Str("username", foundUser.Username).
			Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return foundUser, nil
}

// CreateToken issues a signed session token for the given user.
//
// The token is signed with the configured tokenSignKey, carries the
// configured tokenIssuer as the "iss" claim, embeds the user's public
// identity, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ToIdentity(), a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ValidateToken validates and parses a raw session token string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature
// and the issuer claim. Any validation failure (expired, wrong issuer,
// malformed, tampered) is normalised to ErrTokenIsExpiredOrInvalid so that
// callers do not need to inspect low-level JWT errors.
func (a *authService) ValidateToken(ctx context.Context, tokenString string) (models.Identity, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Identity{}, ErrTokenIsExpiredOrInvalid
	}

	return token.Identity, nil
}
