package service

import (
	"context"
	"fmt"
	"time"

	"github.com/webuxmotion/mdmfd-com/internal/config"
	"github.com/webuxmotion/mdmfd-com/internal/crypto"
	"github.com/webuxmotion/mdmfd-com/internal/logger"
	"github.com/webuxmotion/mdmfd-com/internal/store"
	"github.com/webuxmotion/mdmfd-com/internal/utils"
	"github.com/webuxmotion/mdmfd-com/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration (including the initial encryption envelope),
// credential verification, JWT token lifecycle, and lazy provisioning of
// missing key material at login for accounts that predate the scheme.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// pendingRepository stages freshly generated recovery codes for their
	// one-time reveal.
	pendingRepository store.PendingRecoveryRepository

	// vault performs every cryptographic operation of the envelope scheme.
	vault crypto.KeyVaultService

	// uuid generates identifiers for pending recovery key records.
	uuid *utils.UUIDGenerator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// pendingKeyTTL is the reveal window for staged recovery codes.
	pendingKeyTTL time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given repositories
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(
	userRepository store.UserRepository,
	pendingRepository store.PendingRecoveryRepository,
	vault crypto.KeyVaultService,
	cfg config.StructuredConfig,
	logger *logger.Logger,
) AuthService {
	return &authService{
		userRepository:    userRepository,
		pendingRepository: pendingRepository,
		vault:             vault,
		uuid:              utils.NewUUIDGenerator(),
		tokenSignKey:      cfg.App.TokenSignKey,
		tokenIssuer:       cfg.App.TokenIssuer,
		tokenDuration:     cfg.App.TokenDuration,
		pendingKeyTTL:     cfg.Workers.PendingKeyTTL,
		logger:            logger,
	}
}

// RegisterUser creates a new user account with its encryption envelope.
//
// It validates that Email, Username and the password are non-empty, hashes
// the password with bcrypt, generates a fresh master key and wraps it under
// the password so the account is persisted envelope-complete. Registration
// hands out a bearer token right away, so the envelope must exist before the
// first authenticated write — otherwise that window would store plaintext.
// Only the recovery side stays lazy: it is provisioned on first login, the
// next moment the plaintext password is available.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - ErrInvalidDataProvided if Email, Username or the password is empty.
//   - A wrapped crypto error if key generation or wrapping fails; the
//     account is not created in that case.
//   - A wrapped storage error if the repository call fails (see
//     store.ErrEmailAlreadyExists and store.ErrUsernameAlreadyTaken).
func (a *authService) RegisterUser(ctx context.Context, user models.User, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.Email == "" || user.Username == "" || password == "" {
		log.Error().Str("email", user.Email).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	passwordHash, err := utils.HashPassword(password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}
	user.PasswordHash = passwordHash

	masterKey, err := a.vault.GenerateMasterKey()
	if err != nil {
		log.Err(err).Msg("master key generation failed")
		return models.User{}, fmt.Errorf("master key generation failed: %w", err)
	}

	envelope, err := a.vault.WrapWithPassword(masterKey, password)
	if err != nil {
		log.Err(err).Msg("master key wrapping failed")
		return models.User{}, fmt.Errorf("master key wrapping failed: %w", err)
	}
	user.EncryptedMasterKey = envelope

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user and lazily provisions key material.
//
// After the bcrypt check passes, the plaintext password is briefly available,
// which is the only moment the server can wrap a master key for accounts that
// predate envelope encryption:
//   - no envelope at all → generate master key, password envelope, recovery
//     code, recovery envelope and hash, and store them together;
//   - envelope but no recovery material → unwrap with the password and add
//     the recovery side only.
//
// Freshly generated recovery codes are staged for a one-time reveal via
// GET /api/auth/pending-recovery-key. Provisioning failures are logged but do
// not fail the login: locking a user out over a transient error would be
// worse than retrying provisioning on their next login.
//
// Returns the authenticated user record or:
//   - ErrInvalidDataProvided if email or password is empty.
//   - A wrapped storage error if the lookup fails (see store.ErrNoUserWasFound).
//   - ErrWrongPassword if the bcrypt comparison fails.
func (a *authService) Login(ctx context.Context, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if email == "" || password == "" {
		log.Error().Str("email", email).Msg("invalid login data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !utils.CheckPassword(password, foundUser.PasswordHash) {
		log.Error().
			Int64("id", foundUser.UserID).
			Str("email", foundUser.Email).
			Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return a.provisionKeys(ctx, foundUser, password), nil
}

// provisionKeys fills in missing key material for an authenticated user.
// Best effort: on any failure the user is returned as found and provisioning
// is retried on the next login.
func (a *authService) provisionKeys(ctx context.Context, user models.User, password string) models.User {
	log := logger.FromContext(ctx)

	switch {
	case !user.HasEncryption():
		masterKey, err := a.vault.GenerateMasterKey()
		if err != nil {
			log.Err(err).Int64("id", user.UserID).Msg("master key generation failed")
			return user
		}

		envelope, err := a.vault.WrapWithPassword(masterKey, password)
		if err != nil {
			log.Err(err).Int64("id", user.UserID).Msg("master key wrapping failed")
			return user
		}

		code, recoveryEnvelope, recoveryHash, err := a.makeRecoverySet(masterKey)
		if err != nil {
			log.Err(err).Int64("id", user.UserID).Msg("recovery key generation failed")
			return user
		}

		if err := a.userRepository.UpdateEncryptionKeys(ctx, user.UserID, envelope, recoveryHash, recoveryEnvelope); err != nil {
			log.Err(err).Int64("id", user.UserID).Msg("storing key material failed")
			return user
		}

		a.stagePendingKey(ctx, user.UserID, code)

		user.EncryptedMasterKey = envelope
		user.RecoveryKeyHash = recoveryHash
		user.RecoveryEncryptedMasterKey = recoveryEnvelope

	case !user.HasRecovery():
		masterKey, err := a.vault.UnwrapWithPassword(user.EncryptedMasterKey, password)
		if err != nil {
			log.Err(err).Int64("id", user.UserID).Msg("master key unwrapping failed")
			return user
		}

		code, recoveryEnvelope, recoveryHash, err := a.makeRecoverySet(masterKey)
		if err != nil {
			log.Err(err).Int64("id", user.UserID).Msg("recovery key generation failed")
			return user
		}

		if err := a.userRepository.UpdateRecoveryKeys(ctx, user.UserID, recoveryHash, recoveryEnvelope); err != nil {
			log.Err(err).Int64("id", user.UserID).Msg("storing recovery material failed")
			return user
		}

		a.stagePendingKey(ctx, user.UserID, code)

		user.RecoveryKeyHash = recoveryHash
		user.RecoveryEncryptedMasterKey = recoveryEnvelope
	}

	return user
}

// makeRecoverySet generates a recovery code and derives everything stored
// server-side from it: the recovery-wrapped envelope and the code hash.
func (a *authService) makeRecoverySet(masterKey string) (code, recoveryEnvelope, recoveryHash string, err error) {
	code, err = a.vault.GenerateRecoveryKey()
	if err != nil {
		return "", "", "", err
	}

	recoveryEnvelope, err = a.vault.WrapWithRecovery(masterKey, code)
	if err != nil {
		return "", "", "", err
	}

	return code, recoveryEnvelope, a.vault.HashRecoveryKey(code), nil
}

// stagePendingKey stores the plaintext code for its one-time reveal.
// Best effort: the user can regenerate a recovery code later.
func (a *authService) stagePendingKey(ctx context.Context, userID int64, code string) {
	log := logger.FromContext(ctx)

	now := time.Now()
	err := a.pendingRepository.Replace(ctx, models.PendingRecoveryKey{
		ID:          a.uuid.Generate(),
		UserID:      userID,
		RecoveryKey: code,
		CreatedAt:   now,
		ExpiresAt:   now.Add(a.pendingKeyTTL),
	})
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("staging pending recovery key failed")
	}
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
//
// Returns the token model on success or a wrapped error if JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature and
// the issuer claim. Any validation failure (expired, wrong issuer, malformed)
// is normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
