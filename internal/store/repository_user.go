package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/webuxmotion/mdmfd-com/internal/logger"
	"github.com/webuxmotion/mdmfd-com/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles user account creation, lookup, and key-material updates against
// the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record, including its password-wrapped
// master key envelope, and returns the fully populated [models.User] with
// server-assigned fields (UserID, CreatedAt).
//
// The INSERT uses the [createUser] query which returns all columns via a
// RETURNING clause, so the caller receives the canonical database
// representation of the newly created account.
//
// Error handling:
//   - unique_violation (23505) on the username constraint →
//     [ErrUsernameAlreadyTaken]; on any other constraint →
//     [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → returned directly.
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser, user.Username, user.FullName, user.Email, user.PasswordHash, user.EncryptedMasterKey)

	// create user in db
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			if strings.Contains(postgresConstraint(err), "username") {
				return models.User{}, ErrUsernameAlreadyTaken
			}
			return models.User{}, ErrEmailAlreadyExists
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	// scan saved user from db
	if err := scanUser(row, &user); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: scanning error")
		return models.User{}, err
	}

	return user, nil
}

// FindUserByEmail retrieves a user record by email address.
//
// Error handling:
//   - No matching row → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findUser(ctx, findUserByEmail, email)
}

// FindUserByID retrieves a user record by its numeric identifier.
//
// Error handling is identical to [userRepository.FindUserByEmail].
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	return r.findUser(ctx, findUserByID, userID)
}

func (r *userRepository) findUser(ctx context.Context, query string, arg any) (models.User, error) {
	log := logger.FromContext(ctx)

	var foundUser models.User
	row := r.db.QueryRowContext(ctx, query, arg)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.findUser").Msg("error: row is nil")
		switch postgresError(err) {
		case pgerrcode.NoDataFound:
			return models.User{}, ErrNoUserWasFound
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	if err := scanUser(row, &foundUser); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.findUser").Msg("error: scanning error")
		return models.User{}, err
	}

	return foundUser, nil
}

// UpdateEncryptionKeys stores the password envelope, recovery key hash and
// recovery envelope in one UPDATE so key material is never half-written.
func (r *userRepository) UpdateEncryptionKeys(ctx context.Context, userID int64, encryptedMasterKey, recoveryKeyHash, recoveryEncryptedMasterKey string) error {
	return r.execUserUpdate(ctx, "*userRepository.UpdateEncryptionKeys", updateUserEncryptionKeys,
		encryptedMasterKey, recoveryKeyHash, recoveryEncryptedMasterKey, userID)
}

// UpdatePasswordAndEnvelope atomically replaces the login password hash and
// the password-wrapped master key envelope. Both change together or not at
// all: a new password with a stale envelope would lock the user out of their
// data.
func (r *userRepository) UpdatePasswordAndEnvelope(ctx context.Context, userID int64, passwordHash, encryptedMasterKey string) error {
	return r.execUserUpdate(ctx, "*userRepository.UpdatePasswordAndEnvelope", updateUserPasswordAndEnvelope,
		passwordHash, encryptedMasterKey, userID)
}

// UpdateRecoveryKeys replaces only the recovery key material.
func (r *userRepository) UpdateRecoveryKeys(ctx context.Context, userID int64, recoveryKeyHash, recoveryEncryptedMasterKey string) error {
	return r.execUserUpdate(ctx, "*userRepository.UpdateRecoveryKeys", updateUserRecoveryKeys,
		recoveryKeyHash, recoveryEncryptedMasterKey, userID)
}

func (r *userRepository) execUserUpdate(ctx context.Context, fn, query string, args ...any) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("error: executing update")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", fn).Msg("error: rows affected")
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}

func scanUser(row *sql.Row, user *models.User) error {
	return row.Scan(
		&user.UserID,
		&user.Username,
		&user.FullName,
		&user.Email,
		&user.PasswordHash,
		&user.EncryptedMasterKey,
		&user.RecoveryKeyHash,
		&user.RecoveryEncryptedMasterKey,
		&user.CreatedAt,
	)
}
