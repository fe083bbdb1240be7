package service

import (
	"errors"
	"fmt"

	"github.com/webuxmotion/mdmfd-com/internal/crypto"
)

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrWrongRecoveryKey is returned when a supplied recovery code does not
	// hash to the stored recovery key hash. Deliberately indistinguishable
	// from a corrupted code.
	ErrWrongRecoveryKey = errors.New("wrong recovery key")

	// ErrEncryptionAlreadySetUp is returned when encryption setup is requested
	// for an account that already has a master key envelope. Setup is not
	// idempotent: rerunning it would discard the key the user's data is
	// encrypted under.
	ErrEncryptionAlreadySetUp = errors.New("encryption is already set up")

	// ErrEncryptionNotSetUp is returned when an operation requires an existing
	// master key envelope and the account has none. Wraps [crypto.ErrNotSetUp]
	// so callers can match on either layer's sentinel.
	ErrEncryptionNotSetUp = fmt.Errorf("%w", crypto.ErrNotSetUp)

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
