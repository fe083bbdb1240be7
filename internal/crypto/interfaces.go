package crypto

// KeyVaultService owns every cryptographic operation of the envelope
// encryption scheme. It knows nothing about the network, the database or
// user accounts.
//
// Схема работы:
//
//	masterKey = GenerateMasterKey()                      (при регистрации)
//	envelope  = WrapWithPassword(masterKey, password)    (хранится на сервере)
//	code      = GenerateRecoveryKey()                    (показывается один раз)
//	recEnv    = WrapWithRecovery(masterKey, code)        (хранится на сервере)
//	hash      = HashRecoveryKey(code)                    (хранится вместо кода)
//
// The raw master key exists only transiently inside these calls and inside
// the client-held UnlockSession; no other component may retain it.
type KeyVaultService interface {
	// GenerateMasterKey produces a fresh 256-bit random master key and
	// returns it base64-encoded. Generated once per user at encryption setup.
	GenerateMasterKey() (string, error)

	// WrapWithPassword encrypts the base64 master key under a key derived
	// from password, producing an "ENC:"-prefixed envelope blob.
	WrapWithPassword(masterKey, password string) (string, error)

	// UnwrapWithPassword decrypts an envelope produced by WrapWithPassword.
	// Returns ErrDecryptionFailed for a wrong password or corrupted blob,
	// ErrInvalidFormat for a blob that is not an envelope at all.
	UnwrapWithPassword(envelope, password string) (string, error)

	// WrapWithRecovery is WrapWithPassword with the normalized recovery code
	// as the secret.
	WrapWithRecovery(masterKey, recoveryKey string) (string, error)

	// UnwrapWithRecovery is UnwrapWithPassword with the normalized recovery
	// code as the secret.
	UnwrapWithRecovery(envelope, recoveryKey string) (string, error)

	// Rewrap unwraps envelope with oldSecret and wraps the recovered master
	// key with newSecret. Used on password change. The intermediate master
	// key never leaves the call; on any failure the original envelope
	// remains the only valid one.
	Rewrap(envelope, oldSecret, newSecret string) (string, error)

	// GenerateRecoveryKey produces a human-typable recovery code:
	// 160 bits of CSPRNG entropy encoded as uppercase alphanumerics in
	// dash-separated blocks of four.
	GenerateRecoveryKey() (string, error)

	// NormalizeRecoveryKey strips dashes and whitespace and uppercases, so
	// user-entered codes with inconsistent formatting still match.
	NormalizeRecoveryKey(code string) string

	// HashRecoveryKey returns hex(SHA-256(normalized code)) — the only form
	// of the code that is ever persisted.
	HashRecoveryKey(code string) string

	// VerifyRecoveryKey reports whether code hashes to storedHash.
	VerifyRecoveryKey(code, storedHash string) bool

	// EncryptField encrypts a content field directly under the raw master
	// key (no KDF — the key is already uniformly random). Empty input is
	// returned unchanged without invoking the cipher.
	EncryptField(plaintext, masterKey string) (string, error)

	// DecryptField decrypts a field blob produced by EncryptField. Input
	// without the "ENC:" prefix is returned unchanged (legacy plaintext
	// pass-through).
	DecryptField(value, masterKey string) (string, error)

	// IsEncrypted reports whether value carries the ciphertext prefix.
	IsEncrypted(value string) bool
}
