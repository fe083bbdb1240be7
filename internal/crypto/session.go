// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "sync"

// UnlockSession is the single in-memory holder of a decrypted master key for
// the lifetime of a client session. It is a two-state machine:
//
//	Locked   — no master key held; field operations pass input through
//	Unlocked — master key held; field operations encrypt/decrypt
//
// The initial state is always Locked: only wrapped forms of the key are
// durable, so a stolen session artifact alone cannot yield plaintext.
//
// Safe for concurrent use. The held key is immutable while Unlocked, so
// concurrent field operations may run in parallel against it. Concurrent
// duplicate unlocks (e.g. a double-submitted password form) race harmlessly:
// both derive the same key from the same inputs.
type UnlockSession struct {
	vault KeyVaultService

	mu sync.RWMutex
	// masterKey holds the base64 text of the master key, nil while Locked.
	// Kept as a byte slice so Lock can zero it.
	masterKey []byte
}

// NewUnlockSession returns a session in the Locked state.
func NewUnlockSession(vault KeyVaultService) *UnlockSession {
	return &UnlockSession{vault: vault}
}

// IsUnlocked reports whether a master key is currently held.
func (s *UnlockSession) IsUnlocked() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.masterKey != nil
}

// UnlockWithPassword unwraps the password-wrapped envelope and transitions
// to Unlocked. An empty envelope means the account never set up encryption;
// that case returns ErrNotSetUp so the caller can offer setup instead of a
// password retry. On any failure the session stays Locked and the error is
// surfaced. The KDF runs outside the lock — it is deliberately slow.
func (s *UnlockSession) UnlockWithPassword(envelope, password string) error {
	if envelope == "" {
		return ErrNotSetUp
	}

	masterKey, err := s.vault.UnwrapWithPassword(envelope, password)
	if err != nil {
		return err
	}

	s.setKey(masterKey)
	return nil
}

// SetMasterKey transitions straight to Unlocked with a key that is already
// known in plaintext — used right after registration or encryption setup,
// where an unwrap of the just-created envelope would be redundant work.
func (s *UnlockSession) SetMasterKey(masterKey string) {
	s.setKey(masterKey)
}

// Lock scrubs the in-memory key and returns to Locked. Called on sign-out.
func (s *UnlockSession) Lock() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.masterKey {
		s.masterKey[i] = 0
	}
	s.masterKey = nil
}

// EncryptField encrypts plaintext under the held master key. While Locked it
// is an explicit no-op pass-through: the input is returned unchanged so call
// sites that handle legacy unencrypted data degrade gracefully. Callers that
// must not persist plaintext should check IsUnlocked first.
func (s *UnlockSession) EncryptField(plaintext string) (string, error) {
	key, ok := s.key()
	if !ok {
		return plaintext, nil
	}
	return s.vault.EncryptField(plaintext, key)
}

// DecryptField decrypts a field value under the held master key. While
// Locked, or when the value carries no ciphertext prefix, the input passes
// through unchanged. When authentication fails the stored value is returned
// as-is alongside the error so the caller can flag the discrepancy instead
// of silently showing empty content.
func (s *UnlockSession) DecryptField(value string) (string, error) {
	key, ok := s.key()
	if !ok {
		return value, nil
	}

	plaintext, err := s.vault.DecryptField(value, key)
	if err != nil {
		return value, err
	}
	return plaintext, nil
}

func (s *UnlockSession) setKey(masterKey string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.masterKey {
		s.masterKey[i] = 0
	}
	s.masterKey = []byte(masterKey)
}

func (s *UnlockSession) key() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.masterKey == nil {
		return "", false
	}
	return string(s.masterKey), true
}
