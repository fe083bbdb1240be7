// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"io"
)

// keyVaultService is the private implementation of [KeyVaultService].
type keyVaultService struct{}

// NewKeyVaultService constructs a [KeyVaultService]. The service is stateless
// and safe for concurrent use.
func NewKeyVaultService() KeyVaultService {
	return &keyVaultService{}
}

// GenerateMasterKey implements [KeyVaultService]. It reads 32 random bytes
// from the OS CSPRNG and returns them base64-encoded. The base64 string is
// the canonical in-memory form of the master key: it is what gets wrapped
// into envelopes and what the field cipher decodes before use.
func (k *keyVaultService) GenerateMasterKey() (string, error) {
	key := make([]byte, KeyLength)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(key), nil
}

// WrapWithPassword implements [KeyVaultService]. It derives a key from the
// password with a fresh salt and seals the master key into an envelope blob.
func (k *keyVaultService) WrapWithPassword(masterKey, password string) (string, error) {
	return wrapSecret([]byte(masterKey), password)
}

// UnwrapWithPassword implements [KeyVaultService]. An authentication failure
// here almost always means the user entered the wrong password.
func (k *keyVaultService) UnwrapWithPassword(envelope, password string) (string, error) {
	plaintext, err := unwrapSecret(envelope, password)
	if err != nil {
		return "", err
	}
	return string(plaintext), nil
}

// WrapWithRecovery implements [KeyVaultService]. The envelope codec is
// agnostic to where the secret came from; the only difference from the
// password path is that the recovery code is normalized first so that the
// formatted code shown to the user and its bare transcription derive the
// same key.
func (k *keyVaultService) WrapWithRecovery(masterKey, recoveryKey string) (string, error) {
	return wrapSecret([]byte(masterKey), k.NormalizeRecoveryKey(recoveryKey))
}

// UnwrapWithRecovery implements [KeyVaultService].
func (k *keyVaultService) UnwrapWithRecovery(envelope, recoveryKey string) (string, error) {
	plaintext, err := unwrapSecret(envelope, k.NormalizeRecoveryKey(recoveryKey))
	if err != nil {
		return "", err
	}
	return string(plaintext), nil
}

// Rewrap implements [KeyVaultService]. Both steps happen in memory: the
// caller persists the returned envelope only after Rewrap succeeds, so the
// stored envelope is never left half-updated. The recovered master key is
// not retained beyond this call.
func (k *keyVaultService) Rewrap(envelope, oldSecret, newSecret string) (string, error) {
	masterKey, err := unwrapSecret(envelope, oldSecret)
	if err != nil {
		return "", err
	}
	return wrapSecret(masterKey, newSecret)
}
