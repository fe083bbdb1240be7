// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"io"
)

// EncryptField implements [KeyVaultService]. It encrypts a content field
// directly under the raw master key using AES-256-GCM and encodes the result
// in the field wire format:
//
//	"ENC:" + base64(iv[12] ‖ ciphertext ‖ authTag[16])
//
// No salt and no KDF: the master key is already uniformly random. The nonce
// is still drawn fresh per call, so encrypting the same plaintext twice
// yields different blobs.
//
// The empty string is its own fixed point — it is returned unchanged without
// invoking the cipher, avoiding a recognizable constant ciphertext for empty
// content.
func (k *keyVaultService) EncryptField(plaintext, masterKey string) (string, error) {
	if plaintext == "" {
		return "", nil
	}

	key, err := base64.StdEncoding.DecodeString(masterKey)
	if err != nil {
		return "", ErrInvalidFormat
	}

	gcm, err := newGCM(key)
	if err != nil {
		return "", err
	}

	iv := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return "", err
	}

	// Seal already emits ciphertext ‖ authTag, which is exactly the field
	// layout, so no reordering is needed here.
	sealed := gcm.Seal(nil, iv, []byte(plaintext), nil)

	blob := make([]byte, 0, len(iv)+len(sealed))
	blob = append(blob, iv...)
	blob = append(blob, sealed...)

	return EncPrefix + base64.StdEncoding.EncodeToString(blob), nil
}

// DecryptField implements [KeyVaultService]. Input without the "ENC:" prefix
// is returned unchanged: legacy records written before encryption was
// enabled must keep rendering. This makes the call idempotent-safe on
// plaintext.
//
// Returns ErrInvalidFormat for a prefixed blob that is not decodable and
// ErrDecryptionFailed when authentication fails (wrong key or corrupted
// ciphertext).
func (k *keyVaultService) DecryptField(value, masterKey string) (string, error) {
	if value == "" {
		return "", nil
	}
	if !IsEncrypted(value) {
		return value, nil
	}

	blob, err := base64.StdEncoding.DecodeString(value[len(EncPrefix):])
	if err != nil {
		return "", ErrInvalidFormat
	}
	if len(blob) < IVLength+AuthTagLength {
		return "", ErrInvalidFormat
	}

	key, err := base64.StdEncoding.DecodeString(masterKey)
	if err != nil {
		return "", ErrInvalidFormat
	}

	gcm, err := newGCM(key)
	if err != nil {
		return "", err
	}

	iv, sealed := blob[:IVLength], blob[IVLength:]

	plaintext, err := gcm.Open(nil, iv, sealed, nil)
	if err != nil {
		return "", ErrDecryptionFailed
	}

	return string(plaintext), nil
}

// IsEncrypted implements [KeyVaultService].
func (k *keyVaultService) IsEncrypted(value string) bool {
	return IsEncrypted(value)
}
