// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"io"
	"strings"
)

// EncPrefix marks a stored string as ciphertext. It is the sole discriminator
// between plaintext legacy values and encrypted blobs, so it must never change.
const EncPrefix = "ENC:"

// IsEncrypted reports whether value carries the ciphertext discriminator
// prefix. Plaintext user content that legitimately starts with "ENC:" would
// be misclassified; this ambiguity is an accepted property of the stored
// data format.
func IsEncrypted(value string) bool {
	return strings.HasPrefix(value, EncPrefix)
}

// wrapSecret encrypts plaintext under a key derived from secret with a fresh
// random salt and nonce, and encodes the result in the envelope wire format:
//
//	"ENC:" + base64(salt[16] ‖ iv[12] ‖ authTag[16] ‖ ciphertext)
//
// Two calls with identical inputs never produce the same blob because both
// the salt and the nonce are drawn fresh from the CSPRNG.
func wrapSecret(plaintext []byte, secret string) (string, error) {
	salt, err := GenerateSalt()
	if err != nil {
		return "", err
	}

	gcm, err := newGCM(DeriveKey(secret, salt))
	if err != nil {
		return "", err
	}

	iv := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return "", err
	}

	// Seal returns ciphertext ‖ authTag; the wire format stores the tag
	// before the ciphertext, so split and reorder.
	sealed := gcm.Seal(nil, iv, plaintext, nil)
	ct, tag := sealed[:len(sealed)-AuthTagLength], sealed[len(sealed)-AuthTagLength:]

	blob := make([]byte, 0, len(salt)+len(iv)+len(tag)+len(ct))
	blob = append(blob, salt...)
	blob = append(blob, iv...)
	blob = append(blob, tag...)
	blob = append(blob, ct...)

	return EncPrefix + base64.StdEncoding.EncodeToString(blob), nil
}

// unwrapSecret reverses wrapSecret. It re-derives the key from secret and the
// salt carried inside the blob, then decrypts and authenticates.
//
// Fails closed: a malformed blob yields ErrInvalidFormat, and any
// authentication-tag mismatch (wrong secret or corrupted data) yields a
// single ErrDecryptionFailed with no further detail.
func unwrapSecret(envelope string, secret string) ([]byte, error) {
	salt, iv, tag, ct, err := decodeEnvelope(envelope)
	if err != nil {
		return nil, err
	}

	gcm, err := newGCM(DeriveKey(secret, salt))
	if err != nil {
		return nil, err
	}

	// GCM expects ciphertext ‖ authTag.
	sealed := make([]byte, 0, len(ct)+len(tag))
	sealed = append(sealed, ct...)
	sealed = append(sealed, tag...)

	plaintext, err := gcm.Open(nil, iv, sealed, nil)
	if err != nil {
		return nil, ErrDecryptionFailed
	}

	return plaintext, nil
}

// decodeEnvelope splits an "ENC:"-prefixed blob into its salt, nonce,
// authentication tag and ciphertext parts. Returns ErrInvalidFormat if the
// prefix is missing, the base64 payload is malformed, or the decoded bytes
// are too short to contain the fixed-size header fields.
func decodeEnvelope(envelope string) (salt, iv, tag, ct []byte, err error) {
	if !IsEncrypted(envelope) {
		return nil, nil, nil, nil, ErrInvalidFormat
	}

	blob, err := base64.StdEncoding.DecodeString(envelope[len(EncPrefix):])
	if err != nil {
		return nil, nil, nil, nil, ErrInvalidFormat
	}

	if len(blob) < SaltLength+IVLength+AuthTagLength {
		return nil, nil, nil, nil, ErrInvalidFormat
	}

	salt = blob[:SaltLength]
	iv = blob[SaltLength : SaltLength+IVLength]
	tag = blob[SaltLength+IVLength : SaltLength+IVLength+AuthTagLength]
	ct = blob[SaltLength+IVLength+AuthTagLength:]

	return salt, iv, tag, ct, nil
}

// newGCM builds an AES-256-GCM AEAD from a raw 32-byte key.
func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
