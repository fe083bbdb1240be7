// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"io"

	"golang.org/x/crypto/pbkdf2"
)

// Sizes and work factors of the encryption scheme. These values are part of
// the stored data format: changing any of them breaks decryption of every
// envelope already persisted.
const (
	// SaltLength is the size in bytes of the random KDF salt stored inside
	// every wrapped master key.
	SaltLength = 16

	// IVLength is the AES-GCM nonce size in bytes.
	IVLength = 12

	// AuthTagLength is the AES-GCM authentication tag size in bytes.
	AuthTagLength = 16

	// KeyLength is the symmetric key size in bytes (AES-256).
	KeyLength = 32

	// Iterations is the PBKDF2 work factor. Chosen to cost tens of
	// milliseconds on commodity hardware as a defense against offline
	// brute force of human-chosen passwords.
	Iterations = 100_000
)

// DeriveKey derives a 256-bit AES key from a low-entropy secret (password or
// recovery code) and a random salt using PBKDF2-SHA256 with the fixed
// iteration count. Deterministic: the same (secret, salt) pair always yields
// the same key; different salts for the same secret yield unlinkable keys.
//
// CPU-bound by design — callers should treat it as a slow operation and never
// hold locks across it.
func DeriveKey(secret string, salt []byte) []byte {
	return pbkdf2.Key([]byte(secret), salt, Iterations, KeyLength, sha256.New)
}

// GenerateSalt reads SaltLength random bytes from the OS CSPRNG. The salt is
// not a secret — it is stored in the clear inside the envelope so the same
// key can be re-derived at unwrap time.
func GenerateSalt() ([]byte, error) {
	salt := make([]byte, SaltLength)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, err
	}
	return salt, nil
}
