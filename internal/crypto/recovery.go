// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base32"
	"encoding/hex"
	"io"
	"strings"
)

const (
	// recoveryEntropyBytes is the raw entropy of a recovery code before
	// encoding: 160 bits. Enough to make offline brute force infeasible
	// without a deliberately slow verification hash.
	recoveryEntropyBytes = 20

	// recoveryGroupSize is the number of characters per dash-separated block.
	recoveryGroupSize = 4
)

// GenerateRecoveryKey implements [KeyVaultService]. It reads 20 random bytes
// from the OS CSPRNG, encodes them with base32 (uppercase A–Z, 2–7, no
// padding) and groups the 32 resulting characters into dash-separated blocks
// of four for human transcription:
//
//	XXXX-XXXX-XXXX-XXXX-XXXX-XXXX-XXXX-XXXX
//
// The code is shown to the user exactly once and never stored; only its
// hash and the recovery-wrapped master key envelope are persisted.
func (k *keyVaultService) GenerateRecoveryKey() (string, error) {
	raw := make([]byte, recoveryEntropyBytes)
	if _, err := io.ReadFull(rand.Reader, raw); err != nil {
		return "", err
	}

	encoded := base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(raw)

	var b strings.Builder
	for i := 0; i < len(encoded); i += recoveryGroupSize {
		if i > 0 {
			b.WriteByte('-')
		}
		b.WriteString(encoded[i : i+recoveryGroupSize])
	}

	return b.String(), nil
}

// NormalizeRecoveryKey implements [KeyVaultService]. It strips dashes and
// whitespace and uppercases, so "abcd-efgh", "ABCDEFGH" and " abcdefgh "
// all canonicalize to the same string and therefore the same hash and
// derived key.
func (k *keyVaultService) NormalizeRecoveryKey(code string) string {
	var b strings.Builder
	b.Grow(len(code))
	for _, r := range strings.ToUpper(code) {
		if r == '-' || r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// HashRecoveryKey implements [KeyVaultService]. A fast SHA-256 rather than a
// slow KDF: the code's own 160 bits of entropy are the brute-force defense,
// unlike the password case.
func (k *keyVaultService) HashRecoveryKey(code string) string {
	sum := sha256.Sum256([]byte(k.NormalizeRecoveryKey(code)))
	return hex.EncodeToString(sum[:])
}

// VerifyRecoveryKey implements [KeyVaultService]. The comparison is
// constant-time over the hex digests.
func (k *keyVaultService) VerifyRecoveryKey(code, storedHash string) bool {
	computed := k.HashRecoveryKey(code)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(storedHash)) == 1
}
