// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

// Sentinel errors returned by the key vault. Callers match against them with
// [errors.Is]. The taxonomy is deliberately small: a failed unwrap never
// reveals whether the blob was corrupt or the secret was wrong beyond the
// format/authentication split below.
var (
	// ErrInvalidFormat is returned when a blob does not match the tagged
	// envelope structure (missing "ENC:" prefix, bad base64, or too short to
	// contain salt, nonce and authentication tag). Treated as corrupt data.
	ErrInvalidFormat = errors.New("invalid encrypted data format")

	// ErrDecryptionFailed is returned when AES-GCM authentication fails.
	// In practice this almost always means the wrong password or recovery
	// code was supplied, but callers must not distinguish the two cases.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrNotSetUp is returned when an operation requires an encryption
	// envelope but the user has none yet. Distinct from ErrDecryptionFailed
	// so the UI can offer setup instead of a password retry.
	ErrNotSetUp = errors.New("encryption is not set up")
)
