// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Errors produced while parsing the "Authorization" header in the auth
// middleware; match with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader: the request carries no "Authorization"
	// header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader: the header is present but has no
	// space-separated token value after the scheme.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken: the scheme prefix is there but the token itself is "".
	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)
