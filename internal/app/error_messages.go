// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// server handlers, middleware and the client.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidEmailPassword is returned when the supplied email/password
	// combination does not match any existing user record.
	MsgInvalidEmailPassword = "invalid email/password"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token is
	// either expired or cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgEmailAlreadyExists is returned when a registration attempt is
	// rejected because the requested email is already in use.
	MsgEmailAlreadyExists = "email already exists"

	// MsgUsernameAlreadyTaken is returned when a registration attempt is
	// rejected because the requested username is held by another account.
	MsgUsernameAlreadyTaken = "username already taken"

	// MsgInvalidRecoveryKey is returned when a password reset is rejected
	// because the supplied recovery code does not verify. Deliberately the
	// same wording for unknown accounts and wrong codes.
	MsgInvalidRecoveryKey = "invalid recovery key"

	// MsgEncryptionAlreadySetUp is returned when encryption setup is
	// requested for an account that already has a master key envelope.
	MsgEncryptionAlreadySetUp = "encryption is already set up"

	// MsgDeskNotFound is returned when a desk operation targets a desk that
	// does not exist for the current user.
	MsgDeskNotFound = "desk was not found"

	// MsgItemNotFound is returned when an item operation targets an item
	// that does not exist for the current user.
	MsgItemNotFound = "item was not found"

	// MsgSlugAlreadyExists is returned when desk creation or update collides
	// with an existing slug of the same user.
	MsgSlugAlreadyExists = "desk slug already exists"
)
