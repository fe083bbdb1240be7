// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"strings"

	"github.com/webuxmotion/mdmfd-com/internal/adapter"
	"github.com/webuxmotion/mdmfd-com/internal/app"
	"github.com/webuxmotion/mdmfd-com/internal/store"
)

// mapAdapterError translates the adapter's transport error into the same
// business error the server-side service layer would have returned, so the
// CLI renders identical messages whether a check failed locally or remotely.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := err.Error()

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		return ErrInvalidDataProvided

	case errors.Is(err, adapter.ErrUnauthorized):
		switch {
		case strings.Contains(msg, app.MsgInvalidRecoveryKey):
			return ErrWrongRecoveryKey
		case strings.Contains(msg, app.MsgTokenIsExpiredOrInvalid):
			return ErrTokenIsExpiredOrInvalid
		case strings.Contains(msg, app.MsgInvalidEmailPassword):
			return ErrWrongPassword
		default:
			return ErrTokenIsExpiredOrInvalid
		}

	case errors.Is(err, adapter.ErrNotFound):
		switch {
		case strings.Contains(msg, app.MsgItemNotFound):
			return store.ErrItemNotFound
		case strings.Contains(msg, app.MsgDeskNotFound):
			return store.ErrDeskNotFound
		default:
			return err
		}

	case errors.Is(err, adapter.ErrConflict):
		switch {
		case strings.Contains(msg, app.MsgSlugAlreadyExists):
			return store.ErrSlugAlreadyExists
		case strings.Contains(msg, app.MsgEmailAlreadyExists):
			return store.ErrEmailAlreadyExists
		case strings.Contains(msg, app.MsgUsernameAlreadyTaken):
			return store.ErrUsernameAlreadyTaken
		case strings.Contains(msg, app.MsgEncryptionAlreadySetUp):
			return ErrEncryptionAlreadySetUp
		default:
			return err
		}

	default:
		return err
	}
}

// isServerResponse reports whether err carries an HTTP status from the
// server, as opposed to a transport failure before any response arrived.
// Reads fall back to the local cache only for the latter.
func isServerResponse(err error) bool {
	for _, sentinel := range []error{
		adapter.ErrBadRequest,
		adapter.ErrUnauthorized,
		adapter.ErrForbidden,
		adapter.ErrNotFound,
		adapter.ErrConflict,
		adapter.ErrInternalServerError,
		adapter.ErrBadGateway,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
