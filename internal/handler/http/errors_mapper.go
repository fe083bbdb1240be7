package http

import (
	"errors"
	"net/http"

	"github.com/webuxmotion/mdmfd-com/internal/service"
	"github.com/webuxmotion/mdmfd-com/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrWrongRecoveryKey:        http.StatusUnauthorized,
	service.ErrEncryptionAlreadySetUp:  http.StatusConflict,
	service.ErrEncryptionNotSetUp:      http.StatusConflict,
	service.ErrVersionIsNotSpecified:   http.StatusBadRequest,

	store.ErrEmailAlreadyExists:   http.StatusConflict,
	store.ErrUsernameAlreadyTaken: http.StatusConflict,
	store.ErrNoUserWasFound:       http.StatusNotFound,
	store.ErrDeskNotFound:         http.StatusNotFound,
	store.ErrSlugAlreadyExists:    http.StatusConflict,
	store.ErrItemNotFound:         http.StatusNotFound,
	store.ErrPendingKeyNotFound:   http.StatusNotFound,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeMappedError translates a service/store error chain into an HTTP
// response. 5xx statuses get a generic body so internals never leak.
func writeMappedError(w http.ResponseWriter, err error) {
	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		http.Error(w, http.StatusText(status), status)
		return
	}
	http.Error(w, err.Error(), status)
}
