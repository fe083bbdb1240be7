package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUserID    = errors.New("invalid user ID")
	ErrEmptyDeskID      = errors.New("desk ID is required")
	ErrEmptyDeskName    = errors.New("desk name is required")
	ErrEmptySlug        = errors.New("desk slug is required")
	ErrEmptyItemID      = errors.New("item ID is required")
	ErrEmptyTitle       = errors.New("item title is required")
	ErrInvalidPosition  = errors.New("invalid position")
	ErrEmptyItemIDs     = errors.New("item IDs list cannot be empty")
	ErrNoFieldsToUpdate = errors.New("at least one field must be provided for update")
)
