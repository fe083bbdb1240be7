package validators

import (
	"context"
	"fmt"

	"github.com/webuxmotion/mdmfd-com/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldUserID targets the owner identifier of a desk, item or request.
	FieldUserID = "user_id"

	// FieldDeskID targets the desk identifier. For MoveItemRequest it targets
	// the destination desk.
	FieldDeskID = "desk_id"

	// FieldDeskName targets the desk display name (may be an encrypted blob).
	FieldDeskName = "desk_name"

	// FieldSlug targets the plaintext URL slug of a desk.
	FieldSlug = "slug"

	// FieldItemID targets the item identifier.
	FieldItemID = "item_id"

	// FieldTitle targets the item title (may be an encrypted blob).
	FieldTitle = "title"

	// FieldPosition targets the zero-based display position.
	FieldPosition = "position"

	// FieldItemIDs targets the ordered list of item identifiers in a reorder
	// request.
	FieldItemIDs = "item_ids"
)

// ContentValidator implements the Validator interface for the desk and item
// domain models: Desk, Item, ItemUpdate, ReorderItemsRequest and
// MoveItemRequest.
//
// It supports both value and pointer receivers for every model type and
// allows optional field-level scoping via variadic field name arguments.
type ContentValidator struct {
}

// NewContentValidator constructs a new ContentValidator and returns it as the
// Validator interface.
func NewContentValidator() Validator {
	return &ContentValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj. Both value and pointer forms of each
// supported model are accepted.
//
// Supported types:
//   - models.Desk / *models.Desk
//   - models.Item / *models.Item
//   - models.ItemUpdate / *models.ItemUpdate
//   - models.ReorderItemsRequest / *models.ReorderItemsRequest
//   - models.MoveItemRequest / *models.MoveItemRequest
//
// Returns ErrUnsupportedType if obj does not match any known model.
// Optional fields restrict validation to the named subset; when omitted,
// a sensible default set of fields is validated.
func (v *ContentValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Desk:
		return v.validateDesk(ctx, value, fields...)
	case *models.Desk:
		return v.validateDesk(ctx, *value, fields...)

	case models.Item:
		return v.validateItem(ctx, value, fields...)
	case *models.Item:
		return v.validateItem(ctx, *value, fields...)

	case models.ItemUpdate:
		return v.validateItemUpdate(ctx, value, fields...)
	case *models.ItemUpdate:
		return v.validateItemUpdate(ctx, *value, fields...)

	case models.ReorderItemsRequest:
		return v.validateReorderRequest(ctx, value, fields...)
	case *models.ReorderItemsRequest:
		return v.validateReorderRequest(ctx, *value, fields...)

	case models.MoveItemRequest:
		return v.validateMoveRequest(ctx, value, fields...)
	case *models.MoveItemRequest:
		return v.validateMoveRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateDesk validates a single Desk model.
//
// Default validated fields (when none specified):
// DeskID, UserID, DeskName, Slug.
//
// Returns the first encountered validation error or nil.
func (v *ContentValidator) validateDesk(_ context.Context, desk models.Desk, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldDeskID, FieldUserID, FieldDeskName, FieldSlug}
	}

	for _, f := range fields {
		switch f {
		case FieldDeskID:
			if desk.DeskID == "" {
				return ErrEmptyDeskID
			}
		case FieldUserID:
			if desk.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldDeskName:
			if desk.Name == "" {
				return ErrEmptyDeskName
			}
		case FieldSlug:
			if desk.Slug == "" {
				return ErrEmptySlug
			}
		case FieldPosition:
			if desk.Position < 0 {
				return ErrInvalidPosition
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateItem validates a single Item model.
//
// Default validated fields: ItemID, UserID, DeskID, Title, Position.
// Content and URL are never validated here: both are optional and either may
// carry an encrypted blob or legacy plaintext.
func (v *ContentValidator) validateItem(_ context.Context, item models.Item, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldItemID, FieldUserID, FieldDeskID, FieldTitle, FieldPosition}
	}

	for _, f := range fields {
		switch f {
		case FieldItemID:
			if item.ItemID == "" {
				return ErrEmptyItemID
			}
		case FieldUserID:
			if item.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldDeskID:
			if item.DeskID == "" {
				return ErrEmptyDeskID
			}
		case FieldTitle:
			if item.Title == "" {
				return ErrEmptyTitle
			}
		case FieldPosition:
			if item.Position < 0 {
				return ErrInvalidPosition
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateItemUpdate validates a single ItemUpdate descriptor.
//
// Default validated fields: ItemID, Title, Position.
//
// Field-level checks for Title and Position only trigger when the
// corresponding pointer is non-nil (partial update semantics: nil means
// "do not touch"). Content and URL may be set to the empty string, which
// clears them.
//
// After field-level checks, an additional structural rule is enforced:
// at least one payload field (Title, Content, URL or Position) must be
// non-nil. Returns ErrNoFieldsToUpdate otherwise.
func (v *ContentValidator) validateItemUpdate(_ context.Context, update models.ItemUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldItemID, FieldTitle, FieldPosition}
	}

	for _, f := range fields {
		switch f {
		case FieldItemID:
			if update.ItemID == "" {
				return ErrEmptyItemID
			}
		case FieldTitle:
			if update.Title != nil && *update.Title == "" {
				return ErrEmptyTitle
			}
		case FieldPosition:
			if update.Position != nil && *update.Position < 0 {
				return ErrInvalidPosition
			}
		default:
			return ErrUnknownField
		}
	}

	if update.Title == nil && update.Content == nil && update.URL == nil && update.Position == nil {
		return ErrNoFieldsToUpdate
	}

	return nil
}

// validateReorderRequest validates a ReorderItemsRequest, which lists every
// item of one desk in its new display order.
//
// Default validated fields: DeskID, ItemIDs.
//
// When FieldItemIDs is validated, the list must be non-empty and each entry
// must be a non-empty identifier. Returns a wrapped error indicating the
// index of the first invalid entry.
func (v *ContentValidator) validateReorderRequest(_ context.Context, request models.ReorderItemsRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldDeskID, FieldItemIDs}
	}

	for _, f := range fields {
		switch f {
		case FieldDeskID:
			if request.DeskID == "" {
				return ErrEmptyDeskID
			}
		case FieldItemIDs:
			if len(request.ItemIDs) == 0 {
				return ErrEmptyItemIDs
			}
			for i, itemID := range request.ItemIDs {
				if itemID == "" {
					return fmt.Errorf("validation error at index %d: %w", i, ErrEmptyItemID)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateMoveRequest validates a MoveItemRequest, which relocates one item
// to a destination desk at a given position.
//
// Default validated fields: ItemID, DeskID (the destination), Position.
func (v *ContentValidator) validateMoveRequest(_ context.Context, request models.MoveItemRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldItemID, FieldDeskID, FieldPosition}
	}

	for _, f := range fields {
		switch f {
		case FieldItemID:
			if request.ItemID == "" {
				return ErrEmptyItemID
			}
		case FieldDeskID:
			if request.ToDeskID == "" {
				return ErrEmptyDeskID
			}
		case FieldPosition:
			if request.Position < 0 {
				return ErrInvalidPosition
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
