package models

import "time"

// Item is a single bookmark or note on a desk. Title and Content are opaque
// to the server: clients store either legacy plaintext or "ENC:"-prefixed
// field-cipher blobs, and the "ENC:" prefix is the sole discriminator.
type Item struct {
	// ItemID is the client-generated UUID of the item.
	ItemID string `json:"item_id"`

	// DeskID is the desk this item currently belongs to.
	DeskID string `json:"desk_id"`

	// UserID is the owner. Not exposed via JSON; derived from the session.
	UserID int64 `json:"-"`

	// Title is the item heading. Possibly encrypted.
	Title string `json:"title"`

	// Content is the markdown note body. Possibly encrypted.
	Content string `json:"content"`

	// URL is an optional bookmark target. Stored as given.
	URL string `json:"url,omitempty"`

	// Position orders items within a desk; lower comes first.
	Position int `json:"position"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Item model.
func (i Item) TableName() string {
	return "items"
}

// ItemUpdate represents a partial update of a single item.
// Only non-nil fields will be updated.
type ItemUpdate struct {
	// ItemID is the unique identifier of the record to update. Required.
	ItemID string `json:"item_id"`

	// UserID is the owner of the data to update.
	// Required for data isolation and security.
	UserID int64 `json:"-"`

	// Title is the updated heading. If nil, the field will not be updated.
	Title *string `json:"title,omitempty"`

	// Content is the updated body. If nil, the field will not be updated.
	Content *string `json:"content,omitempty"`

	// URL is the updated bookmark target. If nil, not updated.
	URL *string `json:"url,omitempty"`

	// Position is the updated sort position. If nil, not updated.
	Position *int `json:"position,omitempty"`
}
