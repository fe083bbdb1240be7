package models

import "time"

// Desk is a named board that groups bookmark/note items. The Name field is
// an opaque string to the server: either legacy plaintext or an
// "ENC:"-prefixed blob produced by the client's field cipher.
type Desk struct {
	// DeskID is the client-generated UUID of the desk.
	DeskID string `json:"desk_id"`

	// UserID is the owner. Not exposed via JSON; derived from the session.
	UserID int64 `json:"-"`

	// Name is the desk title. Possibly encrypted; the server never
	// inspects it beyond storing and returning it.
	Name string `json:"name"`

	// Slug is the URL-safe identifier shown in desk links. Plaintext by
	// necessity — it is part of the address.
	Slug string `json:"slug"`

	// Position orders desks in the sidebar; lower comes first.
	Position int `json:"position"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Desk model.
func (d Desk) TableName() string {
	return "desks"
}
