// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const createClientSchema = `
	CREATE TABLE IF NOT EXISTS desks (
		desk_id    TEXT    NOT NULL,
		user_id    INTEGER NOT NULL,
		name       TEXT    NOT NULL,
		slug       TEXT    NOT NULL,
		position   INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMP,
		updated_at TIMESTAMP,
		PRIMARY KEY (desk_id, user_id)
	);

	CREATE TABLE IF NOT EXISTS items (
		item_id    TEXT    NOT NULL,
		desk_id    TEXT    NOT NULL,
		user_id    INTEGER NOT NULL,
		title      TEXT    NOT NULL,
		content    TEXT    NOT NULL DEFAULT '',
		url        TEXT    NOT NULL DEFAULT '',
		position   INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMP,
		updated_at TIMESTAMP,
		PRIMARY KEY (item_id, user_id),
		FOREIGN KEY (desk_id, user_id) REFERENCES desks (desk_id, user_id) ON DELETE CASCADE
	);

	CREATE INDEX IF NOT EXISTS idx_items_desk ON items (desk_id, user_id, position);`

const (
	saveLocalDesk = `
		INSERT INTO desks (desk_id, user_id, name, slug, position, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (desk_id, user_id) DO UPDATE SET
			name       = excluded.name,
			slug       = excluded.slug,
			position   = excluded.position,
			updated_at = excluded.updated_at;`

	getLocalDesks = `
		SELECT desk_id, user_id, name, slug, position, created_at, updated_at
		FROM desks
		WHERE user_id = ?
		ORDER BY position, created_at;`

	getLocalDesk = `
		SELECT desk_id, user_id, name, slug, position, created_at, updated_at
		FROM desks
		WHERE desk_id = ? AND user_id = ?;`

	deleteLocalDesks = `
		DELETE FROM desks
		WHERE user_id = ?;`

	deleteLocalDesk = `
		DELETE FROM desks
		WHERE desk_id = ? AND user_id = ?;`

	saveLocalItem = `
		INSERT INTO items (item_id, desk_id, user_id, title, content, url, position, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (item_id, user_id) DO UPDATE SET
			desk_id    = excluded.desk_id,
			title      = excluded.title,
			content    = excluded.content,
			url        = excluded.url,
			position   = excluded.position,
			updated_at = excluded.updated_at;`

	getLocalDeskItems = `
		SELECT item_id, desk_id, user_id, title, content, url, position, created_at, updated_at
		FROM items
		WHERE desk_id = ? AND user_id = ?
		ORDER BY position, created_at;`

	getLocalItem = `
		SELECT item_id, desk_id, user_id, title, content, url, position, created_at, updated_at
		FROM items
		WHERE item_id = ? AND user_id = ?;`

	deleteLocalDeskItems = `
		DELETE FROM items
		WHERE desk_id = ? AND user_id = ?;`

	deleteLocalItem = `
		DELETE FROM items
		WHERE item_id = ? AND user_id = ?;`
)
