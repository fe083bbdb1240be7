package store

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/webuxmotion/mdmfd-com/models"
)

const (
	createUser = `INSERT INTO users (username, full_name, email, password_hash, encrypted_master_key)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING user_id, username, full_name, email, password_hash, encrypted_master_key, recovery_key_hash, recovery_encrypted_master_key, created_at;`

	findUserByEmail = `SELECT user_id, username, full_name, email, password_hash, encrypted_master_key, recovery_key_hash, recovery_encrypted_master_key, created_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT user_id, username, full_name, email, password_hash, encrypted_master_key, recovery_key_hash, recovery_encrypted_master_key, created_at
    FROM users
    WHERE user_id = $1;`

	updateUserEncryptionKeys = `UPDATE users
    SET encrypted_master_key = $1, recovery_key_hash = $2, recovery_encrypted_master_key = $3
    WHERE user_id = $4;`

	updateUserPasswordAndEnvelope = `UPDATE users
    SET password_hash = $1, encrypted_master_key = $2
    WHERE user_id = $3;`

	updateUserRecoveryKeys = `UPDATE users
    SET recovery_key_hash = $1, recovery_encrypted_master_key = $2
    WHERE user_id = $3;`

	createDesk = `INSERT INTO desks (desk_id, user_id, name, slug, position)
    VALUES ($1, $2, $3, $4, COALESCE((SELECT MAX(position) + 1 FROM desks WHERE user_id = $2), 0))
    RETURNING desk_id, user_id, name, slug, position, created_at, updated_at;`

	getDesksByUser = `SELECT desk_id, user_id, name, slug, position, created_at, updated_at
    FROM desks
    WHERE user_id = $1
    ORDER BY position, created_at;`

	getDeskByID = `SELECT desk_id, user_id, name, slug, position, created_at, updated_at
    FROM desks
    WHERE desk_id = $1 AND user_id = $2;`

	updateDesk = `UPDATE desks
    SET name = $1, slug = $2, position = $3, updated_at = NOW()
    WHERE desk_id = $4 AND user_id = $5
    RETURNING desk_id, user_id, name, slug, position, created_at, updated_at;`

	deleteDesk = `DELETE FROM desks
    WHERE desk_id = $1 AND user_id = $2;`

	createItem = `INSERT INTO items (item_id, desk_id, user_id, title, content, url, position)
    VALUES ($1, $2, $3, $4, $5, $6, COALESCE((SELECT MAX(position) + 1 FROM items WHERE desk_id = $2), 0))
    RETURNING item_id, desk_id, user_id, title, content, url, position, created_at, updated_at;`

	getItemByID = `SELECT item_id, desk_id, user_id, title, content, url, position, created_at, updated_at
    FROM items
    WHERE item_id = $1 AND user_id = $2;`

	deleteItem = `DELETE FROM items
    WHERE item_id = $1 AND user_id = $2;`

	reorderItem = `UPDATE items
    SET position = $1, updated_at = NOW()
    WHERE item_id = $2 AND desk_id = $3 AND user_id = $4;`

	moveItem = `UPDATE items
    SET desk_id = $1, position = $2, updated_at = NOW()
    WHERE item_id = $3 AND user_id = $4
    RETURNING item_id, desk_id, user_id, title, content, url, position, created_at, updated_at;`

	insertPendingKey = `INSERT INTO pending_recovery_keys (id, user_id, recovery_key, expires_at)
    VALUES ($1, $2, $3, $4);`

	deletePendingKeysByUser = `DELETE FROM pending_recovery_keys
    WHERE user_id = $1;`

	findValidPendingKey = `SELECT id, user_id, recovery_key, created_at, expires_at
    FROM pending_recovery_keys
    WHERE user_id = $1 AND expires_at > $2
    ORDER BY created_at DESC
    LIMIT 1;`

	deleteExpiredPendingKeys = `DELETE FROM pending_recovery_keys
    WHERE expires_at <= $1;`
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildSelectDeskItemsQuery builds the SELECT returning all items of one desk
// in display order.
func buildSelectDeskItemsQuery(deskID string, userID int64) (string, []any, error) {
	return psql.
		Select("item_id", "desk_id", "user_id", "title", "content", "url", "position", "created_at", "updated_at").
		From("items").
		Where(sq.Eq{"desk_id": deskID, "user_id": userID}).
		OrderBy("position", "created_at").
		ToSql()
}

// buildUpdateItemQuery dynamically builds the UPDATE statement for a partial
// item update: only non-nil fields of update appear in the SET clause.
// updated_at is always refreshed.
func buildUpdateItemQuery(update models.ItemUpdate) (string, []any, error) {
	builder := psql.
		Update("items").
		Set("updated_at", sq.Expr("NOW()"))

	if update.Title != nil {
		builder = builder.Set("title", *update.Title)
	}
	if update.Content != nil {
		builder = builder.Set("content", *update.Content)
	}
	if update.URL != nil {
		builder = builder.Set("url", *update.URL)
	}
	if update.Position != nil {
		builder = builder.Set("position", *update.Position)
	}

	return builder.
		Where(sq.Eq{"item_id": update.ItemID, "user_id": update.UserID}).
		Suffix("RETURNING item_id, desk_id, user_id, title, content, url, position, created_at, updated_at").
		ToSql()
}
