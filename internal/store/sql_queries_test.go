// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/webuxmotion/mdmfd-com/models"
)

func Test_buildSelectDeskItemsQuery_SQLContainsParts(t *testing.T) {
	query, args, err := buildSelectDeskItemsQuery("desk-1", 42)
	require.NoError(t, err)

	// args checks
	require.Len(t, args, 2)
	require.Contains(t, args, "desk-1")
	require.Contains(t, args, int64(42))

	// query checks (contains parts)
	q := strings.ToLower(query)

	require.Contains(t, q, "select")
	require.Contains(t, q, "from items")
	require.Contains(t, q, "where")
	require.Contains(t, q, "desk_id")
	require.Contains(t, q, "user_id")
	require.Contains(t, q, "order by position")

	// placeholder format should be $1 (Postgres)
	require.Contains(t, query, "$1")
	require.Contains(t, query, "$2")
}

func Test_buildSelectDeskItemsQuery_SelectsAllExpectedColumns(t *testing.T) {
	query, _, err := buildSelectDeskItemsQuery("desk-1", 1)
	require.NoError(t, err)

	q := strings.ToLower(query)

	cols := []string{
		"item_id",
		"desk_id",
		"user_id",
		"title",
		"content",
		"url",
		"position",
		"created_at",
		"updated_at",
	}
	for _, c := range cols {
		require.Contains(t, q, c)
	}
}

func Test_buildUpdateItemQuery(t *testing.T) {
	strPtr := func(s string) *string { return &s }
	intPtr := func(i int) *int { return &i }

	tests := []struct {
		name       string
		update     models.ItemUpdate
		checkQuery func(t *testing.T, query string, args []any)
	}{
		{
			name: "only title",
			update: models.ItemUpdate{
				ItemID: "item-1",
				UserID: 1,
				Title:  strPtr("ENC:title"),
			},
			checkQuery: func(t *testing.T, query string, args []any) {
				assert.Contains(t, query, "title")
				assert.NotContains(t, query, "content =")
				assert.NotContains(t, query, "url =")
				assert.NotContains(t, query, "position =")

				// title + item_id + user_id
				require.Len(t, args, 3)
				assert.Equal(t, "ENC:title", args[0])
			},
		},
		{
			name: "all fields",
			update: models.ItemUpdate{
				ItemID:   "item-1",
				UserID:   1,
				Title:    strPtr("t"),
				Content:  strPtr("c"),
				URL:      strPtr("https://example.com"),
				Position: intPtr(4),
			},
			checkQuery: func(t *testing.T, query string, args []any) {
				for _, col := range []string{"title", "content", "url", "position"} {
					assert.Contains(t, query, col)
				}
				// 4 fields + item_id + user_id
				require.Len(t, args, 6)
			},
		},
		{
			name: "no optional fields still touches updated_at",
			update: models.ItemUpdate{
				ItemID: "item-1",
				UserID: 1,
			},
			checkQuery: func(t *testing.T, query string, args []any) {
				assert.Contains(t, query, "updated_at")
				// item_id + user_id only
				require.Len(t, args, 2)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildUpdateItemQuery(tt.update)
			require.NoError(t, err)

			// Common structure.
			assert.True(t, strings.Contains(strings.ToUpper(query), "UPDATE"))
			assert.Contains(t, query, "items")
			assert.True(t, strings.Contains(strings.ToUpper(query), "WHERE"))
			assert.Contains(t, query, "updated_at")
			assert.Contains(t, query, "RETURNING")
			assert.Contains(t, query, "$1", "query should use Postgres placeholders")

			tt.checkQuery(t, query, args)
		})
	}
}
