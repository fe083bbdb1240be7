// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/webuxmotion/mdmfd-com/internal/adapter"
	"github.com/webuxmotion/mdmfd-com/internal/crypto"
	"github.com/webuxmotion/mdmfd-com/internal/logger"
	"github.com/webuxmotion/mdmfd-com/internal/mock"
	"github.com/webuxmotion/mdmfd-com/internal/store"
	"github.com/webuxmotion/mdmfd-com/models"
	"go.uber.org/mock/gomock"
)

func newClientItemFixture(t *testing.T, cache *mockLocalItemRepository) (*mock.MockServerAdapter, *crypto.UnlockSession, ClientItemService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	adapterMock := mock.NewMockServerAdapter(ctrl)
	session := crypto.NewUnlockSession(crypto.NewKeyVaultService())
	svc := NewClientItemService(adapterMock, cache, session, logger.Nop())

	return adapterMock, session, svc
}

func TestClientItem_CreateItem_EncryptsTitleAndContent(t *testing.T) {
	cache := &mockLocalItemRepository{}
	adapterMock, session, svc := newClientItemFixture(t, cache)
	unlockWithFreshKey(t, session)
	ctx := context.Background()

	var sent models.Item
	adapterMock.EXPECT().CreateItem(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, item models.Item) (models.Item, error) {
			sent = item
			item.ItemID = "item-1"
			return item, nil
		})

	created, err := svc.CreateItem(ctx, 7, "desk-1", "Groceries", "milk, eggs", "https://example.com")

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(sent.Title, crypto.EncPrefix))
	assert.True(t, strings.HasPrefix(sent.Content, crypto.EncPrefix))
	assert.Equal(t, "https://example.com", sent.URL, "the URL stays plaintext")
	assert.Equal(t, "Groceries", created.Title)
	assert.Equal(t, "milk, eggs", created.Content)
}

func TestClientItem_GetDeskItems_RefreshesCacheAndDecrypts(t *testing.T) {
	cache := &mockLocalItemRepository{}
	adapterMock, session, svc := newClientItemFixture(t, cache)
	unlockWithFreshKey(t, session)
	ctx := context.Background()

	cipherTitle, err := session.EncryptField("Groceries")
	require.NoError(t, err)

	adapterMock.EXPECT().GetDeskItems(ctx, "desk-1").
		Return([]models.Item{{ItemID: "item-1", DeskID: "desk-1", Title: cipherTitle}}, nil)

	var cachedTitle string
	cache.replaceDeskItemsFn = func(_ context.Context, _ string, _ int64, items ...models.Item) error {
		cachedTitle = items[0].Title
		return nil
	}

	items, err := svc.GetDeskItems(ctx, "desk-1", 7)

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Groceries", items[0].Title)
	assert.Equal(t, cipherTitle, cachedTitle, "cache stores the encrypted form")
}

func TestClientItem_GetDeskItems_FallsBackToCacheWhenOffline(t *testing.T) {
	cache := &mockLocalItemRepository{
		getDeskItemsFn: func(_ context.Context, deskID string, userID int64) ([]models.Item, error) {
			return []models.Item{{ItemID: "item-1", DeskID: deskID, UserID: userID, Title: "cached"}}, nil
		},
	}
	adapterMock, _, svc := newClientItemFixture(t, cache)
	ctx := context.Background()

	adapterMock.EXPECT().GetDeskItems(ctx, "desk-1").
		Return(nil, errors.New("get desk items request: connection refused"))

	items, err := svc.GetDeskItems(ctx, "desk-1", 7)

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "cached", items[0].Title)
}

func TestClientItem_UpdateItem_EncryptsOnlyProvidedFields(t *testing.T) {
	cache := &mockLocalItemRepository{}
	adapterMock, session, svc := newClientItemFixture(t, cache)
	unlockWithFreshKey(t, session)
	ctx := context.Background()

	var sent models.ItemUpdate
	adapterMock.EXPECT().UpdateItem(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, update models.ItemUpdate) (models.Item, error) {
			sent = update
			return models.Item{ItemID: update.ItemID, Title: *update.Title}, nil
		})

	title := "Renamed"
	_, err := svc.UpdateItem(ctx, 7, models.ItemUpdate{ItemID: "item-1", Title: &title})

	require.NoError(t, err)
	require.NotNil(t, sent.Title)
	assert.True(t, strings.HasPrefix(*sent.Title, crypto.EncPrefix))
	assert.Nil(t, sent.Content, "untouched fields stay nil")
}

func TestClientItem_DeleteItem_NotFound(t *testing.T) {
	cache := &mockLocalItemRepository{}
	adapterMock, _, svc := newClientItemFixture(t, cache)
	ctx := context.Background()

	adapterMock.EXPECT().DeleteItem(ctx, "missing").
		Return(fmt.Errorf("%w: item was not found", adapter.ErrNotFound))

	err := svc.DeleteItem(ctx, "missing", 7)

	assert.ErrorIs(t, err, store.ErrItemNotFound)
}

func TestClientItem_ReorderItems_PatchesCachedPositions(t *testing.T) {
	saved := map[string]int{}
	cache := &mockLocalItemRepository{
		getItemFn: func(_ context.Context, itemID string, userID int64) (models.Item, error) {
			return models.Item{ItemID: itemID, UserID: userID}, nil
		},
		saveItemFn: func(_ context.Context, item models.Item) error {
			saved[item.ItemID] = item.Position
			return nil
		},
	}
	adapterMock, _, svc := newClientItemFixture(t, cache)
	ctx := context.Background()

	adapterMock.EXPECT().ReorderItems(ctx, models.ReorderItemsRequest{
		DeskID:  "desk-1",
		ItemIDs: []string{"item-2", "item-1"},
	}).Return(nil)

	require.NoError(t, svc.ReorderItems(ctx, 7, "desk-1", []string{"item-2", "item-1"}))
	assert.Equal(t, 0, saved["item-2"])
	assert.Equal(t, 1, saved["item-1"])
}

func TestClientItem_MoveItem_CachesMovedRecord(t *testing.T) {
	var cached models.Item
	cache := &mockLocalItemRepository{
		saveItemFn: func(_ context.Context, item models.Item) error {
			cached = item
			return nil
		},
	}
	adapterMock, _, svc := newClientItemFixture(t, cache)
	ctx := context.Background()

	adapterMock.EXPECT().MoveItem(ctx, models.MoveItemRequest{ItemID: "item-1", ToDeskID: "desk-2", Position: 0}).
		Return(models.Item{ItemID: "item-1", DeskID: "desk-2", Position: 0}, nil)

	moved, err := svc.MoveItem(ctx, 7, "item-1", "desk-2", 0)

	require.NoError(t, err)
	assert.Equal(t, "desk-2", moved.DeskID)
	assert.Equal(t, int64(7), cached.UserID)
}
