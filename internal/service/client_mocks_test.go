// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/webuxmotion/mdmfd-com/models"
)

// ─── Client cache mocks ─────────────────────────────────────────────────────
//
// Function-field fakes of the local cache repositories. Unset functions
// default to successful no-ops so tests only wire what they assert on.

type mockLocalDeskRepository struct {
	replaceDesksFn func(ctx context.Context, userID int64, desks ...models.Desk) error
	saveDeskFn     func(ctx context.Context, desk models.Desk) error
	getDesksFn     func(ctx context.Context, userID int64) ([]models.Desk, error)
	getDeskFn      func(ctx context.Context, deskID string, userID int64) (models.Desk, error)
	deleteDeskFn   func(ctx context.Context, deskID string, userID int64) error
}

func (m *mockLocalDeskRepository) ReplaceDesks(ctx context.Context, userID int64, desks ...models.Desk) error {
	if m.replaceDesksFn != nil {
		return m.replaceDesksFn(ctx, userID, desks...)
	}
	return nil
}

func (m *mockLocalDeskRepository) SaveDesk(ctx context.Context, desk models.Desk) error {
	if m.saveDeskFn != nil {
		return m.saveDeskFn(ctx, desk)
	}
	return nil
}

func (m *mockLocalDeskRepository) GetDesks(ctx context.Context, userID int64) ([]models.Desk, error) {
	if m.getDesksFn != nil {
		return m.getDesksFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockLocalDeskRepository) GetDesk(ctx context.Context, deskID string, userID int64) (models.Desk, error) {
	if m.getDeskFn != nil {
		return m.getDeskFn(ctx, deskID, userID)
	}
	return models.Desk{}, nil
}

func (m *mockLocalDeskRepository) DeleteDesk(ctx context.Context, deskID string, userID int64) error {
	if m.deleteDeskFn != nil {
		return m.deleteDeskFn(ctx, deskID, userID)
	}
	return nil
}

type mockLocalItemRepository struct {
	replaceDeskItemsFn func(ctx context.Context, deskID string, userID int64, items ...models.Item) error
	saveItemFn         func(ctx context.Context, item models.Item) error
	getDeskItemsFn     func(ctx context.Context, deskID string, userID int64) ([]models.Item, error)
	getItemFn          func(ctx context.Context, itemID string, userID int64) (models.Item, error)
	deleteItemFn       func(ctx context.Context, itemID string, userID int64) error
}

func (m *mockLocalItemRepository) ReplaceDeskItems(ctx context.Context, deskID string, userID int64, items ...models.Item) error {
	if m.replaceDeskItemsFn != nil {
		return m.replaceDeskItemsFn(ctx, deskID, userID, items...)
	}
	return nil
}

func (m *mockLocalItemRepository) SaveItem(ctx context.Context, item models.Item) error {
	if m.saveItemFn != nil {
		return m.saveItemFn(ctx, item)
	}
	return nil
}

func (m *mockLocalItemRepository) GetDeskItems(ctx context.Context, deskID string, userID int64) ([]models.Item, error) {
	if m.getDeskItemsFn != nil {
		return m.getDeskItemsFn(ctx, deskID, userID)
	}
	return nil, nil
}

func (m *mockLocalItemRepository) GetItem(ctx context.Context, itemID string, userID int64) (models.Item, error) {
	if m.getItemFn != nil {
		return m.getItemFn(ctx, itemID, userID)
	}
	return models.Item{}, nil
}

func (m *mockLocalItemRepository) DeleteItem(ctx context.Context, itemID string, userID int64) error {
	if m.deleteItemFn != nil {
		return m.deleteItemFn(ctx, itemID, userID)
	}
	return nil
}
