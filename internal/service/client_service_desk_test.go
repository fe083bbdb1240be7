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

func newClientDeskFixture(t *testing.T, cache *mockLocalDeskRepository) (*mock.MockServerAdapter, *crypto.UnlockSession, ClientDeskService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	adapterMock := mock.NewMockServerAdapter(ctrl)
	session := crypto.NewUnlockSession(crypto.NewKeyVaultService())
	svc := NewClientDeskService(adapterMock, cache, session, logger.Nop())

	return adapterMock, session, svc
}

// unlockWithFreshKey puts a real 256-bit master key into the session so the
// field cipher is active.
func unlockWithFreshKey(t *testing.T, session *crypto.UnlockSession) {
	t.Helper()

	masterKey, err := crypto.NewKeyVaultService().GenerateMasterKey()
	require.NoError(t, err)
	session.SetMasterKey(masterKey)
}

func TestClientDesk_CreateDesk_EncryptsNameWhenUnlocked(t *testing.T) {
	cache := &mockLocalDeskRepository{}
	adapterMock, session, svc := newClientDeskFixture(t, cache)
	unlockWithFreshKey(t, session)
	ctx := context.Background()

	var sentName string
	adapterMock.EXPECT().CreateDesk(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, desk models.Desk) (models.Desk, error) {
			sentName = desk.Name
			desk.DeskID = "desk-1"
			return desk, nil
		})

	var cached models.Desk
	cache.saveDeskFn = func(_ context.Context, desk models.Desk) error {
		cached = desk
		return nil
	}

	created, err := svc.CreateDesk(ctx, 7, "Reading list", "reading")

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(sentName, crypto.EncPrefix), "name must be encrypted before upload")
	assert.Equal(t, sentName, cached.Name, "cache stores the encrypted form")
	assert.Equal(t, int64(7), cached.UserID)
	assert.Equal(t, "Reading list", created.Name, "caller gets plaintext back")
}

func TestClientDesk_CreateDesk_LockedPassesPlaintextThrough(t *testing.T) {
	cache := &mockLocalDeskRepository{}
	adapterMock, _, svc := newClientDeskFixture(t, cache)
	ctx := context.Background()

	adapterMock.EXPECT().CreateDesk(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, desk models.Desk) (models.Desk, error) {
			assert.Equal(t, "Reading list", desk.Name)
			desk.DeskID = "desk-1"
			return desk, nil
		})

	_, err := svc.CreateDesk(ctx, 7, "Reading list", "reading")
	require.NoError(t, err)
}

func TestClientDesk_GetDesks_RefreshesCache(t *testing.T) {
	cache := &mockLocalDeskRepository{}
	adapterMock, _, svc := newClientDeskFixture(t, cache)
	ctx := context.Background()

	serverDesks := []models.Desk{
		{DeskID: "desk-1", Name: "first", Slug: "first", Position: 0},
		{DeskID: "desk-2", Name: "second", Slug: "second", Position: 1},
	}
	adapterMock.EXPECT().GetDesks(ctx).Return(serverDesks, nil)

	var replacedUser int64
	var replacedCount int
	cache.replaceDesksFn = func(_ context.Context, userID int64, desks ...models.Desk) error {
		replacedUser = userID
		replacedCount = len(desks)
		return nil
	}

	desks, err := svc.GetDesks(ctx, 7)

	require.NoError(t, err)
	assert.Len(t, desks, 2)
	assert.Equal(t, int64(7), replacedUser)
	assert.Equal(t, 2, replacedCount)
}

func TestClientDesk_GetDesks_FallsBackToCacheWhenOffline(t *testing.T) {
	cache := &mockLocalDeskRepository{
		getDesksFn: func(_ context.Context, userID int64) ([]models.Desk, error) {
			return []models.Desk{{DeskID: "desk-1", UserID: userID, Name: "cached", Slug: "cached"}}, nil
		},
	}
	adapterMock, _, svc := newClientDeskFixture(t, cache)
	ctx := context.Background()

	adapterMock.EXPECT().GetDesks(ctx).Return(nil, errors.New("get desks request: connection refused"))

	desks, err := svc.GetDesks(ctx, 7)

	require.NoError(t, err)
	require.Len(t, desks, 1)
	assert.Equal(t, "cached", desks[0].Name)
}

func TestClientDesk_GetDesks_ServerErrorDoesNotFallBack(t *testing.T) {
	cache := &mockLocalDeskRepository{
		getDesksFn: func(_ context.Context, _ int64) ([]models.Desk, error) {
			t.Fatal("cache must not be read on a server error response")
			return nil, nil
		},
	}
	adapterMock, _, svc := newClientDeskFixture(t, cache)
	ctx := context.Background()

	adapterMock.EXPECT().GetDesks(ctx).
		Return(nil, fmt.Errorf("%w: token is expired or invalid", adapter.ErrUnauthorized))

	_, err := svc.GetDesks(ctx, 7)

	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestClientDesk_GetDesks_DecryptsNames(t *testing.T) {
	cache := &mockLocalDeskRepository{}
	adapterMock, session, svc := newClientDeskFixture(t, cache)
	unlockWithFreshKey(t, session)
	ctx := context.Background()

	cipherName, err := session.EncryptField("Reading list")
	require.NoError(t, err)

	adapterMock.EXPECT().GetDesks(ctx).
		Return([]models.Desk{{DeskID: "desk-1", Name: cipherName, Slug: "reading"}}, nil)

	desks, err := svc.GetDesks(ctx, 7)

	require.NoError(t, err)
	require.Len(t, desks, 1)
	assert.Equal(t, "Reading list", desks[0].Name)
}

func TestClientDesk_UpdateDesk_SlugCollision(t *testing.T) {
	cache := &mockLocalDeskRepository{}
	adapterMock, _, svc := newClientDeskFixture(t, cache)
	ctx := context.Background()

	adapterMock.EXPECT().UpdateDesk(ctx, gomock.Any()).
		Return(models.Desk{}, fmt.Errorf("%w: desk slug already exists", adapter.ErrConflict))

	_, err := svc.UpdateDesk(ctx, 7, "desk-1", "Renamed", "taken")

	assert.ErrorIs(t, err, store.ErrSlugAlreadyExists)
}

func TestClientDesk_DeleteDesk_DropsCache(t *testing.T) {
	var droppedID string
	cache := &mockLocalDeskRepository{
		deleteDeskFn: func(_ context.Context, deskID string, _ int64) error {
			droppedID = deskID
			return nil
		},
	}
	adapterMock, _, svc := newClientDeskFixture(t, cache)
	ctx := context.Background()

	adapterMock.EXPECT().DeleteDesk(ctx, "desk-1").Return(nil)

	require.NoError(t, svc.DeleteDesk(ctx, "desk-1", 7))
	assert.Equal(t, "desk-1", droppedID)
}

func TestClientDesk_GetDesk_NotFound(t *testing.T) {
	cache := &mockLocalDeskRepository{}
	adapterMock, _, svc := newClientDeskFixture(t, cache)
	ctx := context.Background()

	adapterMock.EXPECT().GetDesk(ctx, "missing").
		Return(models.Desk{}, fmt.Errorf("%w: desk was not found", adapter.ErrNotFound))

	_, err := svc.GetDesk(ctx, "missing", 7)

	assert.ErrorIs(t, err, store.ErrDeskNotFound)
}
