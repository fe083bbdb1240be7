// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/webuxmotion/mdmfd-com/internal/logger"
	"github.com/webuxmotion/mdmfd-com/internal/service"
	"github.com/webuxmotion/mdmfd-com/models"
)

// ─── Service fakes ──────────────────────────────────────────────────────────

type fakeAuthService struct {
	loginFn       func(ctx context.Context, email, password string) (int64, error)
	fetchFn       func(ctx context.Context) (string, bool, error)
	acknowledgeFn func(ctx context.Context) error
	unlocked      bool
	loggedOut     bool
}

func (f *fakeAuthService) Register(_ context.Context, req models.RegisterRequest) (models.User, error) {
	return models.User{Username: req.Username, Email: req.Email}, nil
}

func (f *fakeAuthService) Login(ctx context.Context, email, password string) (int64, error) {
	if f.loginFn != nil {
		return f.loginFn(ctx, email, password)
	}
	return 7, nil
}

func (f *fakeAuthService) Logout()          { f.loggedOut = true }
func (f *fakeAuthService) IsUnlocked() bool { return f.unlocked }

func (f *fakeAuthService) SetupEncryption(_ context.Context, _ string) (models.SetupEncryptionResponse, error) {
	return models.SetupEncryptionResponse{Success: true, RecoveryKey: "AB2C-DE3F"}, nil
}

func (f *fakeAuthService) ChangePassword(_ context.Context, _, _ string) error { return nil }

func (f *fakeAuthService) CheckRecovery(_ context.Context, _ string) (bool, error) {
	return true, nil
}

func (f *fakeAuthService) ResetPassword(_ context.Context, _, _, _ string) error { return nil }

func (f *fakeAuthService) FetchPendingRecoveryKey(ctx context.Context) (string, bool, error) {
	if f.fetchFn != nil {
		return f.fetchFn(ctx)
	}
	return "", false, nil
}

func (f *fakeAuthService) AcknowledgeRecoveryKey(ctx context.Context) error {
	if f.acknowledgeFn != nil {
		return f.acknowledgeFn(ctx)
	}
	return nil
}

type fakeDeskService struct {
	getDesksFn func(ctx context.Context, userID int64) ([]models.Desk, error)
}

func (f *fakeDeskService) CreateDesk(_ context.Context, userID int64, name, slug string) (models.Desk, error) {
	return models.Desk{DeskID: "desk-1", UserID: userID, Name: name, Slug: slug}, nil
}

func (f *fakeDeskService) GetDesks(ctx context.Context, userID int64) ([]models.Desk, error) {
	if f.getDesksFn != nil {
		return f.getDesksFn(ctx, userID)
	}
	return nil, nil
}

func (f *fakeDeskService) GetDesk(_ context.Context, deskID string, _ int64) (models.Desk, error) {
	return models.Desk{DeskID: deskID}, nil
}

func (f *fakeDeskService) UpdateDesk(_ context.Context, _ int64, deskID, name, slug string) (models.Desk, error) {
	return models.Desk{DeskID: deskID, Name: name, Slug: slug}, nil
}

func (f *fakeDeskService) DeleteDesk(_ context.Context, _ string, _ int64) error { return nil }

type fakeItemService struct {
	createItemFn func(ctx context.Context, userID int64, deskID, title, content, url string) (models.Item, error)
}

func (f *fakeItemService) CreateItem(ctx context.Context, userID int64, deskID, title, content, url string) (models.Item, error) {
	if f.createItemFn != nil {
		return f.createItemFn(ctx, userID, deskID, title, content, url)
	}
	return models.Item{ItemID: "item-1", DeskID: deskID, Title: title, Content: content, URL: url}, nil
}

func (f *fakeItemService) GetDeskItems(_ context.Context, deskID string, _ int64) ([]models.Item, error) {
	return []models.Item{{ItemID: "item-1", DeskID: deskID, Title: "first"}}, nil
}

func (f *fakeItemService) GetItem(_ context.Context, itemID string, _ int64) (models.Item, error) {
	return models.Item{ItemID: itemID, Title: "first", Content: "body"}, nil
}

func (f *fakeItemService) UpdateItem(_ context.Context, _ int64, update models.ItemUpdate) (models.Item, error) {
	return models.Item{ItemID: update.ItemID}, nil
}

func (f *fakeItemService) DeleteItem(_ context.Context, _ string, _ int64) error { return nil }

func (f *fakeItemService) ReorderItems(_ context.Context, _ int64, _ string, _ []string) error {
	return nil
}

func (f *fakeItemService) MoveItem(_ context.Context, _ int64, itemID, toDeskID string, position int) (models.Item, error) {
	return models.Item{ItemID: itemID, DeskID: toDeskID, Position: position}, nil
}

type fakeAppInfoService struct{}

func (f *fakeAppInfoService) GetServerVersion(_ context.Context) (string, error) {
	return "1.2.3", nil
}

// ─── Helpers ────────────────────────────────────────────────────────────────

func runShell(t *testing.T, auth *fakeAuthService, desk *fakeDeskService, item *fakeItemService, script string) string {
	t.Helper()

	services := &service.ClientServices{
		AuthService:    auth,
		DeskService:    desk,
		ItemService:    item,
		AppInfoService: &fakeAppInfoService{},
	}

	var out bytes.Buffer
	app, err := NewApp(services, strings.NewReader(script), &out, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, app.Run())

	return out.String()
}

// ─── Tests ──────────────────────────────────────────────────────────────────

func TestApp_RequiresLogin(t *testing.T) {
	out := runShell(t, &fakeAuthService{}, &fakeDeskService{}, &fakeItemService{}, "desks\nquit\n")
	assert.Contains(t, out, errNotLoggedIn.Error())
}

func TestApp_LoginThenListDesks(t *testing.T) {
	desk := &fakeDeskService{
		getDesksFn: func(_ context.Context, userID int64) ([]models.Desk, error) {
			assert.Equal(t, int64(7), userID)
			return []models.Desk{{DeskID: "desk-1", Slug: "reading", Name: "Reading list"}}, nil
		},
	}

	out := runShell(t, &fakeAuthService{unlocked: true}, desk, &fakeItemService{},
		"login alice@example.com secret\ndesks\nquit\n")

	assert.Contains(t, out, "encryption unlocked")
	assert.Contains(t, out, "Reading list")
}

func TestApp_LoginRevealsPendingRecoveryKey(t *testing.T) {
	auth := &fakeAuthService{
		fetchFn: func(_ context.Context) (string, bool, error) {
			return "AB2C-DE3F-GH4I-JK5L", true, nil
		},
	}

	out := runShell(t, auth, &fakeDeskService{}, &fakeItemService{},
		"login alice@example.com secret\nquit\n")

	assert.Contains(t, out, "AB2C-DE3F-GH4I-JK5L")
	assert.Contains(t, out, "shown once")
}

func TestApp_RecoveryKeyAcknowledge(t *testing.T) {
	acked := false
	auth := &fakeAuthService{
		fetchFn: func(_ context.Context) (string, bool, error) {
			return "AB2C-DE3F", true, nil
		},
		acknowledgeFn: func(_ context.Context) error {
			acked = true
			return nil
		},
	}

	// Login reveals the code first; 'recovery-key' fetches it again and
	// answering y acknowledges.
	out := runShell(t, auth, &fakeDeskService{}, &fakeItemService{},
		"login alice@example.com secret\nrecovery-key\ny\nquit\n")

	assert.Contains(t, out, "acknowledged")
	assert.True(t, acked)
}

func TestApp_ItemAddAndShow(t *testing.T) {
	item := &fakeItemService{
		createItemFn: func(_ context.Context, userID int64, deskID, title, content, url string) (models.Item, error) {
			assert.Equal(t, "desk-1", deskID)
			assert.Equal(t, "Groceries", title)
			assert.Equal(t, "https://example.com", url)
			return models.Item{ItemID: "item-1", DeskID: deskID, Title: title, URL: url}, nil
		},
	}

	out := runShell(t, &fakeAuthService{}, &fakeDeskService{}, item,
		"login alice@example.com secret\nitem-add desk-1 Groceries https://example.com\nitem-show item-1\nquit\n")

	assert.Contains(t, out, "created item item-1")
	assert.Contains(t, out, "title:    first")
}

func TestApp_UnknownCommand(t *testing.T) {
	out := runShell(t, &fakeAuthService{}, &fakeDeskService{}, &fakeItemService{}, "frobnicate\nquit\n")
	assert.Contains(t, out, errUnknownCommand.Error())
}

func TestApp_QuitLocksSession(t *testing.T) {
	auth := &fakeAuthService{}
	runShell(t, auth, &fakeDeskService{}, &fakeItemService{}, "quit\n")
	assert.True(t, auth.loggedOut)
}

func TestApp_VersionCommand(t *testing.T) {
	out := runShell(t, &fakeAuthService{}, &fakeDeskService{}, &fakeItemService{}, "version\nquit\n")
	assert.Contains(t, out, "server version: 1.2.3")
}

func TestNewApp_NoServices(t *testing.T) {
	_, err := NewApp(nil, strings.NewReader(""), &bytes.Buffer{}, logger.Nop())
	assert.True(t, errors.Is(err, errNoServicesProvided))
}
