// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http/httptest"
	"time"

	"github.com/webuxmotion/mdmfd-com/internal/logger"
	"github.com/webuxmotion/mdmfd-com/internal/service"
	"github.com/webuxmotion/mdmfd-com/internal/utils"
	"github.com/webuxmotion/mdmfd-com/models"
)

const (
	testSignKey = "test-sign-key"
	testIssuer  = "mdmfd"
)

// ─────────────────────────────────────────────
// Mocks: service layer
// ─────────────────────────────────────────────

type mockAuthService struct {
	registerUserFn func(ctx context.Context, user models.User, password string) (models.User, error)
	loginFn        func(ctx context.Context, email, password string) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, user models.User, password string) (models.User, error) {
	if m.registerUserFn != nil {
		return m.registerUserFn(ctx, user, password)
	}
	return user, nil
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (models.User, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, email, password)
	}
	return models.User{}, nil
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if m.createTokenFn != nil {
		return m.createTokenFn(ctx, user)
	}
	return utils.GenerateJWTToken(testIssuer, user.UserID, time.Hour, testSignKey)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseTokenFn != nil {
		return m.parseTokenFn(ctx, tokenString)
	}
	token, err := utils.ValidateAndParseJWTToken(tokenString, testSignKey, testIssuer)
	if err != nil {
		return models.Token{}, service.ErrTokenIsExpiredOrInvalid
	}
	return token, nil
}

type mockEncryptionService struct {
	setupEncryptionFn        func(ctx context.Context, userID int64, password string) (models.SetupEncryptionResponse, error)
	changePasswordFn         func(ctx context.Context, userID int64, currentPassword, newPassword string) (models.ChangePasswordResponse, error)
	checkRecoveryFn          func(ctx context.Context, email string) (bool, error)
	resetPasswordFn          func(ctx context.Context, email, recoveryKey, newPassword string) error
	getPendingRecoveryKeyFn  func(ctx context.Context, userID int64) (models.PendingRecoveryKey, error)
	acknowledgeRecoveryKeyFn func(ctx context.Context, userID int64) error
}

func (m *mockEncryptionService) SetupEncryption(ctx context.Context, userID int64, password string) (models.SetupEncryptionResponse, error) {
	if m.setupEncryptionFn != nil {
		return m.setupEncryptionFn(ctx, userID, password)
	}
	return models.SetupEncryptionResponse{}, nil
}

func (m *mockEncryptionService) ChangePassword(ctx context.Context, userID int64, currentPassword, newPassword string) (models.ChangePasswordResponse, error) {
	if m.changePasswordFn != nil {
		return m.changePasswordFn(ctx, userID, currentPassword, newPassword)
	}
	return models.ChangePasswordResponse{}, nil
}

func (m *mockEncryptionService) CheckRecovery(ctx context.Context, email string) (bool, error) {
	if m.checkRecoveryFn != nil {
		return m.checkRecoveryFn(ctx, email)
	}
	return false, nil
}

func (m *mockEncryptionService) ResetPassword(ctx context.Context, email, recoveryKey, newPassword string) error {
	if m.resetPasswordFn != nil {
		return m.resetPasswordFn(ctx, email, recoveryKey, newPassword)
	}
	return nil
}

func (m *mockEncryptionService) GetPendingRecoveryKey(ctx context.Context, userID int64) (models.PendingRecoveryKey, error) {
	if m.getPendingRecoveryKeyFn != nil {
		return m.getPendingRecoveryKeyFn(ctx, userID)
	}
	return models.PendingRecoveryKey{}, nil
}

func (m *mockEncryptionService) AcknowledgeRecoveryKey(ctx context.Context, userID int64) error {
	if m.acknowledgeRecoveryKeyFn != nil {
		return m.acknowledgeRecoveryKeyFn(ctx, userID)
	}
	return nil
}

type mockDeskService struct {
	createDeskFn func(ctx context.Context, userID int64, name, slug string) (models.Desk, error)
	getDesksFn   func(ctx context.Context, userID int64) ([]models.Desk, error)
	getDeskFn    func(ctx context.Context, deskID string, userID int64) (models.Desk, error)
	updateDeskFn func(ctx context.Context, desk models.Desk) (models.Desk, error)
	deleteDeskFn func(ctx context.Context, deskID string, userID int64) error
}

func (m *mockDeskService) CreateDesk(ctx context.Context, userID int64, name, slug string) (models.Desk, error) {
	if m.createDeskFn != nil {
		return m.createDeskFn(ctx, userID, name, slug)
	}
	return models.Desk{UserID: userID, Name: name, Slug: slug}, nil
}

func (m *mockDeskService) GetDesks(ctx context.Context, userID int64) ([]models.Desk, error) {
	if m.getDesksFn != nil {
		return m.getDesksFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockDeskService) GetDesk(ctx context.Context, deskID string, userID int64) (models.Desk, error) {
	if m.getDeskFn != nil {
		return m.getDeskFn(ctx, deskID, userID)
	}
	return models.Desk{DeskID: deskID, UserID: userID}, nil
}

func (m *mockDeskService) UpdateDesk(ctx context.Context, desk models.Desk) (models.Desk, error) {
	if m.updateDeskFn != nil {
		return m.updateDeskFn(ctx, desk)
	}
	return desk, nil
}

func (m *mockDeskService) DeleteDesk(ctx context.Context, deskID string, userID int64) error {
	if m.deleteDeskFn != nil {
		return m.deleteDeskFn(ctx, deskID, userID)
	}
	return nil
}

type mockItemService struct {
	createItemFn   func(ctx context.Context, item models.Item) (models.Item, error)
	getDeskItemsFn func(ctx context.Context, deskID string, userID int64) ([]models.Item, error)
	getItemFn      func(ctx context.Context, itemID string, userID int64) (models.Item, error)
	updateItemFn   func(ctx context.Context, update models.ItemUpdate) (models.Item, error)
	deleteItemFn   func(ctx context.Context, itemID string, userID int64) error
	reorderItemsFn func(ctx context.Context, deskID string, userID int64, itemIDs []string) error
	moveItemFn     func(ctx context.Context, itemID, toDeskID string, position int, userID int64) (models.Item, error)
}

func (m *mockItemService) CreateItem(ctx context.Context, item models.Item) (models.Item, error) {
	if m.createItemFn != nil {
		return m.createItemFn(ctx, item)
	}
	return item, nil
}

func (m *mockItemService) GetDeskItems(ctx context.Context, deskID string, userID int64) ([]models.Item, error) {
	if m.getDeskItemsFn != nil {
		return m.getDeskItemsFn(ctx, deskID, userID)
	}
	return nil, nil
}

func (m *mockItemService) GetItem(ctx context.Context, itemID string, userID int64) (models.Item, error) {
	if m.getItemFn != nil {
		return m.getItemFn(ctx, itemID, userID)
	}
	return models.Item{ItemID: itemID}, nil
}

func (m *mockItemService) UpdateItem(ctx context.Context, update models.ItemUpdate) (models.Item, error) {
	if m.updateItemFn != nil {
		return m.updateItemFn(ctx, update)
	}
	return models.Item{ItemID: update.ItemID}, nil
}

func (m *mockItemService) DeleteItem(ctx context.Context, itemID string, userID int64) error {
	if m.deleteItemFn != nil {
		return m.deleteItemFn(ctx, itemID, userID)
	}
	return nil
}

func (m *mockItemService) ReorderItems(ctx context.Context, deskID string, userID int64, itemIDs []string) error {
	if m.reorderItemsFn != nil {
		return m.reorderItemsFn(ctx, deskID, userID, itemIDs)
	}
	return nil
}

func (m *mockItemService) MoveItem(ctx context.Context, itemID, toDeskID string, position int, userID int64) (models.Item, error) {
	if m.moveItemFn != nil {
		return m.moveItemFn(ctx, itemID, toDeskID, position, userID)
	}
	return models.Item{ItemID: itemID, DeskID: toDeskID, Position: position}, nil
}

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(ctx context.Context) string {
	return m.version
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

type testServices struct {
	auth       *mockAuthService
	encryption *mockEncryptionService
	desks      *mockDeskService
	items      *mockItemService
}

func newTestServices() *testServices {
	return &testServices{
		auth:       &mockAuthService{},
		encryption: &mockEncryptionService{},
		desks:      &mockDeskService{},
		items:      &mockItemService{},
	}
}

func newTestHandler(ts *testServices) *Handler {
	return NewHandler(&service.Services{
		AuthService:       ts.auth,
		EncryptionService: ts.encryption,
		DeskService:       ts.desks,
		ItemService:       ts.items,
		AppInfoService:    &mockAppInfoService{version: "test"},
	}, logger.Nop())
}

// newTestServer spins up the full router so tests exercise routing and
// middleware exactly as production does.
func newTestServer(ts *testServices) *httptest.Server {
	return httptest.NewServer(newTestHandler(ts).Init())
}

// bearerToken issues a token the default mockAuthService.ParseToken accepts.
func bearerToken(userID int64) string {
	token, err := utils.GenerateJWTToken(testIssuer, userID, time.Hour, testSignKey)
	if err != nil {
		panic(err)
	}
	return "Bearer " + token.SignedString
}
