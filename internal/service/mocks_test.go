// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/webuxmotion/mdmfd-com/models"
)

var errStorage = errors.New("storage error")

// ─────────────────────────────────────────────
// Mock: store.UserRepository
// ─────────────────────────────────────────────

type mockUserRepository struct {
	createUserFn                func(ctx context.Context, user models.User) (models.User, error)
	findUserByEmailFn           func(ctx context.Context, email string) (models.User, error)
	findUserByIDFn              func(ctx context.Context, userID int64) (models.User, error)
	updateEncryptionKeysFn      func(ctx context.Context, userID int64, encryptedMasterKey, recoveryKeyHash, recoveryEncryptedMasterKey string) error
	updatePasswordAndEnvelopeFn func(ctx context.Context, userID int64, passwordHash, encryptedMasterKey string) error
	updateRecoveryKeysFn        func(ctx context.Context, userID int64, recoveryKeyHash, recoveryEncryptedMasterKey string) error
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createUserFn != nil {
		return m.createUserFn(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	if m.findUserByEmailFn != nil {
		return m.findUserByEmailFn(ctx, email)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	if m.findUserByIDFn != nil {
		return m.findUserByIDFn(ctx, userID)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) UpdateEncryptionKeys(ctx context.Context, userID int64, encryptedMasterKey, recoveryKeyHash, recoveryEncryptedMasterKey string) error {
	if m.updateEncryptionKeysFn != nil {
		return m.updateEncryptionKeysFn(ctx, userID, encryptedMasterKey, recoveryKeyHash, recoveryEncryptedMasterKey)
	}
	return nil
}

func (m *mockUserRepository) UpdatePasswordAndEnvelope(ctx context.Context, userID int64, passwordHash, encryptedMasterKey string) error {
	if m.updatePasswordAndEnvelopeFn != nil {
		return m.updatePasswordAndEnvelopeFn(ctx, userID, passwordHash, encryptedMasterKey)
	}
	return nil
}

func (m *mockUserRepository) UpdateRecoveryKeys(ctx context.Context, userID int64, recoveryKeyHash, recoveryEncryptedMasterKey string) error {
	if m.updateRecoveryKeysFn != nil {
		return m.updateRecoveryKeysFn(ctx, userID, recoveryKeyHash, recoveryEncryptedMasterKey)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: store.PendingRecoveryRepository
// ─────────────────────────────────────────────

type mockPendingRepository struct {
	replaceFn       func(ctx context.Context, key models.PendingRecoveryKey) error
	findValidFn     func(ctx context.Context, userID int64, now time.Time) (models.PendingRecoveryKey, error)
	deleteByUserFn  func(ctx context.Context, userID int64) error
	deleteExpiredFn func(ctx context.Context, now time.Time) (int64, error)
}

func (m *mockPendingRepository) Replace(ctx context.Context, key models.PendingRecoveryKey) error {
	if m.replaceFn != nil {
		return m.replaceFn(ctx, key)
	}
	return nil
}

func (m *mockPendingRepository) FindValid(ctx context.Context, userID int64, now time.Time) (models.PendingRecoveryKey, error) {
	if m.findValidFn != nil {
		return m.findValidFn(ctx, userID, now)
	}
	return models.PendingRecoveryKey{}, nil
}

func (m *mockPendingRepository) DeleteByUser(ctx context.Context, userID int64) error {
	if m.deleteByUserFn != nil {
		return m.deleteByUserFn(ctx, userID)
	}
	return nil
}

func (m *mockPendingRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	if m.deleteExpiredFn != nil {
		return m.deleteExpiredFn(ctx, now)
	}
	return 0, nil
}

// ─────────────────────────────────────────────
// Mock: store.DeskRepository
// ─────────────────────────────────────────────

type mockDeskRepository struct {
	createDeskFn func(ctx context.Context, desk models.Desk) (models.Desk, error)
	getDesksFn   func(ctx context.Context, userID int64) ([]models.Desk, error)
	getDeskFn    func(ctx context.Context, deskID string, userID int64) (models.Desk, error)
	updateDeskFn func(ctx context.Context, desk models.Desk) (models.Desk, error)
	deleteDeskFn func(ctx context.Context, deskID string, userID int64) error
}

func (m *mockDeskRepository) CreateDesk(ctx context.Context, desk models.Desk) (models.Desk, error) {
	if m.createDeskFn != nil {
		return m.createDeskFn(ctx, desk)
	}
	return desk, nil
}

func (m *mockDeskRepository) GetDesks(ctx context.Context, userID int64) ([]models.Desk, error) {
	if m.getDesksFn != nil {
		return m.getDesksFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockDeskRepository) GetDesk(ctx context.Context, deskID string, userID int64) (models.Desk, error) {
	if m.getDeskFn != nil {
		return m.getDeskFn(ctx, deskID, userID)
	}
	return models.Desk{DeskID: deskID, UserID: userID}, nil
}

func (m *mockDeskRepository) UpdateDesk(ctx context.Context, desk models.Desk) (models.Desk, error) {
	if m.updateDeskFn != nil {
		return m.updateDeskFn(ctx, desk)
	}
	return desk, nil
}

func (m *mockDeskRepository) DeleteDesk(ctx context.Context, deskID string, userID int64) error {
	if m.deleteDeskFn != nil {
		return m.deleteDeskFn(ctx, deskID, userID)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: store.ItemRepository
// ─────────────────────────────────────────────

type mockItemRepository struct {
	createItemFn   func(ctx context.Context, item models.Item) (models.Item, error)
	getDeskItemsFn func(ctx context.Context, deskID string, userID int64) ([]models.Item, error)
	getItemFn      func(ctx context.Context, itemID string, userID int64) (models.Item, error)
	updateItemFn   func(ctx context.Context, update models.ItemUpdate) (models.Item, error)
	deleteItemFn   func(ctx context.Context, itemID string, userID int64) error
	reorderItemsFn func(ctx context.Context, deskID string, userID int64, itemIDs []string) error
	moveItemFn     func(ctx context.Context, itemID, toDeskID string, position int, userID int64) (models.Item, error)
}

func (m *mockItemRepository) CreateItem(ctx context.Context, item models.Item) (models.Item, error) {
	if m.createItemFn != nil {
		return m.createItemFn(ctx, item)
	}
	return item, nil
}

func (m *mockItemRepository) GetDeskItems(ctx context.Context, deskID string, userID int64) ([]models.Item, error) {
	if m.getDeskItemsFn != nil {
		return m.getDeskItemsFn(ctx, deskID, userID)
	}
	return nil, nil
}

func (m *mockItemRepository) GetItem(ctx context.Context, itemID string, userID int64) (models.Item, error) {
	if m.getItemFn != nil {
		return m.getItemFn(ctx, itemID, userID)
	}
	return models.Item{}, nil
}

func (m *mockItemRepository) UpdateItem(ctx context.Context, update models.ItemUpdate) (models.Item, error) {
	if m.updateItemFn != nil {
		return m.updateItemFn(ctx, update)
	}
	return models.Item{}, nil
}

func (m *mockItemRepository) DeleteItem(ctx context.Context, itemID string, userID int64) error {
	if m.deleteItemFn != nil {
		return m.deleteItemFn(ctx, itemID, userID)
	}
	return nil
}

func (m *mockItemRepository) ReorderItems(ctx context.Context, deskID string, userID int64, itemIDs []string) error {
	if m.reorderItemsFn != nil {
		return m.reorderItemsFn(ctx, deskID, userID, itemIDs)
	}
	return nil
}

func (m *mockItemRepository) MoveItem(ctx context.Context, itemID, toDeskID string, position int, userID int64) (models.Item, error) {
	if m.moveItemFn != nil {
		return m.moveItemFn(ctx, itemID, toDeskID, position, userID)
	}
	return models.Item{}, nil
}

// ─────────────────────────────────────────────
// Mock: crypto.KeyVaultService
// ─────────────────────────────────────────────

// mockVault fakes the envelope scheme with transparent string composition so
// tests can assert on what was wrapped under what without doing real crypto.
// Envelopes look like "wrapped(<key>|<secret>)"; unwrap reverses that shape.
type mockVault struct {
	generateMasterKeyFn   func() (string, error)
	generateRecoveryKeyFn func() (string, error)
	wrapErr               error
	unwrapErr             error
	rewrapErr             error
}

func fakeWrap(masterKey, secret string) string {
	return "wrapped(" + masterKey + "|" + secret + ")"
}

func fakeUnwrap(envelope, secret string) (string, error) {
	inner, ok := strings.CutPrefix(envelope, "wrapped(")
	if !ok {
		return "", errors.New("not a fake envelope")
	}
	masterKey, ok := strings.CutSuffix(inner, "|"+secret+")")
	if !ok {
		return "", errors.New("wrong secret")
	}
	return masterKey, nil
}

func (m *mockVault) GenerateMasterKey() (string, error) {
	if m.generateMasterKeyFn != nil {
		return m.generateMasterKeyFn()
	}
	return "master-key", nil
}

func (m *mockVault) WrapWithPassword(masterKey, password string) (string, error) {
	if m.wrapErr != nil {
		return "", m.wrapErr
	}
	return fakeWrap(masterKey, password), nil
}

func (m *mockVault) UnwrapWithPassword(envelope, password string) (string, error) {
	if m.unwrapErr != nil {
		return "", m.unwrapErr
	}
	return fakeUnwrap(envelope, password)
}

func (m *mockVault) WrapWithRecovery(masterKey, recoveryKey string) (string, error) {
	if m.wrapErr != nil {
		return "", m.wrapErr
	}
	return fakeWrap(masterKey, m.NormalizeRecoveryKey(recoveryKey)), nil
}

func (m *mockVault) UnwrapWithRecovery(envelope, recoveryKey string) (string, error) {
	if m.unwrapErr != nil {
		return "", m.unwrapErr
	}
	return fakeUnwrap(envelope, m.NormalizeRecoveryKey(recoveryKey))
}

func (m *mockVault) Rewrap(envelope, oldSecret, newSecret string) (string, error) {
	if m.rewrapErr != nil {
		return "", m.rewrapErr
	}
	masterKey, err := fakeUnwrap(envelope, oldSecret)
	if err != nil {
		return "", err
	}
	return fakeWrap(masterKey, newSecret), nil
}

func (m *mockVault) GenerateRecoveryKey() (string, error) {
	if m.generateRecoveryKeyFn != nil {
		return m.generateRecoveryKeyFn()
	}
	return "AB2C-DE3F-GH4I-JK5L-MN6O-PQ7R-ST2U-VW3X", nil
}

func (m *mockVault) NormalizeRecoveryKey(code string) string {
	return strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(code), "-", ""))
}

func (m *mockVault) HashRecoveryKey(code string) string {
	sum := sha256.Sum256([]byte(m.NormalizeRecoveryKey(code)))
	return hex.EncodeToString(sum[:])
}

func (m *mockVault) VerifyRecoveryKey(code, storedHash string) bool {
	return m.HashRecoveryKey(code) == storedHash
}

func (m *mockVault) EncryptField(plaintext, masterKey string) (string, error) {
	return "ENC:" + plaintext, nil
}

func (m *mockVault) DecryptField(blob, masterKey string) (string, error) {
	return strings.TrimPrefix(blob, "ENC:"), nil
}

func (m *mockVault) IsEncrypted(value string) bool {
	return strings.HasPrefix(value, "ENC:")
}
