package service

import (
	"fmt"

	"github.com/webuxmotion/mdmfd-com/internal/config"
	"github.com/webuxmotion/mdmfd-com/internal/crypto"
	"github.com/webuxmotion/mdmfd-com/internal/logger"
	"github.com/webuxmotion/mdmfd-com/internal/store"
)

// Services bundles every business-logic service the transport layer needs.
type Services struct {
	AuthService       AuthService
	EncryptionService EncryptionService
	DeskService       DeskService
	ItemService       ItemService
	AppInfoService    AppInfoService
}

// NewServices wires all services on top of the given storages. A single
// KeyVaultService instance is shared between the auth and encryption
// services so they agree on every envelope format detail.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	vault := crypto.NewKeyVaultService()

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("app info service creation failed: %w", err)
	}

	return &Services{
		AuthService:       NewAuthService(storages.UserRepository, storages.PendingRecoveryRepository, vault, *cfg, logger),
		EncryptionService: NewEncryptionService(storages.UserRepository, storages.PendingRecoveryRepository, vault, *cfg, logger),
		DeskService:       NewDeskService(storages.DeskRepository, logger),
		ItemService:       NewItemService(storages.ItemRepository, storages.DeskRepository, logger),
		AppInfoService:    appInfoService,
	}, nil
}
