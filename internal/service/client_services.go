package service

import (
	"context"

	"github.com/webuxmotion/mdmfd-com/internal/adapter"
	"github.com/webuxmotion/mdmfd-com/internal/crypto"
	"github.com/webuxmotion/mdmfd-com/internal/logger"
	"github.com/webuxmotion/mdmfd-com/internal/store"
)

// ClientServices groups the client-side service layer. All services share
// one [crypto.UnlockSession] so a single unlock covers desks and items alike.
type ClientServices struct {
	AuthService    ClientAuthService
	DeskService    ClientDeskService
	ItemService    ClientItemService
	AppInfoService ClientAppInfoService
}

// NewClientServices wires the client service layer on top of the server
// adapter and the local cache repositories.
func NewClientServices(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	session := crypto.NewUnlockSession(crypto.NewKeyVaultService())

	return &ClientServices{
		AuthService:    NewClientAuthService(serverAdapter, session, logger),
		DeskService:    NewClientDeskService(serverAdapter, storages.DeskRepository, session, logger),
		ItemService:    NewClientItemService(serverAdapter, storages.ItemRepository, session, logger),
		AppInfoService: NewClientAppInfoService(serverAdapter, logger),
	}
}

type clientAppInfoService struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

// NewClientAppInfoService constructs a [ClientAppInfoService].
func NewClientAppInfoService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientAppInfoService {
	return &clientAppInfoService{adapter: serverAdapter, logger: logger}
}

// GetServerVersion implements [ClientAppInfoService].
func (s *clientAppInfoService) GetServerVersion(ctx context.Context) (string, error) {
	version, err := s.adapter.GetServerVersion(ctx)
	if err != nil {
		return "", mapAdapterError(err)
	}

	return version, nil
}
