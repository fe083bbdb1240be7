package store

import "github.com/webuxmotion/mdmfd-com/internal/logger"

// Storages aggregates every repository the service layer depends on.
type Storages struct {
	UserRepository            UserRepository
	DeskRepository            DeskRepository
	ItemRepository            ItemRepository
	PendingRecoveryRepository PendingRecoveryRepository
}

// NewStorages constructs all repositories over one database connection.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:            NewUserRepository(db, log),
		DeskRepository:            NewDeskRepository(db, log),
		ItemRepository:            NewItemRepository(db, log),
		PendingRecoveryRepository: NewPendingRecoveryRepository(db, log),
	}
}
