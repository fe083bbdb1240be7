package workers

import (
	"context"
	"time"

	"github.com/webuxmotion/mdmfd-com/internal/config"
	"github.com/webuxmotion/mdmfd-com/internal/logger"
	"github.com/webuxmotion/mdmfd-com/internal/store"
)

// pendingKeySweeper periodically deletes expired pending recovery key
// records. A code that was never revealed within its TTL must not linger in
// the database in plaintext.
type pendingKeySweeper struct {
	pendingRepository store.PendingRecoveryRepository
	interval          time.Duration
	logger            *logger.Logger
}

// NewPendingKeySweeper constructs the sweeper with the configured interval.
func NewPendingKeySweeper(pendingRepository store.PendingRecoveryRepository, cfg config.Workers, logger *logger.Logger) Worker {
	return &pendingKeySweeper{
		pendingRepository: pendingRepository,
		interval:          cfg.SweepInterval,
		logger:            logger,
	}
}

// Run starts the sweep loop in a background goroutine and returns
// immediately. One sweep fires right away so a restart does not postpone
// cleanup by a full interval.
func (s *pendingKeySweeper) Run() {
	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		s.sweep()
		for range ticker.C {
			s.sweep()
		}
	}()
}

func (s *pendingKeySweeper) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), s.interval)
	defer cancel()

	deleted, err := s.pendingRepository.DeleteExpired(ctx, time.Now())
	if err != nil {
		s.logger.Err(err).Msg("sweeping expired pending recovery keys failed")
		return
	}
	if deleted > 0 {
		s.logger.Info().Int64("deleted", deleted).Msg("expired pending recovery keys swept")
	}
}
