package service

import (
	"context"

	"github.com/webuxmotion/mdmfd-com/internal/config"
	"github.com/webuxmotion/mdmfd-com/internal/logger"
)

// appInfoService is the concrete implementation of AppInfoService.
type appInfoService struct {
	version string
	logger  *logger.Logger
}

// NewAppInfoService constructs a new AppInfoService.
//
// Returns ErrVersionIsNotSpecified when the configured application version is
// empty: a build that cannot name itself is a packaging mistake worth failing
// on at startup.
func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		version: cfg.Version,
		logger:  logger,
	}, nil
}

// GetAppVersion returns the application version baked in at build time.
func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.version
}
