package service

import (
	"context"

	"github.com/rvanwijk/pii-guard/internal/config"
	"github.com/rvanwijk/pii-guard/internal/logger"
)

// appInfoService reports the advertised agent version. The shell pins
// its API expectations to this value, so it comes from configuration
// (seeded from the ldflags build version in cmd/agent), never from a
// hardcoded constant.
type appInfoService struct {
	appVersion string

	logger *logger.Logger
}

// NewAppInfoService requires a non-empty version: an agent that cannot
// say what it is would leave the shell guessing at compatibility.
func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: cfg.Version,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}
