package services

import (
	"brigadas_admin_go/config"
	"brigadas_admin_go/services/api"

	"go.uber.org/zap"
)

// API is the global remote brigade service client
var API api.Backend

// InitializeAPI creates the remote client from configuration
func InitializeAPI(cfg *config.Config, logger *zap.Logger) {
	API = api.NewClient(cfg.APIBaseURL, cfg.APITimeout, logger)
	logger.Info("brigade service client ready",
		zap.String("base_url", cfg.APIBaseURL),
		zap.Duration("timeout", cfg.APITimeout))
}
