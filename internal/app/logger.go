package app

import (
	"github.com/guttosm/laundry-pricing/config"
	"github.com/guttosm/laundry-pricing/internal/logger"
)

// InitializeLogger configures the global logger.
func InitializeLogger(cfg config.LogConfig) {
	level := cfg.Level
	if level == "" {
		level = "info"
	}
	logger.Init(level, cfg.Pretty)
}
