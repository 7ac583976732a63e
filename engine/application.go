package engine

import (
	"github.com/spaghettifunk/vitrum/engine/config"
)

type ApplicationConfig struct {
	// The application name used in windowing, if applicable.
	Name string
	// Everything else: window, assets, animation and render settings.
	Config *config.Config
}

// NewApplicationConfig wraps cfg, taking the name from it.
func NewApplicationConfig(cfg *config.Config) *ApplicationConfig {
	return &ApplicationConfig{
		Name:   cfg.App.Name,
		Config: cfg,
	}
}
