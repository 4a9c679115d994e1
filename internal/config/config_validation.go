package config

import "time"

const (
	defaultHTTPAddress   = "localhost:8080"
	defaultTokenIssuer   = "go-places-api"
	defaultTokenDuration = time.Hour
	defaultBcryptCost    = 12
	defaultImagesDir     = "uploads/images"
)

// applyDefaults fills sensible fallbacks for fields that no configuration
// source provided. Secrets (the token sign key) and the database DSN have no
// defaults; their absence is a validation error.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}

	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = defaultTokenIssuer
	}

	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = defaultTokenDuration
	}

	if cfg.App.BcryptCost == 0 {
		cfg.App.BcryptCost = defaultBcryptCost
	}

	if cfg.Storage.Files.ImagesDir == "" {
		cfg.Storage.Files.ImagesDir = defaultImagesDir
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a sentinel error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.TokenSignKey == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}
