// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maksim Karev

package config

import "time"

const (
	defaultHTTPAddress       = "0.0.0.0:8080"
	defaultTokenIssuer       = "recipebox"
	defaultTokenDuration     = 24 * time.Hour
	defaultPasswordMinLength = 6
	defaultRequestTimeout    = 30 * time.Second
)

// applyDefaults fills zero-valued fields that have sensible defaults.
// Secrets and the database DSN have no defaults: they must be supplied
// explicitly and are checked by [StructuredConfig.validate].
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Auth.TokenIssuer == "" {
		cfg.Auth.TokenIssuer = defaultTokenIssuer
	}
	if cfg.Auth.TokenDuration == 0 {
		cfg.Auth.TokenDuration = defaultTokenDuration
	}
	if cfg.Auth.PasswordMinLength == 0 {
		cfg.Auth.PasswordMinLength = defaultPasswordMinLength
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error
// otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Auth.TokenSignKey == "" {
		return ErrInvalidAuthConfigs
	}

	return nil
}
