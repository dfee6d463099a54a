// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks that the server configuration can start a listener and open
// a database.
func (cfg *ServerConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}

// validate checks the client configuration for the selected mode.
func (cfg *ClientConfig) validate() error {
	switch cfg.Client.Mode {
	case ModeLocal:
		if cfg.Storage.DB.DSN == "" || strings.HasPrefix(cfg.Storage.DB.DSN, "postgres") {
			return ErrInvalidStorageConfigs
		}
	case ModeRemote:
		if cfg.Adapter.BaseURL == "" || cfg.Adapter.RequestTimeout <= 0 {
			return ErrInvalidAdapterConfigs
		}
	default:
		return ErrInvalidClientConfigs
	}

	return nil
}
