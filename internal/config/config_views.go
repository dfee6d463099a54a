// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ServerConfig is the contact server's view of [StructuredConfig].
type ServerConfig struct {
	App     App
	Storage Storage
	Server  Server
}

// ClientConfig is the terminal client's view of [StructuredConfig].
type ClientConfig struct {
	App     App
	Storage Storage
	Adapter Adapter
	Client  Client
}

// GetServerConfig builds, defaults and validates the server configuration.
func GetServerConfig(args []string) (*ServerConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{
		App:     cfg.App,
		Storage: cfg.Storage,
		Server:  cfg.Server,
	}
	serverCfg.applyDefaults()

	return serverCfg, serverCfg.validate()
}

// GetClientConfig builds, defaults and validates the client configuration.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App:     cfg.App,
		Storage: cfg.Storage,
		Adapter: cfg.Adapter,
		Client:  cfg.Client,
	}
	clientCfg.applyDefaults()

	return clientCfg, clientCfg.validate()
}

func (cfg *ServerConfig) applyDefaults() {
	cfg.Server.HTTPAddress = orDefault(cfg.Server.HTTPAddress, DefaultServerAddress)
	cfg.Server.RequestTimeout = durationOrDefault(cfg.Server.RequestTimeout, DefaultServerTimeout)
}

func (cfg *ClientConfig) applyDefaults() {
	cfg.Client.Mode = orDefault(cfg.Client.Mode, DefaultApplicationMode)
	cfg.App.LogFile = orDefault(cfg.App.LogFile, DefaultClientLogFile)
	cfg.Adapter.BaseURL = orDefault(cfg.Adapter.BaseURL, DefaultAdapterBaseURL)
	cfg.Adapter.RequestTimeout = durationOrDefault(cfg.Adapter.RequestTimeout, DefaultAdapterTimeout)
	if cfg.Client.Mode == ModeLocal {
		cfg.Storage.DB.DSN = orDefault(cfg.Storage.DB.DSN, DefaultClientDSN)
	}
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func durationOrDefault(v, def time.Duration) time.Duration {
	if v == 0 {
		return def
	}
	return v
}
