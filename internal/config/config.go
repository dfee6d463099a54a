// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// contact server and the terminal client. It is populated by merging values
// from a JSON file, environment variables and command-line flags.
//
// Struct tags:
//   - envPrefix : prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds settings shared by every binary: version and logging.
	App App `envPrefix:"APP_"`

	// Storage holds the relational database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the HTTP listener settings of the contact server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the settings the client uses to reach the server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Client holds terminal client settings.
	Client Client `envPrefix:"CLIENT_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// Version is the semantic version string exposed via /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// LogFile is the file the terminal client writes its log to.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Storage groups the persistence settings.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects the driver by its form: "postgres://..." or
	// "postgresql://..." opens PostgreSQL via pgx, anything else is treated
	// as a SQLite file path.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings for the inbound HTTP listener.
type Server struct {
	// HTTPAddress is the TCP address the server listens on ("host:port").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds the handling of one inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds settings of the outbound HTTP client.
type Adapter struct {
	// BaseURL is the contact server URL (e.g. "http://localhost:8080").
	// Env: ADAPTER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout bounds one outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Client modes.
const (
	// ModeLocal stores submitted contacts in the client's own database.
	ModeLocal = "local"
	// ModeRemote submits contacts to the contact server.
	ModeRemote = "remote"
)

// Client holds terminal client settings.
type Client struct {
	// Mode is either [ModeLocal] or [ModeRemote].
	// Env: CLIENT_MODE
	Mode string `env:"MODE"`
}

// Default values applied by [applyDefaults] to fields left empty by every
// source.
const (
	DefaultServerAddress   = "localhost:8080"
	DefaultServerTimeout   = 10 * time.Second
	DefaultAdapterBaseURL  = "http://localhost:8080"
	DefaultAdapterTimeout  = 15 * time.Second
	DefaultClientDSN       = "contacts.db"
	DefaultClientLogFile   = "logs/client.log"
	DefaultApplicationMode = ModeLocal
)

// GetStructuredConfig loads and merges the configuration from all sources in
// the following priority order (later sources override earlier ones):
//  1. JSON file (path taken from the environment or the flags)
//  2. Environment variables
//  3. Command-line flags parsed from args
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
