// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It is populated
// by merging environment variables, command-line flags, an optional JSON file
// and finally built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token and credential settings.
	App App `envPrefix:"APP_"`

	// Storage holds settings of the in-memory empanada store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings that control authentication.
type App struct {
	// TokenSignKey is the shared HMAC secret used to sign and verify tokens.
	// Required.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenDuration specifies how long an issued token remains valid.
	// Env: APP_TOKEN_DURATION (default 1h)
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// Users maps usernames to plain-text passwords accepted by POST /token.
	// Env: APP_USERS in the form "user:pass,other:secret" (default "user:pass")
	Users map[string]string `env:"USERS" envSeparator:"," envKeyValSeparator:":"`

	// LogLevel is a zerolog level name (e.g. "debug", "info").
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Storage holds settings of the in-memory store.
type Storage struct {
	// NoSeed disables the initial carne/pollo/vegetariana inventory.
	// Env: STORAGE_NO_SEED
	NoSeed bool `env:"NO_SEED"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address the HTTP server listens on, in
	// "host:port" format.
	// Env: SERVER_ADDRESS (default localhost:8000)
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds the handling of a single request.
	// Env: SERVER_REQUEST_TIMEOUT (default 30s)
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Defaults applied to fields that no source has set.
const (
	DefaultHTTPAddress    = "localhost:8000"
	DefaultTokenDuration  = time.Hour
	DefaultRequestTimeout = 30 * time.Second
	DefaultUsername       = "user"
	DefaultPassword       = "pass"
)

// GetStructuredConfig loads, merges and validates the application
// configuration. args are the command-line arguments without the program
// name.
//
// Sources are consulted in the following priority order (an earlier source
// wins for every field it sets):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		withDefaults().
		build()
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenDuration: DefaultTokenDuration,
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
	}
}
