package config

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"dario.cat/mergo"
)

// Client defaults.
const (
	DefaultClientServerAddress  = "http://" + DefaultHTTPAddress
	DefaultClientRequestTimeout = 10 * time.Second
	DefaultClientLogLevel       = "warn"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the server; the scheme defaults to http.
	// Env: CLIENT_SERVER_ADDRESS
	HTTPAddress string `env:"SERVER_ADDRESS"`

	// RequestTimeout is the timeout for a single outbound request.
	// Env: CLIENT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// ClientAuth holds what the client needs to authorize mutating commands:
// either a token or credentials to obtain one.
type ClientAuth struct {
	// Env: CLIENT_USERNAME
	Username string `env:"USERNAME"`
	// Env: CLIENT_PASSWORD
	Password string `env:"PASSWORD"`
	// Env: CLIENT_TOKEN
	Token string `env:"TOKEN"`
}

// ClientConfig is the configuration of cmd/client.
type ClientConfig struct {
	Adapter ClientAdapter `envPrefix:"CLIENT_"`
	Auth    ClientAuth    `envPrefix:"CLIENT_"`

	// LogLevel is a zerolog level name. Logs go to stderr.
	// Env: CLIENT_LOG_LEVEL
	LogLevel string `env:"CLIENT_LOG_LEVEL"`
}

// GetClientConfig builds the client configuration from the environment,
// then the leading flags of args, then defaults; an earlier source wins.
// It returns the arguments left after the flags (the command and its
// arguments).
func GetClientConfig(args []string) (*ClientConfig, []string, error) {
	envCfg := &ClientConfig{}
	if err := parseEnv(envCfg); err != nil {
		return nil, nil, err
	}

	flagsCfg, rest, err := parseClientFlags(args)
	if err != nil {
		return nil, nil, err
	}

	cfg := new(ClientConfig)
	for _, src := range []*ClientConfig{envCfg, flagsCfg, defaultClientConfig()} {
		if err = mergo.Merge(cfg, src); err != nil {
			return nil, nil, fmt.Errorf("error merging client configs: %w", err)
		}
	}

	return cfg, rest, cfg.validate()
}

func defaultClientConfig() *ClientConfig {
	return &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    DefaultClientServerAddress,
			RequestTimeout: DefaultClientRequestTimeout,
		},
		LogLevel: DefaultClientLogLevel,
	}
}

func parseClientFlags(args []string) (*ClientConfig, []string, error) {
	cfg := &ClientConfig{}

	fs := flag.NewFlagSet("client", flag.ContinueOnError)
	fs.StringVar(&cfg.Adapter.HTTPAddress, "s", "", "server address")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "timeout", 0, "request timeout")
	fs.StringVar(&cfg.Auth.Username, "u", "", "username")
	fs.StringVar(&cfg.Auth.Password, "p", "", "password")
	fs.StringVar(&cfg.Auth.Token, "t", "", "bearer token")
	fs.StringVar(&cfg.LogLevel, "log-level", "", "log level")

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("error parsing client flags: %w", err)
	}

	return cfg, fs.Args(), nil
}

func (cfg *ClientConfig) validate() error {
	var err error
	if cfg.Adapter.HTTPAddress == "" {
		err = errors.Join(err, errors.New("server address is required"))
	}
	if cfg.Adapter.RequestTimeout < 0 {
		err = errors.Join(err, errors.New("request timeout must not be negative"))
	}
	if err != nil {
		return errors.Join(ErrInvalidClientConfigs, err)
	}
	return nil
}
