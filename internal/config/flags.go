// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"sort"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// String returns a canonical host:port string, or "" when nothing is set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses host:port. An empty host binds all interfaces; any other host
// must be "localhost" or a valid IP address.
func (a *NetAddress) Set(s string) error {
	host, portString, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portString)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}

// UsersFlag collects credentials given as "user:pass,other:secret".
// It implements the flag.Value interface; repeated flags accumulate.
type UsersFlag map[string]string

func (u *UsersFlag) String() string {
	if u == nil || *u == nil {
		return ""
	}

	pairs := make([]string, 0, len(*u))
	for username, password := range *u {
		pairs = append(pairs, username+":"+password)
	}
	sort.Strings(pairs)

	return strings.Join(pairs, ",")
}

func (u *UsersFlag) Set(s string) error {
	users, err := parseUsers(s)
	if err != nil {
		return err
	}

	if *u == nil {
		*u = make(UsersFlag, len(users))
	}
	for username, password := range users {
		(*u)[username] = password
	}

	return nil
}

func parseUsers(s string) (map[string]string, error) {
	users := make(map[string]string)
	for _, pair := range strings.Split(s, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}

		username, password, ok := strings.Cut(pair, ":")
		if !ok || username == "" {
			return nil, fmt.Errorf("need users in a form `user:pass`, got %q", pair)
		}
		users[username] = password
	}

	return users, nil
}

// parseFlags parses the command-line arguments (without the program name).
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-duration token duration (e.g. "1h", "30m")
//	-users accepted credentials in format user:pass[,user:pass]
//	-log-level zerolog level
//	-request-timeout request timeout (e.g. "30s", "1m")
//	-no-seed start with an empty inventory
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var users UsersFlag
	var jsonConfigPath string
	var tokenSignKey string
	var tokenDuration time.Duration
	var requestTimeout time.Duration
	var logLevel string
	var noSeed bool

	fs := flag.NewFlagSet("empanadas", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&users, "users", "Accepted credentials user:pass[,user:pass]")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.BoolVar(&noSeed, "no-seed", false, "Start with an empty inventory")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenDuration: tokenDuration,
			Users:         users,
			LogLevel:      logLevel,
		},
		Storage: Storage{
			NoSeed: noSeed,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
