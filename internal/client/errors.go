// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrUsage          = errors.New("invalid usage")
	ErrNoCredentials  = errors.New("no token or credentials provided")
)
