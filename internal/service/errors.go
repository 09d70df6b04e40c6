// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidCredentials  = errors.New("invalid credentials")

	ErrTokenIsExpired      = errors.New("token is expired")
	ErrTokenIsInvalid      = errors.New("token is invalid")
	ErrTokenCreationFailed = errors.New("token creation failed")
)
