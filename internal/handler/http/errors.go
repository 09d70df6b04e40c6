// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrNotAuthenticated is returned by the auth middleware when the
	// "Authorization" header is absent or does not carry a bearer token.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrMalformedBody is returned when the request body is not valid JSON
	// or a field has the wrong type.
	ErrMalformedBody = errors.New("malformed request body")

	// ErrInvalidParam is returned when a path or query parameter cannot be
	// parsed, e.g. a non-integer id.
	ErrInvalidParam = errors.New("invalid parameter")
)
