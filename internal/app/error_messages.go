// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// empanada server handlers and middleware.
//
// All Msg* constants are the "detail" strings written into error response
// bodies. Clients match on them, so the wording must stay stable.
package app

const (
	// MsgInvalidCredentials is returned by POST /token when the username is
	// unknown or the password does not match.
	MsgInvalidCredentials = "Invalid credentials"

	// MsgNotAuthenticated is returned when a protected route is called
	// without a bearer token.
	MsgNotAuthenticated = "Not authenticated"

	// MsgTokenIsExpired is returned when a bearer token is correctly signed
	// but its exp claim has passed.
	MsgTokenIsExpired = "Token has expired"

	// MsgTokenIsInvalid is returned when a bearer token cannot be verified.
	MsgTokenIsInvalid = "Invalid token"

	// MsgEmpanadaNotFound is returned by update and delete for unknown IDs.
	MsgEmpanadaNotFound = "Empanada not found"

	MsgNotFound         = "Not Found"
	MsgMethodNotAllowed = "Method Not Allowed"
)
