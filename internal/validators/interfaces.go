// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request payloads before they reach business
// logic.
//
// Validation is limited to the shape of the input: required fields must be
// present. Values themselves are not sanitized.
package validators

import "context"

// Validator validates the provided input and optionally restricts validation
// to specific named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
