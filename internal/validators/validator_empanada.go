// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-empanadas/models"
)

const (
	FieldName     = "name"
	FieldQuantity = "quantity"
	FieldUsername = "username"
	FieldPassword = "password"
)

// presenceCheck reports whether one named field of a request is present.
type presenceCheck struct {
	field   string
	present bool
}

type EmpanadaValidator struct {
}

func NewEmpanadaValidator() Validator {
	return &EmpanadaValidator{}
}

// Validate checks that the required fields of obj are present. When fields
// is non-empty only those fields are checked.
//
// Supported types: [models.CreateEmpanada], [models.LoginRequest] and
// [models.UpdateEmpanada] (all fields optional), by value or pointer.
func (v *EmpanadaValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CreateEmpanada:
		return checkPresence(fields,
			presenceCheck{FieldName, value.Name.IsSet()},
			presenceCheck{FieldQuantity, value.Quantity.IsSet()},
		)
	case *models.CreateEmpanada:
		return v.Validate(ctx, *value, fields...)

	case models.LoginRequest:
		return checkPresence(fields,
			presenceCheck{FieldUsername, value.Username.IsSet()},
			presenceCheck{FieldPassword, value.Password.IsSet()},
		)
	case *models.LoginRequest:
		return v.Validate(ctx, *value, fields...)

	case models.UpdateEmpanada, *models.UpdateEmpanada:
		return checkPresence(fields,
			presenceCheck{FieldName, true},
			presenceCheck{FieldQuantity, true},
		)

	default:
		return ErrUnsupportedType
	}
}

func checkPresence(fields []string, checks ...presenceCheck) error {
	for _, field := range fields {
		if !slices.ContainsFunc(checks, func(c presenceCheck) bool { return c.field == field }) {
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	for _, check := range checks {
		if len(fields) > 0 && !slices.Contains(fields, check.field) {
			continue
		}
		if !check.present {
			return fmt.Errorf("%w: %s", ErrMissingField, check.field)
		}
	}

	return nil
}
