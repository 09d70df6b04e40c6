// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-empanadas/models"
	"github.com/stretchr/testify/assert"
)

func TestEmpanadaValidator_Validate(t *testing.T) {
	tests := []struct {
		name    string
		obj     any
		fields  []string
		wantErr error
	}{
		{
			name: "create with all fields",
			obj:  models.CreateEmpanada{Name: models.Some("jamon"), Quantity: models.Some[int64](3)},
		},
		{
			name: "create pointer",
			obj:  &models.CreateEmpanada{Name: models.Some("jamon"), Quantity: models.Some[int64](0)},
		},
		{
			name:    "create without name",
			obj:     models.CreateEmpanada{Quantity: models.Some[int64](3)},
			wantErr: ErrMissingField,
		},
		{
			name:    "create without quantity",
			obj:     models.CreateEmpanada{Name: models.Some("jamon")},
			wantErr: ErrMissingField,
		},
		{
			name:   "create checks only requested field",
			obj:    models.CreateEmpanada{Name: models.Some("jamon")},
			fields: []string{FieldName},
		},
		{
			name:    "create unknown field",
			obj:     models.CreateEmpanada{},
			fields:  []string{"price"},
			wantErr: ErrUnknownField,
		},
		{
			name: "empty update is valid",
			obj:  models.UpdateEmpanada{},
		},
		{
			name: "empty update pointer is valid",
			obj:  &models.UpdateEmpanada{},
		},
		{
			name: "login with all fields",
			obj:  models.LoginRequest{Username: models.Some("user"), Password: models.Some("")},
		},
		{
			name:    "login without password",
			obj:     &models.LoginRequest{Username: models.Some("user")},
			wantErr: ErrMissingField,
		},
		{
			name:    "unsupported type",
			obj:     models.Empanada{},
			wantErr: ErrUnsupportedType,
		},
	}

	v := NewEmpanadaValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.obj, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
