// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Empanada is a single inventory record.
type Empanada struct {
	// ID is unique within the store and assigned sequentially on creation.
	ID int64 `json:"id"`

	// Name is not required to be unique.
	Name string `json:"name"`

	Quantity int64 `json:"quantity"`
}

// CreateEmpanada is the request body of POST /empanadas.
// Both fields are required; presence is checked by the validator.
type CreateEmpanada struct {
	Name     Optional[string] `json:"name"`
	Quantity Optional[int64]  `json:"quantity"`
}

// UpdateEmpanada is the request body of PUT /empanadas/{id}.
// Only the fields that are present are applied to the stored item.
type UpdateEmpanada struct {
	Name     Optional[string] `json:"name"`
	Quantity Optional[int64]  `json:"quantity"`
}

// Apply copies every present field of u onto e.
func (u UpdateEmpanada) Apply(e *Empanada) {
	if name, ok := u.Name.Get(); ok {
		e.Name = name
	}
	if quantity, ok := u.Quantity.Get(); ok {
		e.Quantity = quantity
	}
}

// EmpanadaFilter narrows down GET /empanadas. At most one filter is applied
// and ID takes precedence over Name.
type EmpanadaFilter struct {
	ID   Optional[int64]
	Name Optional[string]
}
