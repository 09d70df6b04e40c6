// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Credentials is an entry of the credential store.
// Password is compared as plain text.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /token. Both fields are required; presence
// is checked by the validator.
type LoginRequest struct {
	Username Optional[string] `json:"username"`
	Password Optional[string] `json:"password"`
}

// Credentials returns the request as plain credentials. Absent fields become
// empty strings.
func (r LoginRequest) Credentials() Credentials {
	username, _ := r.Username.Get()
	password, _ := r.Password.Get()
	return Credentials{Username: username, Password: password}
}
