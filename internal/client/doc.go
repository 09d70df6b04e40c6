// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client runtime.
//
// It turns a command and its arguments into calls on the server adapter and
// prints the results as JSON.
package client
