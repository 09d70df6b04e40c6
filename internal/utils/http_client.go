// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient embeds *resty.Client so that every resty method is available
// directly while leaving room for application-specific helpers.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an independent client that sends JSON requests to
// baseURL. A zero timeout leaves resty's default (no timeout) in place.
//
//	client := utils.NewHTTPClient("http://localhost:8000", 10*time.Second)
//	resp, err := client.R().Get("/empanadas")
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json")

	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
