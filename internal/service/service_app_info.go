// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-empanadas/internal/logger"
)

// UnknownVersion is reported when the binary was built without version
// information.
const UnknownVersion = "N/A"

type appInfoService struct {
	appVersion string

	logger *logger.Logger
}

func NewAppInfoService(appVersion string, logger *logger.Logger) AppInfoService {
	if appVersion == "" {
		appVersion = UnknownVersion
	}

	return &appInfoService{
		appVersion: appVersion,
		logger:     logger,
	}
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}
