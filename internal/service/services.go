// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-form-validation/internal/config"
	"github.com/MKhiriev/go-form-validation/internal/logger"
	"github.com/MKhiriev/go-form-validation/internal/store"
	"github.com/MKhiriev/go-form-validation/internal/utils"
	"github.com/MKhiriev/go-form-validation/models"
)

type Services struct {
	ContactService ContactService
	AppInfoService AppInfoService
}

// NewServices builds the validated contact service over repos.
func NewServices(repos *store.Repositories, cfg config.App, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg, buildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	contacts := NewContactService(repos.ContactRepository, utils.NewUUIDGenerator(), logger)

	return &Services{
		ContactService: NewContactValidationService().Wrap(contacts),
		AppInfoService: appInfo,
	}, nil
}
