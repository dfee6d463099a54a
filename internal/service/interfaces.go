// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the contact use cases shared by the HTTP server and
// the terminal client in local mode.
package service

import (
	"context"

	"github.com/MKhiriev/go-form-validation/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// ContactService validates, stores and lists contacts.
type ContactService interface {
	// Validate reports the validity of every contact field without storing
	// anything.
	Validate(ctx context.Context, contact models.Contact) (models.ValidationReport, error)

	// Submit stores a valid contact and returns it with ID and CreatedAt set.
	Submit(ctx context.Context, contact models.Contact) (models.Contact, error)

	// List returns up to limit contacts, newest first.
	List(ctx context.Context, limit uint64) ([]models.Contact, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// ContactServiceWrapper defines middleware composition for ContactService.
// Implementations wrap an existing ContactService to add behavior such as
// validation.
type ContactServiceWrapper interface {
	Wrap(ContactService) ContactService
}
