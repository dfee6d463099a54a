// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to the contact API server on behalf of the terminal
// client in remote mode.
//
// [ServerAdapter] has the same contact methods as service.ContactService, so
// the client can use either one. Non-2xx responses are mapped to the
// sentinel errors of this package by mapHTTPError; the invalid and conflict
// cases also match the service errors under errors.Is.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-form-validation/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter is the client side of the contact API.
type ServerAdapter interface {
	// Validate posts contact to /api/contacts/validate and returns the
	// server's report.
	Validate(ctx context.Context, contact models.Contact) (models.ValidationReport, error)

	// Submit posts contact to /api/contacts. A rejected contact yields an
	// *InvalidContactError carrying the server's report.
	Submit(ctx context.Context, contact models.Contact) (models.Contact, error)

	// List fetches up to limit contacts; zero lets the server decide.
	List(ctx context.Context, limit uint64) ([]models.Contact, error)

	// Version returns the server build info.
	Version(ctx context.Context) (models.AppBuildInfo, error)
}
