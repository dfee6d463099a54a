// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists submitted contacts in SQLite or PostgreSQL.
package store

import (
	"context"

	"github.com/MKhiriev/go-form-validation/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ContactRepository stores and reads contacts.
type ContactRepository interface {
	// SaveContact inserts contact. A duplicate telephone number yields
	// ErrContactAlreadyExists.
	SaveContact(ctx context.Context, contact models.Contact) (models.Contact, error)

	// ListContacts returns up to limit contacts, newest first. A zero limit
	// means no limit.
	ListContacts(ctx context.Context, limit uint64) ([]models.Contact, error)

	// FindByTelephone returns the contact stored under telephone or
	// ErrContactNotFound.
	FindByTelephone(ctx context.Context, telephone string) (models.Contact, error)
}

// ErrorClassificator inspects driver errors of one database backend.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
	IsUniqueViolation(err error) bool
}
