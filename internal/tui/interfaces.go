// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	"github.com/MKhiriev/go-form-validation/models"
)

// Submitter stores a contact. Both service.ContactService (local mode) and
// adapter.ServerAdapter (remote mode) satisfy it.
type Submitter interface {
	Submit(ctx context.Context, contact models.Contact) (models.Contact, error)
}

// Lister returns stored contacts, newest first.
type Lister interface {
	List(ctx context.Context, limit uint64) ([]models.Contact, error)
}

// Backend is what the terminal client needs from its storage side.
type Backend interface {
	Submitter
	Lister
}
