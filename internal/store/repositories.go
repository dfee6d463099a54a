// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/MKhiriev/go-form-validation/internal/logger"

// Repositories groups every repository built over one database.
type Repositories struct {
	ContactRepository ContactRepository
}

func NewRepositories(db *DB, log *logger.Logger) *Repositories {
	return &Repositories{
		ContactRepository: NewContactRepository(db, log),
	}
}
