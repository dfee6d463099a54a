// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrContactAlreadyExists is returned when a contact with the same
	// telephone number is already stored.
	ErrContactAlreadyExists = errors.New("contact already exists")

	// ErrContactNotFound is returned when a lookup matches no contact.
	ErrContactNotFound = errors.New("contact was not found")

	// ErrContactNotSaved is returned when an INSERT completes without error
	// but affects no rows.
	ErrContactNotSaved = errors.New("contact was not saved")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	ErrBuildingSQLQuery = errors.New("error building sql query")
	ErrExecutingQuery   = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	ErrScanningRow  = errors.New("failed to scan contact row")
	ErrScanningRows = errors.New("failed to scan contact rows")
)
