// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations embeds the contacts schema and applies it with goose.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/MKhiriev/go-form-validation/internal/logger"
)

// Dialects understood by Migrate.
const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite3"
)

var ErrNilDB = errors.New("migration error: db is nil")

//go:embed *.sql
var embedMigrations embed.FS

// Migrate brings the schema of db up to date. dialect is one of
// DialectPostgres or DialectSQLite. goose output is written to log; a nil
// log discards it.
func Migrate(db *sql.DB, dialect string, log *logger.Logger) error {
	if db == nil {
		return ErrNilDB
	}
	if log == nil {
		log = logger.Nop()
	}

	goose.SetLogger(gooseLogger{log: log})
	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
