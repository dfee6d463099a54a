// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"bufio"
	"bytes"
	"database/sql"
	"encoding/json"
	"io/fs"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-form-validation/internal/logger"
)

func TestMigrate_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(".*").WillReturnError(assert.AnError)
	mock.ExpectExec(".*").WillReturnError(assert.AnError)

	err = Migrate(db, DialectSQLite, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration error")
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB
	assert.ErrorIs(t, Migrate(db, DialectPostgres, nil), ErrNilDB)
}

func TestMigrate_UnknownDialect(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	err = Migrate(db, "oracle", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "setting dialect")
}

func TestEmbeddedMigrations(t *testing.T) {
	files, err := fs.Glob(embedMigrations, "*.sql")
	require.NoError(t, err)
	assert.Contains(t, files, "00001_create_contacts.sql")
}

func TestMigrate_LogsThroughLogger(t *testing.T) {
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	defer db.Close()
	db.SetMaxOpenConns(1)

	var buf bytes.Buffer
	log := &logger.Logger{Logger: zerolog.New(&buf)}

	require.NoError(t, Migrate(db, DialectSQLite, log))
	require.NotZero(t, buf.Len(), "goose output goes to the logger")

	var messages []string
	sc := bufio.NewScanner(&buf)
	for sc.Scan() {
		var entry map[string]any
		require.NoError(t, json.Unmarshal(sc.Bytes(), &entry), "line %q", sc.Text())
		assert.Equal(t, "info", entry["level"])
		assert.Equal(t, "goose", entry["func"])
		messages = append(messages, entry["message"].(string))
	}
	assert.Contains(t, strings.Join(messages, "\n"), "00001_create_contacts.sql")
}

func TestGooseLogger_Printf(t *testing.T) {
	var buf bytes.Buffer
	g := gooseLogger{log: &logger.Logger{Logger: zerolog.New(&buf)}}

	g.Printf("OK   %s (%s)\n", "00001_create_contacts.sql", "1ms")

	assert.JSONEq(t, `{"level":"info","func":"goose","message":"OK   00001_create_contacts.sql (1ms)"}`, buf.String())
}
