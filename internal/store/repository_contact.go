// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-form-validation/internal/logger"
	"github.com/MKhiriev/go-form-validation/models"
)

// maxSaveAttempts bounds how often SaveContact retries a retryable error.
const maxSaveAttempts = 3

// contactRepository is the database/sql implementation of
// [ContactRepository]. The same code serves SQLite and PostgreSQL; the
// dialect only changes placeholders and error classification.
type contactRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewContactRepository constructs a [ContactRepository] over db.
func NewContactRepository(db *DB, logger *logger.Logger) ContactRepository {
	logger.Debug().Str("dialect", db.dialect).Msg("creating contact repository")
	return &contactRepository{
		db:     db,
		logger: logger,
	}
}

// SaveContact inserts contact as is; ID and CreatedAt must already be set.
//
// Error handling:
//   - unique violation on telephone or id: [ErrContactAlreadyExists].
//   - retryable driver errors are retried up to maxSaveAttempts times.
//   - zero affected rows: [ErrContactNotSaved].
func (r *contactRepository) SaveContact(ctx context.Context, contact models.Contact) (models.Contact, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSaveContact(r.db.builder(), contact)
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.SaveContact").Msg("error building query")
		return models.Contact{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var res sql.Result
	for attempt := 1; ; attempt++ {
		res, err = r.db.ExecContext(ctx, query, args...)
		if err == nil {
			break
		}

		if r.db.errorClassificator.IsUniqueViolation(err) {
			log.Debug().Str("func", "*contactRepository.SaveContact").Str("telephone", contact.Telephone).Msg("duplicate contact")
			return models.Contact{}, ErrContactAlreadyExists
		}

		if attempt < maxSaveAttempts && r.db.errorClassificator.Classify(err) == Retryable && ctx.Err() == nil {
			log.Warn().Err(err).Str("func", "*contactRepository.SaveContact").Int("attempt", attempt).Msg("retrying insert")
			continue
		}

		log.Err(err).Str("func", "*contactRepository.SaveContact").Msg("error inserting contact")
		return models.Contact{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return models.Contact{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return models.Contact{}, ErrContactNotSaved
	}

	return contact, nil
}

func (r *contactRepository) ListContacts(ctx context.Context, limit uint64) ([]models.Contact, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListContacts(r.db.builder(), limit)
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.ListContacts").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.ListContacts").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	contacts := make([]models.Contact, 0)
	for rows.Next() {
		var c models.Contact
		if err = rows.Scan(&c.ID, &c.Name, &c.Telephone, &c.CreatedAt); err != nil {
			log.Err(err).Str("func", "*contactRepository.ListContacts").Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		contacts = append(contacts, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return contacts, nil
}

func (r *contactRepository) FindByTelephone(ctx context.Context, telephone string) (models.Contact, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindByTelephone(r.db.builder(), telephone)
	if err != nil {
		return models.Contact{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var c models.Contact
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&c.ID, &c.Name, &c.Telephone, &c.CreatedAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Contact{}, ErrContactNotFound
	case err != nil:
		log.Err(err).Str("func", "*contactRepository.FindByTelephone").Msg("error scanning row")
		return models.Contact{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return c, nil
}
