// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-form-validation/internal/logger"
	"github.com/MKhiriev/go-form-validation/internal/store"
	"github.com/MKhiriev/go-form-validation/internal/utils"
	"github.com/MKhiriev/go-form-validation/internal/validators"
	"github.com/MKhiriev/go-form-validation/models"
)

const (
	// DefaultListLimit is used by List when the caller passes zero.
	DefaultListLimit = 50
	// MaxListLimit is the largest page List returns; bigger limits are clamped.
	MaxListLimit = 1000
)

type contactService struct {
	repo  store.ContactRepository
	ids   utils.IDGenerator
	clock func() time.Time

	logger *logger.Logger
}

// NewContactService returns the storage-backed ContactService. It does not
// validate on its own; wrap it with [NewContactValidationService].
func NewContactService(repo store.ContactRepository, ids utils.IDGenerator, logger *logger.Logger) ContactService {
	return &contactService{
		repo:   repo,
		ids:    ids,
		clock:  time.Now,
		logger: logger,
	}
}

func (s *contactService) Validate(_ context.Context, contact models.Contact) (models.ValidationReport, error) {
	return validators.Report(contact)
}

// Submit normalizes contact, assigns its id and creation time and saves it.
// A telephone number that is already stored is rejected before the insert;
// the unique index still catches a concurrent duplicate.
func (s *contactService) Submit(ctx context.Context, contact models.Contact) (models.Contact, error) {
	log := logger.FromContext(ctx)

	contact = validators.Normalize(contact)

	existing, err := s.repo.FindByTelephone(ctx, contact.Telephone)
	switch {
	case err == nil:
		log.Debug().Str("func", "*contactService.Submit").Str("contact_id", existing.ID).Msg("telephone already stored")
		return models.Contact{}, fmt.Errorf("%w: %s", ErrContactAlreadyExists, contact.Telephone)
	case !errors.Is(err, store.ErrContactNotFound):
		log.Err(err).Str("func", "*contactService.Submit").Msg("error looking up telephone")
		return models.Contact{}, fmt.Errorf("error looking up contact: %w", err)
	}

	contact.ID = s.ids.Generate()
	contact.CreatedAt = s.clock().UTC()

	saved, err := s.repo.SaveContact(ctx, contact)
	if errors.Is(err, store.ErrContactAlreadyExists) {
		return models.Contact{}, fmt.Errorf("%w: %s", ErrContactAlreadyExists, contact.Telephone)
	}
	if err != nil {
		log.Err(err).Str("func", "*contactService.Submit").Msg("error saving contact")
		return models.Contact{}, fmt.Errorf("error saving contact: %w", err)
	}

	log.Info().Str("func", "*contactService.Submit").Str("contact_id", saved.ID).Msg("contact saved")
	return saved, nil
}

func (s *contactService) List(ctx context.Context, limit uint64) ([]models.Contact, error) {
	switch {
	case limit == 0:
		limit = DefaultListLimit
	case limit > MaxListLimit:
		limit = MaxListLimit
	}

	contacts, err := s.repo.ListContacts(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing contacts: %w", err)
	}
	return contacts, nil
}
