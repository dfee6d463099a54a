// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-form-validation/internal/validators"
	"github.com/MKhiriev/go-form-validation/models"
)

// ContactValidationService rejects invalid contacts before they reach the
// wrapped service.
type ContactValidationService struct {
	inner     ContactService
	validator validators.Validator
}

func NewContactValidationService() ContactServiceWrapper {
	return &ContactValidationService{
		validator: validators.NewContactValidator(),
	}
}

func (v *ContactValidationService) Validate(ctx context.Context, contact models.Contact) (models.ValidationReport, error) {
	return v.inner.Validate(ctx, contact)
}

// Submit returns an error wrapping both ErrInvalidContact and the
// validator's *validators.ContactError when contact is invalid.
func (v *ContactValidationService) Submit(ctx context.Context, contact models.Contact) (models.Contact, error) {
	if err := v.validator.Validate(ctx, contact); err != nil {
		return models.Contact{}, fmt.Errorf("%w: %w", ErrInvalidContact, err)
	}

	return v.inner.Submit(ctx, contact)
}

func (v *ContactValidationService) List(ctx context.Context, limit uint64) ([]models.Contact, error) {
	return v.inner.List(ctx, limit)
}

func (v *ContactValidationService) Wrap(wrapped ContactService) ContactService {
	v.inner = wrapped
	return v
}
