// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"

	"github.com/MKhiriev/go-form-validation/internal/logger"
	"github.com/MKhiriev/go-form-validation/models"
)

// ContactValidator checks [models.Contact] values with the same rules the
// contact form applies while the user types.
type ContactValidator struct{}

// NewContactValidator returns a [Validator] for contacts.
func NewContactValidator() Validator {
	return &ContactValidator{}
}

// Validate accepts models.Contact or *models.Contact. It returns nil when
// every checked field is valid, a *ContactError when some are not, or an
// error wrapping ErrUnsupportedType / ErrUnknownField.
func (v *ContactValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Contact:
		return v.validateContact(ctx, value, fields...)
	case *models.Contact:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateContact(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *ContactValidator) validateContact(ctx context.Context, contact models.Contact, fields ...string) error {
	report, err := Report(contact, fields...)
	if err != nil {
		return err
	}
	if report.Valid {
		return nil
	}

	cerr := &ContactError{Fields: make(map[string]string)}
	for name, fr := range report.Fields {
		if !fr.Valid {
			cerr.Fields[name] = fr.Message
		}
	}

	logger.FromContext(ctx).Debug().
		Str("func", "ContactValidator.validateContact").
		Interface("fields", cerr.Fields).
		Msg("contact rejected")

	return cerr
}
