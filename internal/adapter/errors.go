// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"

	"github.com/MKhiriev/go-form-validation/internal/service"
	"github.com/MKhiriev/go-form-validation/models"
)

var (
	ErrInvalidContact   = errors.New("server rejected contact")
	ErrContactConflict  = errors.New("server reported conflicting contact")
	ErrBadRequest       = errors.New("bad request")
	ErrUnexpectedStatus = errors.New("unexpected response status")
	ErrInvalidBaseURL   = errors.New("invalid server base url")
)

// InvalidContactError is returned by Submit for a 400 response that carries a
// validation report.
type InvalidContactError struct {
	Message string
	Report  models.ValidationReport
}

func (e *InvalidContactError) Error() string {
	if e.Message == "" {
		return ErrInvalidContact.Error()
	}
	return ErrInvalidContact.Error() + ": " + e.Message
}

// Is matches both ErrInvalidContact and service.ErrInvalidContact.
func (e *InvalidContactError) Is(target error) bool {
	return target == ErrInvalidContact || target == service.ErrInvalidContact
}
