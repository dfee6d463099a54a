// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Contact is one submitted contact form.
//
// ID and CreatedAt are assigned when the contact is stored; clients send
// only Name and Telephone.
type Contact struct {
	ID        string    `json:"id,omitempty"`
	Name      string    `json:"name"`
	Telephone string    `json:"telephone"`
	CreatedAt time.Time `json:"created_at,omitzero"`
}

// ValidationReport describes the validity of every field of a submitted form.
type ValidationReport struct {
	// Valid is the aggregate validity of the whole form.
	Valid bool `json:"valid"`

	// Fields maps field name to its individual result.
	Fields map[string]FieldReport `json:"fields"`
}

// FieldReport is the validation result of a single field.
type FieldReport struct {
	// Value is the field text after normalization.
	Value string `json:"value"`

	// Valid reports whether Value passed the field's validator.
	Valid bool `json:"valid"`

	// Message is the user-facing failure reason; empty when Valid.
	Message string `json:"message,omitempty"`

	// Kind is the failure kind ("empty", "invalid_format"); empty when Valid.
	Kind string `json:"kind,omitempty"`
}
