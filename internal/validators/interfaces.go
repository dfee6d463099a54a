// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators applies the contact form rules to whole values.
//
// The same field validators drive the interactive form (see
// [NewContactForm]) and the server-side checks ([ContactValidator],
// [Report]), so a contact accepted by the terminal client is accepted by the
// HTTP API and vice versa.
package validators

import "context"

// Validator validates arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
