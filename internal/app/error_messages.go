// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// HTTP handlers, the HTTP adapter and the terminal client.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or shown to the user. Keeping them in one place keeps
// the wording consistent on both ends of the wire.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded as a contact.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidContact accompanies a validation report for a rejected
	// submission.
	MsgInvalidContact = "contact is not valid"

	// MsgContactAlreadyExists is returned when the telephone number is
	// already taken.
	MsgContactAlreadyExists = "contact with this telephone already exists"

	// MsgInvalidLimit is returned for a malformed or too large limit query
	// parameter.
	MsgInvalidLimit = "limit must be an integer from 0 to 1000"

	MsgInternalServerError = "internal server error"

	// MsgContactSaved is shown by the client after a successful submit.
	MsgContactSaved = "contact saved"
)
