// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package form

import "errors"

// ErrEmptyField is the failure reported by validators for empty input.
// Its message is shown to the user as is.
var ErrEmptyField = errors.New("Field can't be empty")

var (
	// ErrUnknownField is returned by [Form] methods addressing a field name
	// that was never added.
	ErrUnknownField = errors.New("unknown form field")

	// ErrDuplicateField is returned by [Form.AddField] when the name is
	// already taken by another field of the same form.
	ErrDuplicateField = errors.New("form field already exists")
)

// FormatError is the failure reported when non-empty input does not satisfy
// a validator's format rule. Reason is a user-facing message.
type FormatError struct {
	Reason string
}

func (e *FormatError) Error() string {
	return e.Reason
}

// FailureKind classifies a validation outcome.
type FailureKind int

const (
	// KindNone means the input is valid.
	KindNone FailureKind = iota
	// KindEmpty means the input was empty.
	KindEmpty
	// KindInvalidFormat means the input did not match the field's format.
	KindInvalidFormat
)

// String returns a stable lowercase label, suitable for metrics and logs.
func (k FailureKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindEmpty:
		return "empty"
	case KindInvalidFormat:
		return "invalid_format"
	default:
		return "unknown"
	}
}

// Kind maps a validation outcome to its [FailureKind]. Errors that are
// neither [ErrEmptyField] nor a [*FormatError] are treated as format failures.
func Kind(err error) FailureKind {
	if err == nil {
		return KindNone
	}
	if errors.Is(err, ErrEmptyField) {
		return KindEmpty
	}
	return KindInvalidFormat
}
