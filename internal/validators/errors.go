// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"slices"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
	ErrInvalidContact  = errors.New("invalid contact")
)

// ContactError lists the failing fields of a contact together with the
// message each field would display. It matches [ErrInvalidContact] under
// errors.Is.
type ContactError struct {
	Fields map[string]string
}

func (e *ContactError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	slices.Sort(names)

	var b strings.Builder
	b.WriteString(ErrInvalidContact.Error())
	for i, name := range names {
		if i == 0 {
			b.WriteString(": ")
		} else {
			b.WriteString("; ")
		}
		b.WriteString(name)
		b.WriteString(": ")
		b.WriteString(e.Fields[name])
	}
	return b.String()
}

func (e *ContactError) Unwrap() error {
	return ErrInvalidContact
}
