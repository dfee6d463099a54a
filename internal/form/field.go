// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package form

import (
	"strconv"
	"sync/atomic"
)

// FieldID identifies one field instance within the process. It is only ever
// used as a registry key.
type FieldID uint64

var lastFieldID atomic.Uint64

// NewFieldID issues the next process-unique field identity.
// It is the only source of FieldID values; hand-made ids may collide.
func NewFieldID() FieldID {
	return FieldID(lastFieldID.Add(1))
}

func (id FieldID) String() string {
	return "field-" + strconv.FormatUint(uint64(id), 10)
}

// FieldValue is the current text of a field and the outcome of the most
// recent validation of exactly that text.
type FieldValue struct {
	Text  string
	Valid bool
}
