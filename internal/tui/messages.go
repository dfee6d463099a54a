// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/go-form-validation/models"
)

const (
	pageForm = "form"
	pageList = "list"
)

// NavigateTo asks the root model to switch the active page. A non-nil
// Payload is delivered to the new page instead of its Init command.
type NavigateTo struct {
	Page    string
	Payload any
}

type contactSubmittedMsg struct {
	contact models.Contact
	err     error
}

type contactsLoadedMsg struct {
	items []models.Contact
	err   error
}
