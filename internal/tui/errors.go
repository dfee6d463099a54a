// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-form-validation/internal/service"
)

var ErrUserQuit = errors.New("user quit the program")

const (
	msgServerUnavailable = "No network or the server is unavailable"
	msgContactRejected   = "Contact rejected, check the highlighted fields"
	msgContactExists     = "A contact with this telephone number already exists"
)

// humanizeError turns a submit or list error into a one-line message.
func humanizeError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, service.ErrInvalidContact):
		return msgContactRejected
	case errors.Is(err, service.ErrContactAlreadyExists):
		return msgContactExists
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return msgServerUnavailable
	}

	return err.Error()
}
