// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-form-validation/internal/service"
	"github.com/MKhiriev/go-form-validation/models"
)

type errorBody struct {
	Error  string                   `json:"error"`
	Report *models.ValidationReport `json:"report,omitempty"`
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	raw := strings.TrimSpace(string(resp.Body()))

	var body errorBody
	if err := json.Unmarshal(resp.Body(), &body); err == nil && body.Error != "" {
		raw = body.Error
	}
	if raw == "" {
		raw = http.StatusText(resp.StatusCode())
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		if body.Report != nil {
			return &InvalidContactError{Message: body.Error, Report: *body.Report}
		}
		return fmt.Errorf("%w: %s", ErrBadRequest, raw)
	case http.StatusConflict:
		return fmt.Errorf("%w: %w: %s", ErrContactConflict, service.ErrContactAlreadyExists, raw)
	default:
		return fmt.Errorf("%w: http %d: %s", ErrUnexpectedStatus, resp.StatusCode(), raw)
	}
}
