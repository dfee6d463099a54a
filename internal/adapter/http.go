// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-form-validation/internal/config"
	"github.com/MKhiriev/go-form-validation/internal/logger"
	"github.com/MKhiriev/go-form-validation/internal/utils"
	"github.com/MKhiriev/go-form-validation/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP implementation of
// [ServerAdapter]. The base URL may omit the scheme, in which case http is
// assumed.
func NewHTTPServerAdapter(cfg config.Adapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) Validate(ctx context.Context, contact models.Contact) (models.ValidationReport, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(contact).
		Post("/api/contacts/validate")
	if err != nil {
		return models.ValidationReport{}, fmt.Errorf("validate request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ValidationReport{}, err
	}

	var report models.ValidationReport
	if err = json.Unmarshal(resp.Body(), &report); err != nil {
		return models.ValidationReport{}, fmt.Errorf("decode validate response: %w", err)
	}
	return report, nil
}

func (h *httpServerAdapter) Submit(ctx context.Context, contact models.Contact) (models.Contact, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(contact).
		Post("/api/contacts")
	if err != nil {
		return models.Contact{}, fmt.Errorf("submit request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Debug().Err(err).Str("func", "*httpServerAdapter.Submit").Msg("contact not accepted")
		return models.Contact{}, err
	}

	var saved models.Contact
	if err = json.Unmarshal(resp.Body(), &saved); err != nil {
		return models.Contact{}, fmt.Errorf("decode submit response: %w", err)
	}
	return saved, nil
}

func (h *httpServerAdapter) List(ctx context.Context, limit uint64) ([]models.Contact, error) {
	req := h.client.R().SetContext(ctx)
	if limit > 0 {
		req.SetQueryParam("limit", strconv.FormatUint(limit, 10))
	}

	resp, err := req.Get("/api/contacts")
	if err != nil {
		return nil, fmt.Errorf("list request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var contacts []models.Contact
	if err = json.Unmarshal(resp.Body(), &contacts); err != nil {
		return nil, fmt.Errorf("decode list response: %w", err)
	}
	return contacts, nil
}

func (h *httpServerAdapter) Version(ctx context.Context) (models.AppBuildInfo, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version")
	if err != nil {
		return models.AppBuildInfo{}, fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AppBuildInfo{}, err
	}

	var info models.AppBuildInfo
	if err = json.Unmarshal(resp.Body(), &info); err != nil {
		return models.AppBuildInfo{}, fmt.Errorf("decode version response: %w", err)
	}
	return info, nil
}
