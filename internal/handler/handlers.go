// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package handler assembles the transport handlers served by the server.
package handler

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/MKhiriev/go-form-validation/internal/config"
	"github.com/MKhiriev/go-form-validation/internal/handler/http"
	"github.com/MKhiriev/go-form-validation/internal/logger"
	"github.com/MKhiriev/go-form-validation/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers creates the HTTP handler when cfg has an HTTP address. Metrics
// are registered on registry; a nil registry gets a private one.
func NewHandlers(services *service.Services, cfg config.Server, registry *prometheus.Registry, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, registry, logger),
	}, nil
}
