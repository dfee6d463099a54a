// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/MKhiriev/go-form-validation/internal/logger"
	"github.com/MKhiriev/go-form-validation/internal/service"
)

type Handler struct {
	services *service.Services
	metrics  *Metrics
	gatherer prometheus.Gatherer

	logger *logger.Logger
}

// NewHandler registers the API metrics on registry and returns the handler.
// A nil registry is replaced by a fresh one.
func NewHandler(services *service.Services, registry *prometheus.Registry, logger *logger.Logger) *Handler {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		metrics:  NewMetrics(registry),
		gatherer: registry,
		logger:   logger,
	}
}
