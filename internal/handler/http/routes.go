// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer, h.withMetrics)

	router.Handle("/metrics", promhttp.HandlerFor(h.gatherer, promhttp.HandlerOpts{}))

	router.Route("/api", func(r chi.Router) {
		r.Use(withGZip)

		r.Get("/version", h.getServerVersion)

		r.Route("/contacts", func(r chi.Router) {
			r.Get("/", h.listContacts)
			r.Post("/", h.submitContact)
			r.Post("/validate", h.validateContact)
		})
	})

	return router
}
