// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-form-validation/internal/app"
	"github.com/MKhiriev/go-form-validation/internal/logger"
	"github.com/MKhiriev/go-form-validation/internal/service"
	"github.com/MKhiriev/go-form-validation/internal/utils"
	"github.com/MKhiriev/go-form-validation/models"
)

type errorResponse struct {
	Error string `json:"error"`
}

// invalidContactResponse is the body of a rejected submission.
type invalidContactResponse struct {
	Error  string                  `json:"error"`
	Report models.ValidationReport `json:"report"`
}

// validateContact answers with the validation report of the posted contact.
// Validity never changes the status code.
func (h *Handler) validateContact(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var contact models.Contact
	if err := utils.DecodeJSON(w, r, &contact); err != nil {
		log.Debug().Err(err).Str("func", "*Handler.validateContact").Msg("invalid body")
		h.writeError(w, r, http.StatusBadRequest, app.MsgInvalidDataProvided)
		return
	}

	report, err := h.services.ContactService.Validate(r.Context(), contact)
	if err != nil {
		log.Err(err).Str("func", "*Handler.validateContact").Msg("error validating contact")
		h.writeError(w, r, statusFromError(err), app.MsgInternalServerError)
		return
	}
	h.metrics.observeReport(report)

	h.writeJSON(w, r, report, http.StatusOK)
}

// submitContact stores the posted contact.
//
//   - 201 with the stored contact.
//   - 400 with the validation report when a field is invalid.
//   - 409 when the telephone number is taken.
func (h *Handler) submitContact(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	ctx := r.Context()

	var contact models.Contact
	if err := utils.DecodeJSON(w, r, &contact); err != nil {
		log.Debug().Err(err).Str("func", "*Handler.submitContact").Msg("invalid body")
		h.writeError(w, r, http.StatusBadRequest, app.MsgInvalidDataProvided)
		return
	}

	saved, err := h.services.ContactService.Submit(ctx, contact)
	switch {
	case errors.Is(err, service.ErrInvalidContact):
		report, rerr := h.services.ContactService.Validate(ctx, contact)
		if rerr != nil {
			h.writeError(w, r, http.StatusBadRequest, app.MsgInvalidContact)
			return
		}
		h.metrics.observeReport(report)
		h.writeJSON(w, r, invalidContactResponse{Error: app.MsgInvalidContact, Report: report}, http.StatusBadRequest)
		return
	case errors.Is(err, service.ErrContactAlreadyExists):
		h.writeError(w, r, http.StatusConflict, app.MsgContactAlreadyExists)
		return
	case err != nil:
		log.Err(err).Str("func", "*Handler.submitContact").Msg("error submitting contact")
		h.writeError(w, r, statusFromError(err), app.MsgInternalServerError)
		return
	}

	h.metrics.contactsSubmitted.Inc()
	h.writeJSON(w, r, saved, http.StatusCreated)
}

// listContacts returns stored contacts, newest first. The optional limit
// query parameter bounds the result and may not exceed
// [service.MaxListLimit].
func (h *Handler) listContacts(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var limit uint64
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || parsed > service.MaxListLimit {
			h.writeError(w, r, http.StatusBadRequest, app.MsgInvalidLimit)
			return
		}
		limit = parsed
	}

	contacts, err := h.services.ContactService.List(r.Context(), limit)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listContacts").Msg("error listing contacts")
		h.writeError(w, r, statusFromError(err), app.MsgInternalServerError)
		return
	}

	h.writeJSON(w, r, contacts, http.StatusOK)
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	h.writeJSON(w, r, errorResponse{Error: msg}, status)
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}
