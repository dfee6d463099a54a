// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-form-validation/internal/service"
	"github.com/MKhiriev/go-form-validation/internal/store"
	"github.com/MKhiriev/go-form-validation/internal/utils"
	"github.com/MKhiriev/go-form-validation/internal/validators"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidContact:       http.StatusBadRequest,
	service.ErrContactAlreadyExists: http.StatusConflict,

	validators.ErrInvalidContact:  http.StatusBadRequest,
	validators.ErrUnknownField:    http.StatusBadRequest,
	validators.ErrUnsupportedType: http.StatusBadRequest,
	utils.ErrEmptyBody:            http.StatusBadRequest,

	store.ErrContactAlreadyExists: http.StatusConflict,
	store.ErrContactNotFound:      http.StatusNotFound,
	store.ErrContactNotSaved:      http.StatusInternalServerError,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
