// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-form-validation/internal/config"
	"github.com/MKhiriev/go-form-validation/internal/logger"
	"github.com/MKhiriev/go-form-validation/internal/service"
	"github.com/MKhiriev/go-form-validation/internal/utils"
	"github.com/MKhiriev/go-form-validation/models"
)

func newTestAdapter(t *testing.T, serverURL string) ServerAdapter {
	t.Helper()
	a, err := NewHTTPServerAdapter(config.Adapter{BaseURL: serverURL, RequestTimeout: 5 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return a
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "full url", in: "http://localhost:8080/", want: "http://localhost:8080"},
		{name: "no scheme", in: "localhost:8080", want: "http://localhost:8080"},
		{name: "https kept", in: " https://contacts.example.com ", want: "https://contacts.example.com"},
		{name: "empty", in: "  ", wantErr: true},
		{name: "scheme only", in: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPServerAdapter_InvalidURL(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.Adapter{}, logger.Nop())
	assert.ErrorIs(t, err, ErrInvalidBaseURL)
}

func TestValidate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/contacts/validate", r.URL.Path)
		assert.Equal(t, "trace-1", r.Header.Get(utils.TraceIDHeader))

		var c models.Contact
		require.NoError(t, json.NewDecoder(r.Body).Decode(&c))
		assert.Equal(t, "bob1", c.Name)

		_, _ = utils.WriteJSON(w, models.ValidationReport{
			Valid: false,
			Fields: map[string]models.FieldReport{
				"name": {Value: "BOB1", Message: "A name can not contain numbers", Kind: "invalid_format"},
			},
		}, http.StatusOK)
	}))
	defer srv.Close()

	ctx := utils.WithTraceID(context.Background(), "trace-1")
	report, err := newTestAdapter(t, srv.URL).Validate(ctx, models.Contact{Name: "bob1", Telephone: "123"})

	require.NoError(t, err)
	assert.False(t, report.Valid)
	assert.Equal(t, "invalid_format", report.Fields["name"].Kind)
}

func TestSubmit_Created(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/contacts", r.URL.Path)
		_, _ = utils.WriteJSON(w, models.Contact{ID: "id-1", Name: "ALICE", Telephone: "+1 555"}, http.StatusCreated)
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).Submit(context.Background(), models.Contact{Name: "alice", Telephone: "+1 555"})

	require.NoError(t, err)
	assert.Equal(t, "id-1", got.ID)
	assert.Equal(t, "ALICE", got.Name)
}

func TestSubmit_InvalidContactCarriesReport(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = utils.WriteJSON(w, map[string]any{
			"error": "contact is not valid",
			"report": models.ValidationReport{
				Fields: map[string]models.FieldReport{
					"telephone": {Message: "Field can't be empty", Kind: "empty"},
				},
			},
		}, http.StatusBadRequest)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Submit(context.Background(), models.Contact{Name: "alice"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidContact)
	assert.ErrorIs(t, err, service.ErrInvalidContact)

	var invalid *InvalidContactError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "empty", invalid.Report.Fields["telephone"].Kind)
}

func TestSubmit_BadRequestWithoutReport(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = utils.WriteJSON(w, map[string]string{"error": "invalid data provided"}, http.StatusBadRequest)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Submit(context.Background(), models.Contact{})

	assert.ErrorIs(t, err, ErrBadRequest)
	assert.NotErrorIs(t, err, ErrInvalidContact)
}

func TestSubmit_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = utils.WriteJSON(w, map[string]string{"error": "contact already exists"}, http.StatusConflict)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Submit(context.Background(), models.Contact{Name: "alice", Telephone: "1"})

	assert.ErrorIs(t, err, ErrContactConflict)
	assert.ErrorIs(t, err, service.ErrContactAlreadyExists)
	assert.Contains(t, err.Error(), "contact already exists")
}

func TestList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/contacts", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("limit"))
		_, _ = utils.WriteJSON(w, []models.Contact{{ID: "b"}, {ID: "a"}}, http.StatusOK)
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).List(context.Background(), 2)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "b", got[0].ID)
}

func TestList_NoLimitOmitsQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.False(t, r.URL.Query().Has("limit"))
		_, _ = utils.WriteJSON(w, []models.Contact{}, http.StatusOK)
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).List(context.Background(), 0)

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestList_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("boom"))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).List(context.Background(), 0)

	assert.ErrorIs(t, err, ErrUnexpectedStatus)
	assert.Contains(t, err.Error(), "500")
	assert.Contains(t, err.Error(), "boom")
}

func TestVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/version", r.URL.Path)
		_, _ = utils.WriteJSON(w, models.NewAppBuildInfo("v1.2.0", "2026-10-01", "abc123"), http.StatusOK)
	}))
	defer srv.Close()

	info, err := newTestAdapter(t, srv.URL).Version(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "v1.2.0", info.BuildVersion())
	assert.Equal(t, "abc123", info.BuildCommit())
}

func TestServerUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := newTestAdapter(t, url).Version(context.Background())
	assert.Error(t, err)
}
