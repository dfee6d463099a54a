// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-form-validation/internal/adapter"
	"github.com/MKhiriev/go-form-validation/internal/config"
	"github.com/MKhiriev/go-form-validation/internal/logger"
	"github.com/MKhiriev/go-form-validation/internal/service"
	"github.com/MKhiriev/go-form-validation/internal/utils"
	"github.com/MKhiriev/go-form-validation/models"
)

var testBuildInfo = models.NewAppBuildInfo("v0.1.0", "", "")

func TestNewApp_LocalModeStoresContacts(t *testing.T) {
	cfg := &config.ClientConfig{
		Client:  config.Client{Mode: config.ModeLocal},
		Storage: config.Storage{DB: config.DB{DSN: filepath.Join(t.TempDir(), "contacts.db")}},
	}
	ctx := context.Background()

	app, err := NewApp(ctx, cfg, testBuildInfo, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.closeFn() })

	saved, err := app.backend.Submit(ctx, models.Contact{Name: "alice", Telephone: "+1 555 0100"})
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
	assert.Equal(t, "ALICE", saved.Name)

	_, err = app.backend.Submit(ctx, models.Contact{Name: "bob", Telephone: "+1 555 0100"})
	assert.ErrorIs(t, err, service.ErrContactAlreadyExists)

	_, err = app.backend.Submit(ctx, models.Contact{Name: "b0b", Telephone: "12"})
	assert.ErrorIs(t, err, service.ErrInvalidContact)

	list, err := app.backend.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, saved.ID, list[0].ID)
}

func TestNewApp_RemoteMode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/version", r.URL.Path)
		_, _ = utils.WriteJSON(w, models.NewAppBuildInfo("v9", "", ""), http.StatusOK)
	}))
	defer srv.Close()

	cfg := &config.ClientConfig{
		Client:  config.Client{Mode: config.ModeRemote},
		Adapter: config.Adapter{BaseURL: srv.URL, RequestTimeout: time.Second},
	}

	app, err := NewApp(context.Background(), cfg, testBuildInfo, logger.Nop())
	require.NoError(t, err)

	_, ok := app.backend.(adapter.ServerAdapter)
	assert.True(t, ok)
	assert.NoError(t, app.closeFn())
}

func TestNewApp_RemoteModeServerDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	cfg := &config.ClientConfig{
		Client:  config.Client{Mode: config.ModeRemote},
		Adapter: config.Adapter{BaseURL: url, RequestTimeout: time.Second},
	}

	_, err := NewApp(context.Background(), cfg, testBuildInfo, logger.Nop())
	assert.NoError(t, err, "an unreachable server is only logged")
}

func TestNewApp_UnknownMode(t *testing.T) {
	cfg := &config.ClientConfig{Client: config.Client{Mode: "carrier-pigeon"}}

	_, err := NewApp(context.Background(), cfg, testBuildInfo, logger.Nop())
	assert.ErrorIs(t, err, ErrUnknownMode)
}
