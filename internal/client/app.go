// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-form-validation/internal/adapter"
	"github.com/MKhiriev/go-form-validation/internal/config"
	"github.com/MKhiriev/go-form-validation/internal/logger"
	"github.com/MKhiriev/go-form-validation/internal/service"
	"github.com/MKhiriev/go-form-validation/internal/store"
	"github.com/MKhiriev/go-form-validation/internal/tui"
	"github.com/MKhiriev/go-form-validation/internal/utils"
	"github.com/MKhiriev/go-form-validation/models"
)

type App struct {
	mode      string
	backend   tui.Backend
	buildInfo models.AppBuildInfo
	closeFn   func() error

	logger *logger.Logger
}

// NewApp prepares the backend for cfg.Client.Mode. In local mode the SQLite
// database is opened and migrated; in remote mode the server is asked for
// its version so an unreachable server shows up in the log early.
func NewApp(ctx context.Context, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	app := &App{
		mode:      cfg.Client.Mode,
		buildInfo: buildInfo,
		closeFn:   func() error { return nil },
		logger:    log,
	}

	switch cfg.Client.Mode {
	case config.ModeLocal:
		db, err := store.NewConnect(ctx, cfg.Storage.DB, log)
		if err != nil {
			return nil, fmt.Errorf("open local storage: %w", err)
		}
		if err = db.Migrate(); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migrate local storage: %w", err)
		}

		repos := store.NewRepositories(db, log)
		contacts := service.NewContactService(repos.ContactRepository, utils.NewUUIDGenerator(), log)
		app.backend = service.NewContactValidationService().Wrap(contacts)
		app.closeFn = db.Close

	case config.ModeRemote:
		serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
		if err != nil {
			return nil, fmt.Errorf("create server adapter: %w", err)
		}
		app.backend = serverAdapter

		if info, verr := serverAdapter.Version(ctx); verr != nil {
			log.Warn().Err(verr).Str("func", "client.NewApp").Msg("contact server is not reachable")
		} else {
			log.Info().Str("server_version", info.BuildVersion()).Msg("connected to contact server")
		}

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, cfg.Client.Mode)
	}

	log.Info().Str("mode", app.mode).Msg("client app created")
	return app, nil
}

// Run shows the contact form and releases the backend on exit. Quitting
// from the form is not an error.
func (a *App) Run(ctx context.Context) error {
	defer func() {
		if err := a.closeFn(); err != nil {
			a.logger.Err(err).Msg("error closing local storage")
		}
	}()

	err := tui.New(a.backend, a.buildInfo, a.logger).Run(ctx)
	if errors.Is(err, tui.ErrUserQuit) {
		a.logger.Info().Msg("client closed by user")
		return nil
	}
	return err
}
