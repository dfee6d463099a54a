// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal host of the contact form.
//
// Each text input is bound to a form.Controller: keystrokes become edit
// events, the controller's display state is drawn under the input and the
// form's aggregate validity decides whether enter submits.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-form-validation/internal/logger"
	"github.com/MKhiriev/go-form-validation/models"
)

type TUI struct {
	backend   Backend
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(backend Backend, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{backend: backend, buildInfo: buildInfo, logger: logger}
}

// Run shows the contact form until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	root := t.newRootModel(ctx)

	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}

func (t *TUI) newRootModel(ctx context.Context) RootModel {
	pages := map[string]tea.Model{
		pageForm: NewContactFormModel(ctx, t.backend, t.logger),
		pageList: NewContactListModel(ctx, t.backend),
	}
	return NewRootModel(pages, pageForm, t.buildInfo)
}
