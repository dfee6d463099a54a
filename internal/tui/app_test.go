// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-form-validation/internal/logger"
	"github.com/MKhiriev/go-form-validation/models"
)

func newTestRoot() RootModel {
	t := New(nil, models.NewAppBuildInfo("v1.0.0", "2026-10-01", "abc"), logger.Nop())
	return t.newRootModel(context.Background())
}

func TestRootModel_StartsOnForm(t *testing.T) {
	r := newTestRoot()

	_, ok := r.current.(*ContactFormModel)
	assert.True(t, ok)
	assert.Contains(t, r.View(), "NEW CONTACT")
}

func TestRootModel_Quit(t *testing.T) {
	r := newTestRoot()

	updated, cmd := r.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)

	assert.True(t, updated.(RootModel).quitByUser)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestRootModel_BuildInfoWindow(t *testing.T) {
	r := newTestRoot()

	updated, _ := r.Update(tea.KeyMsg{Type: tea.KeyF1})
	r = updated.(RootModel)
	assert.True(t, r.showBuildInfo)
	assert.Contains(t, r.View(), "v1.0.0")
	assert.Contains(t, r.View(), "abc")

	// keys do not reach the page while the window is open
	updated, _ = r.Update(keyRunes("x"))
	r = updated.(RootModel)
	assert.Empty(t, r.current.(*ContactFormModel).fields[0].input.Value())

	updated, _ = r.Update(tea.KeyMsg{Type: tea.KeyEsc})
	r = updated.(RootModel)
	assert.False(t, r.showBuildInfo)
}

func TestRootModel_Navigate(t *testing.T) {
	r := newTestRoot()

	updated, cmd := r.Update(NavigateTo{Page: pageList})
	r = updated.(RootModel)
	_, ok := r.current.(*ContactListModel)
	assert.True(t, ok)
	assert.NotNil(t, cmd, "list page loads on open")

	updated, _ = r.Update(NavigateTo{Page: "missing"})
	_, ok = updated.(RootModel).current.(*ContactListModel)
	assert.True(t, ok, "unknown page is ignored")

	updated, cmd = r.Update(NavigateTo{Page: pageForm, Payload: contactsLoadedMsg{}})
	r = updated.(RootModel)
	_, ok = r.current.(*ContactFormModel)
	assert.True(t, ok)
	require.NotNil(t, cmd)
	assert.Equal(t, contactsLoadedMsg{}, cmd())
}

func TestRootModel_DelegatesToPage(t *testing.T) {
	r := newTestRoot()

	updated, _ := r.Update(keyRunes("a"))
	r = updated.(RootModel)

	assert.Equal(t, "a", r.current.(*ContactFormModel).fields[0].input.Value())
}

func TestRootModel_SubmitResultReachesFormFromList(t *testing.T) {
	r := newTestRoot()
	formPage := r.pages[pageForm].(*ContactFormModel)
	formPage.submitting = true

	updated, _ := r.Update(NavigateTo{Page: pageList})
	r = updated.(RootModel)

	updated, _ = r.Update(contactSubmittedMsg{contact: models.Contact{Name: "ALICE", Telephone: "1"}})
	r = updated.(RootModel)

	_, onList := r.current.(*ContactListModel)
	assert.True(t, onList)
	assert.False(t, formPage.submitting)
	require.NotNil(t, formPage.lastSaved)
	assert.Equal(t, "ALICE", formPage.lastSaved.Name)
}
