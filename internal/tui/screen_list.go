// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-form-validation/models"
)

const listPageSize = 20

// ContactListModel shows the most recently saved contacts. The list is
// fetched every time the page is opened and on r.
type ContactListModel struct {
	ctx    context.Context
	lister Lister

	items   []models.Contact
	idx     int
	loading bool
	spinner spinner.Model
	errMsg  string
}

func NewContactListModel(ctx context.Context, lister Lister) *ContactListModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return &ContactListModel{ctx: ctx, lister: lister, spinner: s}
}

func (m *ContactListModel) Init() tea.Cmd {
	m.loading = true
	m.errMsg = ""
	return tea.Batch(m.spinner.Tick, m.cmdLoad())
}

func (m *ContactListModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	lister := m.lister
	return func() tea.Msg {
		items, err := lister.List(ctx, listPageSize)
		return contactsLoadedMsg{items: items, err: err}
	}
}

func (m *ContactListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case contactsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.items = msg.items
		if m.idx >= len(m.items) {
			m.idx = max(len(m.items)-1, 0)
		}
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.up):
			if m.idx > 0 {
				m.idx--
			}
		case key.Matches(msg, keys.down):
			if m.idx < len(m.items)-1 {
				m.idx++
			}
		case key.Matches(msg, keys.reload):
			if !m.loading {
				return m, m.Init()
			}
		case key.Matches(msg, keys.esc):
			return m, func() tea.Msg { return NavigateTo{Page: pageForm} }
		}
	}

	return m, nil
}

func (m *ContactListModel) View() string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString(m.spinner.View())
		b.WriteString(" Loading...")
	case len(m.items) == 0:
		b.WriteString("No contacts yet")
	default:
		nameWidth := lipgloss.Width("Name")
		for _, c := range m.items {
			nameWidth = max(nameWidth, lipgloss.Width(fitText(c.Name, 32)))
		}

		fmt.Fprintf(&b, "  %-*s │ %-20s │ %s\n", nameWidth, "Name", "Telephone", "Saved")
		b.WriteString(strings.Repeat("─", nameWidth+3))
		b.WriteString("┼")
		b.WriteString(strings.Repeat("─", 22))
		b.WriteString("┼")
		b.WriteString(strings.Repeat("─", 17))
		b.WriteString("\n")
		for i, c := range m.items {
			cursor := " "
			if i == m.idx {
				cursor = ">"
			}
			saved := "-"
			if !c.CreatedAt.IsZero() {
				saved = c.CreatedAt.Local().Format("2006-01-02 15:04")
			}
			fmt.Fprintf(&b, "%s %-*s │ %-20s │ %s\n", cursor, nameWidth, fitText(c.Name, 32), fitText(c.Telephone, 20), saved)
		}
	}

	if m.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
	}

	return renderPage("CONTACTS", strings.TrimRight(b.String(), "\n"), "↑/↓: navigate │ r: reload │ esc: back to form")
}
