// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	statusStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)

	validDotStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	invalidDotStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	disabledStyle   = lipgloss.NewStyle().Faint(true)
	enabledStyle    = lipgloss.NewStyle().Bold(true).Reverse(true)
)

const validityDot = "●"

// renderValidityDot draws the per-field indicator: green when valid, red
// otherwise.
func renderValidityDot(valid bool) string {
	if valid {
		return validDotStyle.Render(validityDot)
	}
	return invalidDotStyle.Render(validityDot)
}
