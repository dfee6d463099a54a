// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-form-validation/internal/form"
	"github.com/MKhiriev/go-form-validation/internal/logger"
	"github.com/MKhiriev/go-form-validation/internal/validators"
	"github.com/MKhiriev/go-form-validation/models"
)

const msgFixFields = "Fill in every field correctly before submitting"

// contactField is one row of the form: the text input, its controller and
// the last display state the controller pushed.
type contactField struct {
	name    string
	label   string
	input   textinput.Model
	ctrl    *form.Controller
	display form.DisplayState
}

// ContactFormModel is the Bubble Tea model of the contact form.
//
// Every change of an input's text is sent to that field's controller. The
// controller's display sink stores the error message drawn under the input,
// and the form's submit sink stores canSubmit, which gates enter.
type ContactFormModel struct {
	ctx       context.Context
	submitter Submitter
	logger    *logger.Logger

	form   *form.Form
	fields []*contactField
	focus  int

	canSubmit  bool
	submitting bool
	lastSaved  *models.Contact
	status     string
	errMsg     string

	copyToClipboard func(string) error
}

// NewContactFormModel creates the form with an empty name and telephone.
// Both fields start invalid, so submitting is disabled until both are
// filled in correctly.
func NewContactFormModel(ctx context.Context, submitter Submitter, log *logger.Logger) *ContactFormModel {
	if log == nil {
		log = logger.Nop()
	}

	m := &ContactFormModel{
		ctx:             ctx,
		submitter:       submitter,
		logger:          log,
		copyToClipboard: clipboard.WriteAll,
	}

	m.fields = []*contactField{
		{name: validators.FieldName, label: "Name", input: newTextInput("John Smith", 64)},
		{name: validators.FieldTelephone, label: "Telephone", input: newTextInput("+1 555 0100", 32)},
	}
	m.resetForm()

	return m
}

func newTextInput(placeholder string, limit int) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = limit
	in.Width = 40
	in.Prompt = ""
	return in
}

// resetForm builds a fresh form with new controllers and clears the inputs.
func (m *ContactFormModel) resetForm() {
	fieldOpts := make(map[string][]form.ControllerOption, len(m.fields))
	for _, f := range m.fields {
		f.display = form.DisplayState{}
		f.input.SetValue("")
		f.input.Blur()

		field := f
		fieldOpts[f.name] = []form.ControllerOption{
			form.WithDisplay(form.DisplaySinkFunc(func(s form.DisplayState) {
				field.display = s
			})),
			form.WithControllerLogger(m.logger),
		}
	}

	m.form = validators.NewContactForm(fieldOpts,
		form.WithFormSubmitSink(form.SubmitSinkFunc(func(enabled bool) {
			m.canSubmit = enabled
		})),
		form.WithFormLogger(m.logger),
	)

	for _, f := range m.fields {
		f.ctrl, _ = m.form.Field(f.name)
	}

	m.focus = 0
	m.fields[m.focus].input.Focus()
}

// Init implements [tea.Model]. Starts the cursor-blink animation.
func (m *ContactFormModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - contactSubmittedMsg: shows the saved contact and resets the form, or
//     shows the error.
//   - tab / shift+tab / up / down: move focus between the inputs.
//   - enter: submits when the form is valid.
//   - ctrl+y: copies the last saved contact.
//   - ctrl+l: opens the contact list.
//
// Any other key goes to the focused input; if it changes the text the new
// text is sent to the field's controller.
func (m *ContactFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(contactSubmittedMsg); ok {
		return m.handleSubmitted(result)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.next):
			m.moveFocus(1)
			return m, nil
		case key.Matches(keyMsg, keys.prev):
			m.moveFocus(-1)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			return m, m.submit()
		case key.Matches(keyMsg, keys.copy):
			m.copyLastSaved()
			return m, nil
		case key.Matches(keyMsg, keys.list):
			return m, func() tea.Msg { return NavigateTo{Page: pageList} }
		}
	}

	field := m.fields[m.focus]
	before := field.input.Value()

	var cmd tea.Cmd
	field.input, cmd = field.input.Update(msg)

	if after := field.input.Value(); after != before {
		_ = field.ctrl.Edit(after)
		m.errMsg = ""
	}

	return m, cmd
}

func (m *ContactFormModel) moveFocus(delta int) {
	m.fields[m.focus].input.Blur()
	m.focus = (m.focus + delta + len(m.fields)) % len(m.fields)
	m.fields[m.focus].input.Focus()
}

func (m *ContactFormModel) submit() tea.Cmd {
	if m.submitting {
		return nil
	}
	if !m.canSubmit {
		m.errMsg = msgFixFields
		return nil
	}

	values := m.form.Values()
	contact := models.Contact{
		Name:      values[validators.FieldName],
		Telephone: values[validators.FieldTelephone],
	}

	m.errMsg = ""
	m.status = ""
	m.submitting = true

	ctx := m.ctx
	submitter := m.submitter
	return func() tea.Msg {
		saved, err := submitter.Submit(ctx, contact)
		return contactSubmittedMsg{contact: saved, err: err}
	}
}

func (m *ContactFormModel) handleSubmitted(result contactSubmittedMsg) (tea.Model, tea.Cmd) {
	m.submitting = false
	if result.err != nil {
		m.logger.Err(result.err).Str("func", "*ContactFormModel.handleSubmitted").Msg("contact not saved")
		m.errMsg = humanizeError(result.err)
		return m, nil
	}

	saved := result.contact
	m.lastSaved = &saved
	m.status = "Saved " + formatContact(saved)
	m.resetForm()
	return m, nil
}

func (m *ContactFormModel) copyLastSaved() {
	if m.lastSaved == nil {
		m.status = "Nothing to copy"
		return
	}
	if err := m.copyToClipboard(formatContact(*m.lastSaved)); err != nil {
		m.errMsg = fmt.Sprintf("Copy failed: %v", err)
		return
	}
	m.status = "Copied to clipboard"
}

func formatContact(c models.Contact) string {
	return c.Name + " <" + c.Telephone + ">"
}

// CanSubmit reports the current aggregate validity of the form.
func (m *ContactFormModel) CanSubmit() bool {
	return m.canSubmit
}

// View implements [tea.Model]. Each input is drawn with its validity dot
// and, after the first edit, its error message underneath.
func (m *ContactFormModel) View() string {
	var b strings.Builder

	for i, f := range m.fields {
		cursor := " "
		if i == m.focus {
			cursor = ">"
		}
		fmt.Fprintf(&b, "%s %-10s %s [%s]\n", cursor, f.label, renderValidityDot(f.ctrl.Value().Valid), f.input.View())
		if f.display.Visible {
			b.WriteString("             ")
			b.WriteString(errorStyle.Render(f.display.Message))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	switch {
	case m.submitting:
		b.WriteString(disabledStyle.Render("[ Submitting... ]"))
	case m.canSubmit:
		b.WriteString(enabledStyle.Render("[ Submit ]"))
	default:
		b.WriteString(disabledStyle.Render("[ Submit ]"))
	}
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("NEW CONTACT", strings.TrimRight(b.String(), "\n"),
		"tab: next field │ enter: submit │ ctrl+y: copy last │ ctrl+l: contacts")
}
