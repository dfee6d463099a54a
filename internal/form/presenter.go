// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package form

// DisplayState is what the host UI should show next to a field.
// The zero value is the hidden state.
type DisplayState struct {
	Visible bool
	Message string
}

// Hidden is the display state of a field without a validation error.
var Hidden = DisplayState{}

// Present maps a validation outcome to a display state.
func Present(err error) DisplayState {
	if err == nil {
		return Hidden
	}
	return DisplayState{Visible: true, Message: err.Error()}
}

// DisplaySink receives the display state of one field after every edit.
type DisplaySink interface {
	Display(DisplayState)
}

// DisplaySinkFunc adapts an ordinary function to [DisplaySink].
type DisplaySinkFunc func(DisplayState)

func (f DisplaySinkFunc) Display(s DisplayState) {
	f(s)
}

// SubmitSink receives the aggregate validity of a form every time a field
// reports. Hosts use it to enable or disable the submit control.
type SubmitSink interface {
	SetSubmitEnabled(enabled bool)
}

// SubmitSinkFunc adapts an ordinary function to [SubmitSink].
type SubmitSinkFunc func(enabled bool)

func (f SubmitSinkFunc) SetSubmitEnabled(enabled bool) {
	f(enabled)
}
