// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package form

import (
	"sync"

	"github.com/MKhiriev/go-form-validation/internal/logger"
)

// Controller binds one field to its [Validator]. It is the only writer of the
// field's [FieldValue].
type Controller struct {
	id        FieldID
	validator Validator
	reporter  Reporter
	display   DisplaySink
	logger    *logger.Logger

	mu      sync.Mutex
	value   FieldValue
	current DisplayState
	seq     uint64

	// notifyMu orders sink and reporter calls; it is never held together
	// with mu, so sinks may read the controller back.
	notifyMu sync.Mutex
	notified uint64
}

// ControllerOption configures a [Controller].
type ControllerOption func(*Controller)

// WithDisplay sets the sink that receives the field's display state.
func WithDisplay(sink DisplaySink) ControllerOption {
	return func(c *Controller) {
		c.display = sink
	}
}

// WithControllerLogger sets the logger used for debug tracing of edits.
func WithControllerLogger(l *logger.Logger) ControllerOption {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithInitialText sets the text validated and reported on construction.
func WithInitialText(text string) ControllerOption {
	return func(c *Controller) {
		c.value.Text = text
	}
}

// NewController creates a controller for field id and immediately validates
// its initial text (empty unless [WithInitialText] is used), reporting the
// result to reporter. A fresh empty field is therefore reported invalid.
//
// The initial validation reaches the reporter but not the display sink, so
// an untouched field shows no error. No lock is held while reporting.
func NewController(id FieldID, validator Validator, reporter Reporter, opts ...ControllerOption) *Controller {
	c := &Controller{
		id:        id,
		validator: validator,
		reporter:  reporter,
		logger:    logger.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	err := c.validator.Validate(c.value.Text)
	c.value = FieldValue{Text: c.normalize(c.value.Text), Valid: err == nil}
	c.reporter.Report(c.id, c.value.Valid)

	return c
}

// Edit handles one edit event carrying the field's new raw text. In order it
// validates the text, stores the (normalized) text and its validity, pushes
// the display state to the display sink and reports the validity. It returns
// the validation outcome.
//
// The stored state is updated atomically; the sinks and the reporter are
// called after the lock is released. When edits race, a notification older
// than one already delivered is dropped, so the sinks and the reporter end on
// the latest edit. Sinks may read the controller and its form but must not
// edit this field.
func (c *Controller) Edit(text string) error {
	c.mu.Lock()
	err := c.validator.Validate(text)
	c.value = FieldValue{Text: c.normalize(text), Valid: err == nil}
	c.current = Present(err)
	c.seq++
	seq, current, valid := c.seq, c.current, c.value.Valid
	c.mu.Unlock()

	c.logger.Debug().
		Stringer("field_id", c.id).
		Bool("valid", valid).
		Str("kind", Kind(err).String()).
		Msg("field edited")

	c.notify(seq, current, valid)
	return err
}

func (c *Controller) notify(seq uint64, current DisplayState, valid bool) {
	c.notifyMu.Lock()
	defer c.notifyMu.Unlock()

	// a later edit already notified
	if seq <= c.notified {
		return
	}
	c.notified = seq

	if c.display != nil {
		c.display.Display(current)
	}
	c.reporter.Report(c.id, valid)
}

// ID returns the field identity.
func (c *Controller) ID() FieldID {
	return c.id
}

// Value returns the current text and validity.
func (c *Controller) Value() FieldValue {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

// Display returns the display state produced by the most recent edit.
func (c *Controller) Display() DisplayState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

func (c *Controller) normalize(text string) string {
	if n, ok := c.validator.(Normalizer); ok {
		return n.Normalize(text)
	}
	return text
}
