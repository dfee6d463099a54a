// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package form

import (
	"fmt"
	"sync"

	"github.com/MKhiriev/go-form-validation/internal/logger"
)

// Form groups named fields around one [Aggregator]. Each form owns its
// registry; two forms never see each other's fields.
type Form struct {
	agg    *Aggregator
	logger *logger.Logger

	mu      sync.RWMutex
	names   []string
	fields  map[string]*Controller
	pending map[string]struct{}
}

type formOptions struct {
	sink   SubmitSink
	logger *logger.Logger
}

// FormOption configures a [Form].
type FormOption func(*formOptions)

// WithFormSubmitSink sets the sink that receives the form's aggregate validity.
func WithFormSubmitSink(sink SubmitSink) FormOption {
	return func(o *formOptions) {
		o.sink = sink
	}
}

// WithFormLogger sets the logger shared by the form's aggregator and fields.
func WithFormLogger(l *logger.Logger) FormOption {
	return func(o *formOptions) {
		o.logger = l
	}
}

// NewForm creates a form without fields.
func NewForm(opts ...FormOption) *Form {
	o := formOptions{logger: logger.Nop()}
	for _, opt := range opts {
		opt(&o)
	}

	return &Form{
		agg:     NewAggregator(WithSubmitSink(o.sink), WithAggregatorLogger(o.logger)),
		logger:  o.logger,
		fields:  make(map[string]*Controller),
		pending: make(map[string]struct{}),
	}
}

// AddField registers a field under name with a fresh [FieldID]. The field
// reports its initial validity immediately, see [NewController]. The field
// becomes visible through [Form.Field] once AddField returns.
func (f *Form) AddField(name string, v Validator, opts ...ControllerOption) (*Controller, error) {
	f.mu.Lock()
	_, exists := f.fields[name]
	_, reserved := f.pending[name]
	if exists || reserved {
		f.mu.Unlock()
		return nil, fmt.Errorf("%w: %s", ErrDuplicateField, name)
	}
	f.pending[name] = struct{}{}
	f.mu.Unlock()

	// the initial report reaches the submit sink; f.mu must not be held
	opts = append([]ControllerOption{WithControllerLogger(f.logger)}, opts...)
	c := NewController(NewFieldID(), v, f.agg, opts...)

	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.pending, name)
	f.names = append(f.names, name)
	f.fields[name] = c
	return c, nil
}

// Field returns the controller registered under name.
func (f *Form) Field(name string) (*Controller, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	c, ok := f.fields[name]
	return c, ok
}

// Edit routes an edit event to the named field and returns its validation
// outcome, or an error wrapping [ErrUnknownField].
func (f *Form) Edit(name, text string) error {
	c, ok := f.Field(name)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownField, name)
	}
	return c.Edit(text)
}

// Valid reports whether every field of the form is currently valid.
func (f *Form) Valid() bool {
	return f.agg.Aggregate()
}

// Aggregator returns the form's aggregator.
func (f *Form) Aggregator() *Aggregator {
	return f.agg
}

// Names returns field names in the order they were added.
func (f *Form) Names() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return append([]string(nil), f.names...)
}

// Values returns the current (normalized) text of every field.
func (f *Form) Values() map[string]string {
	f.mu.RLock()
	defer f.mu.RUnlock()

	values := make(map[string]string, len(f.fields))
	for name, c := range f.fields {
		values[name] = c.Value().Text
	}
	return values
}

// Errors returns the visible error message of every field that has one.
// Fields that were never edited have no visible error.
func (f *Form) Errors() map[string]string {
	f.mu.RLock()
	defer f.mu.RUnlock()

	errs := make(map[string]string)
	for name, c := range f.fields {
		if d := c.Display(); d.Visible {
			errs[name] = d.Message
		}
	}
	return errs
}
