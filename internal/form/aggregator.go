// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package form

import (
	"maps"
	"sync"

	"github.com/MKhiriev/go-form-validation/internal/logger"
)

// Reporter receives the latest validity of a field. [*Aggregator] is the
// canonical implementation; controllers depend only on this interface.
type Reporter interface {
	Report(id FieldID, valid bool) bool
}

// Aggregator is a form-scoped registry mapping field identity to its latest
// validity. The aggregate is recomputed from the whole registry on every
// report rather than tracked incrementally.
//
// Aggregator is safe for concurrent use. Readers never observe a partially
// applied report, and the submit sink never receives an aggregate older than
// one it has already received.
type Aggregator struct {
	mu       sync.RWMutex
	registry map[FieldID]bool
	seq      uint64

	emitMu  sync.Mutex
	emitted uint64

	sink   SubmitSink
	logger *logger.Logger
}

// AggregatorOption configures an [Aggregator].
type AggregatorOption func(*Aggregator)

// WithSubmitSink sets the sink notified with the aggregate after every report.
func WithSubmitSink(sink SubmitSink) AggregatorOption {
	return func(a *Aggregator) {
		a.sink = sink
	}
}

// WithAggregatorLogger sets the logger used for debug tracing of reports.
func WithAggregatorLogger(l *logger.Logger) AggregatorOption {
	return func(a *Aggregator) {
		if l != nil {
			a.logger = l
		}
	}
}

// NewAggregator returns an empty aggregator. Its aggregate is true until the
// first field reports.
func NewAggregator(opts ...AggregatorOption) *Aggregator {
	a := &Aggregator{
		registry: make(map[FieldID]bool),
		logger:   logger.Nop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Report inserts or updates the validity of id, recomputes the aggregate,
// forwards it to the submit sink and returns it. Reporting an unchanged
// validity is not skipped.
func (a *Aggregator) Report(id FieldID, valid bool) bool {
	a.mu.Lock()
	a.registry[id] = valid
	aggregate := a.aggregateLocked()
	a.seq++
	seq := a.seq
	a.mu.Unlock()

	a.logger.Debug().
		Stringer("field_id", id).
		Bool("valid", valid).
		Bool("aggregate", aggregate).
		Msg("field validity reported")

	a.emit(seq, aggregate)
	return aggregate
}

// Aggregate returns the logical AND over the latest validity of every
// reported field, or true when no field has reported yet.
func (a *Aggregator) Aggregate() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.aggregateLocked()
}

// Len returns the number of fields that have reported.
func (a *Aggregator) Len() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.registry)
}

// Snapshot returns a copy of the registry.
func (a *Aggregator) Snapshot() map[FieldID]bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return maps.Clone(a.registry)
}

func (a *Aggregator) aggregateLocked() bool {
	for _, valid := range a.registry {
		if !valid {
			return false
		}
	}
	return true
}

func (a *Aggregator) emit(seq uint64, aggregate bool) {
	if a.sink == nil {
		return
	}

	a.emitMu.Lock()
	defer a.emitMu.Unlock()

	// a later report already reached the sink
	if seq <= a.emitted {
		return
	}
	a.emitted = seq
	a.sink.SetSubmitEnabled(aggregate)
}
