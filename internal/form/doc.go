// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package form implements per-field input validation and form-wide validity
// aggregation independent of any particular UI toolkit.
//
// Core concepts:
//   - Validator: pure function from raw text to a validation outcome
//     (nil error for success, [ErrEmptyField] or [*FormatError] otherwise).
//   - Controller: binds one field to a Validator; on every edit it
//     re-validates, updates the [FieldValue], refreshes the field's
//     [DisplayState] and reports the new validity to a [Reporter].
//   - Aggregator: form-scoped registry of field validity. Its aggregate is
//     the logical AND of the latest validity of every reported field and
//     gates the submit action.
//   - Form: owns one Aggregator and a set of named controllers.
//
// Usage patterns:
//  1. Build a [Form] (or an [Aggregator] directly) per form instance.
//  2. Add one field per input, choosing its Validator at construction time.
//  3. Feed every edit event into [Form.Edit] or [Controller.Edit] and render
//     the DisplayState and the aggregate flag wherever the host UI needs them.
//
// A form's registry is never shared with another form.
package form
