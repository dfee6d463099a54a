// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package form

import (
	"regexp"
	"strings"
)

// Validator maps raw field text to a validation outcome.
// A nil error is success; a non-nil error is a failure whose Error() is the
// user-facing reason. Implementations must be pure and safe for concurrent use.
type Validator interface {
	Validate(text string) error
}

// ValidatorFunc adapts an ordinary function to [Validator].
type ValidatorFunc func(text string) error

// Validate calls f(text).
func (f ValidatorFunc) Validate(text string) error {
	return f(text)
}

// Normalizer is implemented by validators whose field text is rewritten after
// every edit. Normalization never affects validity and must be idempotent.
type Normalizer interface {
	Normalize(text string) string
}

// Failure messages used by the built-in validators.
const (
	MsgNameHasDigits    = "A name can not contain numbers"
	MsgTelephoneInvalid = "Telephone number not valid"
)

var (
	digitRe      = regexp.MustCompile(`[0-9]`)
	onlyDigitsRe = regexp.MustCompile(`^[0-9]+$`)
	telephoneRe  = regexp.MustCompile(`^\+?([0-9]+[\s\v\x{85}\p{Z}]?)+$`)
)

// Required fails with [ErrEmptyField] on empty text.
func Required() Validator {
	return ValidatorFunc(func(text string) error {
		if text == "" {
			return ErrEmptyField
		}
		return nil
	})
}

// Reject fails with reason when re matches anywhere in the text.
func Reject(re *regexp.Regexp, reason string) Validator {
	return ValidatorFunc(func(text string) error {
		if re.MatchString(text) {
			return &FormatError{Reason: reason}
		}
		return nil
	})
}

// Match fails with reason unless re matches the text.
func Match(re *regexp.Regexp, reason string) Validator {
	return ValidatorFunc(func(text string) error {
		if !re.MatchString(text) {
			return &FormatError{Reason: reason}
		}
		return nil
	})
}

// Chain runs validators in order and returns the first failure.
func Chain(validators ...Validator) Validator {
	return chain(validators)
}

type chain []Validator

func (c chain) Validate(text string) error {
	for _, v := range c {
		if err := v.Validate(text); err != nil {
			return err
		}
	}
	return nil
}

// NameValidator accepts any non-empty text without decimal digits and
// normalizes accepted text to upper case.
type NameValidator struct {
	rules Validator
}

// Name returns the validator for person names.
func Name() *NameValidator {
	return &NameValidator{
		rules: Chain(Required(), Reject(digitRe, MsgNameHasDigits)),
	}
}

func (v *NameValidator) Validate(text string) error {
	return v.rules.Validate(text)
}

func (v *NameValidator) Normalize(text string) string {
	return strings.ToUpper(text)
}

// Telephone returns the validator for telephone numbers: an optional leading
// '+' followed by groups of digits separated by single whitespace characters.
// Any Unicode white space counts as a separator, so a no-break space pasted
// from a document is accepted.
func Telephone() Validator {
	return Chain(Required(), Match(telephoneRe, MsgTelephoneInvalid))
}

// StrictTelephone accepts digits only, without '+' or separators.
func StrictTelephone() Validator {
	return Chain(Required(), Match(onlyDigitsRe, MsgTelephoneInvalid))
}
