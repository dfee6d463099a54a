// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package form

import (
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Name
// ---------------------------------------------------------------------------

func TestName_Validate(t *testing.T) {
	v := Name()

	tests := []struct {
		name     string
		input    string
		wantKind FailureKind
		wantMsg  string
	}{
		{name: "empty", input: "", wantKind: KindEmpty, wantMsg: "Field can't be empty"},
		{name: "letters", input: "Alice", wantKind: KindNone},
		{name: "with space", input: "Mary Ann", wantKind: KindNone},
		{name: "unicode letters", input: "Jürgen", wantKind: KindNone},
		{name: "punctuation", input: "O'Neil-Smith", wantKind: KindNone},
		{name: "single digit", input: "7", wantKind: KindInvalidFormat, wantMsg: MsgNameHasDigits},
		{name: "digit inside", input: "Al1ce", wantKind: KindInvalidFormat, wantMsg: MsgNameHasDigits},
		{name: "trailing digit", input: "Bob2", wantKind: KindInvalidFormat, wantMsg: MsgNameHasDigits},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.input)
			assert.Equal(t, tt.wantKind, Kind(err))
			if tt.wantKind == KindNone {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}

// TestName_EmptyTakesPrecedence verifies that the empty check runs before the
// digit check.
func TestName_EmptyTakesPrecedence(t *testing.T) {
	assert.ErrorIs(t, Name().Validate(""), ErrEmptyField)
}

// TestName_DigitsAlwaysRejected verifies that any text containing a decimal
// digit fails with a format error.
func TestName_DigitsAlwaysRejected(t *testing.T) {
	v := Name()
	for _, prefix := range []string{"", "a", "Zoë ", "--"} {
		for d := '0'; d <= '9'; d++ {
			input := prefix + string(d) + "x"
			err := v.Validate(input)

			var fe *FormatError
			require.ErrorAs(t, err, &fe, "input %q", input)
			assert.Equal(t, MsgNameHasDigits, fe.Reason)
		}
	}
}

func TestName_Normalize(t *testing.T) {
	v := Name()

	inputs := []string{"", "alice", "Mary Ann", "jürgen", "ALREADY", "bob2", "straße"}
	for _, in := range inputs {
		once := v.Normalize(in)
		assert.Equal(t, once, v.Normalize(once), "normalize must be idempotent for %q", in)
		assert.Equal(t, strings.ToUpper(in), once)
	}
}

// TestName_NormalizeDoesNotAffectValidity verifies that normalized text has the
// same outcome as the original text.
func TestName_NormalizeDoesNotAffectValidity(t *testing.T) {
	v := Name()
	for _, in := range []string{"", "alice", "bob2"} {
		assert.Equal(t, Kind(v.Validate(in)), Kind(v.Validate(v.Normalize(in))))
	}
}

// ---------------------------------------------------------------------------
// Telephone
// ---------------------------------------------------------------------------

func TestTelephone_Validate(t *testing.T) {
	v := Telephone()

	tests := []struct {
		name     string
		input    string
		wantKind FailureKind
	}{
		{name: "international with spaces", input: "+44 7911 123456", wantKind: KindNone},
		{name: "plain digits", input: "07911123456", wantKind: KindNone},
		{name: "single digit", input: "5", wantKind: KindNone},
		{name: "plus and digits", input: "+123", wantKind: KindNone},
		{name: "trailing space", input: "123 ", wantKind: KindNone},
		{name: "no-break space", input: "+44\u00a07911 123456", wantKind: KindNone},
		{name: "ideographic space", input: "+81\u30003 1234 5678", wantKind: KindNone},
		{name: "tab separator", input: "123\t456", wantKind: KindNone},
		{name: "no-break and plain space", input: "12\u00a0 34", wantKind: KindInvalidFormat},
		{name: "empty", input: "", wantKind: KindEmpty},
		{name: "letters", input: "abc", wantKind: KindInvalidFormat},
		{name: "double plus", input: "++123", wantKind: KindInvalidFormat},
		{name: "plus only", input: "+", wantKind: KindInvalidFormat},
		{name: "double space", input: "12  34", wantKind: KindInvalidFormat},
		{name: "leading space", input: " 123", wantKind: KindInvalidFormat},
		{name: "dash separator", input: "123-456", wantKind: KindInvalidFormat},
		{name: "plus in middle", input: "12+34", wantKind: KindInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.input)
			assert.Equal(t, tt.wantKind, Kind(err), "input %q", tt.input)
			if tt.wantKind == KindInvalidFormat {
				assert.Equal(t, MsgTelephoneInvalid, err.Error())
			}
		})
	}
}

// TestTelephone_MatchesPatternImpliesSuccess checks a spread of inputs against
// the telephone pattern directly.
func TestTelephone_MatchesPatternImpliesSuccess(t *testing.T) {
	v := Telephone()
	inputs := []string{"1", "+1", "1 2 3", "+7 999 123 45 67", "0000", "+44 20 7946 0958"}
	for _, in := range inputs {
		require.True(t, telephoneRe.MatchString(in))
		assert.NoError(t, v.Validate(in), "input %q", in)
	}
}

func TestStrictTelephone_Validate(t *testing.T) {
	v := StrictTelephone()

	assert.NoError(t, v.Validate("0123456789"))
	assert.ErrorIs(t, v.Validate(""), ErrEmptyField)
	assert.Equal(t, KindInvalidFormat, Kind(v.Validate("+44 7911")))
	assert.Equal(t, KindInvalidFormat, Kind(v.Validate("12 34")))
}

// TestTelephone_NotNormalizer verifies that telephone text is stored as typed.
func TestTelephone_NotNormalizer(t *testing.T) {
	_, ok := Telephone().(Normalizer)
	assert.False(t, ok)
}

// ---------------------------------------------------------------------------
// Building blocks
// ---------------------------------------------------------------------------

func TestChain_FirstFailureWins(t *testing.T) {
	first := errors.New("first")
	second := errors.New("second")

	v := Chain(
		ValidatorFunc(func(string) error { return nil }),
		ValidatorFunc(func(string) error { return first }),
		ValidatorFunc(func(string) error { return second }),
	)

	assert.ErrorIs(t, v.Validate("x"), first)
}

func TestChain_Empty(t *testing.T) {
	assert.NoError(t, Chain().Validate("anything"))
}

func TestRejectAndMatch(t *testing.T) {
	vowel := regexp.MustCompile(`[aeiou]`)

	reject := Reject(vowel, "no vowels")
	assert.NoError(t, reject.Validate("xyz"))
	assert.EqualError(t, reject.Validate("abc"), "no vowels")

	match := Match(vowel, "needs a vowel")
	assert.NoError(t, match.Validate("abc"))
	assert.EqualError(t, match.Validate("xyz"), "needs a vowel")
}

func TestKind(t *testing.T) {
	assert.Equal(t, KindNone, Kind(nil))
	assert.Equal(t, KindEmpty, Kind(ErrEmptyField))
	assert.Equal(t, KindInvalidFormat, Kind(&FormatError{Reason: "bad"}))
	assert.Equal(t, KindInvalidFormat, Kind(errors.New("custom")))

	assert.Equal(t, "none", KindNone.String())
	assert.Equal(t, "empty", KindEmpty.String())
	assert.Equal(t, "invalid_format", KindInvalidFormat.String())
	assert.Equal(t, "unknown", FailureKind(42).String())
}
