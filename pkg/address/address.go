// Package address implements the validated peer address used to identify
// participants of the network: a leading '1' followed by a base-58 payload,
// 26 to 34 characters in total.
package address

import (
	"unicode/utf8"
)

const (
	// Test is the one address accepted without satisfying the format. It stands
	// in for an absent or placeholder identity.
	Test = "Test"

	// MinLength is the shortest accepted address, in bytes.
	MinLength = 26
	// MaxLength is the longest accepted address, in bytes.
	MaxLength = 34

	// Prefix is the required first character of every non-sentinel address.
	Prefix = '1'
)

// Address is an immutable, validated peer address. The zero value is not a
// valid address; obtain one through Parse or by decoding.
//
// Address is comparable: == and map keys compare the canonical string.
type Address struct {
	value string
}

// Parse validates raw and wraps it verbatim. No trimming or case folding is
// applied and only the first character is checked against the alphabet.
func Parse(raw string) (Address, error) {
	if raw == Test {
		return Address{value: raw}, nil
	}

	if len(raw) < MinLength || len(raw) > MaxLength {
		return Address{}, &LengthError{Length: len(raw)}
	}

	if r := firstChar(raw); r != Prefix {
		return Address{}, &StartCharError{Char: r}
	}

	return Address{value: raw}, nil
}

// MustParse is like Parse but panics if raw is not a valid address.
func MustParse(raw string) Address {
	a, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return a
}

// String returns the canonical string. It is not shortened; see Short.
func (a Address) String() string {
	return a.value
}

// Equal reports whether a and other have the same canonical string.
func (a Address) Equal(other Address) bool {
	return a.value == other.value
}

// IsTest reports whether a is the Test sentinel.
func (a Address) IsTest() bool {
	return a.value == Test
}

// IsZero reports whether a is the zero value, which no constructor returns
// without an error.
func (a Address) IsZero() bool {
	return a.value == ""
}

// firstChar returns the leading character of s. A byte that does not start
// valid UTF-8 is returned as is rather than as utf8.RuneError.
func firstChar(s string) rune {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size == 1 {
		return rune(s[0])
	}
	return r
}
