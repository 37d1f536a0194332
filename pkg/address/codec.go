package address

import (
	"encoding"
	"strings"
)

var (
	_ encoding.TextMarshaler   = Address{}
	_ encoding.TextUnmarshaler = (*Address)(nil)
)

// MarshalText emits the canonical string. encoding/json renders it as a JSON
// string.
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.value), nil
}

// UnmarshalText validates text before accepting it. The Test sentinel is not
// accepted on this path.
func (a *Address) UnmarshalText(text []byte) error {
	parsed, err := decodeString("text", string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// decodeString applies the interchange format checks and then Parse. The
// checks mirror Parse but are kept separate so inbound data can never reach
// the sentinel shortcut.
func decodeString(format, s string) (Address, error) {
	if len(s) < MinLength || len(s) > MaxLength {
		return Address{}, &CodecError{Format: format, Err: &LengthError{Length: len(s)}}
	}
	if !strings.HasPrefix(s, string(Prefix)) {
		return Address{}, &CodecError{Format: format, Err: &StartCharError{Char: firstChar(s)}}
	}

	a, err := Parse(s)
	if err != nil {
		return Address{}, &CodecError{Format: format, Err: err}
	}
	return a, nil
}
