package address

import (
	"fmt"

	"github.com/agenthands/peeraddr/pkg/core"
)

// LengthError reports an address whose byte length is outside
// [MinLength, MaxLength].
type LengthError struct {
	Length int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("%v: expected between %d and %d characters, found %d",
		core.ErrInvalidLength, MinLength, MaxLength, e.Length)
}

func (e *LengthError) Is(target error) bool {
	return target == core.ErrInvalidLength || target == core.ErrInvalidInput
}

// StartCharError reports an address that does not begin with Prefix.
type StartCharError struct {
	Char rune
}

func (e *StartCharError) Error() string {
	return fmt.Sprintf("%v: expected %q, found %q", core.ErrInvalidStartingCharacter, Prefix, e.Char)
}

func (e *StartCharError) Is(target error) bool {
	return target == core.ErrInvalidStartingCharacter || target == core.ErrInvalidInput
}

// CodecError wraps a validation failure hit while decoding an address from an
// interchange format.
type CodecError struct {
	Format string // "text" or "cbor"
	Err    error
}

func (e *CodecError) Error() string {
	return fmt.Sprintf("peeraddr: decode %s address: %v", e.Format, e.Err)
}

func (e *CodecError) Unwrap() error {
	return e.Err
}
