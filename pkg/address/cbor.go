package address

import (
	"fmt"

	"github.com/agenthands/peeraddr/pkg/core"
	"github.com/fxamacker/cbor/v2"
)

const cborMajorTextString = 3

var (
	_ cbor.Marshaler   = Address{}
	_ cbor.Unmarshaler = (*Address)(nil)
)

// Deterministic encoding, same as every other CBOR the module produces.
var cborEncMode = func() cbor.EncMode {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	return em
}()

// MarshalCBOR encodes the address as a CBOR text string.
func (a Address) MarshalCBOR() ([]byte, error) {
	return cborEncMode.Marshal(a.value)
}

// UnmarshalCBOR accepts only a CBOR text string and validates it like
// UnmarshalText.
func (a *Address) UnmarshalCBOR(data []byte) error {
	if len(data) == 0 || data[0]>>5 != cborMajorTextString {
		return &CodecError{Format: "cbor", Err: fmt.Errorf("%w: expected text string", core.ErrInvalidInput)}
	}

	var s string
	if err := cbor.Unmarshal(data, &s); err != nil {
		return &CodecError{Format: "cbor", Err: fmt.Errorf("%w: %v", core.ErrInvalidInput, err)}
	}

	parsed, err := decodeString("cbor", s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
