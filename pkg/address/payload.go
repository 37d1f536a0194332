package address

import (
	"fmt"

	"github.com/agenthands/peeraddr/pkg/core"
	"github.com/mr-tron/base58"
)

// Payload base58-decodes the address with the Bitcoin alphabet. It is not part
// of validation: Parse accepts addresses this rejects.
func (a Address) Payload() ([]byte, error) {
	if a.value == Test || a.value == "" {
		return nil, core.ErrNoPayload
	}
	b, err := base58.Decode(a.value)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrInvalidInput, err)
	}
	return b, nil
}
