package address

import (
	"github.com/agenthands/peeraddr/pkg/core"
	"github.com/minio/sha256-simd"
)

// Digest returns the SHA-256 of the canonical string.
func (a Address) Digest() core.Digest {
	return core.Digest(sha256.Sum256([]byte(a.value)))
}

// LegacyDigest returns the canonical string unchanged.
//
// The accessor it replaces was named after SHA-1 but never hashed anything.
// Callers may depend on the pass-through, so it must stay a no-op.
func (a Address) LegacyDigest() string {
	return a.value
}
