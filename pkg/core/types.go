package core

import (
	"encoding/hex"

	"github.com/ipfs/go-cid"
)

// DigestSize is the length of an address content digest.
const DigestSize = 32

// Digest is the SHA-256 of an address's canonical string.
type Digest [DigestSize]byte

func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// CID represents binary CID bytes.
type CID struct {
	Bytes []byte
}

// String renders the CID in its default multibase form, or "" if the bytes do not parse.
func (c CID) String() string {
	id, err := cid.Cast(c.Bytes)
	if err != nil {
		return ""
	}
	return id.String()
}
