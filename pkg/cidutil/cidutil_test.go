package cidutil

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/agenthands/peeraddr/internal/testkit"
	"github.com/agenthands/peeraddr/pkg/address"
	"github.com/agenthands/peeraddr/pkg/core"
	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"
)

const hello = "1HeLLo4uzjaLetFx6NH3PMwFP3qbRbTf3D"

func mustBuilder(t testing.TB, version int) Builder {
	t.Helper()
	b, err := NewBuilder(core.DigestConfig{CIDVersion: version})
	if err != nil {
		t.Fatalf("NewBuilder(%d) failed: %v", version, err)
	}
	return b
}

func TestCIDBuilder(t *testing.T) {
	builder := mustBuilder(t, 1)
	addr := address.MustParse(hello)

	t.Run("AddressCID", func(t *testing.T) {
		c, err := builder.AddressCID(addr)
		if err != nil {
			t.Fatalf("AddressCID failed: %v", err)
		}
		if len(c.Bytes) == 0 {
			t.Fatal("expected non-empty CID bytes")
		}

		if err := builder.Verify(c, addr); err != nil {
			t.Errorf("Verify failed for matching address: %v", err)
		}

		other := address.MustParse("1AbCdEfGhJkMnPqRsTuVwXyZ23456789")
		err = builder.Verify(c, other)
		if !errors.Is(err, core.ErrCorrupt) {
			t.Errorf("expected ErrCorrupt for different address, got %v", err)
		}
	})

	t.Run("DigestMatchesAddressDigest", func(t *testing.T) {
		c, err := builder.AddressCID(addr)
		if err != nil {
			t.Fatal(err)
		}
		id, err := cid.Cast(c.Bytes)
		if err != nil {
			t.Fatal(err)
		}
		if id.Version() != 1 || id.Type() != cid.Raw {
			t.Errorf("expected CIDv1 raw, got v%d codec %x", id.Version(), id.Type())
		}

		dec, err := multihash.Decode(id.Hash())
		if err != nil {
			t.Fatal(err)
		}
		want := addr.Digest()
		if dec.Code != multihash.SHA2_256 || !bytes.Equal(dec.Digest, want[:]) {
			t.Errorf("multihash digest %x does not match address digest %s", dec.Digest, want)
		}
	})

	t.Run("V0", func(t *testing.T) {
		b0 := mustBuilder(t, 0)
		c, err := b0.AddressCID(addr)
		if err != nil {
			t.Fatal(err)
		}
		id, err := cid.Cast(c.Bytes)
		if err != nil {
			t.Fatal(err)
		}
		if id.Version() != 0 {
			t.Errorf("expected CIDv0, got v%d", id.Version())
		}
		if s := c.String(); len(s) == 0 || s[:2] != "Qm" {
			t.Errorf("expected base58 Qm... string, got %q", s)
		}
		if err := b0.Verify(c, addr); err != nil {
			t.Errorf("Verify failed: %v", err)
		}
		// A v1 builder verifies v0 CIDs too; the prefix comes from the CID.
		if err := builder.Verify(c, addr); err != nil {
			t.Errorf("cross-version Verify failed: %v", err)
		}
	})

	t.Run("UnsupportedVersion", func(t *testing.T) {
		_, err := NewBuilder(core.DigestConfig{CIDVersion: 2})
		if !errors.Is(err, core.ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("Determinism", func(t *testing.T) {
		cid1, _ := builder.AddressCID(addr)
		cid2, _ := builder.AddressCID(address.MustParse(hello))

		if !bytes.Equal(cid1.Bytes, cid2.Bytes) {
			t.Error("CIDs for the same address should be identical")
		}
	})

	t.Run("ZeroAddress", func(t *testing.T) {
		if _, err := builder.AddressCID(address.Address{}); !errors.Is(err, core.ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput, got %v", err)
		}
		c, _ := builder.AddressCID(addr)
		if err := builder.Verify(c, address.Address{}); !errors.Is(err, core.ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("MalformedCIDBytes", func(t *testing.T) {
		err := builder.Verify(core.CID{Bytes: []byte{0x00, 0x01}}, addr)
		if !errors.Is(err, core.ErrCorrupt) {
			t.Errorf("expected ErrCorrupt on truncated CID bytes, got %v", err)
		}

		err = builder.Verify(core.CID{Bytes: nil}, addr)
		if err == nil {
			t.Error("expected Verify to fail on nil CID bytes")
		}
		if s := (core.CID{Bytes: []byte{0x00}}).String(); s != "" {
			t.Errorf("expected empty string for malformed CID, got %q", s)
		}
	})

	t.Run("UnsupportedMultihash", func(t *testing.T) {
		// CIDv1, raw codec, multihash code 0xffff (varint ff ff 03), 4-byte digest.
		c := core.CID{Bytes: []byte{0x01, 0x55, 0xff, 0xff, 0x03, 0x04, 'a', 'b', 'c', 'd'}}

		err := builder.Verify(c, addr)
		if err == nil {
			t.Fatal("expected error for unsupported multihash, got nil")
		}
		if !strings.Contains(err.Error(), "failed to compute multihash for verification") {
			t.Errorf("unexpected error message: %v", err)
		}
	})

	t.Run("Block", func(t *testing.T) {
		blk, err := builder.Block(addr)
		if err != nil {
			t.Fatal(err)
		}
		if string(blk.RawData()) != hello {
			t.Errorf("block data = %q, want %q", blk.RawData(), hello)
		}
		c, _ := builder.AddressCID(addr)
		if !bytes.Equal(blk.Cid().Bytes(), c.Bytes) {
			t.Error("block CID does not match AddressCID")
		}
	})

	t.Run("Sentinel", func(t *testing.T) {
		c, err := builder.AddressCID(address.MustParse(address.Test))
		if err != nil {
			t.Fatal(err)
		}
		if err := builder.Verify(c, address.MustParse(address.Test)); err != nil {
			t.Errorf("Verify failed for sentinel: %v", err)
		}
	})

	t.Run("Generated", func(t *testing.T) {
		r := testkit.RNG(42)
		seen := make(map[string]address.Address)
		for i := 0; i < 200; i++ {
			a := address.MustParse(testkit.ValidAddress(r, address.MinLength+r.Intn(address.MaxLength-address.MinLength+1)))
			c, err := builder.AddressCID(a)
			if err != nil {
				t.Fatal(err)
			}
			if prev, ok := seen[string(c.Bytes)]; ok && prev != a {
				t.Fatalf("CID collision between %s and %s", prev, a)
			}
			seen[string(c.Bytes)] = a
			if err := builder.Verify(c, a); err != nil {
				t.Fatal(err)
			}
		}
	})
}
