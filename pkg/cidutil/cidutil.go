package cidutil

import (
	"bytes"
	"fmt"

	"github.com/agenthands/peeraddr/pkg/address"
	"github.com/agenthands/peeraddr/pkg/core"
	blocks "github.com/ipfs/go-block-format"
	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"
)

// Builder defines the interface for creating and verifying address CIDs.
type Builder interface {
	AddressCID(a address.Address) (core.CID, error)
	Verify(c core.CID, a address.Address) error
	Block(a address.Address) (blocks.Block, error)
}

type builder struct {
	version int
}

// NewBuilder returns a CID builder for the configured CID version.
func NewBuilder(cfg core.DigestConfig) (Builder, error) {
	switch cfg.CIDVersion {
	case 0, 1:
	default:
		return nil, fmt.Errorf("%w: unsupported CID version %d", core.ErrInvalidInput, cfg.CIDVersion)
	}
	return &builder{version: cfg.CIDVersion}, nil
}

func (b *builder) AddressCID(a address.Address) (core.CID, error) {
	c, err := b.buildCID(a)
	if err != nil {
		return core.CID{}, err
	}
	return core.CID{Bytes: c.Bytes()}, nil
}

func (b *builder) buildCID(a address.Address) (cid.Cid, error) {
	if a.IsZero() {
		return cid.Undef, fmt.Errorf("%w: zero address", core.ErrInvalidInput)
	}

	hash, err := multihash.Sum([]byte(a.String()), multihash.SHA2_256, -1)
	if err != nil {
		return cid.Undef, fmt.Errorf("failed to compute multihash: %w", err)
	}

	// v0 only admits dag-pb.
	if b.version == 0 {
		return cid.NewCidV0(hash), nil
	}
	return cid.NewCidV1(cid.Raw, hash), nil
}

func (b *builder) Verify(c core.CID, a address.Address) error {
	if a.IsZero() {
		return fmt.Errorf("%w: zero address", core.ErrInvalidInput)
	}

	id, err := cid.Cast(c.Bytes)
	if err != nil {
		return fmt.Errorf("%w: invalid CID bytes: %v", core.ErrCorrupt, err)
	}

	prefix := id.Prefix()
	hash, err := multihash.Sum([]byte(a.String()), prefix.MhType, prefix.MhLength)
	if err != nil {
		return fmt.Errorf("failed to compute multihash for verification: %w", err)
	}

	if !bytes.Equal(id.Hash(), hash) {
		return fmt.Errorf("%w: CID mismatch for %s", core.ErrCorrupt, a.Short())
	}

	return nil
}

// Block wraps the canonical string as a block addressed by AddressCID.
func (b *builder) Block(a address.Address) (blocks.Block, error) {
	c, err := b.buildCID(a)
	if err != nil {
		return nil, err
	}
	blk, err := blocks.NewBlockWithCid([]byte(a.String()), c)
	if err != nil {
		return nil, fmt.Errorf("failed to build block: %w", err)
	}
	return blk, nil
}
