package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fxamacker/cbor/v2"

	"github.com/agenthands/peeraddr/pkg/address"
	"github.com/agenthands/peeraddr/pkg/cidutil"
	"github.com/agenthands/peeraddr/pkg/core"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatCBOR = "cbor"
)

type record struct {
	Address      address.Address `json:"address" cbor:"address"`
	Short        string          `json:"short,omitempty" cbor:"short,omitempty"`
	Digest       string          `json:"digest,omitempty" cbor:"digest,omitempty"`
	LegacyDigest string          `json:"legacy_digest,omitempty" cbor:"legacy_digest,omitempty"`
	CID          string          `json:"cid,omitempty" cbor:"cid,omitempty"`
}

type renderer struct {
	out     core.OutputConfig
	cids    cidutil.Builder
	encMode cbor.EncMode
}

func newRenderer(cfg *core.Config) (*renderer, error) {
	cids, err := cidutil.NewBuilder(cfg.Digest)
	if err != nil {
		return nil, err
	}
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		return nil, err
	}
	return &renderer{out: cfg.Output, cids: cids, encMode: em}, nil
}

func (r *renderer) record(a address.Address) (record, error) {
	rec := record{Address: a}
	if r.out.Short {
		rec.Short = a.Short()
	}
	if r.out.Digest {
		rec.Digest = a.Digest().String()
	}
	if r.out.LegacyDigest {
		rec.LegacyDigest = a.LegacyDigest()
	}
	if r.out.CID {
		c, err := r.cids.AddressCID(a)
		if err != nil {
			return record{}, err
		}
		rec.CID = c.String()
	}
	return rec, nil
}

func (r *renderer) write(w io.Writer, a address.Address) error {
	rec, err := r.record(a)
	if err != nil {
		return err
	}

	switch r.out.Format {
	case formatJSON:
		b, err := json.Marshal(rec)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", b)
		return err
	case formatCBOR:
		b, err := r.encMode.Marshal(rec)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, hex.EncodeToString(b))
		return err
	default:
		fields := []string{rec.Address.String()}
		if rec.Short != "" {
			fields = append(fields, "short="+rec.Short)
		}
		if rec.Digest != "" {
			fields = append(fields, "digest="+rec.Digest)
		}
		if rec.LegacyDigest != "" {
			fields = append(fields, "legacy_digest="+rec.LegacyDigest)
		}
		if rec.CID != "" {
			fields = append(fields, "cid="+rec.CID)
		}
		_, err := fmt.Fprintln(w, strings.Join(fields, " "))
		return err
	}
}
