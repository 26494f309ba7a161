package types

import "fmt"

// The types below are the inbound JSON surface an HTTP SDK layer would
// decode. The verifier packages never consume them directly — callers
// convert to the internal types above first — but they are part of
// this module so a thin transport layer has something canonical to
// decode into.

// MmrProofDto is the wire shape of an MmrProof.
type MmrProofDto struct {
	ChainID       uint64   `json:"chain_id"`
	RefHeight     uint64   `json:"ref_height"`
	Algo          string   `json:"algo"`
	HeaderHash    string   `json:"header_hash"`
	Root          string   `json:"root"`
	ElementsIndex uint64   `json:"elements_index"`
	ElementsCount uint64   `json:"elements_count"`
	Path          []string `json:"path"`
	Peaks         []string `json:"peaks"`
}

// ToMmrProof converts the wire DTO into the internal MmrProof,
// validating the hex encoding of every hash field.
func (d MmrProofDto) ToMmrProof() (MmrProof, error) {
	algo, err := ParseHashAlgo(d.Algo)
	if err != nil {
		return MmrProof{}, err
	}
	headerHash, err := ParseHash32(d.HeaderHash)
	if err != nil {
		return MmrProof{}, fmt.Errorf("types: mmr proof dto: header_hash: %w", err)
	}
	root, err := ParseHash32(d.Root)
	if err != nil {
		return MmrProof{}, fmt.Errorf("types: mmr proof dto: root: %w", err)
	}
	path := make([]Hash32, len(d.Path))
	for i, p := range d.Path {
		path[i], err = ParseHash32(p)
		if err != nil {
			return MmrProof{}, fmt.Errorf("types: mmr proof dto: path[%d]: %w", i, err)
		}
	}
	peaks := make([]Hash32, len(d.Peaks))
	for i, p := range d.Peaks {
		peaks[i], err = ParseHash32(p)
		if err != nil {
			return MmrProof{}, fmt.Errorf("types: mmr proof dto: peaks[%d]: %w", i, err)
		}
	}
	return MmrProof{
		Algo:          algo,
		HeaderHash:    headerHash,
		ElementsIndex: d.ElementsIndex,
		ElementsCount: d.ElementsCount,
		Path:          path,
		Peaks:         peaks,
		Root:          root,
		ChainID:       d.ChainID,
		RefHeight:     d.RefHeight,
	}, nil
}

// BlockProofDto is the wire shape of an opaque checkpoint proof: either
// a structured JSON object (Proof) or a flat list of decimal/hex STARK
// field-element strings (FieldElements). This module has no conversion
// from either form into a CairoProof; in particular it does not decode
// FieldElements with a STWO/Cairo codec.
type BlockProofDto struct {
	Height        uint64   `json:"height"`
	Proof         any      `json:"proof,omitempty"`
	FieldElements []string `json:"field_elements,omitempty"`
}

// LightClientProofDto bundles a BlockProofDto with the MMR proofs that
// should be checked against the checkpoint it decodes to.
type LightClientProofDto struct {
	BlockProof BlockProofDto `json:"block_proof"`
	MmrProofs  []MmrProofDto `json:"mmr_proofs"`
}
