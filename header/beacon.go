package header

import (
	"encoding/binary"

	ztyptree "github.com/protolambda/ztyp/tree"

	"github.com/kysee/bankai-verify/mmr"
	"github.com/kysee/bankai-verify/types"
	"github.com/kysee/bankai-verify/verifyerror"
)

// VerifyBeaconHeaderProof checks a beacon header's MMR inclusion proof
// against expectedRoot, then confirms the header's own SSZ hash-tree
// root matches the hash the MMR proof commits to.
func VerifyBeaconHeaderProof(proof types.BeaconHeaderProof, expectedRoot types.Hash32) (types.BeaconHeader, error) {
	if proof.MmrProof.Root != expectedRoot {
		return types.BeaconHeader{}, verifyerror.ErrInvalidMmrRoot
	}

	if err := mmr.Verify(proof.MmrProof); err != nil {
		return types.BeaconHeader{}, err
	}

	if beaconHeaderTreeRoot(proof.Header) != proof.MmrProof.HeaderHash {
		return types.BeaconHeader{}, verifyerror.ErrInvalidHeaderHash
	}

	return proof.Header, nil
}

// beaconHeaderTreeRoot computes the SSZ hash-tree root of the 5-field
// BeaconBlockHeader container: {slot, proposer_index, parent_root,
// state_root, body_root}, each a single 32-byte chunk, padded to 8
// leaves and merkleized with sha256 via ztyp/tree's standard hash
// function.
func beaconHeaderTreeRoot(h types.BeaconHeader) types.Hash32 {
	hFn := ztyptree.GetHashFn()

	leaves := [8]ztyptree.Root{
		uint64Chunk(h.Slot),
		uint64Chunk(h.ProposerIndex),
		ztyptree.Root(h.ParentRoot),
		ztyptree.Root(h.StateRoot),
		ztyptree.Root(h.BodyRoot),
		{}, {}, {},
	}

	// 8 leaves -> 3 levels of pairwise hashing.
	level := leaves[:]
	for len(level) > 1 {
		next := make([]ztyptree.Root, len(level)/2)
		for i := range next {
			next[i] = hFn(level[2*i], level[2*i+1])
		}
		level = next
	}
	return types.Hash32(level[0])
}

// uint64Chunk serializes a uint64 as an SSZ basic-type leaf: 8
// little-endian bytes, zero-padded to 32.
func uint64Chunk(v uint64) ztyptree.Root {
	var r ztyptree.Root
	binary.LittleEndian.PutUint64(r[:8], v)
	return r
}
