package header

import (
	"github.com/kysee/bankai-verify/mmr"
	"github.com/kysee/bankai-verify/types"
	"github.com/kysee/bankai-verify/verifyerror"
)

// VerifyExecutionHeaderProof checks an execution header's MMR inclusion
// proof against expectedRoot, then confirms keccak(rlp(header)) matches
// the hash the MMR proof commits to.
func VerifyExecutionHeaderProof(proof types.ExecutionHeaderProof, expectedRoot types.Hash32) (*types.ExecutionHeader, error) {
	if proof.MmrProof.Root != expectedRoot {
		return nil, verifyerror.ErrInvalidMmrRoot
	}

	if err := mmr.Verify(proof.MmrProof); err != nil {
		return nil, err
	}

	if types.Hash32(proof.Header.Hash()) != proof.MmrProof.HeaderHash {
		return nil, verifyerror.ErrInvalidHeaderHash
	}

	return proof.Header, nil
}

// FindHeaderByNumber returns the verified header in headers matching
// number, or nil. Shared by package trie's account/tx proof verifiers,
// which must resolve a proof's claimed block height to one of this
// batch's already-verified execution headers before trusting its state
// or transactions root.
func FindHeaderByNumber(headers []*types.ExecutionHeader, number uint64) *types.ExecutionHeader {
	for _, h := range headers {
		if h.Number != nil && h.Number.Uint64() == number {
			return h
		}
	}
	return nil
}
