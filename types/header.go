package types

import ethtypes "github.com/ethereum/go-ethereum/core/types"

// BeaconHeader is the five-field SSZ container committed to via its
// tree-hash root: slot, proposer_index, parent_root, state_root,
// body_root.
type BeaconHeader struct {
	Slot          uint64
	ProposerIndex uint64
	ParentRoot    Hash32
	StateRoot     Hash32
	BodyRoot      Hash32
}

// ExecutionHeader is the trusted execution-chain header type returned
// by the header verifier. It is go-ethereum's own block header type —
// the execution side of this library speaks RLP/Keccak natively, so
// there is no reason to wrap it in a second struct.
type ExecutionHeader = ethtypes.Header

// HeaderProof pairs a header with the MMR proof attesting to its
// inclusion.
type HeaderProof[T any] struct {
	Header   T
	MmrProof MmrProof
}

// BeaconHeaderProof and ExecutionHeaderProof are the two concrete
// instantiations the batch verifier fans out over.
type (
	BeaconHeaderProof    = HeaderProof[BeaconHeader]
	ExecutionHeaderProof = HeaderProof[*ExecutionHeader]
)
