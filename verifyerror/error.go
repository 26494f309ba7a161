// Package verifyerror defines the closed set of failure reasons the
// verifier packages can return. Every exported error below is the final
// leaf of its call chain; callers compare with errors.Is against these
// sentinels rather than matching on formatted text.
package verifyerror

import "errors"

var (
	// ErrInvalidZkProof covers both STARK-proof rejection and failure to
	// decode the proof's public-memory region into a Checkpoint.
	ErrInvalidZkProof = errors.New("verifyerror: invalid zk proof")

	// ErrInvalidMmrTree means elements_count has no valid peak
	// decomposition, or the supplied peak count disagrees with it.
	ErrInvalidMmrTree = errors.New("verifyerror: invalid mmr tree")

	// ErrInvalidMmrProof means the path length, elements_index, or
	// recomputed peak disagree with the claimed proof shape.
	ErrInvalidMmrProof = errors.New("verifyerror: invalid mmr proof")

	// ErrInvalidMmrRoot means the recomputed root differs from the
	// claimed root, or the claimed root differs from the checkpoint's
	// root for the same (algo, chain).
	ErrInvalidMmrRoot = errors.New("verifyerror: invalid mmr root")

	// ErrInvalidHeaderHash means the recomputed header identity differs
	// from the MMR proof's committed header_hash.
	ErrInvalidHeaderHash = errors.New("verifyerror: invalid header hash")

	// ErrInvalidStateRoot means an account proof's state root disagrees
	// with the trusted header it is checked against.
	ErrInvalidStateRoot = errors.New("verifyerror: invalid state root")

	// ErrInvalidAccountProof means the account's MPT proof failed to
	// verify against the header's state root.
	ErrInvalidAccountProof = errors.New("verifyerror: invalid account proof")

	// ErrInvalidTxProof means the transaction's MPT proof failed to
	// verify against the header's transactions root.
	ErrInvalidTxProof = errors.New("verifyerror: invalid tx proof")

	// ErrInvalidMptProof means an MPT proof failed in a way not specific
	// to account or tx semantics. The account and tx verifiers in package
	// trie report every trie failure as ErrInvalidAccountProof or
	// ErrInvalidTxProof and never return or wrap this error.
	ErrInvalidMptProof = errors.New("verifyerror: invalid mpt proof")

	// ErrInvalidExecutionHeaderProof means no trusted header in the
	// batch matches an account or tx proof's block height, or a tx
	// proof's claimed transactions root differs from that header's.
	ErrInvalidExecutionHeaderProof = errors.New("verifyerror: invalid execution header proof")

	// ErrInvalidRlpDecode means an MPT leaf verified successfully but the
	// value did not RLP-decode into the expected type.
	ErrInvalidRlpDecode = errors.New("verifyerror: invalid rlp decode")
)
