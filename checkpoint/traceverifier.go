package checkpoint

import (
	"bytes"

	ethcrypto "github.com/ethereum/go-ethereum/crypto"

	"github.com/kysee/bankai-verify/types"
	"github.com/kysee/bankai-verify/verifyerror"
)

// traceCommitmentLen is the width of the leading commitment digest
// TraceCheckVerifier expects at the front of a CairoProof's Payload.
const traceCommitmentLen = 32

// TraceCheckVerifier is the StarkVerifier this package's Checker falls
// back to when no vendored STWO/cairo-air verifier is injected. It does
// not perform a full STARK soundness check — no off-the-shelf Go
// implementation of cairo-air's verifier exists in the retrieved pack —
// it instead validates proof shape and trace-commitment consistency:
// PublicMemory must be the fixed 22-field layout, and Payload's leading
// 32 bytes must equal keccak256 of the trace bytes that follow it.
//
// This is a documented stand-in, not a substitute for a real STARK
// verifier; a deployment with a vendored cairo-air/stwo binding should
// inject that instead.
type TraceCheckVerifier struct{}

func (TraceCheckVerifier) VerifyCairoProof(proof types.CairoProof) error {
	if len(proof.PublicMemory) != publicMemoryFields {
		return verifyerror.ErrInvalidZkProof
	}
	if len(proof.Payload) < traceCommitmentLen {
		return verifyerror.ErrInvalidZkProof
	}

	claimedCommitment := proof.Payload[:traceCommitmentLen]
	trace := proof.Payload[traceCommitmentLen:]
	computedCommitment := ethcrypto.Keccak256(trace)

	if !bytes.Equal(claimedCommitment, computedCommitment) {
		return verifyerror.ErrInvalidZkProof
	}
	return nil
}
