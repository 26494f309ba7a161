// Package checkpoint verifies the opaque ZK proof that binds a single
// beacon/execution checkpoint together, then decodes its public output
// into a types.Checkpoint.
//
// The proof itself (a Cairo/STWO STARK) is not checked for soundness by
// this package — that is a full STARK verification with no
// off-the-shelf Go implementation. This package models that boundary as
// an injectable StarkVerifier, treating the prover pipeline as an
// external collaborator reached through a narrow interface; its own
// TraceCheckVerifier, the default, only checks proof shape and a
// keccak256 commitment over the Payload bytes.
package checkpoint

import (
	"github.com/kysee/bankai-verify/types"
	"github.com/kysee/bankai-verify/verifyerror"
)

// StarkVerifier checks that a CairoProof's STARK transcript is sound.
// It does not interpret PublicMemory; that's this package's job once
// the proof is accepted. Implementations wrap whatever off-the-shelf
// or vendored STWO verifier a deployment has available.
type StarkVerifier interface {
	VerifyCairoProof(proof types.CairoProof) error
}

// Verify checks proof with verifier, then decodes its public memory
// into a Checkpoint. It returns verifyerror.ErrInvalidZkProof if either
// the STARK check or the decode fails — the caller cannot distinguish
// "proof was unsound" from "proof decoded to an unexpected shape".
func Verify(verifier StarkVerifier, proof types.CairoProof) (types.Checkpoint, error) {
	if err := verifier.VerifyCairoProof(proof); err != nil {
		return types.Checkpoint{}, verifyerror.ErrInvalidZkProof
	}
	return decodeCheckpoint(proof.PublicMemory)
}

// VerifyHashOutput checks proof with verifier the same way Verify does,
// but on success decodes only the compact hash-summary fields
// (decodeHashOutput) rather than the full 22-field layout Verify
// materializes into a Checkpoint — the lighter of the two call shapes
// spec.md §4.4 describes, for callers that only need to cross-check a
// checkpoint's identity.
func VerifyHashOutput(verifier StarkVerifier, proof types.CairoProof) (HashOutput, error) {
	if err := verifier.VerifyCairoProof(proof); err != nil {
		return HashOutput{}, verifyerror.ErrInvalidZkProof
	}
	return decodeHashOutput(proof.PublicMemory)
}

// Checker pairs a StarkVerifier with the two decode shapes above behind
// a constructor that supplies a default verifier, rather than requiring
// every call site to pass one explicitly.
type Checker struct {
	verifier StarkVerifier
}

// NewChecker returns a Checker that verifies proofs with verifier, or
// with TraceCheckVerifier when verifier is nil — the shape/commitment
// stand-in this package falls back to when no vendored STWO/cairo-air
// verifier has been wired in.
func NewChecker(verifier StarkVerifier) *Checker {
	if verifier == nil {
		verifier = TraceCheckVerifier{}
	}
	return &Checker{verifier: verifier}
}

// Verify decodes proof into a Checkpoint using the Checker's verifier.
func (c *Checker) Verify(proof types.CairoProof) (types.Checkpoint, error) {
	return Verify(c.verifier, proof)
}

// VerifyHashOutput decodes proof into a HashOutput using the Checker's
// verifier.
func (c *Checker) VerifyHashOutput(proof types.CairoProof) (HashOutput, error) {
	return VerifyHashOutput(c.verifier, proof)
}

// HashOutput is the compact projection of a Checkpoint used when a
// caller only needs to confirm which headers a checkpoint commits to,
// not its full committee/justification state.
type HashOutput struct {
	BankaiHeight        uint64
	BeaconHeaderRoot    types.Hash32
	ExecutionHeaderHash types.Hash32
}
