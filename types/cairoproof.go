package types

import starkfp "github.com/consensys/gnark-crypto/ecc/stark-curve/fp"

// FieldElement is a STARK-field value, used both for MMR words under
// the Poseidon hash family and for entries in a CairoProof's public
// memory.
type FieldElement = starkfp.Element

// CairoProof is the opaque ZK proof envelope this module verifies.
// Payload carries whatever bytes the injected StarkVerifier needs to
// check proof validity; PublicMemory is the fixed 22-field-element
// layout (indices 0-21) this library decodes into a Checkpoint once
// the proof is accepted. Payload is read only by the StarkVerifier that
// checks the proof: a caller-supplied one, or checkpoint's default
// TraceCheckVerifier.
type CairoProof struct {
	Payload      []byte
	PublicMemory []FieldElement
}

// ProofWrapper bundles a checkpoint proof with the per-header/account/tx
// sub-proofs that should be checked against it.
type ProofWrapper struct {
	Algo            HashAlgo
	CheckpointProof CairoProof
	Evm             *EvmProofs
}

// EvmProofs is the optional bundle of execution/beacon-side sub-proofs
// a ProofWrapper may carry.
type EvmProofs struct {
	ExecHeaders   []ExecutionHeaderProof
	BeaconHeaders []BeaconHeaderProof
	Accounts      []AccountProof
	Txs           []TxProof
}

// BatchResults mirrors a ProofWrapper's shape: one verified item per
// input proof, in input order, so callers can zip inputs to outputs.
type BatchResults struct {
	ExecHeaders   []*ExecutionHeader
	BeaconHeaders []BeaconHeader
	Accounts      []Account
	Txs           []*TxEnvelope
}
