package types

// Checkpoint is the typed product of a verified ZK proof's public
// output: the two chains' MMR roots, at the heights the proof attests
// to, plus the auxiliary fields needed to cross-check header and
// committee proofs against it.
type Checkpoint struct {
	BankaiHeight uint64
	Beacon       BeaconSnapshot
	Execution    ExecutionSnapshot
}

// BeaconSnapshot is the beacon-chain half of a Checkpoint.
type BeaconSnapshot struct {
	Slot              uint64
	HeaderRoot        Hash32
	JustifiedHeight   uint64
	FinalizedHeight   uint64
	NumSigners        uint64
	MmrRootKeccak     Hash32
	MmrRootPoseidon   Hash32
	CurrentCommittee  Hash32
	NextCommitteeHash Hash32
}

// ExecutionSnapshot is the execution-chain half of a Checkpoint.
type ExecutionSnapshot struct {
	Height          uint64
	HeaderHash      Hash32
	JustifiedHeight uint64
	FinalizedHeight uint64
	MmrRootKeccak   Hash32
	MmrRootPoseidon Hash32
}

// MmrRoot returns the chain's committed MMR root for the given hash
// family, used by the batch verifier to cross-check every sub-proof's
// claimed root against the checkpoint.
func (b BeaconSnapshot) MmrRoot(algo HashAlgo) Hash32 {
	if algo == Poseidon {
		return b.MmrRootPoseidon
	}
	return b.MmrRootKeccak
}

// MmrRoot returns the chain's committed MMR root for the given hash
// family.
func (e ExecutionSnapshot) MmrRoot(algo HashAlgo) Hash32 {
	if algo == Poseidon {
		return e.MmrRootPoseidon
	}
	return e.MmrRootKeccak
}
