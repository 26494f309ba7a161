package checkpoint

import (
	"encoding/binary"

	"github.com/kysee/bankai-verify/types"
	"github.com/kysee/bankai-verify/verifyerror"
)

// publicMemoryFields is the fixed width of a decoded checkpoint's
// public-memory output: index 0 is the overall checkpoint height, 1-13
// are the beacon-side fields, 14-21 the execution-side fields.
const publicMemoryFields = 22

// decodeCheckpoint turns a verified proof's public-memory output into a
// types.Checkpoint. Every 256-bit field except the two Poseidon MMR
// roots is split across two adjacent low/high 128-bit field elements
// (bytes32FromLimbs); the Poseidon roots occupy a single field element
// each — every neighboring field uses the two-limb encoding, but the
// STARK field is wide enough to carry a Poseidon digest whole.
func decodeCheckpoint(output []types.FieldElement) (types.Checkpoint, error) {
	if len(output) != publicMemoryFields {
		return types.Checkpoint{}, verifyerror.ErrInvalidZkProof
	}

	bankaiHeight, err := feltToUint64(output[0])
	if err != nil {
		return types.Checkpoint{}, err
	}

	slot, err := feltToUint64(output[1])
	if err != nil {
		return types.Checkpoint{}, err
	}
	headerRoot := bytes32FromLimbs(output[2], output[3])
	beaconJustified, err := feltToUint64(output[4])
	if err != nil {
		return types.Checkpoint{}, err
	}
	beaconFinalized, err := feltToUint64(output[5])
	if err != nil {
		return types.Checkpoint{}, err
	}
	numSigners, err := feltToUint64(output[6])
	if err != nil {
		return types.Checkpoint{}, err
	}
	beaconMmrKeccak := bytes32FromLimbs(output[7], output[8])
	beaconMmrPoseidon := feltToHash32(output[9])
	currentCommittee := bytes32FromLimbs(output[10], output[11])
	nextCommittee := bytes32FromLimbs(output[12], output[13])

	execHeight, err := feltToUint64(output[14])
	if err != nil {
		return types.Checkpoint{}, err
	}
	execHeaderHash := bytes32FromLimbs(output[15], output[16])
	execJustified, err := feltToUint64(output[17])
	if err != nil {
		return types.Checkpoint{}, err
	}
	execFinalized, err := feltToUint64(output[18])
	if err != nil {
		return types.Checkpoint{}, err
	}
	execMmrKeccak := bytes32FromLimbs(output[19], output[20])
	execMmrPoseidon := feltToHash32(output[21])

	return types.Checkpoint{
		BankaiHeight: bankaiHeight,
		Beacon: types.BeaconSnapshot{
			Slot:              slot,
			HeaderRoot:        headerRoot,
			JustifiedHeight:   beaconJustified,
			FinalizedHeight:   beaconFinalized,
			NumSigners:        numSigners,
			MmrRootKeccak:     beaconMmrKeccak,
			MmrRootPoseidon:   beaconMmrPoseidon,
			CurrentCommittee:  currentCommittee,
			NextCommitteeHash: nextCommittee,
		},
		Execution: types.ExecutionSnapshot{
			Height:          execHeight,
			HeaderHash:      execHeaderHash,
			JustifiedHeight: execJustified,
			FinalizedHeight: execFinalized,
			MmrRootKeccak:   execMmrKeccak,
			MmrRootPoseidon: execMmrPoseidon,
		},
	}, nil
}

// decodeHashOutput decodes only the compact hash-summary slice of a
// checkpoint's public memory — the overall height plus the two header
// identities a caller cross-checks batch proofs against — without
// touching the committee, justification, or MMR-root fields
// decodeCheckpoint also materializes. This is the "hash-output only"
// path spec.md §4.4 names, mirroring the Rust original's narrower
// BankaiBlockHashOutput decode alongside the full BankaiBlock one.
func decodeHashOutput(output []types.FieldElement) (HashOutput, error) {
	if len(output) != publicMemoryFields {
		return HashOutput{}, verifyerror.ErrInvalidZkProof
	}

	bankaiHeight, err := feltToUint64(output[0])
	if err != nil {
		return HashOutput{}, err
	}
	beaconHeaderRoot := bytes32FromLimbs(output[2], output[3])
	execHeaderHash := bytes32FromLimbs(output[15], output[16])

	return HashOutput{
		BankaiHeight:        bankaiHeight,
		BeaconHeaderRoot:    beaconHeaderRoot,
		ExecutionHeaderHash: execHeaderHash,
	}, nil
}

// bytes32FromLimbs reassembles a 256-bit value from two field elements
// that each carry 128 bits in their low 16 bytes: high goes in bytes
// 0-15, low in bytes 16-31.
func bytes32FromLimbs(low, high types.FieldElement) types.Hash32 {
	var out types.Hash32
	lowBytes := low.Bytes()
	highBytes := high.Bytes()
	copy(out[0:16], highBytes[16:32])
	copy(out[16:32], lowBytes[16:32])
	return out
}

// feltToHash32 takes a field element's full big-endian byte
// representation directly, for the two fields the STARK field is wide
// enough to carry whole (the Poseidon MMR roots).
func feltToHash32(e types.FieldElement) types.Hash32 {
	return types.Hash32(e.Bytes())
}

// feltToUint64 extracts a small integer value stored in a field
// element.
func feltToUint64(e types.FieldElement) (uint64, error) {
	b := e.Bytes()
	// A genuine u64-valued field element has zero in every byte above
	// the low 8; anything else means the proof's public memory doesn't
	// have the shape this decoder expects.
	for _, bb := range b[:24] {
		if bb != 0 {
			return 0, verifyerror.ErrInvalidZkProof
		}
	}
	return binary.BigEndian.Uint64(b[24:32]), nil
}
