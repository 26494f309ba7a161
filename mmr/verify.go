package mmr

import (
	"github.com/kysee/bankai-verify/hashfamily"
	"github.com/kysee/bankai-verify/types"
	"github.com/kysee/bankai-verify/verifyerror"
)

// Verify checks a single MMR inclusion proof end to end: it re-derives
// the expected peak count and position from proof.ElementsCount and
// proof.ElementsIndex, replays the sibling path from the salted leaf up
// to the claimed peak, bags all peaks, binds the element count, and
// compares the result to proof.Root.
//
// ElementsIndex == ElementsCount is the "latest element" edge case: the
// element under proof is itself the most recently appended leaf, which
// means it is its own peak and carries an empty path.
func Verify(proof types.MmrProof) error {
	if err := assertMmrSizeIsValid(proof.ElementsCount); err != nil {
		return err
	}

	expectedPeaksLen, err := computeExpectedPeaksLen(proof.ElementsCount)
	if err != nil {
		return err
	}
	if uint64(len(proof.Peaks)) != expectedPeaksLen {
		return ErrInvalidMmrTree
	}

	peakIndex, peakHeight, ok := getPeakInfo(proof.ElementsCount, proof.ElementsIndex)
	if !ok {
		return verifyerror.ErrInvalidMmrProof
	}

	isLatest := proof.ElementsIndex == proof.ElementsCount
	if isLatest {
		if len(proof.Path) != 0 {
			return verifyerror.ErrInvalidMmrProof
		}
	} else if uint64(len(proof.Path)) != peakHeight {
		return verifyerror.ErrInvalidMmrProof
	}

	family := hashfamily.For(proof.Algo)
	leaf := family.Leaf(proof.HeaderHash)

	var computedPeak types.Hash32
	if isLatest {
		computedPeak = leaf
	} else {
		computedPeak = hashSubtreePath(family, leaf, proof.ElementsIndex, proof.Path)
	}

	if peakIndex >= uint64(len(proof.Peaks)) || proof.Peaks[peakIndex] != computedPeak {
		return verifyerror.ErrInvalidMmrProof
	}

	bag := hashfamily.BagPeaks(family, proof.Peaks)
	root := family.BindSize(proof.ElementsCount, bag)
	if root != proof.Root {
		return verifyerror.ErrInvalidMmrRoot
	}
	return nil
}

// hashSubtreePath replays the sibling path from a leaf at 1-indexed
// postorder position to its peak. At each step the next position's
// height in the implicit binary tree tells us whether the sibling is a
// left or right neighbor.
func hashSubtreePath(f hashfamily.Family, element types.Hash32, position uint64, path []types.Hash32) types.Hash32 {
	if len(path) == 0 {
		return element
	}
	height := uint64(0)
	for _, sibling := range path {
		positionHeight := computeHeight(position)
		nextHeight := computeHeight(position + 1)
		if nextHeight == positionHeight+1 {
			element = f.Pair(sibling, element)
			position++
		} else {
			element = f.Pair(element, sibling)
			position += uint64(1) << (height + 1)
		}
		height++
	}
	return element
}
