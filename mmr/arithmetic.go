// Package mmr verifies Merkle Mountain Range inclusion proofs against a
// size-bound root, for either hash family. The position arithmetic
// below is a direct, non-recursive walk of the MMR's postorder
// indexing scheme.
package mmr

import (
	"math/bits"

	"github.com/kysee/bankai-verify/verifyerror"
)

var ErrInvalidMmrTree = verifyerror.ErrInvalidMmrTree

// bitLength returns the number of bits needed to represent n: 0 for 0,
// otherwise floor(log2(n))+1.
func bitLength(n uint64) uint64 {
	return uint64(bits.Len64(n))
}

// computeHeight returns the height (edges from leaf to peak) of the
// node at 1-indexed postorder position x, by repeatedly folding left in
// the implicit perfect binary tree until a (2^k - 1) boundary is hit.
func computeHeight(x uint64) uint64 {
	for {
		bl := bitLength(x)
		if bl == 0 {
			return 0
		}
		n := uint64(1) << (bl - 1)
		n2 := uint64(1) << bl
		if x == n2-1 {
			return bl - 1
		}
		x = x - n + 1
	}
}

// assertMmrSizeIsValid checks that x decomposes into a strictly
// decreasing sequence of distinct peak sizes, each of the form 2^k-1.
func assertMmrSizeIsValid(x uint64) error {
	if x == 0 {
		return ErrInvalidMmrTree
	}
	n := x
	var prevPeak uint64
	for n > 0 {
		i := bitLength(n)
		if i == 0 {
			return ErrInvalidMmrTree
		}
		peakTmp := (uint64(1) << i) - 1
		peak := peakTmp
		if n < peakTmp {
			peak = (uint64(1) << (i - 1)) - 1
		}
		if peak == 0 || peak == prevPeak {
			return ErrInvalidMmrTree
		}
		n -= peak
		prevPeak = peak
	}
	return nil
}

// computeExpectedPeaksLen returns how many peaks an MMR of the given
// size must have.
func computeExpectedPeaksLen(mmrSize uint64) (uint64, error) {
	if err := assertMmrSizeIsValid(mmrSize); err != nil {
		return 0, err
	}
	n := mmrSize
	var count, prevPeak uint64
	for n > 0 {
		i := bitLength(n)
		peakTmp := (uint64(1) << i) - 1
		peak := peakTmp
		if n < peakTmp {
			peak = (uint64(1) << (i - 1)) - 1
		}
		if peak == 0 || peak == prevPeak {
			return 0, ErrInvalidMmrTree
		}
		count++
		n -= peak
		prevPeak = peak
	}
	return count, nil
}

// getPeakInfo returns the (peakIndex, peakHeight) of the 1-indexed
// elementIndex within an MMR of elementsCount total elements, or false
// if elementIndex is out of range.
func getPeakInfo(elementsCount, elementIndex uint64) (peakIndex, peakHeight uint64, ok bool) {
	if elementIndex == 0 || elementIndex > elementsCount {
		return 0, 0, false
	}
	mountainHeight := bitLength(elementsCount)
	mountainElementsCount := (uint64(1) << mountainHeight) - 1
	mountainIndex := uint64(0)
	remaining := elementsCount
	idx := elementIndex
	for {
		if mountainElementsCount <= remaining {
			if idx <= mountainElementsCount {
				h := mountainHeight
				if h > 0 {
					h--
				}
				return mountainIndex, h, true
			}
			remaining -= mountainElementsCount
			idx -= mountainElementsCount
			mountainIndex++
		}
		mountainElementsCount >>= 1
		if mountainHeight > 0 {
			mountainHeight--
		}
	}
}
