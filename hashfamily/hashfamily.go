// Package hashfamily implements the three-operation hash abstraction
// (pair/leaf/bind_size) an MMR is built from, once for Keccak and once
// for Poseidon. Every MMR word that crosses an API boundary in this module
// is a types.Hash32 — each Family converts to and from its own internal
// word representation, so the MMR verifier (package mmr) never needs to
// know which algorithm it's replaying.
package hashfamily

import "github.com/kysee/bankai-verify/types"

// Family is implemented once per types.HashAlgo. There is no
// registration mechanism and no third implementation: HashAlgo is a
// closed two-value set, so dispatch is a single switch in For, not an
// open interface registry.
type Family interface {
	// Pair hashes an ordered pair of MMR words.
	Pair(left, right types.Hash32) types.Hash32

	// Leaf salts a raw committed header hash into the word the MMR
	// actually stores at the leaf position.
	Leaf(headerHash types.Hash32) types.Hash32

	// BindSize folds the MMR's element count into the bagged-peaks
	// value to produce the final root.
	BindSize(count uint64, bag types.Hash32) types.Hash32
}

// For returns the Family implementation for algo.
func For(algo types.HashAlgo) Family {
	if algo == types.Poseidon {
		return poseidonFamily{}
	}
	return keccakFamily{}
}

// BagPeaks right-folds a non-empty peak list: bag([p1]) = p1,
// bag([p1..pn]) = pair(p1, pair(p2, ... pair(p_{n-1}, pn))).
func BagPeaks(f Family, peaks []types.Hash32) types.Hash32 {
	acc := peaks[len(peaks)-1]
	for i := len(peaks) - 2; i >= 0; i-- {
		acc = f.Pair(peaks[i], acc)
	}
	return acc
}
