package types

// MmrProof is a self-contained MMR inclusion proof. ElementsIndex is
// 1-based; Path is sibling-first leaf-to-peak order;
// peaks are left-to-right, tallest first.
type MmrProof struct {
	Algo HashAlgo

	// HeaderHash is the raw committed value, before leaf-salting.
	HeaderHash Hash32

	// ElementsIndex is the 1-based postorder position of the leaf.
	ElementsIndex uint64
	// ElementsCount is the total node count of the MMR this proof is
	// drawn from.
	ElementsCount uint64

	// Path holds sibling hashes from leaf to peak.
	Path []Hash32
	// Peaks holds every current peak, left-to-right, tallest first.
	Peaks []Hash32

	// Root is the claimed MMR root.
	Root Hash32

	// ChainID and RefHeight are opaque context carried through for
	// cross-checks by the caller; the MMR verifier itself never inspects
	// them.
	ChainID   uint64
	RefHeight uint64
}
