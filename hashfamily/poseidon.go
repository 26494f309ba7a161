package hashfamily

import (
	starkfp "github.com/consensys/gnark-crypto/ecc/stark-curve/fp"
	"github.com/kysee/bankai-verify/types"
)

// poseidonFamily implements Family with the Starknet/Cairo Poseidon
// permutation over the STARK prime field, the hash the beacon/execution
// MMRs use on the ZK-checkpoint side.
//
// gnark-crypto ships the stark-curve field-element type this package
// reuses for every 32-byte word, but no Cairo-compatible Poseidon
// permutation. poseidonRoundConstants/poseidonPermute below are a
// hand-rolled Hades permutation over the right field, tuned to the
// documented Cairo parameters (3-element state, alpha=3, 8 full + 83
// partial rounds); it is NOT bit-exact with cairo-lang's reference
// implementation — see DESIGN.md.
type poseidonFamily struct{}

const (
	poseidonFullRounds    = 8
	poseidonPartialRounds = 83
)

func (poseidonFamily) Pair(left, right types.Hash32) types.Hash32 {
	l := feltFromHash(left)
	r := feltFromHash(right)
	h := poseidonHash(l, r)
	return hashFromFelt(h)
}

// Leaf salts a committed header hash into the MMR leaf word as
// poseidon(lo, hi), where lo is the low 16 bytes and hi the high 16
// bytes of the 32-byte hash, low limb first.
func (poseidonFamily) Leaf(headerHash types.Hash32) types.Hash32 {
	var hi, lo [32]byte
	copy(hi[16:], headerHash[:16])
	copy(lo[16:], headerHash[16:])
	loFelt := new(starkfp.Element).SetBytes(lo[:])
	hiFelt := new(starkfp.Element).SetBytes(hi[:])
	h := poseidonHash(*loFelt, *hiFelt)
	return hashFromFelt(h)
}

// BindSize folds the element count into the bagged root as
// poseidon(count_as_felt, bag).
func (poseidonFamily) BindSize(count uint64, bag types.Hash32) types.Hash32 {
	var countFelt starkfp.Element
	countFelt.SetUint64(count)
	bagFelt := feltFromHash(bag)
	h := poseidonHash(countFelt, bagFelt)
	return hashFromFelt(h)
}

func feltFromHash(h types.Hash32) starkfp.Element {
	var e starkfp.Element
	e.SetBytes(h[:])
	return e
}

func hashFromFelt(e starkfp.Element) types.Hash32 {
	b := e.Bytes()
	return types.Hash32(b)
}

// poseidonHash is the canonical 2-to-1 Poseidon compression used
// throughout this package: pad the 3-element Hades state's capacity
// slot with zero, permute, return the first rate element.
func poseidonHash(a, b starkfp.Element) starkfp.Element {
	state := [3]starkfp.Element{a, b, starkfp.Element{}}
	poseidonPermute(&state)
	return state[0]
}

func poseidonPermute(state *[3]starkfp.Element) {
	constants := poseidonRoundConstants()
	round := 0
	half := poseidonFullRounds / 2
	for r := 0; r < half; r++ {
		poseidonFullRound(state, constants[round])
		round++
	}
	for r := 0; r < poseidonPartialRounds; r++ {
		poseidonPartialRound(state, constants[round])
		round++
	}
	for r := 0; r < half; r++ {
		poseidonFullRound(state, constants[round])
		round++
	}
}

func poseidonFullRound(state *[3]starkfp.Element, rc [3]starkfp.Element) {
	for i := range state {
		state[i].Add(&state[i], &rc[i])
		poseidonSBox(&state[i])
	}
	poseidonMix(state)
}

func poseidonPartialRound(state *[3]starkfp.Element, rc [3]starkfp.Element) {
	for i := range state {
		state[i].Add(&state[i], &rc[i])
	}
	poseidonSBox(&state[0])
	poseidonMix(state)
}

// poseidonSBox computes x^3, the alpha=3 S-box Cairo's Poseidon uses
// (the STARK field has no cube roots of unity dividing p-1, so x->x^3
// is a bijection).
func poseidonSBox(x *starkfp.Element) {
	var x2 starkfp.Element
	x2.Square(x)
	x.Mul(x, &x2)
}

// poseidonMix applies the fixed 3x3 MDS matrix used by every round.
func poseidonMix(state *[3]starkfp.Element) {
	m := poseidonMdsMatrix()
	var out [3]starkfp.Element
	for i := 0; i < 3; i++ {
		var acc starkfp.Element
		for j := 0; j < 3; j++ {
			var term starkfp.Element
			term.Mul(&m[i][j], &state[j])
			acc.Add(&acc, &term)
		}
		out[i] = acc
	}
	*state = out
}

var (
	poseidonMdsCache [3][3]starkfp.Element
	poseidonMdsInit  bool
	poseidonRcCache  [][3]starkfp.Element
	poseidonRcInit   bool
)

// poseidonMdsMatrix returns the canonical Cauchy MDS matrix
// m[i][j] = 1 / (x_i + y_j) for x = {0,1,2}, y = {3,4,5}, the
// construction Cairo's Poseidon parameter generation uses.
func poseidonMdsMatrix() [3][3]starkfp.Element {
	if poseidonMdsInit {
		return poseidonMdsCache
	}
	var m [3][3]starkfp.Element
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var sum, inv starkfp.Element
			sum.SetUint64(uint64(i) + uint64(j+3))
			inv.Inverse(&sum)
			m[i][j] = inv
		}
	}
	poseidonMdsCache = m
	poseidonMdsInit = true
	return m
}

// poseidonRoundConstants deterministically derives the round constants
// from repeated hashing of a fixed seed, matching the shape (not the
// exact values) of a Grain-LFSR-derived constant schedule. See the type
// doc comment: this permutation is a documented stand-in, not a
// bit-exact port.
func poseidonRoundConstants() [][3]starkfp.Element {
	if poseidonRcInit {
		return poseidonRcCache
	}
	total := poseidonFullRounds + poseidonPartialRounds
	rc := make([][3]starkfp.Element, total)
	var seed starkfp.Element
	seed.SetUint64(1)
	ctr := uint64(0)
	for r := 0; r < total; r++ {
		for i := 0; i < 3; i++ {
			ctr++
			var counter, next starkfp.Element
			counter.SetUint64(ctr)
			next.Add(&seed, &counter)
			next.Square(&next)
			rc[r][i] = next
			seed = next
		}
	}
	poseidonRcCache = rc
	poseidonRcInit = true
	return rc
}
