package hashfamily

import (
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/kysee/bankai-verify/types"
)

// keccakFamily implements Family with keccak256, the execution chain's
// native hash.
type keccakFamily struct{}

func (keccakFamily) Pair(left, right types.Hash32) types.Hash32 {
	var buf [64]byte
	copy(buf[:32], left[:])
	copy(buf[32:], right[:])
	return types.Hash32(ethcrypto.Keccak256Hash(buf[:]))
}

func (keccakFamily) Leaf(headerHash types.Hash32) types.Hash32 {
	return types.Hash32(ethcrypto.Keccak256Hash(headerHash[:]))
}

// BindSize binds the element count into the root: keccak(size_be32 ||
// bag), with the count right-justified in a 32-byte big-endian buffer.
func (keccakFamily) BindSize(count uint64, bag types.Hash32) types.Hash32 {
	var buf [64]byte
	// top 16 bytes of the size word stay zero; the low 16 bytes hold the
	// count as a big-endian u128, so a uint64 count fills the last 8 (a
	// uint64 is enough for any realizable MMR size).
	buf[24] = byte(count >> 56)
	buf[25] = byte(count >> 48)
	buf[26] = byte(count >> 40)
	buf[27] = byte(count >> 32)
	buf[28] = byte(count >> 24)
	buf[29] = byte(count >> 16)
	buf[30] = byte(count >> 8)
	buf[31] = byte(count)
	copy(buf[32:], bag[:])
	return types.Hash32(ethcrypto.Keccak256Hash(buf[:]))
}
