// Package trie verifies Modified Patricia Trie inclusion proofs for
// accounts and transactions against an already-verified execution
// header's state/transactions root. It reuses go-ethereum's own
// trie-proof verifier rather than reimplementing MPT node decoding, the
// same pattern test/helpers_test.go demonstrates end to end for
// receipts.
package trie

import (
	ethcommon "github.com/ethereum/go-ethereum/common"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethdb/memorydb"
	"github.com/ethereum/go-ethereum/rlp"
	ethtrie "github.com/ethereum/go-ethereum/trie"

	"github.com/kysee/bankai-verify/header"
	"github.com/kysee/bankai-verify/types"
	"github.com/kysee/bankai-verify/verifyerror"
)

// VerifyAccountProof checks an EIP-1186-style account inclusion proof
// against the state root of the verified execution header whose block
// number matches accountProof.BlockHeight.
func VerifyAccountProof(accountProof types.AccountProof, headers []*types.ExecutionHeader) (types.Account, error) {
	var zero types.Account
	h := header.FindHeaderByNumber(headers, accountProof.BlockHeight)
	if h == nil {
		return zero, verifyerror.ErrInvalidExecutionHeaderProof
	}
	if types.Hash32(h.Root) != accountProof.StateRoot {
		return zero, verifyerror.ErrInvalidStateRoot
	}

	expectedValue, err := rlp.EncodeToBytes(&accountProof.Account)
	if err != nil {
		return zero, verifyerror.ErrInvalidRlpDecode
	}

	key := ethcrypto.Keccak256(accountProof.Address[:])
	proofDb := nodesToDatabase(accountProof.MptNodes)

	value, err := ethtrie.VerifyProof(ethcommon.Hash(accountProof.StateRoot), key, proofDb)
	if err != nil || string(value) != string(expectedValue) {
		return zero, verifyerror.ErrInvalidAccountProof
	}
	return accountProof.Account, nil
}

// nodesToDatabase rebuilds the keccak-keyed node database
// ethtrie.VerifyProof expects from a proof's flat list of RLP-encoded
// trie nodes (mirrors test/helpers_test.go's ProofNodesToDatabase).
func nodesToDatabase(nodes []types.HexBytes) *memorydb.Database {
	db := memorydb.New()
	for _, node := range nodes {
		hash := ethcrypto.Keccak256(node)
		_ = db.Put(hash, node)
	}
	return db
}
