package trie

import (
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/rlp"
	ethtrie "github.com/ethereum/go-ethereum/trie"

	"github.com/kysee/bankai-verify/header"
	"github.com/kysee/bankai-verify/types"
	"github.com/kysee/bankai-verify/verifyerror"
)

// VerifyTxProof checks an inclusion proof for an RLP-encoded
// transaction, keyed by its RLP-encoded index in the block's
// transaction trie, against the transactions root of the verified
// header matching proof.BlockHeight.
func VerifyTxProof(proof types.TxProof, headers []*types.ExecutionHeader) (*types.TxEnvelope, error) {
	h := header.FindHeaderByNumber(headers, proof.BlockHeight)
	if h == nil {
		return nil, verifyerror.ErrInvalidExecutionHeaderProof
	}
	if types.Hash32(h.TxHash) != proof.TransactionsRoot {
		return nil, verifyerror.ErrInvalidExecutionHeaderProof
	}

	key := rlp.AppendUint64(nil, proof.TxIndex)
	proofDb := nodesToDatabase(proof.MptNodes)

	value, err := ethtrie.VerifyProof(ethcommon.Hash(h.TxHash), key, proofDb)
	if err != nil || string(value) != string(proof.EncodedTx) {
		return nil, verifyerror.ErrInvalidTxProof
	}

	tx := new(types.TxEnvelope)
	if err := tx.UnmarshalBinary(proof.EncodedTx); err != nil {
		return nil, verifyerror.ErrInvalidRlpDecode
	}
	return tx, nil
}
