package types

import (
	ethcommon "github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
)

// Account is the RLP-encodable {nonce, balance, storage_root, code_hash}
// leaf value an account MPT proof resolves to. go-ethereum's
// StateAccount already has exactly this shape and field order, so it is
// reused rather than redefined — keeping the RLP encoding this library
// produces bit-identical to the one the execution client emitted.
type Account = ethtypes.StateAccount

// TxEnvelope is a decoded, possibly-typed (EIP-2718) transaction.
type TxEnvelope = ethtypes.Transaction

// AccountProof is an EIP-1186-style inclusion proof for one account.
type AccountProof struct {
	Address     ethcommon.Address
	BlockHeight uint64
	StateRoot   Hash32
	Account     Account
	MptNodes    []HexBytes
}

// TxProof is an inclusion proof for one RLP-encoded transaction, keyed
// by its RLP-encoded index in the block's transaction trie.
type TxProof struct {
	BlockHeight      uint64
	TxIndex          uint64
	TransactionsRoot Hash32
	EncodedTx        HexBytes
	MptNodes         []HexBytes
}
