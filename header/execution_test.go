package header

import (
	"math/big"
	"testing"

	ethcommon "github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/require"

	"github.com/kysee/bankai-verify/hashfamily"
	"github.com/kysee/bankai-verify/types"
	"github.com/kysee/bankai-verify/verifyerror"
)

func sampleExecutionHeader() *types.ExecutionHeader {
	return &ethtypes.Header{
		ParentHash: ethcommon.HexToHash("0x01"),
		Root:       ethcommon.HexToHash("0x02"),
		Number:     big.NewInt(19_000_000),
		GasLimit:   30_000_000,
		Time:       1_700_000_000,
	}
}

func singleLeafExecutionProof(t *testing.T, h *types.ExecutionHeader) types.ExecutionHeaderProof {
	f := hashfamily.For(types.Keccak)
	headerHash := types.Hash32(h.Hash())
	leaf := f.Leaf(headerHash)
	root := f.BindSize(1, leaf)
	return types.ExecutionHeaderProof{
		Header: h,
		MmrProof: types.MmrProof{
			Algo:          types.Keccak,
			HeaderHash:    headerHash,
			ElementsIndex: 1,
			ElementsCount: 1,
			Peaks:         []types.Hash32{leaf},
			Root:          root,
		},
	}
}

func TestVerifyExecutionHeaderProofAccepts(t *testing.T) {
	h := sampleExecutionHeader()
	proof := singleLeafExecutionProof(t, h)
	got, err := VerifyExecutionHeaderProof(proof, proof.MmrProof.Root)
	require.NoError(t, err)
	require.Equal(t, h, got)
}

func TestVerifyExecutionHeaderProofRejectsWrongExpectedRoot(t *testing.T) {
	h := sampleExecutionHeader()
	proof := singleLeafExecutionProof(t, h)
	var wrongRoot types.Hash32
	wrongRoot[0] = 0xff
	_, err := VerifyExecutionHeaderProof(proof, wrongRoot)
	require.ErrorIs(t, err, verifyerror.ErrInvalidMmrRoot)
}

func TestVerifyExecutionHeaderProofRejectsTamperedHeader(t *testing.T) {
	h := sampleExecutionHeader()
	proof := singleLeafExecutionProof(t, h)
	proof.Header.GasLimit++ // rlp(header) hash no longer matches the committed header_hash
	_, err := VerifyExecutionHeaderProof(proof, proof.MmrProof.Root)
	require.ErrorIs(t, err, verifyerror.ErrInvalidHeaderHash)
}

func TestFindHeaderByNumber(t *testing.T) {
	h1 := sampleExecutionHeader()
	h2 := sampleExecutionHeader()
	h2.Number = big.NewInt(19_000_001)
	headers := []*types.ExecutionHeader{h1, h2}

	require.Equal(t, h1, FindHeaderByNumber(headers, 19_000_000))
	require.Equal(t, h2, FindHeaderByNumber(headers, 19_000_001))
	require.Nil(t, FindHeaderByNumber(headers, 42))
}
