package batch

import (
	"encoding/binary"
	"errors"
	"math/big"
	"os"
	"testing"

	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/rawdb"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethdb/memorydb"
	"github.com/ethereum/go-ethereum/rlp"
	ethtrie "github.com/ethereum/go-ethereum/trie"
	"github.com/ethereum/go-ethereum/triedb"
	"github.com/holiman/uint256"
	ztyptree "github.com/protolambda/ztyp/tree"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/kysee/bankai-verify/hashfamily"
	"github.com/kysee/bankai-verify/types"
	"github.com/kysee/bankai-verify/verifyerror"
)

// batchTestLogger gives fixture construction structured diagnostics the
// same way the teacher wires zerolog into its gnark solver tests,
// rather than scattering t.Logf calls through the builder below.
var batchTestLogger = zerolog.New(os.Stdout).Level(zerolog.DebugLevel).With().Timestamp().Logger()

type fakeStarkVerifier struct{ err error }

func (f fakeStarkVerifier) VerifyCairoProof(types.CairoProof) error { return f.err }

func feltUint64(v uint64) types.FieldElement {
	var e types.FieldElement
	e.SetUint64(v)
	return e
}

func feltHash32(h types.Hash32) types.FieldElement {
	var e types.FieldElement
	e.SetBytes(h[:])
	return e
}

// limbs128 splits a Hash32 into the low/high field-element pair the
// checkpoint package's public-memory layout expects.
func limbs128(h types.Hash32) (low, high types.FieldElement) {
	var lowBytes, highBytes [32]byte
	copy(lowBytes[16:], h[16:32])
	copy(highBytes[16:], h[0:16])
	low.SetBytes(lowBytes[:])
	high.SetBytes(highBytes[:])
	return
}

// buildPublicMemory lays out the 22-field-element checkpoint public
// memory, committing execRoot/beaconRoot as the keccak-family MMR
// roots for each chain so the header proofs built below cross-check.
func buildPublicMemory(execRoot, beaconRoot types.Hash32) []types.FieldElement {
	var zero types.Hash32
	zl, zh := limbs128(zero)
	beaconRootLow, beaconRootHigh := limbs128(beaconRoot)
	execRootLow, execRootHigh := limbs128(execRoot)

	return []types.FieldElement{
		feltUint64(1),     // 0 bankai height
		feltUint64(100),   // 1 slot
		zl, zh,            // 2,3 beacon header root (unused by this fixture)
		feltUint64(1),     // 4 beacon justified
		feltUint64(1),     // 5 beacon finalized
		feltUint64(512),   // 6 num signers
		beaconRootLow,     // 7
		beaconRootHigh,    // 8
		feltHash32(zero),  // 9 beacon poseidon root (unused)
		zl, zh,            // 10,11 current committee
		zl, zh,            // 12,13 next committee
		feltUint64(19_000_000), // 14 exec height
		zl, zh,                 // 15,16 exec header hash (unused by this fixture)
		feltUint64(19_000_000), // 17 exec justified
		feltUint64(19_000_000), // 18 exec finalized
		execRootLow,            // 19
		execRootHigh,           // 20
		feltHash32(zero),       // 21 exec poseidon root (unused)
	}
}

type batchFixture struct {
	wrapper types.ProofWrapper
	verifer fakeStarkVerifier
}

func buildBatchFixture(t *testing.T) batchFixture {
	t.Helper()
	f := hashfamily.For(types.Keccak)

	execHeader := &ethtypes.Header{
		Number:   big.NewInt(19_000_000),
		GasLimit: 30_000_000,
	}

	beaconHeader := types.BeaconHeader{Slot: 100, ProposerIndex: 1}
	beaconHash := beaconHeaderTreeRootForTest(beaconHeader)
	beaconLeaf := f.Leaf(beaconHash)
	beaconRoot := f.BindSize(1, beaconLeaf)
	batchTestLogger.Debug().Str("beacon_root", beaconRoot.String()).Msg("built beacon mmr root")

	addr := ethcommon.HexToAddress("0xdead000000000000000000000000000000beef")
	account := types.Account{Nonce: 1, Balance: uint256.NewInt(1), Root: ethcommon.HexToHash("0x03"), CodeHash: ethcrypto.Keccak256(nil)}
	acctTr := ethtrie.NewEmpty(triedb.NewDatabase(rawdb.NewMemoryDatabase(), nil))
	acctKey := ethcrypto.Keccak256(addr[:])
	acctValue, err := rlp.EncodeToBytes(&account)
	require.NoError(t, err)
	acctTr.MustUpdate(acctKey, acctValue)
	acctProofDb := memorydb.New()
	require.NoError(t, acctTr.Prove(acctKey, acctProofDb))
	execHeader.Root = acctTr.Hash()

	tx := ethtypes.NewTransaction(0, ethcommon.HexToAddress("0x01"), big.NewInt(1), 21000, big.NewInt(1), nil)
	encodedTx, err := tx.MarshalBinary()
	require.NoError(t, err)
	txTr := ethtrie.NewEmpty(triedb.NewDatabase(rawdb.NewMemoryDatabase(), nil))
	txKey := rlp.AppendUint64(nil, 0)
	txTr.MustUpdate(txKey, encodedTx)
	txProofDb := memorydb.New()
	require.NoError(t, txTr.Prove(txKey, txProofDb))
	execHeader.TxHash = txTr.Hash()

	// Compute the header identity only now that Root/TxHash are final:
	// the MMR leaf salts keccak(rlp(header)), so it must be derived from
	// the exact header the execution verifier will later re-hash.
	execHash := types.Hash32(execHeader.Hash())
	execLeaf := f.Leaf(execHash)
	execRoot := f.BindSize(1, execLeaf)
	batchTestLogger.Debug().Str("exec_root", execRoot.String()).Msg("built execution mmr root")

	wrapper := types.ProofWrapper{
		Algo: types.Keccak,
		CheckpointProof: types.CairoProof{
			PublicMemory: buildPublicMemory(execRoot, beaconRoot),
		},
		Evm: &types.EvmProofs{
			ExecHeaders: []types.ExecutionHeaderProof{{
				Header: execHeader,
				MmrProof: types.MmrProof{
					Algo:          types.Keccak,
					HeaderHash:    execHash,
					ElementsIndex: 1,
					ElementsCount: 1,
					Peaks:         []types.Hash32{execLeaf},
					Root:          execRoot,
				},
			}},
			BeaconHeaders: []types.BeaconHeaderProof{{
				Header: beaconHeader,
				MmrProof: types.MmrProof{
					Algo:          types.Keccak,
					HeaderHash:    beaconHash,
					ElementsIndex: 1,
					ElementsCount: 1,
					Peaks:         []types.Hash32{beaconLeaf},
					Root:          beaconRoot,
				},
			}},
			Accounts: []types.AccountProof{{
				Address:     addr,
				BlockHeight: 19_000_000,
				StateRoot:   types.Hash32(execHeader.Root),
				Account:     account,
				MptNodes:    extractNodesForTest(acctProofDb),
			}},
			Txs: []types.TxProof{{
				BlockHeight:      19_000_000,
				TxIndex:          0,
				TransactionsRoot: types.Hash32(execHeader.TxHash),
				EncodedTx:        encodedTx,
				MptNodes:         extractNodesForTest(txProofDb),
			}},
		},
	}

	return batchFixture{wrapper: wrapper, verifer: fakeStarkVerifier{}}
}

func extractNodesForTest(db *memorydb.Database) []types.HexBytes {
	var nodes []types.HexBytes
	iter := db.NewIterator(nil, nil)
	defer iter.Release()
	for iter.Next() {
		nodes = append(nodes, ethcommon.CopyBytes(iter.Value()))
	}
	return nodes
}

func TestVerifyBatchAcceptsFullWrapper(t *testing.T) {
	fx := buildBatchFixture(t)
	results, err := Verify(fx.verifer, fx.wrapper)
	require.NoError(t, err)
	require.Len(t, results.ExecHeaders, 1)
	require.Len(t, results.BeaconHeaders, 1)
	require.Len(t, results.Accounts, 1)
	require.Len(t, results.Txs, 1)
}

func TestVerifyBatchIsDeterministic(t *testing.T) {
	fx := buildBatchFixture(t)
	r1, err1 := Verify(fx.verifer, fx.wrapper)
	r2, err2 := Verify(fx.verifer, fx.wrapper)
	require.NoError(t, err1)
	require.NoError(t, err2)
	require.Equal(t, r1, r2)
}

func TestVerifyBatchFailsClosedOnCheckpointRejection(t *testing.T) {
	fx := buildBatchFixture(t)
	fx.verifer.err = errInjectedStarkFailure
	_, err := Verify(fx.verifer, fx.wrapper)
	require.ErrorIs(t, err, verifyerror.ErrInvalidZkProof)
}

func TestVerifyBatchFailsClosedOnTamperedExecHeader(t *testing.T) {
	fx := buildBatchFixture(t)
	fx.wrapper.Evm.ExecHeaders[0].Header.GasLimit++
	results, err := Verify(fx.verifer, fx.wrapper)
	require.ErrorIs(t, err, verifyerror.ErrInvalidHeaderHash)
	require.Empty(t, results.ExecHeaders, "a failed batch must return no partial results")
}

var errInjectedStarkFailure = errors.New("batch_test: injected stark verifier failure")

// beaconHeaderTreeRootForTest recomputes the same 5-field, 8-leaf SSZ
// merkleization header.VerifyBeaconHeaderProof checks against, so this
// fixture's committed header_hash matches what the real verifier will
// recompute. Duplicated here (rather than imported) because it is an
// unexported helper of package header.
func beaconHeaderTreeRootForTest(h types.BeaconHeader) types.Hash32 {
	hFn := ztyptree.GetHashFn()

	var slotChunk, proposerChunk ztyptree.Root
	binary.LittleEndian.PutUint64(slotChunk[:8], h.Slot)
	binary.LittleEndian.PutUint64(proposerChunk[:8], h.ProposerIndex)

	leaves := [8]ztyptree.Root{
		slotChunk,
		proposerChunk,
		ztyptree.Root(h.ParentRoot),
		ztyptree.Root(h.StateRoot),
		ztyptree.Root(h.BodyRoot),
		{}, {}, {},
	}

	level := leaves[:]
	for len(level) > 1 {
		next := make([]ztyptree.Root, len(level)/2)
		for i := range next {
			next[i] = hFn(level[2*i], level[2*i+1])
		}
		level = next
	}
	return types.Hash32(level[0])
}
