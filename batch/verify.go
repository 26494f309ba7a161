// Package batch wires the checkpoint, header, and trie verifiers
// together in the one order a caller actually needs: verify the
// checkpoint proof first, derive the per-chain MMR roots it commits
// to, then verify every execution header, beacon header, account, and
// transaction proof against those roots in turn, stopping at the first
// failure, so a caller never has to reason about a batch result that's
// partially verified.
package batch

import (
	"github.com/kysee/bankai-verify/checkpoint"
	"github.com/kysee/bankai-verify/header"
	"github.com/kysee/bankai-verify/trie"
	"github.com/kysee/bankai-verify/types"
)

// Verify checks wrapper.CheckpointProof with verifier, then verifies
// every sub-proof in wrapper.Evm against the resulting checkpoint's
// per-chain MMR roots, in the fixed order: execution headers, beacon
// headers, accounts (against the execution headers just verified),
// transactions. It returns on the first error, with no partial
// BatchResults — a caller never sees results for some inputs and
// silence for others.
func Verify(verifier checkpoint.StarkVerifier, wrapper types.ProofWrapper) (types.BatchResults, error) {
	var results types.BatchResults

	cp, err := checkpoint.Verify(verifier, wrapper.CheckpointProof)
	if err != nil {
		return types.BatchResults{}, err
	}

	execRoot := cp.Execution.MmrRoot(wrapper.Algo)
	beaconRoot := cp.Beacon.MmrRoot(wrapper.Algo)

	if wrapper.Evm == nil {
		return results, nil
	}

	for _, proof := range wrapper.Evm.ExecHeaders {
		h, err := header.VerifyExecutionHeaderProof(proof, execRoot)
		if err != nil {
			return types.BatchResults{}, err
		}
		results.ExecHeaders = append(results.ExecHeaders, h)
	}

	for _, proof := range wrapper.Evm.BeaconHeaders {
		h, err := header.VerifyBeaconHeaderProof(proof, beaconRoot)
		if err != nil {
			return types.BatchResults{}, err
		}
		results.BeaconHeaders = append(results.BeaconHeaders, h)
	}

	for _, proof := range wrapper.Evm.Accounts {
		acct, err := trie.VerifyAccountProof(proof, results.ExecHeaders)
		if err != nil {
			return types.BatchResults{}, err
		}
		results.Accounts = append(results.Accounts, acct)
	}

	for _, proof := range wrapper.Evm.Txs {
		tx, err := trie.VerifyTxProof(proof, results.ExecHeaders)
		if err != nil {
			return types.BatchResults{}, err
		}
		results.Txs = append(results.Txs, tx)
	}

	return results, nil
}
