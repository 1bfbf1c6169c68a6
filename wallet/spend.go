// Copyright (c) 2024-2026 Firn Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wallet

import (
	"github.com/firnlabs/avalanche/fault"
	"github.com/firnlabs/avalanche/ids"
	"github.com/firnlabs/avalanche/key"
	"github.com/firnlabs/avalanche/txs"
)

// Plan - the inputs and outputs of a planned spend
//
// Inputs and Signers stay index aligned: Signers[i] holds the keys
// that must sign for Inputs[i]
type Plan struct {
	Inputs        []*txs.TransferableInput
	Signers       [][]txs.Signer
	StakedOutputs []*txs.TransferableOutput
	ChangeOutputs []*txs.TransferableOutput
}

// owner set that receives change: the wallet's first key
func (w *Wallet) changeOwners() txs.OutputOwners {
	addrs := w.keychain.Addresses()
	owners := txs.OutputOwners{
		Threshold: 1,
	}
	if 0 != len(addrs) {
		owners.Addresses = []ids.ShortId{addrs[0]}
	}
	return owners
}

// Spend - plan a stake of amount plus a burn of fee
//
// stake locked UTXOs whose lock has not expired are consumed first:
// their value counts toward the stake but can never pay the fee, and
// both the staked portion and any remainder keep the original lock.
// Unlocked UTXOs then cover the rest of the stake and the whole fee,
// with the surplus returned to the wallet as change
func (w *Wallet) Spend(assetId ids.Id, utxos []*txs.Utxo, amount uint64, fee uint64, at uint64) (*Plan, error) {
	plan := &Plan{}
	remainingStake := amount
	remainingFee := fee
	owners := w.changeOwners()

	// locked UTXOs can only stake
	for _, utxo := range utxos {
		if 0 == remainingStake {
			break
		}
		if assetId != utxo.AssetId {
			continue
		}
		locked, ok := utxo.Out.(*txs.StakeableLockOut)
		if !ok || locked.Locktime <= at {
			continue
		}
		in, keys, ok := w.keychain.Spend(&locked.Out, at)
		if !ok {
			continue
		}
		plan.Inputs = append(plan.Inputs, &txs.TransferableInput{
			UtxoId:  utxo.UtxoId,
			AssetId: utxo.AssetId,
			In: &txs.StakeableLockIn{
				Locktime: locked.Locktime,
				In:       *in,
			},
		})
		plan.Signers = append(plan.Signers, key.Signers(keys))

		take := locked.Out.Amt
		if take > remainingStake {
			take = remainingStake
		}
		remainingStake -= take
		plan.StakedOutputs = append(plan.StakedOutputs, &txs.TransferableOutput{
			AssetId: utxo.AssetId,
			Out: &txs.StakeableLockOut{
				Locktime: locked.Locktime,
				Out: txs.TransferOutput{
					Amt:    take,
					Owners: locked.Out.Owners,
				},
			},
		})
		if returned := locked.Out.Amt - take; 0 != returned {
			plan.ChangeOutputs = append(plan.ChangeOutputs, &txs.TransferableOutput{
				AssetId: utxo.AssetId,
				Out: &txs.StakeableLockOut{
					Locktime: locked.Locktime,
					Out: txs.TransferOutput{
						Amt:    returned,
						Owners: locked.Out.Owners,
					},
				},
			})
		}
	}

	// unlocked UTXOs cover the remaining stake and the fee
	for _, utxo := range utxos {
		if 0 == remainingStake && 0 == remainingFee {
			break
		}
		if assetId != utxo.AssetId {
			continue
		}
		out, ok := unlockedOutput(utxo.Out, at)
		if !ok {
			continue
		}
		in, keys, ok := w.keychain.Spend(out, at)
		if !ok {
			continue
		}
		plan.Inputs = append(plan.Inputs, &txs.TransferableInput{
			UtxoId:  utxo.UtxoId,
			AssetId: utxo.AssetId,
			In:      in,
		})
		plan.Signers = append(plan.Signers, key.Signers(keys))

		// the fee is burned from each unlocked UTXO before any of it
		// is staked
		burned := out.Amt
		if burned > remainingFee {
			burned = remainingFee
		}
		remainingFee -= burned

		take := out.Amt - burned
		if take > remainingStake {
			take = remainingStake
		}
		remainingStake -= take
		if 0 != take {
			plan.StakedOutputs = append(plan.StakedOutputs, &txs.TransferableOutput{
				AssetId: utxo.AssetId,
				Out: &txs.TransferOutput{
					Amt:    take,
					Owners: owners,
				},
			})
		}

		if leftover := out.Amt - burned - take; 0 != leftover {
			plan.ChangeOutputs = append(plan.ChangeOutputs, &txs.TransferableOutput{
				AssetId: utxo.AssetId,
				Out: &txs.TransferOutput{
					Amt:    leftover,
					Owners: owners,
				},
			})
		}
	}

	if 0 != remainingStake || 0 != remainingFee {
		return nil, fault.ErrInsufficientFunds
	}

	txs.SortTransferableInputsWithSigners(plan.Inputs, plan.Signers)
	txs.SortTransferableOutputs(plan.StakedOutputs)
	txs.SortTransferableOutputs(plan.ChangeOutputs)
	return plan, nil
}

// the spendable transfer output of a UTXO, nil when still locked
func unlockedOutput(out txs.TransferableOut, at uint64) (*txs.TransferOutput, bool) {
	switch o := out.(type) {
	case *txs.TransferOutput:
		return o, true
	case *txs.StakeableLockOut:
		if o.Locktime > at {
			return nil, false
		}
		return &o.Out, true
	default:
		return nil, false
	}
}

// Authorize - signature indices over a subnet's owner set
func (w *Wallet) Authorize(owners *txs.OutputOwners, at uint64) ([]uint32, []txs.Signer, error) {
	if err := owners.Verify(); nil != err {
		return nil, nil, err
	}
	sigIndices, keys, ok := w.keychain.Match(owners, at)
	if !ok {
		return nil, nil, fault.ErrKeyNotFound
	}
	return sigIndices, key.Signers(keys), nil
}
