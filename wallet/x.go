// Copyright (c) 2024-2026 Firn Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wallet

import (
	"context"

	"github.com/firnlabs/avalanche/avm"
	"github.com/firnlabs/avalanche/constants"
	"github.com/firnlabs/avalanche/fault"
	"github.com/firnlabs/avalanche/ids"
	"github.com/firnlabs/avalanche/key"
	"github.com/firnlabs/avalanche/txs"
)

// plan a plain transfer: inputs covering amount plus fee, one output
// to the recipient and any surplus back to the wallet
func (w *Wallet) planTransfer(assetId ids.Id, utxos []*txs.Utxo, amount uint64, fee uint64, at uint64, to txs.OutputOwners) (*Plan, error) {
	plan := &Plan{}
	remaining := amount + fee
	if remaining < amount {
		return nil, fault.ErrInsufficientFunds
	}
	total := uint64(0)

	for _, utxo := range utxos {
		if total >= remaining {
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
		total += out.Amt
	}
	if total < remaining {
		return nil, fault.ErrInsufficientFunds
	}

	plan.StakedOutputs = append(plan.StakedOutputs, &txs.TransferableOutput{
		AssetId: assetId,
		Out: &txs.TransferOutput{
			Amt:    amount,
			Owners: to,
		},
	})
	if change := total - remaining; 0 != change {
		plan.ChangeOutputs = append(plan.ChangeOutputs, &txs.TransferableOutput{
			AssetId: assetId,
			Out: &txs.TransferOutput{
				Amt:    change,
				Owners: w.changeOwners(),
			},
		})
	}

	txs.SortTransferableInputsWithSigners(plan.Inputs, plan.Signers)
	return plan, nil
}

// Transfer - send amount of an asset to a recipient on the X chain
//
// blocks until the transaction is accepted or the context expires
func (w *Wallet) Transfer(ctx context.Context, assetId ids.Id, to ids.ShortId, amount uint64, fee uint64, at uint64) (ids.Id, error) {
	addresses, err := w.addresses(constants.XChainAlias)
	if nil != err {
		return ids.Empty, err
	}
	utxos, err := w.client.XUtxos(ctx, addresses)
	if nil != err {
		return ids.Empty, err
	}
	blockchainId, err := w.client.BlockchainId(ctx, constants.XChainAlias)
	if nil != err {
		return ids.Empty, err
	}

	recipient := txs.OutputOwners{
		Threshold: 1,
		Addresses: []ids.ShortId{to},
	}
	plan, err := w.planTransfer(assetId, utxos, amount, fee, at, recipient)
	if nil != err {
		return ids.Empty, err
	}

	tx := &avm.BaseTx{
		BaseTx: txs.BaseTx{
			NetworkId:    w.networkId,
			BlockchainId: blockchainId,
			Outputs:      append(plan.StakedOutputs, plan.ChangeOutputs...),
			Inputs:       plan.Inputs,
		},
	}
	txs.SortTransferableOutputs(tx.Outputs)
	err = tx.Sign(plan.Signers)
	if nil != err {
		return ids.Empty, err
	}

	w.infof("issuing X transfer of %d to %s", amount, to)
	txId, err := w.client.IssueXTx(ctx, tx.Metadata.SignedBytes)
	if nil != err {
		return ids.Empty, err
	}
	return txId, w.await(ctx, txId, w.client.XTxStatus)
}

// ExportToP - move value from the X chain to the P chain
func (w *Wallet) ExportToP(ctx context.Context, assetId ids.Id, amount uint64, fee uint64, at uint64) (ids.Id, error) {
	addresses, err := w.addresses(constants.XChainAlias)
	if nil != err {
		return ids.Empty, err
	}
	utxos, err := w.client.XUtxos(ctx, addresses)
	if nil != err {
		return ids.Empty, err
	}
	xChainId, err := w.client.BlockchainId(ctx, constants.XChainAlias)
	if nil != err {
		return ids.Empty, err
	}
	pChainId, err := w.client.BlockchainId(ctx, constants.PChainAlias)
	if nil != err {
		return ids.Empty, err
	}

	plan, err := w.planTransfer(assetId, utxos, amount, fee, at, w.changeOwners())
	if nil != err {
		return ids.Empty, err
	}

	tx := &avm.ExportTx{
		BaseTx: txs.BaseTx{
			NetworkId:    w.networkId,
			BlockchainId: xChainId,
			Outputs:      plan.ChangeOutputs,
			Inputs:       plan.Inputs,
		},
		DestinationChainId: pChainId,
		ExportedOutputs:    plan.StakedOutputs,
	}
	err = tx.Sign(plan.Signers)
	if nil != err {
		return ids.Empty, err
	}

	w.infof("issuing X export of %d", amount)
	txId, err := w.client.IssueXTx(ctx, tx.Metadata.SignedBytes)
	if nil != err {
		return ids.Empty, err
	}
	return txId, w.await(ctx, txId, w.client.XTxStatus)
}
