// Copyright (c) 2024-2026 Firn Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wallet

import (
	"context"

	"github.com/firnlabs/avalanche/constants"
	"github.com/firnlabs/avalanche/fault"
	"github.com/firnlabs/avalanche/ids"
	"github.com/firnlabs/avalanche/key"
	"github.com/firnlabs/avalanche/platformvm"
	"github.com/firnlabs/avalanche/txs"
)

// ImportFromX - claim UTXOs exported from the X chain
func (w *Wallet) ImportFromX(ctx context.Context, fee uint64, at uint64) (ids.Id, error) {
	addresses, err := w.addresses(constants.PChainAlias)
	if nil != err {
		return ids.Empty, err
	}
	utxos, err := w.client.PUtxos(ctx, addresses)
	if nil != err {
		return ids.Empty, err
	}
	pChainId, err := w.client.BlockchainId(ctx, constants.PChainAlias)
	if nil != err {
		return ids.Empty, err
	}
	xChainId, err := w.client.BlockchainId(ctx, constants.XChainAlias)
	if nil != err {
		return ids.Empty, err
	}

	importedInputs := []*txs.TransferableInput(nil)
	signers := [][]txs.Signer(nil)
	total := uint64(0)
	assetId := ids.Empty
	for _, utxo := range utxos {
		out, ok := unlockedOutput(utxo.Out, at)
		if !ok {
			continue
		}
		in, keys, ok := w.keychain.Spend(out, at)
		if !ok {
			continue
		}
		importedInputs = append(importedInputs, &txs.TransferableInput{
			UtxoId:  utxo.UtxoId,
			AssetId: utxo.AssetId,
			In:      in,
		})
		signers = append(signers, key.Signers(keys))
		total += out.Amt
		assetId = utxo.AssetId
	}
	if 0 == len(importedInputs) || total <= fee {
		return ids.Empty, fault.ErrInsufficientFunds
	}
	txs.SortTransferableInputsWithSigners(importedInputs, signers)

	tx := &platformvm.ImportTx{
		BaseTx: txs.BaseTx{
			NetworkId:    w.networkId,
			BlockchainId: pChainId,
			Outputs: []*txs.TransferableOutput{{
				AssetId: assetId,
				Out: &txs.TransferOutput{
					Amt:    total - fee,
					Owners: w.changeOwners(),
				},
			}},
		},
		SourceChainId:  xChainId,
		ImportedInputs: importedInputs,
	}
	err = tx.Sign(signers)
	if nil != err {
		return ids.Empty, err
	}

	w.infof("issuing P import of %d", total-fee)
	txId, err := w.client.IssuePTx(ctx, tx.Metadata.SignedBytes)
	if nil != err {
		return ids.Empty, err
	}
	return txId, w.await(ctx, txId, w.client.PTxStatus)
}

// AddValidator - stake on the primary network
func (w *Wallet) AddValidator(ctx context.Context, assetId ids.Id, validator platformvm.Validator, shares uint32, fee uint64, at uint64) (ids.Id, error) {
	plan, pChainId, err := w.pPlan(ctx, assetId, validator.Weight, fee, at)
	if nil != err {
		return ids.Empty, err
	}

	tx := &platformvm.AddValidatorTx{
		BaseTx: txs.BaseTx{
			NetworkId:    w.networkId,
			BlockchainId: pChainId,
			Outputs:      plan.ChangeOutputs,
			Inputs:       plan.Inputs,
		},
		Validator:    validator,
		StakeOutputs: plan.StakedOutputs,
		RewardsOwner: w.changeOwners(),
		Shares:       shares,
	}
	err = tx.Sign(plan.Signers)
	if nil != err {
		return ids.Empty, err
	}

	w.infof("issuing add validator %s weight %d", validator.NodeId, validator.Weight)
	txId, err := w.client.IssuePTx(ctx, tx.Metadata.SignedBytes)
	if nil != err {
		return ids.Empty, err
	}
	return txId, w.await(ctx, txId, w.client.PTxStatus)
}

// AddSubnetValidator - register an existing validator on a subnet the
// wallet can authorize for
func (w *Wallet) AddSubnetValidator(ctx context.Context, assetId ids.Id, validator platformvm.Validator, subnetId ids.Id, subnetOwners *txs.OutputOwners, fee uint64, at uint64) (ids.Id, error) {
	plan, pChainId, err := w.pPlan(ctx, assetId, 0, fee, at)
	if nil != err {
		return ids.Empty, err
	}
	authIndices, authSigners, err := w.Authorize(subnetOwners, at)
	if nil != err {
		return ids.Empty, err
	}

	tx := &platformvm.AddSubnetValidatorTx{
		BaseTx: txs.BaseTx{
			NetworkId:    w.networkId,
			BlockchainId: pChainId,
			Outputs:      plan.ChangeOutputs,
			Inputs:       plan.Inputs,
		},
		Validator: validator,
		SubnetId:  subnetId,
		SubnetAuth: platformvm.SubnetAuth{
			SigIndices: authIndices,
		},
	}
	err = tx.Sign(append(plan.Signers, authSigners))
	if nil != err {
		return ids.Empty, err
	}

	w.infof("issuing add subnet validator %s on %s", validator.NodeId, subnetId)
	txId, err := w.client.IssuePTx(ctx, tx.Metadata.SignedBytes)
	if nil != err {
		return ids.Empty, err
	}
	return txId, w.await(ctx, txId, w.client.PTxStatus)
}

// AddPermissionlessValidator - stake on the primary network or a
// permissionless subnet
//
// stakeSigner is the BLS proof of possession for primary network
// validators and nil elsewhere
func (w *Wallet) AddPermissionlessValidator(ctx context.Context, assetId ids.Id, validator platformvm.Validator, subnetId ids.Id, stakeSigner platformvm.StakeSigner, shares uint32, fee uint64, at uint64) (ids.Id, error) {
	plan, pChainId, err := w.pPlan(ctx, assetId, validator.Weight, fee, at)
	if nil != err {
		return ids.Empty, err
	}

	tx := &platformvm.AddPermissionlessValidatorTx{
		BaseTx: txs.BaseTx{
			NetworkId:    w.networkId,
			BlockchainId: pChainId,
			Outputs:      plan.ChangeOutputs,
			Inputs:       plan.Inputs,
		},
		Validator:             validator,
		SubnetId:              subnetId,
		Signer:                stakeSigner,
		StakeOutputs:          plan.StakedOutputs,
		ValidatorRewardsOwner: w.changeOwners(),
		DelegatorRewardsOwner: w.changeOwners(),
		Shares:                shares,
	}
	err = tx.Sign(plan.Signers)
	if nil != err {
		return ids.Empty, err
	}

	w.infof("issuing add permissionless validator %s weight %d", validator.NodeId, validator.Weight)
	txId, err := w.client.IssuePTx(ctx, tx.Metadata.SignedBytes)
	if nil != err {
		return ids.Empty, err
	}
	return txId, w.await(ctx, txId, w.client.PTxStatus)
}

// CreateSubnet - create a subnet owned by the wallet
func (w *Wallet) CreateSubnet(ctx context.Context, assetId ids.Id, fee uint64, at uint64) (ids.Id, error) {
	plan, pChainId, err := w.pPlan(ctx, assetId, 0, fee, at)
	if nil != err {
		return ids.Empty, err
	}

	tx := &platformvm.CreateSubnetTx{
		BaseTx: txs.BaseTx{
			NetworkId:    w.networkId,
			BlockchainId: pChainId,
			Outputs:      plan.ChangeOutputs,
			Inputs:       plan.Inputs,
		},
		Owner: w.changeOwners(),
	}
	err = tx.Sign(plan.Signers)
	if nil != err {
		return ids.Empty, err
	}

	w.infof("issuing create subnet")
	txId, err := w.client.IssuePTx(ctx, tx.Metadata.SignedBytes)
	if nil != err {
		return ids.Empty, err
	}
	return txId, w.await(ctx, txId, w.client.PTxStatus)
}

// CreateChain - launch a blockchain on a subnet the wallet controls
func (w *Wallet) CreateChain(ctx context.Context, assetId ids.Id, subnetId ids.Id, subnetOwners *txs.OutputOwners, chainName string, vmId ids.Id, genesisData []byte, fee uint64, at uint64) (ids.Id, error) {
	plan, pChainId, err := w.pPlan(ctx, assetId, 0, fee, at)
	if nil != err {
		return ids.Empty, err
	}
	authIndices, authSigners, err := w.Authorize(subnetOwners, at)
	if nil != err {
		return ids.Empty, err
	}

	tx := &platformvm.CreateChainTx{
		BaseTx: txs.BaseTx{
			NetworkId:    w.networkId,
			BlockchainId: pChainId,
			Outputs:      plan.ChangeOutputs,
			Inputs:       plan.Inputs,
		},
		SubnetId:    subnetId,
		ChainName:   chainName,
		VmId:        vmId,
		GenesisData: genesisData,
		SubnetAuth: platformvm.SubnetAuth{
			SigIndices: authIndices,
		},
	}
	err = tx.Sign(append(plan.Signers, authSigners))
	if nil != err {
		return ids.Empty, err
	}

	w.infof("issuing create chain %q on subnet %s", chainName, subnetId)
	txId, err := w.client.IssuePTx(ctx, tx.Metadata.SignedBytes)
	if nil != err {
		return ids.Empty, err
	}
	return txId, w.await(ctx, txId, w.client.PTxStatus)
}

// fetch P chain UTXOs and run the spend planner
func (w *Wallet) pPlan(ctx context.Context, assetId ids.Id, amount uint64, fee uint64, at uint64) (*Plan, ids.Id, error) {
	addresses, err := w.addresses(constants.PChainAlias)
	if nil != err {
		return nil, ids.Empty, err
	}
	utxos, err := w.client.PUtxos(ctx, addresses)
	if nil != err {
		return nil, ids.Empty, err
	}
	pChainId, err := w.client.BlockchainId(ctx, constants.PChainAlias)
	if nil != err {
		return nil, ids.Empty, err
	}
	plan, err := w.Spend(assetId, utxos, amount, fee, at)
	if nil != err {
		return nil, ids.Empty, err
	}
	return plan, pChainId, nil
}
