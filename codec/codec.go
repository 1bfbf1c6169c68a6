// Copyright (c) 2024-2026 Firn Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// codec version and registered type ids
//
// every packed transaction opens with the u16 codec version; every
// polymorphic record carries its registered u32 type id.  The tables
// below are wire constants and must never be renumbered.
package codec

// current codec version
const Version uint16 = 0

// X-chain registered type ids
const (
	XChainBaseTx                 uint32 = 0
	XChainCreateAssetTx          uint32 = 1
	XChainOperationTx            uint32 = 2
	XChainImportTx               uint32 = 3
	XChainExportTx               uint32 = 4
	XChainSecp256k1TransferInput uint32 = 5
	XChainSecp256k1MintOutput    uint32 = 6
	XChainSecp256k1TransferOut   uint32 = 7
	XChainSecp256k1MintOperation uint32 = 8
	XChainSecp256k1Credential    uint32 = 9
)

// P-chain registered type ids
const (
	PChainSecp256k1Input               uint32 = 10
	PChainSecp256k1OutputOwners        uint32 = 11
	PChainAddValidatorTx               uint32 = 12
	PChainAddSubnetValidatorTx         uint32 = 13
	PChainAddDelegatorTx               uint32 = 14
	PChainCreateChainTx                uint32 = 15
	PChainCreateSubnetTx               uint32 = 16
	PChainImportTx                     uint32 = 17
	PChainExportTx                     uint32 = 18
	PChainAdvanceTimeTx                uint32 = 19
	PChainRewardValidatorTx            uint32 = 20
	PChainStakeableLockIn              uint32 = 21
	PChainStakeableLockOut             uint32 = 22
	PChainRemoveSubnetValidatorTx      uint32 = 23
	PChainTransformSubnetTx            uint32 = 24
	PChainAddPermissionlessValidatorTx uint32 = 25
	PChainAddPermissionlessDelegatorTx uint32 = 26
	PChainSignerEmpty                  uint32 = 27
	PChainSignerProofOfPossession      uint32 = 28
)
