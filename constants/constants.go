// Copyright (c) 2024-2026 Firn Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// well known network numbers and their address prefixes
package constants

// reserved network ids
const (
	MainnetId uint32 = 1
	FujiId    uint32 = 5
	LocalId   uint32 = 12345
)

// human readable address prefixes
const (
	MainnetHrp  = "avax"
	FujiHrp     = "fuji"
	LocalHrp    = "local"
	FallbackHrp = "custom"
)

// default transaction fees in nano units
const (
	DefaultTxFee           uint64 = 1_000_000
	DefaultCreateSubnetFee uint64 = 1_000_000_000
	DefaultCreateChainFee  uint64 = 1_000_000_000
)

// chain aliases
const (
	XChainAlias = "X"
	PChainAlias = "P"
	CChainAlias = "C"
)

var networkNames = map[uint32]string{
	MainnetId: "mainnet",
	FujiId:    "fuji",
	LocalId:   "local",
}

var networkHrps = map[uint32]string{
	MainnetId: MainnetHrp,
	FujiId:    FujiHrp,
	LocalId:   LocalHrp,
}

// NetworkName - the well known name of a network id
func NetworkName(networkId uint32) string {
	if name, ok := networkNames[networkId]; ok {
		return name
	}
	return "custom"
}

// HrpForNetwork - the bech32 prefix used by a network's addresses
func HrpForNetwork(networkId uint32) string {
	if hrp, ok := networkHrps[networkId]; ok {
		return hrp
	}
	return FallbackHrp
}
