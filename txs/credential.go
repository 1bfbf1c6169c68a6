// Copyright (c) 2024-2026 Firn Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txs

import (
	"github.com/firnlabs/avalanche/codec"
	"github.com/firnlabs/avalanche/packer"
)

// Credential - the signatures authorising one input
type Credential struct {
	Sigs [][]byte
}

// Pack - append the credential type id, count and raw signatures
func (c *Credential) Pack(p *packer.Packer) {
	p.PackInt(codec.XChainSecp256k1Credential)
	p.PackInt(uint32(len(c.Sigs)))
	for _, sig := range c.Sigs {
		p.PackFixedBytes(sig)
	}
}
