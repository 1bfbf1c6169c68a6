// Copyright (c) 2024-2026 Firn Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txs

import (
	"github.com/firnlabs/avalanche/fault"
	"github.com/firnlabs/avalanche/hash"
	"github.com/firnlabs/avalanche/ids"
	"github.com/firnlabs/avalanche/packer"
)

// Metadata - the result of signing a transaction
//
// Id is the SHA-256 of the signed bytes and is the id the network
// knows the transaction by
type Metadata struct {
	Id            ids.Id
	UnsignedBytes []byte
	SignedBytes   []byte
}

// Verify - confirm the metadata has been populated by signing
func (m *Metadata) Verify() error {
	if 0 == len(m.SignedBytes) || m.Id.IsEmpty() {
		return fault.ErrTransactionNotSigned
	}
	return nil
}

// Sign - complete the signing protocol over an unsigned transaction
//
// the packer must hold the full unsigned transaction: codec version,
// type id, base fields and the type specific trailer.  A snapshot of
// those bytes is hashed and every signer group signs the digest; the
// credentials are appended, one per input, in input order
func Sign(p *packer.Packer, signers [][]Signer) (Metadata, error) {
	if p.Errored() {
		return Metadata{}, p.Err
	}
	unsignedBytes := p.TakeBytes()
	digest := hash.Sha256(unsignedBytes)

	p.PackInt(uint32(len(signers)))
	for _, group := range signers {
		cred := Credential{}
		for _, signer := range group {
			sig, err := signer.SignDigest(digest[:])
			if nil != err {
				return Metadata{}, err
			}
			cred.Sigs = append(cred.Sigs, sig)
		}
		cred.Pack(p)
	}
	if p.Errored() {
		return Metadata{}, p.Err
	}

	signedBytes := p.TakeBytes()
	return Metadata{
		Id:            ids.Id(hash.Sha256(signedBytes)),
		UnsignedBytes: unsignedBytes,
		SignedBytes:   signedBytes,
	}, nil
}
