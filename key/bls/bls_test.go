// Copyright (c) 2024-2026 Firn Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bls_test

import (
	"bytes"
	"testing"

	"github.com/firnlabs/avalanche/key/bls"
)

func TestSecretKeyBytes(t *testing.T) {

	sk, err := bls.NewSecretKey()
	if nil != err {
		t.Fatalf("new secret key error: %s", err)
	}

	back, err := bls.SecretKeyFromBytes(sk.Bytes())
	if nil != err {
		t.Fatalf("from bytes error: %s", err)
	}
	if !bytes.Equal(back.Bytes(), sk.Bytes()) {
		t.Fatal("secret key round trip mismatch")
	}

	_, err = bls.SecretKeyFromBytes(make([]byte, 31))
	if nil == err {
		t.Fatal("short secret key accepted")
	}
}

func TestSignVerify(t *testing.T) {

	sk, err := bls.NewSecretKey()
	if nil != err {
		t.Fatalf("new secret key error: %s", err)
	}
	pk := sk.PublicKey()

	message := []byte("delegation weight announcement")
	sig, err := sk.Sign(message)
	if nil != err {
		t.Fatalf("sign error: %s", err)
	}

	if !bls.Verify(pk, message, sig) {
		t.Fatal("signature did not verify")
	}
	if bls.Verify(pk, []byte("another message"), sig) {
		t.Fatal("signature verified for a different message")
	}

	other, _ := bls.NewSecretKey()
	if bls.Verify(other.PublicKey(), message, sig) {
		t.Fatal("signature verified under the wrong key")
	}

	// message and possession signatures use separate domains
	if bls.VerifyProofOfPossession(pk, message, sig) {
		t.Fatal("message signature verified in the possession domain")
	}
}

func TestKeySerialisation(t *testing.T) {

	sk, err := bls.NewSecretKey()
	if nil != err {
		t.Fatalf("new secret key error: %s", err)
	}
	pk := sk.PublicKey()

	pkBytes := pk.Bytes()
	if bls.PublicKeyLength != len(pkBytes) {
		t.Fatalf("public key length: %d  expected: %d", len(pkBytes), bls.PublicKeyLength)
	}
	back, err := bls.PublicKeyFromBytes(pkBytes)
	if nil != err {
		t.Fatalf("public key from bytes error: %s", err)
	}
	if !bytes.Equal(back.Bytes(), pkBytes) {
		t.Fatal("public key round trip mismatch")
	}

	sig, err := sk.Sign([]byte("message"))
	if nil != err {
		t.Fatalf("sign error: %s", err)
	}
	sigBytes := sig.Bytes()
	if bls.SignatureLength != len(sigBytes) {
		t.Fatalf("signature length: %d  expected: %d", len(sigBytes), bls.SignatureLength)
	}
	sigBack, err := bls.SignatureFromBytes(sigBytes)
	if nil != err {
		t.Fatalf("signature from bytes error: %s", err)
	}
	if !bls.Verify(pk, []byte("message"), sigBack) {
		t.Fatal("re-parsed signature did not verify")
	}
}

func TestProofOfPossession(t *testing.T) {

	sk, err := bls.NewSecretKey()
	if nil != err {
		t.Fatalf("new secret key error: %s", err)
	}

	pop, err := bls.NewProofOfPossession(sk)
	if nil != err {
		t.Fatalf("new proof error: %s", err)
	}
	if err := pop.Verify(); nil != err {
		t.Fatalf("verify error: %s", err)
	}

	// substituting another key's proof must fail
	other, _ := bls.NewSecretKey()
	otherPop, err := bls.NewProofOfPossession(other)
	if nil != err {
		t.Fatalf("new proof error: %s", err)
	}
	pop.Proof = otherPop.Proof
	if err := pop.Verify(); nil == err {
		t.Fatal("mismatched proof verified")
	}
}
