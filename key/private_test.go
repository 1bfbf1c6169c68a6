// Copyright (c) 2024-2026 Firn Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package key_test

import (
	"bytes"
	"testing"

	"github.com/firnlabs/avalanche/constants"
	"github.com/firnlabs/avalanche/fault"
	"github.com/firnlabs/avalanche/hash"
	"github.com/firnlabs/avalanche/key"
)

// well known test key, also used by the transaction fixtures
const testPrivateKey = "PrivateKey-24jUJ9vZexUM6expyMcT48LBx27k1m7xpraoV62oSQAHdziao5"

// addresses derived from the test key
const (
	testXAddress     = "X-avax1qwmslrrqdv4slxvynhy9csq069l0u8mqwjzmcd"
	testShortAddress = "039ScUQpirWfYz9wLHNMTEmqPSi8dDx4u"
	testEthAddress   = "0x613040a239BDfCF110969fecB41c6f92EA3515C0"
)

func TestPrivateKeyString(t *testing.T) {

	k, err := key.PrivateKeyFromString(testPrivateKey)
	if nil != err {
		t.Fatalf("from string error: %s", err)
	}

	if testPrivateKey != k.String() {
		t.Fatalf("string: %q  expected: %q", k.String(), testPrivateKey)
	}

	back, err := key.PrivateKeyFromBytes(k.Bytes())
	if nil != err {
		t.Fatalf("from bytes error: %s", err)
	}
	if !bytes.Equal(back.Bytes(), k.Bytes()) {
		t.Fatal("bytes round trip mismatch")
	}
}

func TestPrivateKeyFromStringInvalid(t *testing.T) {

	_, err := key.PrivateKeyFromString("24jUJ9vZexUM6expyMcT48LBx27k1m7xpraoV62oSQAHdziao5")
	if fault.ErrMissingKeyPrefix != err {
		t.Fatalf("error: %v  expected: %v", err, fault.ErrMissingKeyPrefix)
	}

	_, err = key.PrivateKeyFromString("PrivateKey-not+base58")
	if nil == err {
		t.Fatal("invalid base58 accepted")
	}

	_, err = key.PrivateKeyFromBytes(make([]byte, 31))
	if fault.ErrInvalidKeyLength != err {
		t.Fatalf("error: %v  expected: %v", err, fault.ErrInvalidKeyLength)
	}

	_, err = key.PrivateKeyFromBytes(make([]byte, 32))
	if fault.ErrInvalidPrivateKey != err {
		t.Fatalf("error: %v  expected: %v", err, fault.ErrInvalidPrivateKey)
	}
}

func TestAddresses(t *testing.T) {

	k, err := key.PrivateKeyFromString(testPrivateKey)
	if nil != err {
		t.Fatalf("from string error: %s", err)
	}
	pub := k.PublicKey()

	if testShortAddress != pub.ShortAddress().String() {
		t.Errorf("short address: %q  expected: %q",
			pub.ShortAddress().String(), testShortAddress)
	}

	addr, err := pub.Address(constants.XChainAlias, constants.MainnetHrp)
	if nil != err {
		t.Fatalf("address error: %s", err)
	}
	if testXAddress != addr {
		t.Errorf("address: %q  expected: %q", addr, testXAddress)
	}

	if testEthAddress != pub.EthAddress() {
		t.Errorf("eth address: %q  expected: %q", pub.EthAddress(), testEthAddress)
	}
}

func TestParseAddress(t *testing.T) {

	k, _ := key.PrivateKeyFromString(testPrivateKey)

	chain, hrp, short, err := key.ParseAddress(testXAddress)
	if nil != err {
		t.Fatalf("parse error: %s", err)
	}
	if constants.XChainAlias != chain {
		t.Errorf("chain: %q  expected: %q", chain, constants.XChainAlias)
	}
	if constants.MainnetHrp != hrp {
		t.Errorf("hrp: %q  expected: %q", hrp, constants.MainnetHrp)
	}
	if k.PublicKey().ShortAddress() != short {
		t.Errorf("short id: %v  expected: %v", short, k.PublicKey().ShortAddress())
	}

	_, _, _, err = key.ParseAddress("avax1qwmslrrqdv4slxvynhy9csq069l0u8mqwjzmcd")
	if nil == err {
		t.Fatal("address without chain part accepted")
	}
}

func TestSignAndRecover(t *testing.T) {

	k, err := key.PrivateKeyFromString(testPrivateKey)
	if nil != err {
		t.Fatalf("from string error: %s", err)
	}

	digest := hash.Sha256([]byte("payment of 1000 to the staking pool"))
	sig, err := k.SignDigest(digest[:])
	if nil != err {
		t.Fatalf("sign error: %s", err)
	}
	if key.SignatureLength != len(sig) {
		t.Fatalf("signature length: %d  expected: %d", len(sig), key.SignatureLength)
	}

	if !k.PublicKey().Verify(digest[:], sig) {
		t.Fatal("signature did not verify")
	}

	recovered, err := key.RecoverPublicKey(digest[:], sig)
	if nil != err {
		t.Fatalf("recover error: %s", err)
	}
	if !bytes.Equal(recovered.Bytes(), k.PublicKey().Bytes()) {
		t.Fatal("recovered key mismatch")
	}

	// a corrupted signature must fail verification
	bad := make([]byte, len(sig))
	copy(bad, sig)
	bad[10] ^= 0x01
	if k.PublicKey().Verify(digest[:], bad) {
		t.Fatal("corrupted signature verified")
	}

	_, err = key.RecoverPublicKey(digest[:], sig[:64])
	if fault.ErrInvalidSignatureLength != err {
		t.Fatalf("error: %v  expected: %v", err, fault.ErrInvalidSignatureLength)
	}
}

func TestGenerate(t *testing.T) {

	a, err := key.Generate()
	if nil != err {
		t.Fatalf("generate error: %s", err)
	}
	b, err := key.Generate()
	if nil != err {
		t.Fatalf("generate error: %s", err)
	}
	if bytes.Equal(a.Bytes(), b.Bytes()) {
		t.Fatal("two generated keys identical")
	}

	digest := hash.Sha256([]byte("message"))
	sig, err := a.SignDigest(digest[:])
	if nil != err {
		t.Fatalf("sign error: %s", err)
	}
	if b.PublicKey().Verify(digest[:], sig) {
		t.Fatal("signature verified under the wrong key")
	}
}

func TestMnemonic(t *testing.T) {

	phrase, err := key.NewMnemonic()
	if nil != err {
		t.Fatalf("mnemonic error: %s", err)
	}

	a, err := key.PrivateKeyFromMnemonic(phrase)
	if nil != err {
		t.Fatalf("derive error: %s", err)
	}
	b, err := key.PrivateKeyFromMnemonic(phrase)
	if nil != err {
		t.Fatalf("derive error: %s", err)
	}
	if !bytes.Equal(a.Bytes(), b.Bytes()) {
		t.Fatal("derivation not deterministic")
	}

	_, err = key.PrivateKeyFromMnemonic("not a valid phrase")
	if fault.ErrInvalidMnemonic != err {
		t.Fatalf("error: %v  expected: %v", err, fault.ErrInvalidMnemonic)
	}
}
