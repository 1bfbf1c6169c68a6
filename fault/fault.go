// Copyright (c) 2024-2026 Firn Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// error instances
//
// Provides a single instance of errors to allow easy comparison
package fault

// error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	ErrAddressDecodeFail      = InvalidError("address decode failed")
	ErrBufferOverflow         = ProcessError("buffer overflow")
	ErrBufferUnderflow        = ProcessError("buffer underflow")
	ErrChecksumMismatch       = InvalidError("checksum mismatch")
	ErrInsufficientFunds      = ProcessError("insufficient funds")
	ErrInvalidBase58String    = InvalidError("invalid base58 string")
	ErrInvalidChainAlias      = InvalidError("invalid chain alias")
	ErrInvalidHexString       = InvalidError("invalid hex string")
	ErrInvalidIdLength        = LengthError("id length is invalid")
	ErrInvalidIpAddress       = InvalidError("invalid ip address")
	ErrInvalidKeyLength       = LengthError("key length is invalid")
	ErrInvalidMnemonic        = InvalidError("invalid mnemonic phrase")
	ErrInvalidNodeIdLength    = LengthError("node id length is invalid")
	ErrInvalidPrivateKey      = InvalidError("invalid private key")
	ErrInvalidPublicKey       = InvalidError("invalid public key")
	ErrInvalidShortIdLength   = LengthError("short id length is invalid")
	ErrInvalidSignature       = InvalidError("invalid signature")
	ErrInvalidSignatureLength = LengthError("signature length is invalid")
	ErrInvalidThreshold       = InvalidError("invalid threshold")
	ErrKeyNotFound            = NotFoundError("key for address not found")
	ErrLockedFunds            = ProcessError("insufficient unlocked funds")
	ErrMissingKeyPrefix       = InvalidError("missing private key prefix")
	ErrNotEnoughSignatures    = ProcessError("not enough signatures")
	ErrRpcRequestFail         = ProcessError("rpc request failed")
	ErrRpcResponseFail        = ProcessError("rpc response decode failed")
	ErrSignatureRecoveryFail  = ProcessError("signature recovery failed")
	ErrTransactionNotSigned   = ProcessError("transaction is not signed")
	ErrTransactionRejected    = ProcessError("transaction was rejected")
	ErrUnexpectedCodecVersion = RecordError("unexpected codec version")
	ErrUnexpectedTypeId       = RecordError("unexpected type id")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool   { _, ok := e.(RecordError); return ok }
