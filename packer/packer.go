// Copyright (c) 2024-2026 Firn Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// deterministic binary serialisation
//
// all multi-byte values are big endian; variable length fields carry
// an explicit length prefix.  Errors are sticky: the first overflow,
// underflow or limit failure is latched and every later operation
// becomes a no-op, so a pack or unpack sequence only needs a single
// error check at the end.
package packer

import (
	"encoding/binary"
	"net"

	"github.com/firnlabs/avalanche/fault"
)

// field width constants
const (
	ByteLen  = 1
	ShortLen = 2
	IntLen   = 4
	LongLen  = 8
	BoolLen  = 1
	IPLen    = 16 + ShortLen
)

// default allocation limit, the ceiling on a packed message
const MaxSize = 1<<31 - 1

// Packer - serialiser and deserialiser over one buffer
type Packer struct {
	MaxSize int
	Bytes   []byte
	Offset  int
	Err     error
}

// New - a packer for building a message
func New() *Packer {
	return &Packer{
		MaxSize: MaxSize,
		Bytes:   make([]byte, 0, 128),
	}
}

// FromBytes - a packer for reading an existing message
func FromBytes(buffer []byte) *Packer {
	return &Packer{
		MaxSize: MaxSize,
		Bytes:   buffer,
	}
}

// Errored - true once any operation has failed
func (p *Packer) Errored() bool {
	return nil != p.Err
}

// SetError - latch a decode failure from a caller, first error wins
func (p *Packer) SetError(err error) {
	if nil == p.Err {
		p.Err = err
	}
}

// ensure space for size more bytes when writing
func (p *Packer) expand(size int) bool {
	if p.Errored() {
		return false
	}
	neededSize := p.Offset + size
	if neededSize > p.MaxSize {
		p.SetError(fault.ErrBufferOverflow)
		return false
	}
	if neededSize > len(p.Bytes) {
		if neededSize <= cap(p.Bytes) {
			p.Bytes = p.Bytes[:neededSize]
		} else {
			buffer := make([]byte, neededSize, neededSize*2)
			copy(buffer, p.Bytes)
			p.Bytes = buffer
		}
	}
	return true
}

// ensure size more bytes remain when reading
func (p *Packer) checkSpace(size int) bool {
	if p.Errored() {
		return false
	}
	if p.Offset+size > len(p.Bytes) {
		p.SetError(fault.ErrBufferUnderflow)
		return false
	}
	return true
}

// TakeBytes - the packed bytes accumulated so far
func (p *Packer) TakeBytes() []byte {
	buffer := make([]byte, p.Offset)
	copy(buffer, p.Bytes[:p.Offset])
	return buffer
}

// PackByte - append one byte
func (p *Packer) PackByte(val byte) {
	if !p.expand(ByteLen) {
		return
	}
	p.Bytes[p.Offset] = val
	p.Offset += ByteLen
}

// UnpackByte - read one byte
func (p *Packer) UnpackByte() byte {
	if !p.checkSpace(ByteLen) {
		return 0
	}
	val := p.Bytes[p.Offset]
	p.Offset += ByteLen
	return val
}

// PackShort - append a big endian u16
func (p *Packer) PackShort(val uint16) {
	if !p.expand(ShortLen) {
		return
	}
	binary.BigEndian.PutUint16(p.Bytes[p.Offset:], val)
	p.Offset += ShortLen
}

// UnpackShort - read a big endian u16
func (p *Packer) UnpackShort() uint16 {
	if !p.checkSpace(ShortLen) {
		return 0
	}
	val := binary.BigEndian.Uint16(p.Bytes[p.Offset:])
	p.Offset += ShortLen
	return val
}

// PackInt - append a big endian u32
func (p *Packer) PackInt(val uint32) {
	if !p.expand(IntLen) {
		return
	}
	binary.BigEndian.PutUint32(p.Bytes[p.Offset:], val)
	p.Offset += IntLen
}

// UnpackInt - read a big endian u32
func (p *Packer) UnpackInt() uint32 {
	if !p.checkSpace(IntLen) {
		return 0
	}
	val := binary.BigEndian.Uint32(p.Bytes[p.Offset:])
	p.Offset += IntLen
	return val
}

// PackLong - append a big endian u64
func (p *Packer) PackLong(val uint64) {
	if !p.expand(LongLen) {
		return
	}
	binary.BigEndian.PutUint64(p.Bytes[p.Offset:], val)
	p.Offset += LongLen
}

// UnpackLong - read a big endian u64
func (p *Packer) UnpackLong() uint64 {
	if !p.checkSpace(LongLen) {
		return 0
	}
	val := binary.BigEndian.Uint64(p.Bytes[p.Offset:])
	p.Offset += LongLen
	return val
}

// PackBool - append a bool as one byte, 0 or 1
func (p *Packer) PackBool(val bool) {
	if val {
		p.PackByte(1)
	} else {
		p.PackByte(0)
	}
}

// UnpackBool - read a bool, any non-zero byte is true
func (p *Packer) UnpackBool() bool {
	return 0 != p.UnpackByte()
}

// PackFixedBytes - append bytes with no length prefix
func (p *Packer) PackFixedBytes(buffer []byte) {
	if !p.expand(len(buffer)) {
		return
	}
	copy(p.Bytes[p.Offset:], buffer)
	p.Offset += len(buffer)
}

// UnpackFixedBytes - read an exact number of bytes
func (p *Packer) UnpackFixedBytes(size int) []byte {
	if !p.checkSpace(size) {
		return nil
	}
	buffer := make([]byte, size)
	copy(buffer, p.Bytes[p.Offset:])
	p.Offset += size
	return buffer
}

// PackBytes - append bytes prefixed by a u32 length
func (p *Packer) PackBytes(buffer []byte) {
	p.PackInt(uint32(len(buffer)))
	p.PackFixedBytes(buffer)
}

// UnpackBytes - read a u32 length then that many bytes
func (p *Packer) UnpackBytes() []byte {
	size := p.UnpackInt()
	return p.UnpackFixedBytes(int(size))
}

// Pack2DBytes - append a u32 count of length prefixed byte slices
func (p *Packer) Pack2DBytes(buffers [][]byte) {
	p.PackInt(uint32(len(buffers)))
	for _, buffer := range buffers {
		p.PackBytes(buffer)
	}
}

// Unpack2DBytes - read a u32 count of length prefixed byte slices
func (p *Packer) Unpack2DBytes() [][]byte {
	count := p.UnpackInt()
	buffers := make([][]byte, 0, count)
	for i := uint32(0); i < count && !p.Errored(); i += 1 {
		buffers = append(buffers, p.UnpackBytes())
	}
	if p.Errored() {
		return nil
	}
	return buffers
}

// PackStr - append a string prefixed by a u16 length
func (p *Packer) PackStr(s string) {
	if len(s) > int(^uint16(0)) {
		p.SetError(fault.ErrBufferOverflow)
		return
	}
	p.PackShort(uint16(len(s)))
	p.PackFixedBytes([]byte(s))
}

// UnpackStr - read a u16 length then that many bytes as a string
func (p *Packer) UnpackStr() string {
	size := p.UnpackShort()
	return string(p.UnpackFixedBytes(int(size)))
}

// PackIP - append a 16 byte IP then a u16 port
func (p *Packer) PackIP(ip net.IP, port uint16) {
	ip16 := ip.To16()
	if nil == ip16 {
		p.SetError(fault.ErrInvalidIpAddress)
		return
	}
	p.PackFixedBytes(ip16)
	p.PackShort(port)
}

// UnpackIP - read a 16 byte IP then a u16 port
func (p *Packer) UnpackIP() (net.IP, uint16) {
	ip := net.IP(p.UnpackFixedBytes(16))
	port := p.UnpackShort()
	return ip, port
}
