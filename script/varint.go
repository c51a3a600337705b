// Copyright (c) 2025 The gobtc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package script

import (
	"encoding/binary"
	"io"
)

// ReadVarint decodes Bitcoin's variable-length integer encoding from r:
// a single byte below 0xfd encodes itself; 0xfd/0xfe/0xff prefix a
// following little-endian 2/4/8-byte value.
func ReadVarint(r io.Reader) (uint64, error) {
	return readVarint(r)
}

func readVarint(r io.Reader) (uint64, error) {
	var b [1]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}

	switch b[0] {
	case 0xfd:
		var buf [2]byte
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return 0, err
		}
		return uint64(binary.LittleEndian.Uint16(buf[:])), nil
	case 0xfe:
		var buf [4]byte
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return 0, err
		}
		return uint64(binary.LittleEndian.Uint32(buf[:])), nil
	case 0xff:
		var buf [8]byte
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return 0, err
		}
		return binary.LittleEndian.Uint64(buf[:]), nil
	default:
		return uint64(b[0]), nil
	}
}

// EncodeVarint returns the Bitcoin varint encoding of i.
func EncodeVarint(i uint64) []byte {
	return appendVarint(nil, i)
}

func appendVarint(out []byte, i uint64) []byte {
	switch {
	case i < 0xfd:
		return append(out, byte(i))
	case i < 0x10000:
		buf := make([]byte, 2)
		binary.LittleEndian.PutUint16(buf, uint16(i))
		return append(append(out, 0xfd), buf...)
	case i < 0x100000000:
		buf := make([]byte, 4)
		binary.LittleEndian.PutUint32(buf, uint32(i))
		return append(append(out, 0xfe), buf...)
	default:
		buf := make([]byte, 8)
		binary.LittleEndian.PutUint64(buf, i)
		return append(append(out, 0xff), buf...)
	}
}
