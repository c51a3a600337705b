// Copyright (c) 2025 The gobtc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hash

import "encoding/binary"

// ripemd160 round constants and message-word/shift schedules, taken
// directly from the original algorithm specification (Dobbertin, Bosselaers,
// Preneel, 1996). There is no reference implementation of this hash
// elsewhere in this module's lineage; it is transcribed from the published
// round tables rather than adapted from existing source.

var rmdZeroes = [5]uint32{0x00000000, 0x5a827999, 0x6ed9eba1, 0x8f1bbcdc, 0xa953fd4e}
var rmdOnes = [5]uint32{0x50a28be6, 0x5c4dd124, 0x6d703ef3, 0x7a6d76e9, 0x00000000}

var rmdRL = [5][16]uint{
	{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15},
	{7, 4, 13, 1, 10, 6, 15, 3, 12, 0, 9, 5, 2, 14, 11, 8},
	{3, 10, 14, 4, 9, 15, 8, 1, 2, 7, 0, 6, 13, 11, 5, 12},
	{1, 9, 11, 10, 0, 8, 12, 4, 13, 3, 7, 15, 14, 5, 6, 2},
	{4, 0, 5, 9, 7, 12, 2, 10, 14, 1, 3, 8, 11, 6, 15, 13},
}

var rmdRR = [5][16]uint{
	{5, 14, 7, 0, 9, 2, 11, 4, 13, 6, 15, 8, 1, 10, 3, 12},
	{6, 11, 3, 7, 0, 13, 5, 10, 14, 15, 8, 12, 4, 9, 1, 2},
	{15, 5, 1, 3, 7, 14, 6, 9, 11, 8, 12, 2, 10, 0, 4, 13},
	{8, 6, 4, 1, 3, 11, 15, 0, 5, 12, 2, 13, 9, 7, 10, 14},
	{12, 15, 10, 4, 1, 5, 8, 7, 6, 2, 13, 14, 0, 3, 9, 11},
}

var rmdSL = [5][16]uint{
	{11, 14, 15, 12, 5, 8, 7, 9, 11, 13, 14, 15, 6, 7, 9, 8},
	{7, 6, 8, 13, 11, 9, 7, 15, 7, 12, 15, 9, 11, 7, 13, 12},
	{11, 13, 6, 7, 14, 9, 13, 15, 14, 8, 13, 6, 5, 12, 7, 5},
	{11, 12, 14, 15, 14, 15, 9, 8, 9, 14, 5, 6, 8, 6, 5, 12},
	{9, 15, 5, 11, 6, 8, 13, 12, 5, 12, 13, 14, 11, 8, 5, 6},
}

var rmdSR = [5][16]uint{
	{8, 9, 9, 11, 13, 15, 15, 5, 7, 7, 8, 11, 14, 14, 12, 6},
	{9, 13, 15, 7, 12, 8, 9, 11, 7, 7, 12, 7, 6, 15, 13, 11},
	{9, 7, 15, 11, 8, 6, 6, 14, 12, 13, 5, 14, 13, 13, 7, 5},
	{15, 5, 8, 11, 14, 14, 6, 14, 6, 9, 12, 9, 12, 5, 15, 8},
	{8, 5, 12, 9, 12, 5, 14, 6, 8, 13, 6, 5, 15, 13, 11, 11},
}

func rmdF(j int, x, y, z uint32) uint32 {
	switch {
	case j < 16:
		return x ^ y ^ z
	case j < 32:
		return (x & y) | (^x & z)
	case j < 48:
		return (x | ^y) ^ z
	case j < 64:
		return (x & z) | (y & ^z)
	default:
		return x ^ (y | ^z)
	}
}

func rol(x uint32, n uint) uint32 {
	return (x << n) | (x >> (32 - n))
}

// ripemdPad pads a message per MD4/MD5-style little-endian length framing:
// a 1 bit, zero bits to 448 mod 512, then the 64-bit little-endian bit
// length.
func ripemdPad(b []byte) []byte {
	bitLen := uint64(len(b)) * 8

	out := make([]byte, len(b), len(b)+128)
	copy(out, b)
	out = append(out, 0x80)
	for len(out)%64 != 56 {
		out = append(out, 0x00)
	}

	var lenBytes [8]byte
	binary.LittleEndian.PutUint64(lenBytes[:], bitLen)
	out = append(out, lenBytes[:]...)
	return out
}

// RIPEMD160 returns the RIPEMD-160 digest of b.
func RIPEMD160(b []byte) [20]byte {
	padded := ripemdPad(b)

	h0, h1, h2, h3, h4 := uint32(0x67452301), uint32(0xefcdab89), uint32(0x98badcfe), uint32(0x10325476), uint32(0xc3d2e1f0)

	var x [16]uint32
	for off := 0; off < len(padded); off += 64 {
		block := padded[off : off+64]
		for i := 0; i < 16; i++ {
			x[i] = binary.LittleEndian.Uint32(block[i*4 : i*4+4])
		}

		al, bl, cl, dl, el := h0, h1, h2, h3, h4
		ar, br, cr, dr, er := h0, h1, h2, h3, h4

		for j := 0; j < 80; j++ {
			round := j / 16

			t := al + rmdF(j, bl, cl, dl) + x[rmdRL[round][j%16]] + rmdZeroes[round]
			t = rol(t, rmdSL[round][j%16]) + el
			al, el, dl, cl, bl = el, dl, rol(cl, 10), bl, t

			roundR := j / 16
			t = ar + rmdF(79-j, br, cr, dr) + x[rmdRR[roundR][j%16]] + rmdOnes[roundR]
			t = rol(t, rmdSR[roundR][j%16]) + er
			ar, er, dr, cr, br = er, dr, rol(cr, 10), br, t
		}

		t := h1 + cl + dr
		h1 = h2 + dl + er
		h2 = h3 + el + ar
		h3 = h4 + al + br
		h4 = h0 + bl + cr
		h0 = t
	}

	var out [20]byte
	binary.LittleEndian.PutUint32(out[0:4], h0)
	binary.LittleEndian.PutUint32(out[4:8], h1)
	binary.LittleEndian.PutUint32(out[8:12], h2)
	binary.LittleEndian.PutUint32(out[12:16], h3)
	binary.LittleEndian.PutUint32(out[16:20], h4)
	return out
}
