// Copyright (c) 2025 The gobtc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package hash implements the SHA-256 and RIPEMD-160 hash primitives from
// their respective specifications, plus the HASH160 and hash256 composites
// used pervasively by Bitcoin. No platform hash library is used here: this
// package exists to demonstrate the algorithms, not to be fast.
package hash

import "encoding/binary"

// sha256K are the 64 round constants: the first 32 bits of the fractional
// parts of the cube roots of the first 64 prime numbers (FIPS 180-4 §4.2.2).
var sha256K = [64]uint32{
	0x428a2f98, 0x71374491, 0xb5c0fbcf, 0xe9b5dba5, 0x3956c25b, 0x59f111f1, 0x923f82a4, 0xab1c5ed5,
	0xd807aa98, 0x12835b01, 0x243185be, 0x550c7dc3, 0x72be5d74, 0x80deb1fe, 0x9bdc06a7, 0xc19bf174,
	0xe49b69c1, 0xefbe4786, 0x0fc19dc6, 0x240ca1cc, 0x2de92c6f, 0x4a7484aa, 0x5cb0a9dc, 0x76f988da,
	0x983e5152, 0xa831c66d, 0xb00327c8, 0xbf597fc7, 0xc6e00bf3, 0xd5a79147, 0x06ca6351, 0x14292967,
	0x27b70a85, 0x2e1b2138, 0x4d2c6dfc, 0x53380d13, 0x650a7354, 0x766a0abb, 0x81c2c92e, 0x92722c85,
	0xa2bfe8a1, 0xa81a664b, 0xc24b8b70, 0xc76c51a3, 0xd192e819, 0xd6990624, 0xf40e3585, 0x106aa070,
	0x19a4c116, 0x1e376c08, 0x2748774c, 0x34b0bcb5, 0x391c0cb3, 0x4ed8aa4a, 0x5b9cca4f, 0x682e6ff3,
	0x748f82ee, 0x78a5636f, 0x84c87814, 0x8cc70208, 0x90befffa, 0xa4506ceb, 0xbef9a3f7, 0xc67178f2,
}

// sha256H0 is the initial hash value H^0: the first 32 bits of the
// fractional parts of the square roots of the first 8 prime numbers
// (FIPS 180-4 §5.3.3).
var sha256H0 = [8]uint32{
	0x6a09e667, 0xbb67ae85, 0x3c6ef372, 0xa54ff53a,
	0x510e527f, 0x9b05688c, 0x1f83d9ab, 0x5be0cd19,
}

func rotr(x uint32, n uint) uint32 {
	return (x >> n) | (x << (32 - n))
}

func sig0(x uint32) uint32 { return rotr(x, 7) ^ rotr(x, 18) ^ (x >> 3) }
func sig1(x uint32) uint32 { return rotr(x, 17) ^ rotr(x, 19) ^ (x >> 10) }

func capsig0(x uint32) uint32 { return rotr(x, 2) ^ rotr(x, 13) ^ rotr(x, 22) }
func capsig1(x uint32) uint32 { return rotr(x, 6) ^ rotr(x, 11) ^ rotr(x, 25) }

func ch(x, y, z uint32) uint32  { return (x & y) ^ (^x & z) }
func maj(x, y, z uint32) uint32 { return (x & y) ^ (x & z) ^ (y & z) }

// pad implements FIPS 180-4 §5.1: append a single 1 bit, then zero bits
// until the length is congruent to 448 mod 512, then the 64-bit big-endian
// original message length in bits.
func pad(b []byte) []byte {
	bitLen := uint64(len(b)) * 8

	out := make([]byte, len(b), len(b)+128)
	copy(out, b)
	out = append(out, 0x80)
	for len(out)%64 != 56 {
		out = append(out, 0x00)
	}

	var lenBytes [8]byte
	binary.BigEndian.PutUint64(lenBytes[:], bitLen)
	out = append(out, lenBytes[:]...)
	return out
}

// SHA256 returns the SHA-256 digest of b, following FIPS 180-4 exactly.
func SHA256(b []byte) [32]byte {
	padded := pad(b)

	h := sha256H0

	var w [64]uint32
	for off := 0; off < len(padded); off += 64 {
		block := padded[off : off+64]

		for t := 0; t < 16; t++ {
			w[t] = binary.BigEndian.Uint32(block[t*4 : t*4+4])
		}
		for t := 16; t < 64; t++ {
			w[t] = sig1(w[t-2]) + w[t-7] + sig0(w[t-15]) + w[t-16]
		}

		a, bb, c, d, e, f, g, hh := h[0], h[1], h[2], h[3], h[4], h[5], h[6], h[7]

		for t := 0; t < 64; t++ {
			t1 := hh + capsig1(e) + ch(e, f, g) + sha256K[t] + w[t]
			t2 := capsig0(a) + maj(a, bb, c)
			hh = g
			g = f
			f = e
			e = d + t1
			d = c
			c = bb
			bb = a
			a = t1 + t2
		}

		h[0] += a
		h[1] += bb
		h[2] += c
		h[3] += d
		h[4] += e
		h[5] += f
		h[6] += g
		h[7] += hh
	}

	var out [32]byte
	for i, word := range h {
		binary.BigEndian.PutUint32(out[i*4:i*4+4], word)
	}
	return out
}
