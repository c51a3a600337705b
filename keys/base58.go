// Copyright (c) 2025 The gobtc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keys

import (
	"errors"
	"math/big"
)

// base58Alphabet omits the visually ambiguous characters 0, O, I, l.
// https://en.bitcoin.it/wiki/Base58Check_encoding
const base58Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

var base58Index = func() map[byte]int64 {
	m := make(map[byte]int64, len(base58Alphabet))
	for i := 0; i < len(base58Alphabet); i++ {
		m[base58Alphabet[i]] = int64(i)
	}
	return m
}()

// ErrInvalidBase58 is returned when a string contains a character outside
// the Base58 alphabet.
var ErrInvalidBase58 = errors.New("keys: invalid base58 string")

// Base58Encode encodes b, preserving leading zero bytes as leading '1'
// characters (the digit for zero in this alphabet).
func Base58Encode(b []byte) string {
	n := new(big.Int).SetBytes(b)

	var chars []byte
	zero := big.NewInt(0)
	base := big.NewInt(58)
	mod := new(big.Int)
	for n.Cmp(zero) > 0 {
		n.DivMod(n, base, mod)
		chars = append(chars, base58Alphabet[mod.Int64()])
	}

	numLeadingZeros := 0
	for _, c := range b {
		if c != 0x00 {
			break
		}
		numLeadingZeros++
	}

	out := make([]byte, 0, numLeadingZeros+len(chars))
	for i := 0; i < numLeadingZeros; i++ {
		out = append(out, base58Alphabet[0])
	}
	for i := len(chars) - 1; i >= 0; i-- {
		out = append(out, chars[i])
	}
	return string(out)
}

// Base58Decode decodes s into exactly size bytes, left-padding with zero
// bytes as needed. It rejects characters outside the Base58 alphabet.
func Base58Decode(s string, size int) ([]byte, error) {
	n := big.NewInt(0)
	base := big.NewInt(58)
	for i := 0; i < len(s); i++ {
		idx, ok := base58Index[s[i]]
		if !ok {
			return nil, ErrInvalidBase58
		}
		n.Mul(n, base)
		n.Add(n, big.NewInt(idx))
	}
	if n.BitLen() > size*8 {
		return nil, ErrInvalidBase58
	}
	return n.FillBytes(make([]byte, size)), nil
}
