// Copyright (c) 2025 The gobtc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package signature

import "math/big"

// EncodeDER returns the strict DER encoding of sig per BIP-0062:
//
//	0x30 [total-length] 0x02 [R-length] [R] 0x02 [S-length] [S]
//
// Each of R and S is big-endian with leading zero bytes stripped, except
// that a single 0x00 is reintroduced when the high bit of the first
// remaining byte is set (so the value is never misread as negative). The
// trailing sighash-type byte Bitcoin transactions append is not part of
// this encoding.
func (sig Signature) EncodeDER() []byte {
	rb := derInt(sig.R)
	sb := derInt(sig.S)

	content := make([]byte, 0, 4+len(rb)+len(sb))
	content = append(content, 0x02, byte(len(rb)))
	content = append(content, rb...)
	content = append(content, 0x02, byte(len(sb)))
	content = append(content, sb...)

	out := make([]byte, 0, 2+len(content))
	out = append(out, 0x30, byte(len(content)))
	out = append(out, content...)
	return out
}

func derInt(n *big.Int) []byte {
	b := n.Bytes()
	for len(b) > 0 && b[0] == 0x00 {
		b = b[1:]
	}
	if len(b) == 0 {
		b = []byte{0x00}
	}
	if b[0] >= 0x80 {
		b = append([]byte{0x00}, b...)
	}
	return b
}

// DecodeDER parses a strict DER-encoded signature (without a trailing
// sighash-type byte).
func DecodeDER(der []byte) (Signature, error) {
	if len(der) < 2 || der[0] != 0x30 {
		return Signature{}, ErrInvalidDER
	}

	length := int(der[1])
	if length != len(der)-2 {
		return Signature{}, ErrInvalidDER
	}

	rest := der[2:]
	r, rest, err := readDERInt(rest)
	if err != nil {
		return Signature{}, err
	}
	s, rest, err := readDERInt(rest)
	if err != nil {
		return Signature{}, err
	}
	if len(rest) != 0 {
		return Signature{}, ErrInvalidDER
	}

	return Signature{R: r, S: s}, nil
}

func readDERInt(b []byte) (*big.Int, []byte, error) {
	if len(b) < 2 || b[0] != 0x02 {
		return nil, nil, ErrInvalidDER
	}
	n := int(b[1])
	if len(b) < 2+n {
		return nil, nil, ErrInvalidDER
	}
	val := new(big.Int).SetBytes(b[2 : 2+n])
	return val, b[2+n:], nil
}
