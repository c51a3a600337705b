// Copyright (c) 2025 The gobtc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package keys implements secret/public key generation, the SEC public key
// encoding, and Base58Check address derivation and parsing.
package keys

import (
	"crypto/rand"
	"errors"
	"math/big"

	"github.com/btcedu/gobtc/ecc"
	"github.com/btcedu/gobtc/hash"
)

// ErrInvalidAddress is returned when a Base58Check string does not decode
// to 25 bytes or fails checksum validation. The version byte is not checked.
var ErrInvalidAddress = errors.New("keys: invalid address")

// ErrInvalidPublicKey is returned when a SEC-encoded byte string is
// malformed or has an unrecognized prefix.
var ErrInvalidPublicKey = errors.New("keys: invalid public key encoding")

// Net identifies which of the two Bitcoin networks an address belongs to.
type Net int

const (
	MainNet Net = iota
	TestNet
)

func (n Net) versionByte() byte {
	if n == TestNet {
		return 0x6f
	}
	return 0x00
}

// GenerateSecretKey draws a uniformly random integer in [1, n) using the OS
// CSPRNG, rejecting and redrawing out-of-range samples.
func GenerateSecretKey(n *big.Int) (*big.Int, error) {
	one := big.NewInt(1)
	for {
		buf := make([]byte, 32)
		if _, err := rand.Read(buf); err != nil {
			return nil, err
		}
		key := new(big.Int).SetBytes(buf)
		if key.Cmp(one) >= 0 && key.Cmp(n) < 0 {
			return key, nil
		}
	}
}

// PublicKey is a point on secp256k1 with Bitcoin-specific encode/decode and
// address-derivation behavior layered on top.
type PublicKey struct {
	Point ecc.Point
}

// FromSecretKey derives the public key pk = sk*G for a secret key sk.
func FromSecretKey(sk *big.Int) PublicKey {
	return PublicKey{Point: ecc.G.ScalarMul(sk)}
}

// DecodeSEC decodes a public key from its SEC binary representation,
// recovering the y-coordinate from the curve equation in the compressed
// case via the modular square root y = (y^2)^((p+1)/4) mod p (valid because
// p % 4 == 3 for secp256k1).
func DecodeSEC(b []byte) (PublicKey, error) {
	if len(b) == 65 && b[0] == 0x04 {
		x := new(big.Int).SetBytes(b[1:33])
		y := new(big.Int).SetBytes(b[33:65])
		pt, ok := ecc.NewPointOnCurve(ecc.S256, x, y)
		if !ok {
			return PublicKey{}, ErrInvalidPublicKey
		}
		return PublicKey{Point: pt}, nil
	}

	if len(b) == 33 && (b[0] == 0x02 || b[0] == 0x03) {
		isEven := b[0] == 0x02
		x := new(big.Int).SetBytes(b[1:])

		p := ecc.S256.P
		y2 := new(big.Int).Exp(x, big.NewInt(3), p)
		y2.Add(y2, ecc.S256.B)
		y2.Mod(y2, p)

		exp := new(big.Int).Add(p, big.NewInt(1))
		exp.Rsh(exp, 2)
		y := new(big.Int).Exp(y2, exp, p)

		if (y.Bit(0) == 0) != isEven {
			y.Sub(p, y)
		}

		pt, ok := ecc.NewPointOnCurve(ecc.S256, x, y)
		if !ok {
			return PublicKey{}, ErrInvalidPublicKey
		}
		return PublicKey{Point: pt}, nil
	}

	return PublicKey{}, ErrInvalidPublicKey
}

// EncodeSEC returns the SEC binary encoding of pk: compressed (33 bytes,
// 0x02/0x03 prefix by y-parity) or uncompressed (65 bytes, 0x04 prefix).
func (pk PublicKey) EncodeSEC(compressed bool) []byte {
	x := pk.Point.X().FillBytes(make([]byte, 32))

	if compressed {
		prefix := byte(0x02)
		if pk.Point.Y().Bit(0) != 0 {
			prefix = 0x03
		}
		return append([]byte{prefix}, x...)
	}

	y := pk.Point.Y().FillBytes(make([]byte, 32))
	out := make([]byte, 0, 65)
	out = append(out, 0x04)
	out = append(out, x...)
	out = append(out, y...)
	return out
}

// Hash160 returns HASH160(SEC(pk)), the payload used to build an address.
func (pk PublicKey) Hash160(compressed bool) [20]byte {
	return hash.Hash160(pk.EncodeSEC(compressed))
}

// Address returns the Base58Check Bitcoin address for pk on the given
// network.
func (pk PublicKey) Address(net Net, compressed bool) string {
	h := pk.Hash160(compressed)
	payload := append([]byte{net.versionByte()}, h[:]...)
	return EncodeAddress(payload)
}

// EncodeAddress appends a 4-byte Hash256 checksum to a version+payload byte
// string and Base58-encodes the result.
func EncodeAddress(versionAndPayload []byte) string {
	checksum := hash.Hash256(versionAndPayload)
	full := append(append([]byte{}, versionAndPayload...), checksum[:4]...)
	return Base58Encode(full)
}

// DecodeAddress parses a Base58Check address, validates its checksum, and
// returns the version byte and the 20-byte hash160 payload.
func DecodeAddress(address string) (byte, [20]byte, error) {
	raw, err := Base58Decode(address, 25)
	if err != nil {
		return 0, [20]byte{}, ErrInvalidAddress
	}

	body, checksum := raw[:21], raw[21:]
	want := hash.Hash256(body)
	if !bytesEqual(want[:4], checksum) {
		return 0, [20]byte{}, ErrInvalidAddress
	}

	var h [20]byte
	copy(h[:], body[1:])
	return body[0], h, nil
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
