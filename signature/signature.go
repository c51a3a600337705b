// Copyright (c) 2025 The gobtc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package signature implements ECDSA signing and verification over
// secp256k1, plus the strict DER encoding BIP-0062 requires for Bitcoin
// transaction signatures.
package signature

import (
	"errors"
	"math/big"

	"github.com/btcedu/gobtc/ecc"
	"github.com/btcedu/gobtc/hash"
	"github.com/btcedu/gobtc/keys"
)

// ErrInvalidDER is returned when a byte string does not follow the strict
// DER framing BIP-0062 mandates.
var ErrInvalidDER = errors.New("signature: invalid DER encoding")

// Signature is an ECDSA signature (r, s) over secp256k1.
type Signature struct {
	R *big.Int
	S *big.Int
}

// Sign produces a signature over message using secretKey, drawing a fresh
// ephemeral scalar k from the OS CSPRNG for every call.
//
// This is deliberately NOT RFC-6979 deterministic signing: k is drawn at
// random each time, matching the reference this package was built from. A
// faulty CSPRNG or a k reused across two signatures leaks the secret key;
// production signers should prefer deterministic k generation.
func Sign(secretKey *big.Int, message []byte) (Signature, error) {
	n := ecc.N
	z := hashToInt(message)

	for {
		k, err := keys.GenerateSecretKey(n)
		if err != nil {
			return Signature{}, err
		}

		p := ecc.G.ScalarMul(k)
		r := p.X()
		r.Mod(r, n)
		if r.Sign() == 0 {
			continue
		}

		kInv := modInverse(k, n)
		s := new(big.Int).Mul(secretKey, r)
		s.Add(s, z)
		s.Mul(s, kInv)
		s.Mod(s, n)
		if s.Sign() == 0 {
			continue
		}

		// Canonicalize to low-S per BIP-0062: if s > n/2, replace it with
		// n - s, which is an equally valid signature for the same (r, z).
		half := new(big.Int).Rsh(n, 1)
		if s.Cmp(half) > 0 {
			s.Sub(n, s)
		}

		return Signature{R: r, S: s}, nil
	}
}

// Verify reports whether sig is a valid signature over message for
// publicKey.
func Verify(publicKey ecc.Point, message []byte, sig Signature) bool {
	n := ecc.N
	one := big.NewInt(1)
	if sig.R.Cmp(one) < 0 || sig.R.Cmp(n) >= 0 {
		return false
	}
	if sig.S.Cmp(one) < 0 || sig.S.Cmp(n) >= 0 {
		return false
	}

	z := hashToInt(message)

	w := modInverse(sig.S, n)
	u1 := new(big.Int).Mul(z, w)
	u1.Mod(u1, n)
	u2 := new(big.Int).Mul(sig.R, w)
	u2.Mod(u2, n)

	p := ecc.G.ScalarMul(u1).Add(publicKey.ScalarMul(u2))
	if p.IsInfinity() {
		return false
	}

	x := new(big.Int).Mod(p.X(), n)
	return x.Cmp(sig.R) == 0
}

func hashToInt(message []byte) *big.Int {
	digest := hash.Hash256(message)
	return new(big.Int).SetBytes(digest[:])
}

// modInverse computes a modular inverse modulo the group order N, reusing
// the curve package's extended-Euclidean implementation rather than the
// field prime P it was originally built for.
func modInverse(a, n *big.Int) *big.Int {
	return ecc.Inverse(a, n)
}
