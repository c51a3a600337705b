// Copyright (c) 2025 The gobtc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ecc implements finite-field and elliptic-curve arithmetic over
// secp256k1: modular inverse, point addition, and scalar multiplication by
// double-and-add. No attempt is made at constant-time operation; this is a
// known limitation documented in the package-level doc rather than hidden.
package ecc

import "math/big"

// Curve is an elliptic curve y^2 = x^3 + a*x + b over the field of integers
// modulo a prime p.
type Curve struct {
	P *big.Int
	A *big.Int
	B *big.Int
}

// S256 is the secp256k1 curve used by Bitcoin.
// http://www.oid-info.com/get/1.3.132.0.10
var S256 = &Curve{
	P: hexToInt("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFC2F"),
	A: big.NewInt(0),
	B: big.NewInt(7),
}

// N is the order of the secp256k1 base point G: the subgroup order, not the
// field prime. Scalars (secret keys, ECDSA r/s) live modulo N; coordinates
// live modulo P.
var N = hexToInt("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141")

// Gx, Gy are the coordinates of the secp256k1 base point.
var (
	Gx = hexToInt("79BE667EF9DCBBAC55A06295CE870B07029BFCDB2DCE28D959F2815B16F81798")
	Gy = hexToInt("483ADA7726A3C4655DA4FBFC0E1108A8FD17B448A68554199C47D08FFB10D4B8")
)

// G is the secp256k1 base (generator) point.
var G = Point{curve: S256, x: Gx, y: Gy}

func hexToInt(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("ecc: invalid hex constant " + s)
	}
	return n
}

// Inverse returns the modular multiplicative inverse of a modulo p via the
// extended Euclidean algorithm. It is exported so other components (ECDSA
// signing and verification) that need a modular inverse outside the curve's
// own field can reuse the same algorithm instead of reaching for a
// different implementation.
func Inverse(a, p *big.Int) *big.Int {
	return inv(a, p)
}

// inv returns the modular multiplicative inverse m of a modulo p, such that
// (a * m) % p == 1, via the extended Euclidean algorithm: find (gcd, x, y)
// such that a*x + p*y == gcd, then reduce x modulo p.
func inv(a, p *big.Int) *big.Int {
	oldR, r := new(big.Int).Set(a), new(big.Int).Set(p)
	oldS, s := big.NewInt(1), big.NewInt(0)

	for r.Sign() != 0 {
		q := new(big.Int).Div(oldR, r)

		newR := new(big.Int).Sub(oldR, new(big.Int).Mul(q, r))
		oldR, r = r, newR

		newS := new(big.Int).Sub(oldS, new(big.Int).Mul(q, s))
		oldS, s = s, newS
	}

	return oldS.Mod(oldS, p)
}

// Point is a value-typed point on a Curve: either the point at infinity
// (the identity element) or an affine (x, y) pair. Equality is structural.
type Point struct {
	curve *Curve
	x, y  *big.Int
	inf   bool
}

// Infinity returns the point at infinity for the given curve.
func Infinity(curve *Curve) Point {
	return Point{curve: curve, inf: true}
}

// NewPoint constructs an affine point without verifying it lies on the
// curve. Use NewPointOnCurve when the input is untrusted.
func NewPoint(curve *Curve, x, y *big.Int) Point {
	return Point{curve: curve, x: new(big.Int).Set(x), y: new(big.Int).Set(y)}
}

// NewPointOnCurve constructs an affine point, verifying it satisfies
// y^2 = x^3 + a*x + b (mod p). It returns false if the point is not on the
// curve.
func NewPointOnCurve(curve *Curve, x, y *big.Int) (Point, bool) {
	p := Point{curve: curve, x: new(big.Int).Set(x), y: new(big.Int).Set(y)}
	if !p.onCurve() {
		return Point{}, false
	}
	return p, true
}

func (p Point) onCurve() bool {
	lhs := new(big.Int).Mul(p.y, p.y)
	lhs.Mod(lhs, p.curve.P)

	rhs := new(big.Int).Mul(p.x, p.x)
	rhs.Mul(rhs, p.x)
	rhs.Add(rhs, new(big.Int).Mul(p.curve.A, p.x))
	rhs.Add(rhs, p.curve.B)
	rhs.Mod(rhs, p.curve.P)

	return lhs.Cmp(rhs) == 0
}

// IsInfinity reports whether p is the point at infinity.
func (p Point) IsInfinity() bool { return p.inf }

// X returns the affine x-coordinate. It panics if p is the point at infinity.
func (p Point) X() *big.Int {
	if p.inf {
		panic("ecc: X() of point at infinity")
	}
	return new(big.Int).Set(p.x)
}

// Y returns the affine y-coordinate. It panics if p is the point at infinity.
func (p Point) Y() *big.Int {
	if p.inf {
		panic("ecc: Y() of point at infinity")
	}
	return new(big.Int).Set(p.y)
}

// Equal reports whether p and other are the same point (structural
// equality).
func (p Point) Equal(other Point) bool {
	if p.inf || other.inf {
		return p.inf == other.inf
	}
	return p.x.Cmp(other.x) == 0 && p.y.Cmp(other.y) == 0
}

// Add returns p + other using the standard affine addition formulas,
// handling the three edge cases: either operand at infinity, P + (-P) = inf,
// and point doubling via the tangent slope.
func (p Point) Add(other Point) Point {
	if p.inf {
		return other
	}
	if other.inf {
		return p
	}

	curve := p.curve
	// P + (-P) = infinity: same x, opposite (non-equal) y.
	if p.x.Cmp(other.x) == 0 && p.y.Cmp(other.y) != 0 {
		return Infinity(curve)
	}

	var m *big.Int
	if p.x.Cmp(other.x) == 0 {
		// Doubling: tangent slope m = (3x^2 + a) / (2y).
		num := new(big.Int).Mul(p.x, p.x)
		num.Mul(num, big.NewInt(3))
		num.Add(num, curve.A)

		den := new(big.Int).Lsh(p.y, 1)
		m = new(big.Int).Mul(num, inv(den, curve.P))
	} else {
		// Secant slope m = (y1 - y2) / (x1 - x2).
		num := new(big.Int).Sub(p.y, other.y)
		den := new(big.Int).Sub(p.x, other.x)
		den.Mod(den, curve.P)
		m = new(big.Int).Mul(num, inv(den, curve.P))
	}

	rx := new(big.Int).Mul(m, m)
	rx.Sub(rx, p.x)
	rx.Sub(rx, other.x)
	rx.Mod(rx, curve.P)

	ry := new(big.Int).Sub(rx, p.x)
	ry.Mul(ry, m)
	ry.Add(ry, p.y)
	ry.Neg(ry)
	ry.Mod(ry, curve.P)

	return Point{curve: curve, x: rx, y: ry}
}

// ScalarMul returns k*p via double-and-add over the binary expansion of k.
// k must be non-negative; a negative scalar is a contract violation.
func (p Point) ScalarMul(k *big.Int) Point {
	if k.Sign() < 0 {
		panic("ecc: negative scalar")
	}

	result := Infinity(p.curve)
	addend := p
	n := new(big.Int).Set(k)
	zero := big.NewInt(0)
	one := big.NewInt(1)
	bit := new(big.Int)

	for n.Cmp(zero) != 0 {
		bit.And(n, one)
		if bit.Cmp(one) == 0 {
			result = result.Add(addend)
		}
		addend = addend.Add(addend)
		n.Rsh(n, 1)
	}

	return result
}
