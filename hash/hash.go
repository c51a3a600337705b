// Copyright (c) 2025 The gobtc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hash

// Hash256 returns SHA-256(SHA-256(b)), the double hash Bitcoin uses for
// transaction and block identifiers and for Base58Check checksums.
func Hash256(b []byte) [32]byte {
	first := SHA256(b)
	return SHA256(first[:])
}

// Hash160 returns RIPEMD160(SHA256(b)), the hash Bitcoin uses to derive
// public key and script addresses.
func Hash160(b []byte) [20]byte {
	sha := SHA256(b)
	return RIPEMD160(sha[:])
}
