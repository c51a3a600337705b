// Copyright (c) 2025 The gobtc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keys

import (
	"encoding/hex"
	"math/big"
	"testing"

	"github.com/btcedu/gobtc/ecc"
	"github.com/stretchr/testify/require"
)

func mustSK(t *testing.T, hexKey string) *big.Int {
	t.Helper()
	sk, ok := new(big.Int).SetString(hexKey, 16)
	require.True(t, ok)
	return sk
}

// TestAddressVectors reproduces the Mastering Bitcoin chapter 4 example and
// the bitcoin.it wiki's version-1 address derivation example.
func TestAddressVectors(t *testing.T) {
	cases := []struct {
		sk         string
		net        Net
		compressed bool
		addr       string
	}{
		{"3aba4162c7251c891207b747840551a71939b0de081f85c4e44cf7c13e41daa6", MainNet, true, "14cxpo3MBCYYWCgF74SWTdcmxipnGUsPw3"},
		{"18e14a7b6a307f426a94f8114701e7c8e774e7f9a47e2c2035db29a206321725", MainNet, true, "1PMycacnJaSqwwJqjawXBErnLsZ7RkXUAs"},
		{"12345deadbeef", MainNet, true, "1F1Pn2y6pDb68E5nYJJeba4TLg2U7B6KF1"},
		// 2020^5
		{"777c6b16216400", TestNet, true, "mopVkxp8UhXqRYbCYJsbeE1h1fiF64jcoH"},
		// 5002
		{"138a", TestNet, false, "mmTPbXQFxboEtNRkwfh6K51jvdtHLxGeMA"},
	}

	for _, c := range cases {
		sk := mustSK(t, c.sk)
		pk := FromSecretKey(sk)
		require.Equal(t, c.addr, pk.Address(c.net, c.compressed))
	}
}

func TestSECRoundTrip(t *testing.T) {
	sk := mustSK(t, "1E99423A4ED27608A15A2616A2B0E9E52CED330AC530EDCC32C8FFC6A526AEDD")
	pk := FromSecretKey(sk)

	compressed := pk.EncodeSEC(true)
	require.Len(t, compressed, 33)
	decoded, err := DecodeSEC(compressed)
	require.NoError(t, err)
	require.True(t, pk.Point.Equal(decoded.Point))

	uncompressed := pk.EncodeSEC(false)
	require.Len(t, uncompressed, 65)
	decodedU, err := DecodeSEC(uncompressed)
	require.NoError(t, err)
	require.True(t, pk.Point.Equal(decodedU.Point))
}

func TestDecodeSECRejectsGarbage(t *testing.T) {
	_, err := DecodeSEC([]byte{0x01, 0x02, 0x03})
	require.ErrorIs(t, err, ErrInvalidPublicKey)
}

func TestAddressRoundTrip(t *testing.T) {
	sk := mustSK(t, "1E99423A4ED27608A15A2616A2B0E9E52CED330AC530EDCC32C8FFC6A526AEDD")
	pk := FromSecretKey(sk)
	addr := pk.Address(MainNet, true)

	version, h, err := DecodeAddress(addr)
	require.NoError(t, err)
	require.Equal(t, byte(0x00), version)

	want := pk.Hash160(true)
	require.Equal(t, want, h)
}

func TestDecodeAddressRejectsBadChecksum(t *testing.T) {
	sk := mustSK(t, "1E99423A4ED27608A15A2616A2B0E9E52CED330AC530EDCC32C8FFC6A526AEDD")
	pk := FromSecretKey(sk)
	addr := pk.Address(MainNet, true)

	tampered := []rune(addr)
	if tampered[len(tampered)-1] == '1' {
		tampered[len(tampered)-1] = '2'
	} else {
		tampered[len(tampered)-1] = '1'
	}

	_, _, err := DecodeAddress(string(tampered))
	require.ErrorIs(t, err, ErrInvalidAddress)
}

func TestGenerateSecretKeyInRange(t *testing.T) {
	for i := 0; i < 20; i++ {
		sk, err := GenerateSecretKey(ecc.N)
		require.NoError(t, err)
		require.True(t, sk.Sign() > 0)
		require.True(t, sk.Cmp(ecc.N) < 0)
	}
}

func TestBase58EncodeLeadingZeros(t *testing.T) {
	b := make([]byte, 25)
	// all-zero payload encodes to all '1' characters
	require.Equal(t, "1111111111111111111111111", Base58Encode(b))

	decoded, err := Base58Decode("1111111111111111111111111111111", 25)
	require.NoError(t, err)
	require.Equal(t, b, decoded)
}

func TestBase58DecodeRejectsInvalidChar(t *testing.T) {
	_, err := Base58Decode("0notbase58", 25)
	require.ErrorIs(t, err, ErrInvalidBase58)
}

func TestBase58DecodeRejectsOverflow(t *testing.T) {
	// A value far too large to fit the requested width must error rather
	// than truncate.
	_, err := Base58Decode("zzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzz", 25)
	require.ErrorIs(t, err, ErrInvalidBase58)
}

func TestEncodeSECCompressedParity(t *testing.T) {
	sk := mustSK(t, "1")
	pk := FromSecretKey(sk)
	enc := pk.EncodeSEC(true)
	require.Equal(t, byte(0x02), enc[0]) // Gy is even
	require.Equal(t, hex.EncodeToString(ecc.Gx.Bytes()), hex.EncodeToString(enc[1:]))
}
