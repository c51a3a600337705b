// Copyright (c) 2025 The gobtc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package signature

import (
	"math/big"
	"testing"

	"github.com/btcedu/gobtc/ecc"
	"github.com/btcedu/gobtc/keys"
	"github.com/stretchr/testify/require"
)

func genKeyPair(t *testing.T) (*big.Int, ecc.Point) {
	t.Helper()
	sk, err := keys.GenerateSecretKey(ecc.N)
	require.NoError(t, err)
	pk := keys.FromSecretKey(sk)
	return sk, pk.Point
}

// TestSignVerify mirrors the two-identity signing scenario: a signature
// from the wrong key, or a plain random signature, must not verify; the
// rightful signer's signature must.
func TestSignVerify(t *testing.T) {
	sk1, pk1 := genKeyPair(t)
	sk2, _ := genKeyPair(t)

	message := []byte("user pk1 would like to pay user pk2 1 BTC kkthx")

	bogus := Signature{R: big.NewInt(123456789), S: big.NewInt(987654321)}
	require.False(t, Verify(pk1, message, bogus))

	wrongSigner, err := Sign(sk2, message)
	require.NoError(t, err)
	require.False(t, Verify(pk1, message, wrongSigner))

	sig, err := Sign(sk1, message)
	require.NoError(t, err)
	require.True(t, Verify(pk1, message, sig))
}

func TestSignatureIsLowS(t *testing.T) {
	sk, pk := genKeyPair(t)
	sig, err := Sign(sk, []byte("low-s canonicalization"))
	require.NoError(t, err)

	half := new(big.Int).Rsh(ecc.N, 1)
	require.True(t, sig.S.Cmp(half) <= 0)
	require.True(t, Verify(pk, []byte("low-s canonicalization"), sig))
}

func TestDERRoundTrip(t *testing.T) {
	sk, _ := genKeyPair(t)
	sig, err := Sign(sk, []byte("der round trip"))
	require.NoError(t, err)

	der := sig.EncodeDER()
	decoded, err := DecodeDER(der)
	require.NoError(t, err)
	require.Equal(t, 0, sig.R.Cmp(decoded.R))
	require.Equal(t, 0, sig.S.Cmp(decoded.S))
}

func TestDERHighBitPrefixesZero(t *testing.T) {
	// An R value whose top byte has the high bit set must be prefixed with
	// an extra 0x00 so it isn't misread as a negative number.
	r, _ := new(big.Int).SetString("FF0000000000000000000000000000000000000000000000000000000000000A", 16)
	s := big.NewInt(42)
	sig := Signature{R: r, S: s}

	der := sig.EncodeDER()
	require.Equal(t, byte(0x02), der[2])
	rLen := int(der[3])
	require.Equal(t, byte(0x00), der[4])
	require.Equal(t, 33, rLen)

	decoded, err := DecodeDER(der)
	require.NoError(t, err)
	require.Equal(t, 0, r.Cmp(decoded.R))
}

func TestDecodeDERRejectsTruncated(t *testing.T) {
	_, err := DecodeDER([]byte{0x30, 0x05, 0x02, 0x01, 0x01})
	require.ErrorIs(t, err, ErrInvalidDER)
}

func TestVerifyRejectsOutOfRangeRS(t *testing.T) {
	_, pk := genKeyPair(t)
	sig := Signature{R: big.NewInt(0), S: big.NewInt(1)}
	require.False(t, Verify(pk, []byte("msg"), sig))

	sig2 := Signature{R: big.NewInt(1), S: ecc.N}
	require.False(t, Verify(pk, []byte("msg"), sig2))
}
