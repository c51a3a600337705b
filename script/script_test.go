// Copyright (c) 2025 The gobtc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package script

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/btcedu/gobtc/keys"
	"github.com/btcedu/gobtc/signature"
	"github.com/stretchr/testify/require"
)

func TestP2PKHEncodeDecodeRoundTrip(t *testing.T) {
	var h [20]byte
	for i := range h {
		h[i] = byte(i)
	}

	s := P2PKH(h)
	encoded := s.Encode()

	decoded, err := Decode(bytes.NewReader(encoded))
	require.NoError(t, err)
	require.Equal(t, s, decoded)
}

func TestPushdata1RoundTrip(t *testing.T) {
	data := make([]byte, 200)
	for i := range data {
		data[i] = byte(i)
	}
	s := New(Data(data))
	encoded := s.Encode()

	// 1 (varint len) isn't fixed width but the PUSHDATA1 opcode byte should
	// appear right after the script's own varint length prefix.
	require.Equal(t, byte(OP_PUSHDATA1), encoded[1])
	decoded, err := Decode(bytes.NewReader(encoded))
	require.NoError(t, err)
	require.Equal(t, s, decoded)
}

func TestPushdata2RoundTrip(t *testing.T) {
	data := make([]byte, 400)
	for i := range data {
		data[i] = byte(i % 256)
	}
	s := New(Data(data))
	encoded := s.Encode()

	decoded, err := Decode(bytes.NewReader(encoded))
	require.NoError(t, err)
	require.Equal(t, s, decoded)
}

func TestEvaluateValidP2PKH(t *testing.T) {
	sk, ok := new(big.Int).SetString("1E99423A4ED27608A15A2616A2B0E9E52CED330AC530EDCC32C8FFC6A526AEDD", 16)
	require.True(t, ok)
	pk := keys.FromSecretKey(sk)
	sec := pk.EncodeSEC(true)
	pubkeyHash := pk.Hash160(true)

	message := []byte("pretend this is the sighash preimage")
	sig, err := signature.Sign(sk, message)
	require.NoError(t, err)

	sigScript := P2PKHSigScript(sig.EncodeDER(), 0x01, sec)
	pubkeyScript := P2PKH(pubkeyHash)
	combined := sigScript.Add(pubkeyScript)

	require.True(t, combined.Evaluate(message))
}

func TestEvaluateRejectsWrongMessage(t *testing.T) {
	sk, ok := new(big.Int).SetString("1", 16)
	require.True(t, ok)
	pk := keys.FromSecretKey(sk)
	sec := pk.EncodeSEC(true)
	pubkeyHash := pk.Hash160(true)

	sig, err := signature.Sign(sk, []byte("original message"))
	require.NoError(t, err)

	sigScript := P2PKHSigScript(sig.EncodeDER(), 0x01, sec)
	combined := sigScript.Add(P2PKH(pubkeyHash))

	require.False(t, combined.Evaluate([]byte("tampered message")))
}

func TestEvaluateRejectsWrongShape(t *testing.T) {
	s := New(Op(OP_DUP), Op(OP_HASH160))
	require.False(t, s.Evaluate(nil))
}

func TestDecodePushdata4(t *testing.T) {
	// A PUSHDATA4-framed 5-byte element: legal to decode even though the
	// encoder always picks a tighter form.
	raw := append([]byte{10, 78, 5, 0, 0, 0}, []byte("hello")...)
	s, err := Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	require.Len(t, s.Cmds, 1)
	require.Equal(t, []byte("hello"), s.Cmds[0].Data)
}

func TestDecodePushdata4RejectsOversizedElement(t *testing.T) {
	raw := []byte{5, 78, 0x09, 0x02, 0, 0} // declares a 521-byte element
	_, err := Decode(bytes.NewReader(raw))
	require.ErrorIs(t, err, ErrMalformedScript)
}

func TestVarintRoundTrip(t *testing.T) {
	values := []uint64{0, 1, 0xfc, 0xfd, 0xffff, 0x10000, 0xfffffffe, 0x100000000, 1 << 40}
	for _, v := range values {
		encoded := EncodeVarint(v)
		got, err := ReadVarint(bytes.NewReader(encoded))
		require.NoError(t, err)
		require.Equal(t, v, got)
	}
}
