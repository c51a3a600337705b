// Copyright (c) 2025 The gobtc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tx

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/btcedu/gobtc/hash"
	"github.com/btcedu/gobtc/script"
	"github.com/stretchr/testify/require"
)

// TestLegacyParse reproduces the Programming Bitcoin, Chapter 5 example
// transaction.
func TestLegacyParse(t *testing.T) {
	raw, err := hex.DecodeString("0100000001813f79011acb80925dfe69b3def355fe914bd1d96a3f5f71bf8303c6a989c7d1000000006b483045022100ed81ff192e75a3fd2304004dcadb746fa5e24c5031ccfcf21320b0277457c98f02207a986d955c6e0cb35d446a89d3f56100f4d7f67801c31967743a9c8e10615bed01210349fc4e631e3624a545de3f89f5d8684c7b8138bd94bdd531d2e213bf016b278afeffffff02a135ef01000000001976a914bc3b654dca7e56b04dca18f2566cdaf02e8d9ada88ac99c39800000000001976a9141c4bc762dd5423e332166702cb75f40df79fea1288ac19430600")
	require.NoError(t, err)

	parsed, err := Decode(bytes.NewReader(raw))
	require.NoError(t, err)

	require.Equal(t, int32(1), parsed.Version)
	require.False(t, parsed.Segwit)

	require.Len(t, parsed.TxIns, 1)
	wantPrevTx, err := hex.DecodeString("d1c789a9c60383bf715f3f6ad9d14b91fe55f3deb369fe5d9280cb1a01793f81")
	require.NoError(t, err)
	require.Equal(t, wantPrevTx, parsed.TxIns[0].PrevTxID[:])
	require.Equal(t, uint32(0), parsed.TxIns[0].PrevIndex)
	require.Equal(t, uint32(0xfffffffe), parsed.TxIns[0].Sequence)
	require.Nil(t, parsed.TxIns[0].Witness)

	require.Len(t, parsed.TxOuts, 2)
	require.Equal(t, int64(32454049), parsed.TxOuts[0].Amount)
	require.Equal(t, int64(10011545), parsed.TxOuts[1].Amount)

	require.Equal(t, uint32(410393), parsed.Locktime)
}

func TestLegacyEncodeDecodeRoundTrip(t *testing.T) {
	raw, err := hex.DecodeString("0100000001813f79011acb80925dfe69b3def355fe914bd1d96a3f5f71bf8303c6a989c7d1000000006b483045022100ed81ff192e75a3fd2304004dcadb746fa5e24c5031ccfcf21320b0277457c98f02207a986d955c6e0cb35d446a89d3f56100f4d7f67801c31967743a9c8e10615bed01210349fc4e631e3624a545de3f89f5d8684c7b8138bd94bdd531d2e213bf016b278afeffffff02a135ef01000000001976a914bc3b654dca7e56b04dca18f2566cdaf02e8d9ada88ac99c39800000000001976a9141c4bc762dd5423e332166702cb75f40df79fea1288ac19430600")
	require.NoError(t, err)

	parsed, err := Decode(bytes.NewReader(raw))
	require.NoError(t, err)

	reEncoded, err := parsed.Encode(false, -1, nil)
	require.NoError(t, err)
	require.Equal(t, raw, reEncoded)
}

func TestIDMatchesDoubleSHA256Reversed(t *testing.T) {
	raw, err := hex.DecodeString("0100000001813f79011acb80925dfe69b3def355fe914bd1d96a3f5f71bf8303c6a989c7d1000000006b483045022100ed81ff192e75a3fd2304004dcadb746fa5e24c5031ccfcf21320b0277457c98f02207a986d955c6e0cb35d446a89d3f56100f4d7f67801c31967743a9c8e10615bed01210349fc4e631e3624a545de3f89f5d8684c7b8138bd94bdd531d2e213bf016b278afeffffff02a135ef01000000001976a914bc3b654dca7e56b04dca18f2566cdaf02e8d9ada88ac99c39800000000001976a9141c4bc762dd5423e332166702cb75f40df79fea1288ac19430600")
	require.NoError(t, err)

	parsed, err := Decode(bytes.NewReader(raw))
	require.NoError(t, err)

	id, err := parsed.ID()
	require.NoError(t, err)
	require.Equal(t, "452c629d67e41baec3ac6f04fe744b4b9617f8f859c63b3002f8684e7a4fee03", id)
}

// prevOutputLookupFor builds a lookup serving the output the example
// transaction's one input spends: a pay-to-pubkey-hash lock on the
// pubkey found in the input's own script_sig.
func prevOutputLookupFor(t *testing.T, parsed Tx, amount int64) fakeLookup {
	t.Helper()
	require.Len(t, parsed.TxIns, 1)
	cmds := parsed.TxIns[0].ScriptSig.Cmds
	require.Len(t, cmds, 2)
	pubkey := cmds[1].Data
	require.NotNil(t, pubkey)
	return fakeLookup{amount: amount, pkScript: script.P2PKH(hash.Hash160(pubkey))}
}

func TestFeeAndValidate(t *testing.T) {
	raw, err := hex.DecodeString("0100000001813f79011acb80925dfe69b3def355fe914bd1d96a3f5f71bf8303c6a989c7d1000000006b483045022100ed81ff192e75a3fd2304004dcadb746fa5e24c5031ccfcf21320b0277457c98f02207a986d955c6e0cb35d446a89d3f56100f4d7f67801c31967743a9c8e10615bed01210349fc4e631e3624a545de3f89f5d8684c7b8138bd94bdd531d2e213bf016b278afeffffff02a135ef01000000001976a914bc3b654dca7e56b04dca18f2566cdaf02e8d9ada88ac99c39800000000001976a9141c4bc762dd5423e332166702cb75f40df79fea1288ac19430600")
	require.NoError(t, err)

	parsed, err := Decode(bytes.NewReader(raw))
	require.NoError(t, err)

	lookup := prevOutputLookupFor(t, parsed, 42505594)

	fee, err := parsed.Fee(lookup)
	require.NoError(t, err)
	require.Equal(t, int64(40000), fee)

	valid, err := parsed.Validate(lookup)
	require.NoError(t, err)
	require.True(t, valid)
}

func TestValidateRejectsTamperedScriptSig(t *testing.T) {
	raw, err := hex.DecodeString("0100000001813f79011acb80925dfe69b3def355fe914bd1d96a3f5f71bf8303c6a989c7d1000000006b483045022100ed81ff192e75a3fd2304004dcadb746fa5e24c5031ccfcf21320b0277457c98f02207a986d955c6e0cb35d446a89d3f56100f4d7f67801c31967743a9c8e10615bed01210349fc4e631e3624a545de3f89f5d8684c7b8138bd94bdd531d2e213bf016b278afeffffff02a135ef01000000001976a914bc3b654dca7e56b04dca18f2566cdaf02e8d9ada88ac99c39800000000001976a9141c4bc762dd5423e332166702cb75f40df79fea1288ac19430600")
	require.NoError(t, err)

	// Flipping a byte of the DER signature must make validation fail.
	tamperedSig, err := Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	lookup := prevOutputLookupFor(t, tamperedSig, 42505594)
	sig := append([]byte{}, tamperedSig.TxIns[0].ScriptSig.Cmds[0].Data...)
	sig[10] ^= 0x01
	tamperedSig.TxIns[0].ScriptSig.Cmds[0] = script.Data(sig)

	valid, err := tamperedSig.Validate(lookup)
	require.NoError(t, err)
	require.False(t, valid)

	// Likewise for a byte of the SEC pubkey.
	tamperedPub, err := Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	pub := append([]byte{}, tamperedPub.TxIns[0].ScriptSig.Cmds[1].Data...)
	pub[32] ^= 0x01
	tamperedPub.TxIns[0].ScriptSig.Cmds[1] = script.Data(pub)

	valid, err = tamperedPub.Validate(lookup)
	require.NoError(t, err)
	require.False(t, valid)
}

// buildSegwitTx assembles the wire bytes of a one-input, one-output
// segwit transaction with a two-item witness.
func buildSegwitTx(t *testing.T) []byte {
	t.Helper()
	var b bytes.Buffer
	b.Write([]byte{0x01, 0x00, 0x00, 0x00}) // version
	b.Write([]byte{0x00, 0x01})             // segwit marker + flag
	b.WriteByte(0x01)                       // one input

	prevTx := bytes.Repeat([]byte{0xaa}, 32)
	b.Write(prevTx)
	b.Write([]byte{0x00, 0x00, 0x00, 0x00}) // prev index
	b.WriteByte(0x00)                       // empty script_sig
	b.Write([]byte{0xff, 0xff, 0xff, 0xff}) // sequence

	b.WriteByte(0x01)                                               // one output
	b.Write([]byte{0x88, 0x13, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}) // 5000 sat
	b.WriteByte(0x19)                                               // 25-byte p2pkh script
	b.Write([]byte{0x76, 0xa9, 0x14})
	b.Write(bytes.Repeat([]byte{0xbb}, 20))
	b.Write([]byte{0x88, 0xac})

	b.WriteByte(0x02) // two witness items
	b.WriteByte(0x47)
	b.Write(bytes.Repeat([]byte{0xcc}, 0x47))
	b.WriteByte(0x21)
	b.Write(bytes.Repeat([]byte{0xdd}, 0x21))

	b.Write([]byte{0x00, 0x00, 0x00, 0x00}) // locktime
	return b.Bytes()
}

func TestSegwitEncodeDecodeRoundTrip(t *testing.T) {
	raw := buildSegwitTx(t)

	parsed, err := Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	require.True(t, parsed.Segwit)
	require.Len(t, parsed.TxIns, 1)
	require.Len(t, parsed.TxIns[0].Witness, 2)
	require.Len(t, parsed.TxIns[0].Witness[0], 0x47)
	require.Len(t, parsed.TxIns[0].Witness[1], 0x21)
	require.Equal(t, int64(5000), parsed.TxOuts[0].Amount)

	reEncoded, err := parsed.Encode(false, -1, nil)
	require.NoError(t, err)
	require.Equal(t, raw, reEncoded)
}

// The transaction id deliberately excludes witness data: the id of a
// segwit transaction equals the id of its force-legacy serialization.
func TestSegwitIDExcludesWitness(t *testing.T) {
	raw := buildSegwitTx(t)

	parsed, err := Decode(bytes.NewReader(raw))
	require.NoError(t, err)

	legacyRaw, err := parsed.Encode(true, -1, nil)
	require.NoError(t, err)
	require.NotEqual(t, raw, legacyRaw)

	legacyParsed, err := Decode(bytes.NewReader(legacyRaw))
	require.NoError(t, err)
	require.False(t, legacyParsed.Segwit)

	id, err := parsed.ID()
	require.NoError(t, err)
	legacyID, err := legacyParsed.ID()
	require.NoError(t, err)
	require.Equal(t, legacyID, id)
}

func TestIsCoinbase(t *testing.T) {
	coinbase := Tx{
		TxIns: []TxIn{{
			PrevTxID:  [32]byte{},
			PrevIndex: 0xffffffff,
			ScriptSig: script.New(script.Data([]byte{0xde, 0x00, 0x00})), // height 222 little-endian
		}},
	}
	require.True(t, coinbase.IsCoinbase())

	height, ok := coinbase.CoinbaseHeight()
	require.True(t, ok)
	require.Equal(t, int64(222), height)

	var nonzero [32]byte
	nonzero[0] = 1
	notCoinbase := Tx{TxIns: []TxIn{{PrevTxID: nonzero, PrevIndex: 0}}}
	require.False(t, notCoinbase.IsCoinbase())
	_, ok = notCoinbase.CoinbaseHeight()
	require.False(t, ok)
}

type fakeLookup struct {
	amount   int64
	pkScript script.Script
}

func (f fakeLookup) PrevOutput(prevTxID [32]byte, index uint32) (int64, script.Script, error) {
	return f.amount, f.pkScript, nil
}

func TestFeeComputation(t *testing.T) {
	lookup := fakeLookup{amount: 100, pkScript: script.New()}
	transaction := Tx{
		TxIns:  []TxIn{{}},
		TxOuts: []TxOut{{Amount: 60}},
	}
	fee, err := transaction.Fee(lookup)
	require.NoError(t, err)
	require.Equal(t, int64(40), fee)
}
