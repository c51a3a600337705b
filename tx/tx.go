// Copyright (c) 2025 The gobtc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package tx implements the Bitcoin transaction wire format: legacy and
// segwit encode/decode, the sighash preimage used for signing and
// verification, transaction id, fee, and basic validation.
package tx

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"io"

	"github.com/btcedu/gobtc/hash"
	"github.com/btcedu/gobtc/script"
)

// ErrInvalidTxID reports a transaction id that does not match the id it was
// expected to have. No function in this package returns it.
var ErrInvalidTxID = errors.New("tx: transaction id mismatch")

// SighashAll is the only sighash type this package's Script evaluator
// understands.
const SighashAll = 1

// PrevOutputLookup resolves the amount and locking script of a previous
// transaction's output, the one piece of external state needed to compute
// an input's value and to validate its signature.
type PrevOutputLookup interface {
	PrevOutput(prevTxID [32]byte, index uint32) (amount int64, pkScript script.Script, err error)
}

// TxIn is one input of a transaction: a reference to a previous output plus
// the unlocking script that satisfies it.
type TxIn struct {
	PrevTxID  [32]byte // previous transaction id, display (big-endian) order
	PrevIndex uint32
	ScriptSig script.Script
	Sequence  uint32
	Witness   [][]byte // nil unless the enclosing Tx is segwit
}

// TxOut is one output of a transaction: an amount in satoshis and the
// locking script that must be satisfied to spend it.
type TxOut struct {
	Amount       int64
	ScriptPubKey script.Script
}

// Tx is a Bitcoin transaction.
type Tx struct {
	Version  int32
	TxIns    []TxIn
	TxOuts   []TxOut
	Locktime uint32
	Segwit   bool
}

// Decode parses a transaction from r, detecting the segwit marker+flag the
// same way the reference implementation does: num_inputs == 0 signals a
// marker byte followed by a flag byte rather than zero real inputs.
func Decode(r io.Reader) (Tx, error) {
	var versionBuf [4]byte
	if _, err := io.ReadFull(r, versionBuf[:]); err != nil {
		return Tx{}, err
	}
	version := int32(binary.LittleEndian.Uint32(versionBuf[:]))

	segwit := false
	numInputs, err := script.ReadVarint(r)
	if err != nil {
		return Tx{}, err
	}
	if numInputs == 0 {
		var flag [1]byte
		if _, err := io.ReadFull(r, flag[:]); err != nil {
			return Tx{}, err
		}
		if flag[0] != 0x01 {
			return Tx{}, errors.New("tx: unsupported segwit flag")
		}
		segwit = true
		numInputs, err = script.ReadVarint(r)
		if err != nil {
			return Tx{}, err
		}
	}

	ins := make([]TxIn, numInputs)
	for i := range ins {
		in, err := decodeTxIn(r)
		if err != nil {
			return Tx{}, err
		}
		ins[i] = in
	}

	numOutputs, err := script.ReadVarint(r)
	if err != nil {
		return Tx{}, err
	}
	outs := make([]TxOut, numOutputs)
	for i := range outs {
		out, err := decodeTxOut(r)
		if err != nil {
			return Tx{}, err
		}
		outs[i] = out
	}

	if segwit {
		for i := range ins {
			numItems, err := script.ReadVarint(r)
			if err != nil {
				return Tx{}, err
			}
			items := make([][]byte, numItems)
			for j := range items {
				itemLen, err := script.ReadVarint(r)
				if err != nil {
					return Tx{}, err
				}
				if itemLen == 0 {
					items[j] = []byte{}
					continue
				}
				item := make([]byte, itemLen)
				if _, err := io.ReadFull(r, item); err != nil {
					return Tx{}, err
				}
				items[j] = item
			}
			ins[i].Witness = items
		}
	}

	var locktimeBuf [4]byte
	if _, err := io.ReadFull(r, locktimeBuf[:]); err != nil {
		return Tx{}, err
	}

	return Tx{
		Version:  version,
		TxIns:    ins,
		TxOuts:   outs,
		Locktime: binary.LittleEndian.Uint32(locktimeBuf[:]),
		Segwit:   segwit,
	}, nil
}

func decodeTxIn(r io.Reader) (TxIn, error) {
	var prevTxWire [32]byte
	if _, err := io.ReadFull(r, prevTxWire[:]); err != nil {
		return TxIn{}, err
	}
	prevTxID := reverse32(prevTxWire)

	var idxBuf [4]byte
	if _, err := io.ReadFull(r, idxBuf[:]); err != nil {
		return TxIn{}, err
	}

	sigScript, err := script.Decode(r)
	if err != nil {
		return TxIn{}, err
	}

	var seqBuf [4]byte
	if _, err := io.ReadFull(r, seqBuf[:]); err != nil {
		return TxIn{}, err
	}

	return TxIn{
		PrevTxID:  prevTxID,
		PrevIndex: binary.LittleEndian.Uint32(idxBuf[:]),
		ScriptSig: sigScript,
		Sequence:  binary.LittleEndian.Uint32(seqBuf[:]),
	}, nil
}

func decodeTxOut(r io.Reader) (TxOut, error) {
	var amountBuf [8]byte
	if _, err := io.ReadFull(r, amountBuf[:]); err != nil {
		return TxOut{}, err
	}
	pkScript, err := script.Decode(r)
	if err != nil {
		return TxOut{}, err
	}
	return TxOut{
		Amount:       int64(binary.LittleEndian.Uint64(amountBuf[:])),
		ScriptPubKey: pkScript,
	}, nil
}

// scriptOverride selects what an encoded input's unlocking script should
// contain, used to build the sighash preimage for a specific input.
type scriptOverride int

const (
	scriptAsIs scriptOverride = iota
	scriptSubstitutePubKey
	scriptEmpty
)

// Encode returns the wire encoding of tx. forceLegacy drops the segwit
// marker/flag and witness data even if tx.Segwit is set, as required when
// computing the transaction id. sigIndex, when >= 0, produces the modified
// encoding used as the sighash preimage for signing/verifying that input:
// every other input's script is emptied, the target input's script is
// replaced by lookup's previous output script, and a 4-byte SIGHASH_ALL
// suffix is appended.
func (t Tx) Encode(forceLegacy bool, sigIndex int, lookup PrevOutputLookup) ([]byte, error) {
	var buf bytes.Buffer

	var versionBuf [4]byte
	binary.LittleEndian.PutUint32(versionBuf[:], uint32(t.Version))
	buf.Write(versionBuf[:])

	segwit := t.Segwit && !forceLegacy
	if segwit {
		buf.Write([]byte{0x00, 0x01})
	}

	buf.Write(script.EncodeVarint(uint64(len(t.TxIns))))
	for i, in := range t.TxIns {
		override := scriptAsIs
		if sigIndex >= 0 {
			if i == sigIndex {
				override = scriptSubstitutePubKey
			} else {
				override = scriptEmpty
			}
		}
		if err := encodeTxIn(&buf, in, override, lookup); err != nil {
			return nil, err
		}
	}

	buf.Write(script.EncodeVarint(uint64(len(t.TxOuts))))
	for _, out := range t.TxOuts {
		encodeTxOut(&buf, out)
	}

	if segwit {
		for _, in := range t.TxIns {
			buf.Write(script.EncodeVarint(uint64(len(in.Witness))))
			for _, item := range in.Witness {
				buf.Write(script.EncodeVarint(uint64(len(item))))
				buf.Write(item)
			}
		}
	}

	var locktimeBuf [4]byte
	binary.LittleEndian.PutUint32(locktimeBuf[:], t.Locktime)
	buf.Write(locktimeBuf[:])

	if sigIndex >= 0 {
		var sighashBuf [4]byte
		binary.LittleEndian.PutUint32(sighashBuf[:], SighashAll)
		buf.Write(sighashBuf[:])
	}

	return buf.Bytes(), nil
}

func encodeTxIn(buf *bytes.Buffer, in TxIn, override scriptOverride, lookup PrevOutputLookup) error {
	wirePrevTx := reverse32(in.PrevTxID)
	buf.Write(wirePrevTx[:])

	var idxBuf [4]byte
	binary.LittleEndian.PutUint32(idxBuf[:], in.PrevIndex)
	buf.Write(idxBuf[:])

	switch override {
	case scriptAsIs:
		buf.Write(in.ScriptSig.Encode())
	case scriptEmpty:
		buf.Write(script.New().Encode())
	case scriptSubstitutePubKey:
		if lookup == nil {
			return errors.New("tx: sighash preimage needs a previous-output lookup")
		}
		_, pkScript, err := lookup.PrevOutput(in.PrevTxID, in.PrevIndex)
		if err != nil {
			return err
		}
		buf.Write(pkScript.Encode())
	}

	var seqBuf [4]byte
	binary.LittleEndian.PutUint32(seqBuf[:], in.Sequence)
	buf.Write(seqBuf[:])
	return nil
}

func encodeTxOut(buf *bytes.Buffer, out TxOut) {
	var amountBuf [8]byte
	binary.LittleEndian.PutUint64(amountBuf[:], uint64(out.Amount))
	buf.Write(amountBuf[:])
	buf.Write(out.ScriptPubKey.Encode())
}

// ID returns the transaction id: the byte-reversed Hash256 of the
// force-legacy encoding, hex-encoded as Bitcoin conventionally displays it.
func (t Tx) ID() (string, error) {
	raw, err := t.Encode(true, -1, nil)
	if err != nil {
		return "", err
	}
	h := hash.Hash256(raw)
	reversed := reverseBytes(h[:])
	return hex.EncodeToString(reversed), nil
}

// Fee returns the difference between total input and output value.
// It requires lookup to resolve each input's previous-output amount.
func (t Tx) Fee(lookup PrevOutputLookup) (int64, error) {
	var inputTotal int64
	for _, in := range t.TxIns {
		amount, _, err := lookup.PrevOutput(in.PrevTxID, in.PrevIndex)
		if err != nil {
			return 0, err
		}
		inputTotal += amount
	}
	var outputTotal int64
	for _, out := range t.TxOuts {
		outputTotal += out.Amount
	}
	return inputTotal - outputTotal, nil
}

// Validate checks that the transaction doesn't mint coins and that every
// input's combined script evaluates to true against its SIGHASH_ALL
// preimage. Segwit inputs are out of scope, matching a known limitation of
// the reference this package is built from.
func (t Tx) Validate(lookup PrevOutputLookup) (bool, error) {
	if t.Segwit {
		return false, errors.New("tx: segwit input validation is not implemented")
	}

	fee, err := t.Fee(lookup)
	if err != nil {
		return false, err
	}
	if fee < 0 {
		return false, nil
	}

	for i, in := range t.TxIns {
		modTxEnc, err := t.Encode(false, i, lookup)
		if err != nil {
			return false, err
		}
		_, pkScript, err := lookup.PrevOutput(in.PrevTxID, in.PrevIndex)
		if err != nil {
			return false, err
		}
		combined := in.ScriptSig.Add(pkScript)
		if !combined.Evaluate(modTxEnc) {
			return false, nil
		}
	}

	return true, nil
}

// IsCoinbase reports whether this is a coinbase transaction: exactly one
// input referencing the null previous transaction id at index 0xffffffff.
func (t Tx) IsCoinbase() bool {
	if len(t.TxIns) != 1 {
		return false
	}
	in := t.TxIns[0]
	return in.PrevTxID == [32]byte{} && in.PrevIndex == 0xffffffff
}

// CoinbaseHeight returns the block height encoded in a coinbase
// transaction's first script_sig command, per BIP-0034. It returns false if
// t is not a coinbase transaction or the first command isn't a data push.
func (t Tx) CoinbaseHeight() (int64, bool) {
	if !t.IsCoinbase() {
		return 0, false
	}
	cmds := t.TxIns[0].ScriptSig.Cmds
	if len(cmds) == 0 || cmds[0].Data == nil {
		return 0, false
	}
	return int64(littleEndianUint(cmds[0].Data)), true
}

func littleEndianUint(b []byte) uint64 {
	var n uint64
	for i, v := range b {
		n |= uint64(v) << (8 * uint(i))
	}
	return n
}

func reverse32(b [32]byte) [32]byte {
	var out [32]byte
	for i := range b {
		out[i] = b[31-i]
	}
	return out
}

func reverseBytes(b []byte) []byte {
	out := make([]byte, len(b))
	for i := range b {
		out[i] = b[len(b)-1-i]
	}
	return out
}
