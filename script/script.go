// Copyright (c) 2025 The gobtc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package script

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/btcedu/gobtc/hash"
	"github.com/btcedu/gobtc/keys"
	"github.com/btcedu/gobtc/signature"
)

// ErrMalformedScript is returned when a script's command stream does not
// account for exactly its declared length.
var ErrMalformedScript = errors.New("script: malformed command stream")

// Cmd is one element of a Script's command stream: either an Opcode or a
// pushed data element.
type Cmd struct {
	Op   Opcode
	Data []byte // non-nil only for data pushes
}

func (c Cmd) isData() bool { return c.Data != nil }

func (c Cmd) String() string {
	if c.isData() {
		return fmt.Sprintf("%x", c.Data)
	}
	if name, ok := opcodeNames[c.Op]; ok {
		return name
	}
	return fmt.Sprintf("OP_[%d]", c.Op)
}

// Script is a sequence of Bitcoin script commands.
type Script struct {
	Cmds []Cmd
}

// New constructs a Script from the given commands.
func New(cmds ...Cmd) Script {
	return Script{Cmds: cmds}
}

// Data returns a Cmd that pushes a data element.
func Data(b []byte) Cmd { return Cmd{Data: b} }

// Op returns a Cmd for an opcode.
func Op(op Opcode) Cmd { return Cmd{Op: op} }

func (s Script) String() string {
	parts := make([]string, len(s.Cmds))
	for i, c := range s.Cmds {
		parts[i] = c.String()
	}
	out := ""
	for i, p := range parts {
		if i > 0 {
			out += " "
		}
		out += p
	}
	return out
}

// Decode reads a varint-length-prefixed script from r.
func Decode(r io.Reader) (Script, error) {
	length, err := readVarint(r)
	if err != nil {
		return Script{}, err
	}

	var cmds []Cmd
	var count uint64
	for count < length {
		var b [1]byte
		if _, err := io.ReadFull(r, b[:]); err != nil {
			return Script{}, err
		}
		count++
		current := b[0]

		switch {
		case current >= 1 && current <= 75:
			data := make([]byte, current)
			if _, err := io.ReadFull(r, data); err != nil {
				return Script{}, err
			}
			count += uint64(current)
			cmds = append(cmds, Data(data))

		case current == byte(OP_PUSHDATA1):
			var lb [1]byte
			if _, err := io.ReadFull(r, lb[:]); err != nil {
				return Script{}, err
			}
			dataLen := lb[0]
			data := make([]byte, dataLen)
			if _, err := io.ReadFull(r, data); err != nil {
				return Script{}, err
			}
			count += 1 + uint64(dataLen)
			cmds = append(cmds, Data(data))

		case current == byte(OP_PUSHDATA2):
			var lb [2]byte
			if _, err := io.ReadFull(r, lb[:]); err != nil {
				return Script{}, err
			}
			dataLen := uint64(lb[0]) | uint64(lb[1])<<8
			data := make([]byte, dataLen)
			if _, err := io.ReadFull(r, data); err != nil {
				return Script{}, err
			}
			count += 2 + dataLen
			cmds = append(cmds, Data(data))

		case current == byte(OP_PUSHDATA4):
			var lb [4]byte
			if _, err := io.ReadFull(r, lb[:]); err != nil {
				return Script{}, err
			}
			dataLen := uint64(lb[0]) | uint64(lb[1])<<8 | uint64(lb[2])<<16 | uint64(lb[3])<<24
			if dataLen > 520 {
				return Script{}, ErrMalformedScript
			}
			data := make([]byte, dataLen)
			if _, err := io.ReadFull(r, data); err != nil {
				return Script{}, err
			}
			count += 4 + dataLen
			cmds = append(cmds, Data(data))

		default:
			cmds = append(cmds, Op(Opcode(current)))
		}
	}

	if count != length {
		return Script{}, ErrMalformedScript
	}
	return Script{Cmds: cmds}, nil
}

// Encode returns the varint-length-prefixed wire encoding of s, using the
// tightest available push encoding for each data command (direct length
// byte for 1-75 bytes, PUSHDATA1 for 76-255, PUSHDATA2 for 256-520).
func (s Script) Encode() []byte {
	var body bytes.Buffer
	for _, c := range s.Cmds {
		if !c.isData() {
			body.WriteByte(byte(c.Op))
			continue
		}

		n := len(c.Data)
		switch {
		case n < 76:
			body.WriteByte(byte(n))
		case n <= 255:
			body.WriteByte(byte(OP_PUSHDATA1))
			body.WriteByte(byte(n))
		case n <= 520:
			body.WriteByte(byte(OP_PUSHDATA2))
			body.WriteByte(byte(n))
			body.WriteByte(byte(n >> 8))
		default:
			panic(fmt.Sprintf("script: data push of %d bytes exceeds PUSHDATA2 range", n))
		}
		body.Write(c.Data)
	}

	out := appendVarint(nil, uint64(body.Len()))
	out = append(out, body.Bytes()...)
	return out
}

// Add concatenates two scripts' command streams, as used to combine a
// script_sig with its corresponding script_pubkey for evaluation.
func (s Script) Add(other Script) Script {
	cmds := make([]Cmd, 0, len(s.Cmds)+len(other.Cmds))
	cmds = append(cmds, s.Cmds...)
	cmds = append(cmds, other.Cmds...)
	return Script{Cmds: cmds}
}

// P2PKH builds the canonical pay-to-pubkey-hash locking script for a
// 20-byte hash160.
func P2PKH(pubKeyHash [20]byte) Script {
	return New(
		Op(OP_DUP),
		Op(OP_HASH160),
		Data(pubKeyHash[:]),
		Op(OP_EQUALVERIFY),
		Op(OP_CHECKSIG),
	)
}

// P2PKHSigScript builds the unlocking script for a P2PKH input: the DER
// signature (with its trailing sighash-type byte) followed by the SEC
// public key.
func P2PKHSigScript(der []byte, sighashType byte, sec []byte) Script {
	sig := append(append([]byte{}, der...), sighashType)
	return New(Data(sig), Data(sec))
}

// Evaluate checks the combined script_sig + script_pubkey command stream
// against modifiedTx, the sighash preimage for the input being verified.
// Only the canonical 7-command P2PKH shape with SIGHASH_ALL is supported.
func (s Script) Evaluate(modifiedTx []byte) bool {
	if len(s.Cmds) != 7 {
		return false
	}
	if !s.Cmds[0].isData() || !s.Cmds[1].isData() {
		return false
	}
	if s.Cmds[2].isData() || s.Cmds[2].Op != OP_DUP {
		return false
	}
	if s.Cmds[3].isData() || s.Cmds[3].Op != OP_HASH160 {
		return false
	}
	if !s.Cmds[4].isData() {
		return false
	}
	if s.Cmds[5].isData() || s.Cmds[5].Op != OP_EQUALVERIFY {
		return false
	}
	if s.Cmds[6].isData() || s.Cmds[6].Op != OP_CHECKSIG {
		return false
	}

	sigWithType, pubkey, pubkeyHash := s.Cmds[0].Data, s.Cmds[1].Data, s.Cmds[4].Data

	gotHash := hash.Hash160(pubkey)
	if !bytes.Equal(gotHash[:], pubkeyHash) {
		return false
	}

	if len(sigWithType) == 0 {
		return false
	}
	sighashType := sigWithType[len(sigWithType)-1]
	if sighashType != 0x01 { // SIGHASH_ALL is the only type this evaluator supports
		return false
	}
	der := sigWithType[:len(sigWithType)-1]

	sig, err := signature.DecodeDER(der)
	if err != nil {
		return false
	}
	pk, err := keys.DecodeSEC(pubkey)
	if err != nil {
		return false
	}

	return signature.Verify(pk.Point, modifiedTx, sig)
}
