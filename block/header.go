// Copyright (c) 2025 The gobtc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package block implements the Bitcoin block header: its 80-byte wire
// codec, the target/bits compact-representation conversions, the 2016-block
// difficulty retarget, and proof-of-work validation.
package block

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"io"
	"math/big"

	"github.com/btcedu/gobtc/hash"
)

// TwoWeeks is the target retarget interval in seconds: 2016 blocks at the
// intended 10-minute spacing.
const TwoWeeks = 60 * 60 * 24 * 14

// RetargetInterval is the number of blocks between difficulty adjustments.
const RetargetInterval = 2016

// ErrInvalidHeader is returned when a header's wire encoding is truncated.
var ErrInvalidHeader = errors.New("block: invalid header encoding")

// Header is an 80-byte Bitcoin block header.
type Header struct {
	Version    int32
	PrevBlock  [32]byte // display (big-endian) order
	MerkleRoot [32]byte // display (big-endian) order
	Timestamp  uint32
	Bits       [4]byte // wire order, compact target representation
	Nonce      [4]byte // wire order
}

// Decode parses an 80-byte block header from r.
func Decode(r io.Reader) (Header, error) {
	var buf [80]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return Header{}, ErrInvalidHeader
	}

	var h Header
	h.Version = int32(binary.LittleEndian.Uint32(buf[0:4]))

	var prevWire, merkleWire [32]byte
	copy(prevWire[:], buf[4:36])
	copy(merkleWire[:], buf[36:68])
	h.PrevBlock = reverse32(prevWire)
	h.MerkleRoot = reverse32(merkleWire)

	h.Timestamp = binary.LittleEndian.Uint32(buf[68:72])
	copy(h.Bits[:], buf[72:76])
	copy(h.Nonce[:], buf[76:80])
	return h, nil
}

// Encode returns the 80-byte wire encoding of h.
func (h Header) Encode() []byte {
	var buf [80]byte
	binary.LittleEndian.PutUint32(buf[0:4], uint32(h.Version))

	prevWire := reverse32(h.PrevBlock)
	merkleWire := reverse32(h.MerkleRoot)
	copy(buf[4:36], prevWire[:])
	copy(buf[36:68], merkleWire[:])

	binary.LittleEndian.PutUint32(buf[68:72], h.Timestamp)
	copy(buf[72:76], h.Bits[:])
	copy(buf[76:80], h.Nonce[:])
	return buf[:]
}

// ID returns the block's id: the byte-reversed Hash256 of its header
// encoding, hex-encoded as conventionally displayed.
func (h Header) ID() string {
	digest := hash.Hash256(h.Encode())
	reversed := reverseBytes(digest[:])
	return hex.EncodeToString(reversed)
}

// Target returns the header's proof-of-work target, decoded from its
// compact bits representation: coeff * 256^(exponent-3).
func (h Header) Target() *big.Int {
	return bitsToTarget(h.Bits)
}

func bitsToTarget(bits [4]byte) *big.Int {
	exponent := int(bits[3])
	coeff := new(big.Int).SetBytes(reverseBytes(bits[:3]))

	target := new(big.Int).Set(coeff)
	shift := (exponent - 3) * 8
	if shift > 0 {
		target.Lsh(target, uint(shift))
	} else if shift < 0 {
		target.Rsh(target, uint(-shift))
	}
	return target
}

// targetToBits encodes target into the compact bits representation: the
// coefficient is the target's three most significant bytes, with a leading
// 0x00 inserted if the high bit of the first byte would otherwise be set
// (so the value is never misread as negative).
func targetToBits(target *big.Int) [4]byte {
	raw := target.Bytes()
	if len(raw) == 0 {
		raw = []byte{0}
	}

	if raw[0] > 0x7f {
		raw = append([]byte{0x00}, raw...)
	}

	var coeff []byte
	var exponent int
	if len(raw) <= 3 {
		coeff = make([]byte, 3)
		copy(coeff[3-len(raw):], raw)
		exponent = len(raw)
	} else {
		coeff = raw[:3]
		exponent = len(raw)
	}

	var out [4]byte
	out[0], out[1], out[2] = coeff[2], coeff[1], coeff[0]
	out[3] = byte(exponent)
	return out
}

// genesisBlockTarget is the proof-of-work target of the Bitcoin mainnet
// genesis block, against which difficulty is normalized.
var genesisBlockTarget = bitsToTarget([4]byte{0xff, 0xff, 0x00, 0x1d})

// Difficulty returns the header's difficulty relative to the genesis
// block's target (whose difficulty is defined as 1).
func (h Header) Difficulty() *big.Float {
	target := h.Target()
	if target.Sign() == 0 {
		return big.NewFloat(0)
	}
	num := new(big.Float).SetInt(genesisBlockTarget)
	den := new(big.Float).SetInt(target)
	return new(big.Float).Quo(num, den)
}

// ValidatePoW reports whether the header's id, interpreted as a big-endian
// integer, is below its target.
func (h Header) ValidatePoW() bool {
	idBytes, err := hex.DecodeString(h.ID())
	if err != nil {
		return false
	}
	id := new(big.Int).SetBytes(idBytes)
	return id.Cmp(h.Target()) < 0
}

// CalculateNewBits computes the next retarget's compact bits given the
// previous target's bits and the elapsed time (in seconds) over the last
// RetargetInterval blocks. dt is clamped to [TwoWeeks/4, TwoWeeks*4] so a
// single retarget can change the target by at most 4x in either direction,
// and the new target is capped at the mainnet proof-of-work limit.
func CalculateNewBits(prevBits [4]byte, dt int64) [4]byte {
	if dt > TwoWeeks*4 {
		dt = TwoWeeks * 4
	}
	if dt < TwoWeeks/4 {
		dt = TwoWeeks / 4
	}

	newTarget := new(big.Int).Mul(bitsToTarget(prevBits), big.NewInt(dt))
	newTarget.Div(newTarget, big.NewInt(TwoWeeks))

	if newTarget.Cmp(genesisBlockTarget) > 0 {
		newTarget = genesisBlockTarget
	}

	return targetToBits(newTarget)
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
