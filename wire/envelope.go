// Copyright (c) 2025 The gobtc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"encoding/binary"
	"errors"
	"io"

	"github.com/btcedu/gobtc/hash"
)

// magic maps a BitcoinNet to its 4-byte wire magic. Stored big-endian as it
// appears on the wire, matching how peers actually exchange it.
var magic = map[BitcoinNet][4]byte{
	MainNet:  {0xf9, 0xbe, 0xb4, 0xd9},
	TestNet3: {0x0b, 0x11, 0x09, 0x07},
}

// ErrBadMagic is returned when an envelope's magic bytes don't match the
// expected network, or when the four magic bytes cannot be read at all. A
// read failure later in the envelope returns the underlying error instead.
var ErrBadMagic = errors.New("wire: bad magic bytes")

// ErrBadChecksum is returned when a decoded envelope's payload doesn't hash
// to its advertised checksum.
var ErrBadChecksum = errors.New("wire: checksum mismatch")

// Envelope is the outer frame every Bitcoin P2P message travels in: a
// network magic, a 12-byte zero-padded command name, the payload length and
// checksum, and the payload itself.
type Envelope struct {
	Net     BitcoinNet
	Command string
	Payload []byte
}

// NewEnvelope wraps a command and payload for the given network.
func NewEnvelope(net BitcoinNet, command string, payload []byte) Envelope {
	return Envelope{Net: net, Command: command, Payload: payload}
}

func checksum4(payload []byte) [4]byte {
	digest := hash.Hash256(payload)
	var out [4]byte
	copy(out[:], digest[:4])
	return out
}

// Encode serializes the envelope to its wire form.
func (e Envelope) Encode() ([]byte, error) {
	if len(e.Command) > 12 {
		return nil, errors.New("wire: command exceeds 12 bytes")
	}
	m, ok := magic[e.Net]
	if !ok {
		return nil, errors.New("wire: unsupported network")
	}

	out := make([]byte, 0, 24+len(e.Payload))
	out = append(out, m[:]...)

	var cmd [12]byte
	copy(cmd[:], e.Command)
	out = append(out, cmd[:]...)

	var lenBuf [4]byte
	binary.LittleEndian.PutUint32(lenBuf[:], uint32(len(e.Payload)))
	out = append(out, lenBuf[:]...)

	sum := checksum4(e.Payload)
	out = append(out, sum[:]...)
	out = append(out, e.Payload...)
	return out, nil
}

// DecodeEnvelope reads one envelope from r for the given network, validating
// its magic and checksum.
func DecodeEnvelope(r io.Reader, net BitcoinNet) (Envelope, error) {
	want, ok := magic[net]
	if !ok {
		return Envelope{}, errors.New("wire: unsupported network")
	}

	var m [4]byte
	if _, err := io.ReadFull(r, m[:]); err != nil {
		return Envelope{}, ErrBadMagic
	}
	if m != want {
		return Envelope{}, ErrBadMagic
	}

	var cmd [12]byte
	if _, err := io.ReadFull(r, cmd[:]); err != nil {
		return Envelope{}, err
	}
	command := string(bytesTrimRightZero(cmd[:]))

	var lenBuf [4]byte
	if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
		return Envelope{}, err
	}
	payloadLen := binary.LittleEndian.Uint32(lenBuf[:])

	var sum [4]byte
	if _, err := io.ReadFull(r, sum[:]); err != nil {
		return Envelope{}, err
	}

	payload := make([]byte, payloadLen)
	if _, err := io.ReadFull(r, payload); err != nil {
		return Envelope{}, err
	}

	if checksum4(payload) != sum {
		return Envelope{}, ErrBadChecksum
	}

	return Envelope{Net: net, Command: command, Payload: payload}, nil
}

func bytesTrimRightZero(b []byte) []byte {
	i := len(b)
	for i > 0 && b[i-1] == 0 {
		i--
	}
	return b[:i]
}
