// Copyright (c) 2025 The gobtc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"io"

	"github.com/btcedu/gobtc/block"
	"github.com/btcedu/gobtc/script"
)

// Message is anything that can be framed into an Envelope.
type Message interface {
	Command() string
	Encode() ([]byte, error)
}

// VersionMessage is the first message a node sends after connecting,
// advertising its protocol version and capabilities to the peer.
type VersionMessage struct {
	Version        int32
	Services       uint64
	Timestamp      int64
	ReceiverIP     [4]byte
	ReceiverPort   uint16
	SenderServices uint64
	SenderIP       [4]byte
	SenderPort     uint16
	Nonce          [8]byte
	UserAgent      string
	LatestBlock    int32
	Relay          bool
}

// NewVersionMessage returns a VersionMessage with the conventional defaults
// used by lightweight clients: current protocol version, no advertised
// services, default port 8333, and a randomly generated nonce.
func NewVersionMessage() VersionMessage {
	var nonce [8]byte
	rand.Read(nonce[:])
	return VersionMessage{
		Version:      int32(ProtocolVersion),
		ReceiverPort: 8333,
		SenderPort:   8333,
		Nonce:        nonce,
		UserAgent:    "/gobtc:0.1/",
	}
}

func (v VersionMessage) Command() string { return "version" }

func (v VersionMessage) Encode() ([]byte, error) {
	var buf bytes.Buffer

	var tmp4 [4]byte
	binary.LittleEndian.PutUint32(tmp4[:], uint32(v.Version))
	buf.Write(tmp4[:])

	var tmp8 [8]byte
	binary.LittleEndian.PutUint64(tmp8[:], v.Services)
	buf.Write(tmp8[:])

	binary.LittleEndian.PutUint64(tmp8[:], uint64(v.Timestamp))
	buf.Write(tmp8[:])

	// receiver services (unused by lightweight clients, always zero)
	buf.Write(make([]byte, 8))
	writeIPv4MappedAddr(&buf, v.ReceiverIP)
	writePortBE(&buf, v.ReceiverPort)

	binary.LittleEndian.PutUint64(tmp8[:], v.SenderServices)
	buf.Write(tmp8[:])
	writeIPv4MappedAddr(&buf, v.SenderIP)
	writePortBE(&buf, v.SenderPort)

	buf.Write(v.Nonce[:])

	buf.Write(script.EncodeVarint(uint64(len(v.UserAgent))))
	buf.WriteString(v.UserAgent)

	binary.LittleEndian.PutUint32(tmp4[:], uint32(v.LatestBlock))
	buf.Write(tmp4[:])

	if v.Relay {
		buf.WriteByte(1)
	} else {
		buf.WriteByte(0)
	}

	return buf.Bytes(), nil
}

func writeIPv4MappedAddr(buf *bytes.Buffer, ip [4]byte) {
	buf.Write(make([]byte, 10))
	buf.Write([]byte{0xff, 0xff})
	buf.Write(ip[:])
}

func writePortBE(buf *bytes.Buffer, port uint16) {
	var tmp2 [2]byte
	binary.BigEndian.PutUint16(tmp2[:], port)
	buf.Write(tmp2[:])
}

// DecodeVersionMessage parses a version message payload.
func DecodeVersionMessage(b []byte) (VersionMessage, error) {
	if len(b) < 85 {
		return VersionMessage{}, errors.New("wire: version payload too short")
	}
	r := bytes.NewReader(b)
	var v VersionMessage

	var tmp4 [4]byte
	if _, err := io.ReadFull(r, tmp4[:]); err != nil {
		return VersionMessage{}, err
	}
	v.Version = int32(binary.LittleEndian.Uint32(tmp4[:]))

	var tmp8 [8]byte
	if _, err := io.ReadFull(r, tmp8[:]); err != nil {
		return VersionMessage{}, err
	}
	v.Services = binary.LittleEndian.Uint64(tmp8[:])

	if _, err := io.ReadFull(r, tmp8[:]); err != nil {
		return VersionMessage{}, err
	}
	v.Timestamp = int64(binary.LittleEndian.Uint64(tmp8[:]))

	if _, err := io.CopyN(io.Discard, r, 8); err != nil { // receiver services
		return VersionMessage{}, err
	}
	if err := readIPv4MappedAddr(r, &v.ReceiverIP); err != nil {
		return VersionMessage{}, err
	}
	if err := readPortBE(r, &v.ReceiverPort); err != nil {
		return VersionMessage{}, err
	}

	if _, err := io.ReadFull(r, tmp8[:]); err != nil {
		return VersionMessage{}, err
	}
	v.SenderServices = binary.LittleEndian.Uint64(tmp8[:])
	if err := readIPv4MappedAddr(r, &v.SenderIP); err != nil {
		return VersionMessage{}, err
	}
	if err := readPortBE(r, &v.SenderPort); err != nil {
		return VersionMessage{}, err
	}

	if _, err := io.ReadFull(r, v.Nonce[:]); err != nil {
		return VersionMessage{}, err
	}

	uaLen, err := script.ReadVarint(r)
	if err != nil {
		return VersionMessage{}, err
	}
	ua := make([]byte, uaLen)
	if _, err := io.ReadFull(r, ua); err != nil {
		return VersionMessage{}, err
	}
	v.UserAgent = string(ua)

	if _, err := io.ReadFull(r, tmp4[:]); err != nil {
		return VersionMessage{}, err
	}
	v.LatestBlock = int32(binary.LittleEndian.Uint32(tmp4[:]))

	relay, err := r.ReadByte()
	if err == nil {
		v.Relay = relay != 0
	}

	return v, nil
}

func readIPv4MappedAddr(r io.Reader, ip *[4]byte) error {
	var padding [12]byte
	if _, err := io.ReadFull(r, padding[:]); err != nil {
		return err
	}
	_, err := io.ReadFull(r, ip[:])
	return err
}

func readPortBE(r io.Reader, port *uint16) error {
	var tmp2 [2]byte
	if _, err := io.ReadFull(r, tmp2[:]); err != nil {
		return err
	}
	*port = binary.BigEndian.Uint16(tmp2[:])
	return nil
}

// VerAckMessage acknowledges a received version message. It carries no
// payload.
type VerAckMessage struct{}

func (VerAckMessage) Command() string        { return "verack" }
func (VerAckMessage) Encode() ([]byte, error) { return nil, nil }

// PingMessage carries an 8-byte nonce a peer must echo back in a pong.
type PingMessage struct {
	Nonce uint64
}

func (p PingMessage) Command() string { return "ping" }

func (p PingMessage) Encode() ([]byte, error) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], p.Nonce)
	return buf[:], nil
}

// DecodePingMessage parses a ping (or pong) payload.
func DecodePingMessage(b []byte) (PingMessage, error) {
	if len(b) != 8 {
		return PingMessage{}, errors.New("wire: ping payload must be 8 bytes")
	}
	return PingMessage{Nonce: binary.LittleEndian.Uint64(b)}, nil
}

// PongMessage echoes the nonce of a received ping.
type PongMessage struct {
	Nonce uint64
}

func (p PongMessage) Command() string { return "pong" }

func (p PongMessage) Encode() ([]byte, error) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], p.Nonce)
	return buf[:], nil
}

// GetHeadersMessage requests block headers starting after one of the
// supplied locator hashes, up to stopHash (or 2000 headers if stopHash is
// the zero hash).
type GetHeadersMessage struct {
	Version  uint32
	Locator  [][32]byte // wire order
	StopHash [32]byte   // wire order
}

func (g GetHeadersMessage) Command() string { return "getheaders" }

func (g GetHeadersMessage) Encode() ([]byte, error) {
	var buf bytes.Buffer
	var tmp4 [4]byte
	binary.LittleEndian.PutUint32(tmp4[:], g.Version)
	buf.Write(tmp4[:])

	buf.Write(script.EncodeVarint(uint64(len(g.Locator))))
	for _, h := range g.Locator {
		buf.Write(h[:])
	}
	buf.Write(g.StopHash[:])
	return buf.Bytes(), nil
}

// HeadersMessage carries a batch of block headers, each followed by a
// transaction-count varint that is always zero in this reply (no
// transactions are included).
type HeadersMessage struct {
	Headers []block.Header
}

func (h HeadersMessage) Command() string { return "headers" }

func (h HeadersMessage) Encode() ([]byte, error) {
	var buf bytes.Buffer
	buf.Write(script.EncodeVarint(uint64(len(h.Headers))))
	for _, header := range h.Headers {
		buf.Write(header.Encode())
		buf.Write(script.EncodeVarint(0))
	}
	return buf.Bytes(), nil
}

// DecodeHeadersMessage parses a headers message payload.
func DecodeHeadersMessage(b []byte) (HeadersMessage, error) {
	r := bytes.NewReader(b)
	count, err := script.ReadVarint(r)
	if err != nil {
		return HeadersMessage{}, err
	}

	out := HeadersMessage{Headers: make([]block.Header, 0, count)}
	for i := uint64(0); i < count; i++ {
		h, err := block.Decode(r)
		if err != nil {
			return HeadersMessage{}, err
		}
		// each header is followed by a transaction count, always 0 here
		numTxs, err := script.ReadVarint(r)
		if err != nil {
			return HeadersMessage{}, err
		}
		if numTxs != 0 {
			return HeadersMessage{}, errors.New("wire: headers message carries transactions")
		}
		out.Headers = append(out.Headers, h)
	}
	return out, nil
}
