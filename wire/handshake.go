// Copyright (c) 2025 The gobtc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bufio"
	"errors"
	"net"
	"time"

	"github.com/btcsuite/btclog"
)

// log is a logger that is initialized with no output filters. This means
// the package will not perform any logging by default until the caller
// requests it.
var log btclog.Logger

// UseLogger uses a specified Logger to output package logging info.
func UseLogger(logger btclog.Logger) {
	log = logger
}

// Disable logging by default until the package user requests it.
func init() {
	DisableLog()
}

// DisableLog disables all library log output. Logging output is disabled
// by default until UseLogger is called.
func DisableLog() {
	log = btclog.Disabled
}

// HandshakeState tracks a SimpleNode's progress through the version/verack
// exchange that must complete before any other message is exchanged.
type HandshakeState int

const (
	Connected HandshakeState = iota
	VersionSent
	PeerVersionReceived
	PeerVerAckReceived
	Ready
)

// ErrNotReady is returned when a caller tries to exchange application
// messages before the handshake has completed.
var ErrNotReady = errors.New("wire: handshake not complete")

// SimpleNode is a minimal, non-concurrent Bitcoin peer connection: it can
// dial a peer, perform the version/verack handshake, and send or receive
// one framed message at a time. It does not run a background read loop.
type SimpleNode struct {
	conn  net.Conn
	r     *bufio.Reader
	net   BitcoinNet
	state HandshakeState
}

// Dial connects to a peer over TCP on the given network.
func Dial(addr string, net_ BitcoinNet, timeout time.Duration) (*SimpleNode, error) {
	conn, err := net.DialTimeout("tcp", addr, timeout)
	if err != nil {
		return nil, err
	}
	log.Debugf("connected to peer %s on %s", addr, net_)
	return &SimpleNode{conn: conn, r: bufio.NewReader(conn), net: net_, state: Connected}, nil
}

// State returns the node's current handshake state.
func (n *SimpleNode) State() HandshakeState { return n.state }

// Close closes the underlying connection.
func (n *SimpleNode) Close() error { return n.conn.Close() }

// Send frames msg into an envelope and writes it to the peer. Only the
// version/verack handshake messages and pong may be sent before the
// handshake completes; anything else returns ErrNotReady.
func (n *SimpleNode) Send(msg Message) error {
	if n.state != Ready {
		// version, verack, and pong are the only messages legitimately
		// exchanged while the handshake is still in progress.
		switch msg.Command() {
		case "version", "verack", "pong":
		default:
			return ErrNotReady
		}
	}

	payload, err := msg.Encode()
	if err != nil {
		return err
	}
	envelope, err := NewEnvelope(n.net, msg.Command(), payload).Encode()
	if err != nil {
		return err
	}
	_, err = n.conn.Write(envelope)
	return err
}

// Read blocks until the next envelope arrives from the peer.
func (n *SimpleNode) Read() (Envelope, error) {
	return DecodeEnvelope(n.r, n.net)
}

// WaitFor reads envelopes until one with a command in want is found and
// returns it. Unrequested traffic is handled transparently: a ping is
// answered with a pong echoing its nonce, a version with a verack, and
// anything else is discarded.
func (n *SimpleNode) WaitFor(want ...string) (Envelope, error) {
	wanted := make(map[string]bool, len(want))
	for _, c := range want {
		wanted[c] = true
	}
	for {
		envelope, err := n.Read()
		if err != nil {
			return Envelope{}, err
		}
		if wanted[envelope.Command] {
			return envelope, nil
		}

		switch envelope.Command {
		case "ping":
			ping, err := DecodePingMessage(envelope.Payload)
			if err != nil {
				return Envelope{}, err
			}
			if err := n.Send(PongMessage{Nonce: ping.Nonce}); err != nil {
				return Envelope{}, err
			}
		case "version":
			if err := n.Send(VerAckMessage{}); err != nil {
				return Envelope{}, err
			}
		default:
			log.Debugf("discarding unrequested %q message", envelope.Command)
		}
	}
}

// Handshake performs the version/verack exchange: send our version, wait
// for the peer's version (answering any intervening pings), wait for the
// peer's verack, then send our verack. On success the node's state is
// Ready and application messages may be exchanged.
func (n *SimpleNode) Handshake() error {
	version := NewVersionMessage()
	if err := n.Send(version); err != nil {
		return err
	}
	n.state = VersionSent
	log.Debugf("sent version message, nonce %x", version.Nonce)

	if _, err := n.WaitFor("version"); err != nil {
		return err
	}
	n.state = PeerVersionReceived
	log.Debugf("received peer version message")

	if _, err := n.WaitFor("verack"); err != nil {
		return err
	}
	n.state = PeerVerAckReceived

	if err := n.Send(VerAckMessage{}); err != nil {
		return err
	}
	n.state = Ready
	log.Debugf("handshake complete")
	return nil
}
