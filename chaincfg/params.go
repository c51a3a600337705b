// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2025 The gobtc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chaincfg defines the network parameters the rest of the library
// is parameterized over: the peer-to-peer magic bytes, address version
// bytes, and default port for mainnet and testnet3.
package chaincfg

import (
	"github.com/btcedu/gobtc/block"
	"github.com/btcedu/gobtc/genesis"
	"github.com/btcedu/gobtc/keys"
	"github.com/btcedu/gobtc/wire"
)

// Params identifies one Bitcoin network by the handful of constants this
// library actually needs to differentiate it from another: its P2P magic,
// default port, and address version byte.
type Params struct {
	// Name is a human-readable identifier for the network.
	Name string

	// Net is the magic bytes used to identify the network's envelopes.
	Net wire.BitcoinNet

	// DefaultPort is the default peer-to-peer port for the network.
	DefaultPort string

	// AddressNet selects the version byte used when deriving P2PKH
	// addresses on this network.
	AddressNet keys.Net

	// GenesisHeader returns the network's genesis block header.
	GenesisHeader func() block.Header

	// GenesisHash is the id of the network's genesis block.
	GenesisHash string
}

// MainNetParams defines the network parameters for mainnet.
var MainNetParams = Params{
	Name:          "mainnet",
	Net:           wire.MainNet,
	DefaultPort:   "8333",
	AddressNet:    keys.MainNet,
	GenesisHeader: genesis.MainnetHeader,
	GenesisHash:   "000000000019d6689c085ae165831e934ff763ae46a2a6c172b3f1b60a8ce26f",
}

// TestNet3Params defines the network parameters for testnet3.
var TestNet3Params = Params{
	Name:          "testnet3",
	Net:           wire.TestNet3,
	DefaultPort:   "18333",
	AddressNet:    keys.TestNet,
	GenesisHeader: genesis.Testnet3Header,
	GenesisHash:   "000000000933ea01ad0ee984209779baaec3ced90fa3f408719526f8d77f4943",
}
