// Copyright (c) 2025 The gobtc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package genesis provides the curated, hardcoded genesis block headers for
// mainnet and testnet3. Both networks share the same genesis coinbase
// transaction (the famous "Chancellor on brink" message) and therefore the
// same merkle root; only their timestamp and nonce differ.
package genesis

import (
	"bytes"
	"encoding/hex"

	"github.com/btcedu/gobtc/block"
)

const mainnetHeaderHex = "0100000000000000000000000000000000000000000000000000000000000000000000003ba3edfd7a7b12b27ac72c3e67768f617fc81bc3888a51323a9fb8aa4b1e5e4a29ab5f49ffff001d1dac2b7c"

const testnet3HeaderHex = "0100000000000000000000000000000000000000000000000000000000000000000000003ba3edfd7a7b12b27ac72c3e67768f617fc81bc3888a51323a9fb8aa4b1e5e4adae5494dffff001d1aa4ae18"

// coinbaseTxIDHex is the id of the genesis coinbase transaction, shared by
// both networks.
const coinbaseTxIDHex = "4a5e1e4baab89f3a32518a88c31bc87f618f76673e2cc77ab2127b7afdeda33b"

// CoinbaseTxID returns the id of the shared genesis coinbase transaction,
// in display order.
func CoinbaseTxID() [32]byte {
	raw, err := hex.DecodeString(coinbaseTxIDHex)
	if err != nil {
		panic(err)
	}
	var id [32]byte
	copy(id[:], raw)
	return id
}

// MainnetHeader returns the mainnet genesis block header.
func MainnetHeader() block.Header {
	return mustDecode(mainnetHeaderHex)
}

// Testnet3Header returns the testnet3 genesis block header.
func Testnet3Header() block.Header {
	return mustDecode(testnet3HeaderHex)
}

func mustDecode(h string) block.Header {
	raw, err := hex.DecodeString(h)
	if err != nil {
		panic(err)
	}
	header, err := block.Decode(bytes.NewReader(raw))
	if err != nil {
		panic(err)
	}

	// The genesis block holds a single transaction, so its merkle root is
	// that transaction's id. Recomputing it guards the hardcoded constants
	// against transcription errors.
	if header.MerkleRoot != block.MerkleRoot([][32]byte{CoinbaseTxID()}) {
		panic("genesis: header merkle root does not match the coinbase txid")
	}
	return header
}
