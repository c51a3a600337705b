// Copyright (c) 2025 The gobtc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Command getnewaddress generates a fresh secret key and prints the key,
// its public point, and the derived Bitcoin address.
package main

import (
	"fmt"
	"os"

	flags "github.com/jessevdk/go-flags"

	"github.com/btcedu/gobtc/chaincfg"
	"github.com/btcedu/gobtc/ecc"
	"github.com/btcedu/gobtc/keys"
)

type options struct {
	TestNet      bool `short:"t" long:"testnet" description:"derive a testnet address instead of mainnet"`
	Uncompressed bool `short:"u" long:"uncompressed" description:"use the uncompressed SEC encoding"`
}

func main() {
	var opts options
	if _, err := flags.Parse(&opts); err != nil {
		if flags.WroteHelp(err) {
			return
		}
		os.Exit(1)
	}

	secretKey, err := keys.GenerateSecretKey(ecc.N)
	if err != nil {
		fmt.Fprintln(os.Stderr, "getnewaddress:", err)
		os.Exit(1)
	}

	publicKey := keys.FromSecretKey(secretKey)
	compressed := !opts.Uncompressed

	params := chaincfg.MainNetParams
	if opts.TestNet {
		params = chaincfg.TestNet3Params
	}

	fmt.Println("generated secret key:")
	fmt.Printf("0x%x\n", secretKey)
	fmt.Println("corresponding public key:")
	fmt.Printf("x: %064X\n", publicKey.Point.X())
	fmt.Printf("y: %064X\n", publicKey.Point.Y())
	fmt.Println("bitcoin address (b58check format):")
	fmt.Println(publicKey.Address(params.AddressNet, compressed))
}
