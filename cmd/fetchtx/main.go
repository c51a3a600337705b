// Copyright (c) 2025 The gobtc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Command fetchtx resolves a transaction id against the cache or a
// block-explorer API and prints its decoded fields.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/btcsuite/btclog"
	flags "github.com/jessevdk/go-flags"
	"github.com/jrick/logrotate/rotator"

	"github.com/btcedu/gobtc/txfetcher"
)

type options struct {
	TestNet  bool   `short:"t" long:"testnet" description:"look up the transaction on testnet instead of mainnet"`
	CacheDir string `short:"c" long:"cachedir" default:"txdb" description:"directory to cache fetched transactions under"`
	LogDir   string `long:"logdir" description:"directory to write rotated log files to; disabled if unset"`
	Args     struct {
		TxID string `positional-arg-name:"txid"`
	} `positional-args:"yes" required:"yes"`
}

var log btclog.Logger = btclog.Disabled

func initLogRotator(logDir string) error {
	if err := os.MkdirAll(logDir, 0o700); err != nil {
		return fmt.Errorf("fetchtx: failed to create log directory: %w", err)
	}
	r, err := rotator.New(filepath.Join(logDir, "fetchtx.log"), 10*1024, false, 3)
	if err != nil {
		return fmt.Errorf("fetchtx: failed to create log rotator: %w", err)
	}
	backend := btclog.NewBackend(r)
	log = backend.Logger("FETCHTX")
	return nil
}

func main() {
	var opts options
	if _, err := flags.Parse(&opts); err != nil {
		if flags.WroteHelp(err) {
			return
		}
		os.Exit(1)
	}

	if opts.LogDir != "" {
		if err := initLogRotator(opts.LogDir); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	net := txfetcher.MainNet
	if opts.TestNet {
		net = txfetcher.TestNet
	}

	log.Infof("fetching transaction %s on %s", opts.Args.TxID, net)

	fetcher := txfetcher.New(opts.CacheDir)
	transaction, err := fetcher.Fetch(opts.Args.TxID, net)
	if err != nil {
		log.Errorf("fetch failed: %v", err)
		fmt.Fprintln(os.Stderr, "fetchtx:", err)
		os.Exit(1)
	}

	id, err := transaction.ID()
	if err != nil {
		fmt.Fprintln(os.Stderr, "fetchtx:", err)
		os.Exit(1)
	}

	fmt.Println("id:", id)
	fmt.Println("version:", transaction.Version)
	fmt.Println("segwit:", transaction.Segwit)
	fmt.Println("inputs:", len(transaction.TxIns))
	fmt.Println("outputs:", len(transaction.TxOuts))
	for i, out := range transaction.TxOuts {
		fmt.Printf("  output %d: %d satoshis\n", i, out.Amount)
	}
	fmt.Println("locktime:", transaction.Locktime)
}
