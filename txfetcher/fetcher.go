// Copyright (c) 2025 The gobtc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package txfetcher lazily fetches transactions by id from a block
// explorer, caching the raw bytes on disk so repeat lookups don't hit the
// network.
package txfetcher

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/btcsuite/btclog"

	"github.com/btcedu/gobtc/script"
	"github.com/btcedu/gobtc/tx"
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

// Net selects which network's API and cache subdirectory to use.
type Net string

const (
	MainNet Net = "main"
	TestNet Net = "test"
)

// ErrTxIDMismatch is returned when the fetched transaction's computed id
// doesn't match the id it was requested under.
var ErrTxIDMismatch = errors.New("txfetcher: fetched transaction id mismatch")

func apiURL(net Net, txID string) (string, error) {
	switch net {
	case MainNet:
		return fmt.Sprintf("https://blockstream.info/api/tx/%s/hex", txID), nil
	case TestNet:
		return fmt.Sprintf("https://blockstream.info/testnet/api/tx/%s/hex", txID), nil
	default:
		return "", fmt.Errorf("txfetcher: %q is not a valid net, should be main|test", net)
	}
}

// Fetcher fetches and caches transactions under CacheDir/<net>/<txid>.
type Fetcher struct {
	CacheDir string
	Client   *http.Client
}

// New returns a Fetcher caching under the given directory with a default
// HTTP client.
func New(cacheDir string) *Fetcher {
	return &Fetcher{CacheDir: cacheDir, Client: http.DefaultClient}
}

// Fetch returns the transaction identified by txID on the given network,
// reading from the on-disk cache when present and falling back to the
// network API otherwise. The transaction's computed id is verified against
// txID before it's returned.
func (f *Fetcher) Fetch(txID string, net Net) (tx.Tx, error) {
	txID = strings.ToLower(txID)

	cachePath := filepath.Join(f.CacheDir, string(net), txID)
	raw, err := os.ReadFile(cachePath)
	if err != nil {
		log.Debugf("cache miss for %s, fetching from API", txID)
		raw, err = f.fetchFromAPI(txID, net)
		if err != nil {
			return tx.Tx{}, err
		}
		if err := f.writeCache(cachePath, raw); err != nil {
			return tx.Tx{}, err
		}
	} else {
		log.Debugf("cache hit for %s", txID)
	}

	parsed, err := tx.Decode(bytes.NewReader(raw))
	if err != nil {
		return tx.Tx{}, err
	}

	gotID, err := parsed.ID()
	if err != nil {
		return tx.Tx{}, err
	}
	if gotID != txID {
		return tx.Tx{}, ErrTxIDMismatch
	}
	return parsed, nil
}

// Lookup binds the fetcher to one network as a tx.PrevOutputLookup, so
// fee computation and signature validation can resolve previous outputs
// through the cache.
func (f *Fetcher) Lookup(net Net) tx.PrevOutputLookup {
	return prevOutputLookup{f: f, net: net}
}

type prevOutputLookup struct {
	f   *Fetcher
	net Net
}

func (l prevOutputLookup) PrevOutput(prevTxID [32]byte, index uint32) (int64, script.Script, error) {
	prev, err := l.f.Fetch(hex.EncodeToString(prevTxID[:]), l.net)
	if err != nil {
		return 0, script.Script{}, err
	}
	if index >= uint32(len(prev.TxOuts)) {
		return 0, script.Script{}, fmt.Errorf("txfetcher: transaction %x has no output %d", prevTxID, index)
	}
	out := prev.TxOuts[index]
	return out.Amount, out.ScriptPubKey, nil
}

func (f *Fetcher) fetchFromAPI(txID string, net Net) ([]byte, error) {
	url, err := apiURL(net, txID)
	if err != nil {
		return nil, err
	}

	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("txfetcher: transaction %s was not found (status %d)", txID, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return hex.DecodeString(strings.TrimSpace(string(body)))
}

func (f *Fetcher) writeCache(path string, raw []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o644)
}
