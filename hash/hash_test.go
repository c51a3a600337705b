// Copyright (c) 2025 The gobtc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hash

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHash256(t *testing.T) {
	got := Hash256([]byte("hello"))
	require.Equal(t, "9595c9df90075148eb06860365df33584b75bff782a510c6cd4883a419833d50", hex.EncodeToString(got[:]))
}

func TestHash160(t *testing.T) {
	got := Hash160([]byte("hello"))
	require.Equal(t, "b6a9c8c230722b7c748331a8b450f05566dc7d0f", hex.EncodeToString(got[:]))
}
