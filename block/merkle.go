// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2025 The gobtc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package block

import (
	"math"

	"github.com/btcedu/gobtc/hash"
)

// nextPowerOfTwo returns the next highest power of two from a given number
// if it is not already a power of two. Used while sizing the linear array
// backing a merkle tree.
func nextPowerOfTwo(n int) int {
	if n&(n-1) == 0 {
		return n
	}
	exponent := uint(math.Log2(float64(n))) + 1
	return 1 << exponent
}

// hashMerkleBranches returns Hash256(left || right), the node hash used
// throughout a merkle tree.
func hashMerkleBranches(left, right [32]byte) [32]byte {
	var buf [64]byte
	copy(buf[:32], left[:])
	copy(buf[32:], right[:])
	return hash.Hash256(buf[:])
}

// BuildMerkleTreeStore builds a merkle tree over txids as a linear array,
// following the same layout btcd's blockchain package uses: leaves first,
// then each level of interior nodes, with the root as the final element. A
// missing right child at any level is handled by hashing the left child
// with itself.
func BuildMerkleTreeStore(txids [][32]byte) [][32]byte {
	nextPoT := nextPowerOfTwo(len(txids))
	arraySize := nextPoT*2 - 1
	merkles := make([][32]byte, arraySize)

	copy(merkles, txids)

	offset := nextPoT
	for i := 0; i < arraySize-1; i += 2 {
		switch {
		case merkles[i] == [32]byte{} && i >= len(txids):
			merkles[offset] = [32]byte{}
		case merkles[i+1] == [32]byte{} && i+1 >= len(txids):
			merkles[offset] = hashMerkleBranches(merkles[i], merkles[i])
		default:
			merkles[offset] = hashMerkleBranches(merkles[i], merkles[i+1])
		}
		offset++
	}

	return merkles
}

// MerkleRoot returns the merkle root over txids, or the zero hash for an
// empty transaction list.
func MerkleRoot(txids [][32]byte) [32]byte {
	if len(txids) == 0 {
		return [32]byte{}
	}
	tree := BuildMerkleTreeStore(txids)
	return tree[len(tree)-1]
}
