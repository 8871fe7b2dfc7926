/*
   Copyright 2018-2019 Banco Bilbao Vizcaya Argentaria, S.A.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package merkle

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bbva/dmt/crypto/hashing"
)

func pos(index uint64, height uint16) *Position {
	return newPosition(index, height)
}

func inner(pos *Position, left, right operation) *innerHashOp {
	return newInnerHashOp(pos, left, right)
}

func dup(pos *Position, left operation) *duplicateHashOp {
	return newDuplicateHashOp(pos, left)
}

func leaf(pos *Position, value byte) *leafHashOp {
	return newLeafHashOp(pos, []byte{value})
}

func getCache(pos *Position) *getCacheOp {
	return newGetCacheOp(pos)
}

func putCache(op operation) *putCacheOp {
	return newPutCacheOp(op)
}

func xorHasher(t testing.TB) hashing.TreeHasher {
	h, err := hashing.NewTreeHasher(hashing.XOR)
	require.NoError(t, err)
	return h
}

func sha256Hasher(t testing.TB) hashing.TreeHasher {
	h, err := hashing.NewTreeHasher(hashing.SHA256)
	require.NoError(t, err)
	return h
}

// bytesOf returns one single-byte element per value.
func bytesOf(values ...byte) [][]byte {
	elements := make([][]byte, len(values))
	for i, v := range values {
		elements[i] = []byte{v}
	}
	return elements
}

// stringsOf returns one element per string.
func stringsOf(values ...string) [][]byte {
	elements := make([][]byte, len(values))
	for i, v := range values {
		elements[i] = []byte(v)
	}
	return elements
}

// sequence returns n distinct elements: "e0", "e1", ...
func sequence(n int) [][]byte {
	elements := make([][]byte, n)
	for i := range elements {
		elements[i] = []byte(fmt.Sprintf("e%d", i))
	}
	return elements
}

func newTestTree(t testing.TB, hasher hashing.TreeHasher, elements [][]byte) *Tree {
	tree, err := NewTree(hasher, elements)
	require.NoError(t, err)
	return tree
}
