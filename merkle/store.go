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

	"github.com/bbva/dmt/crypto/hashing"
)

// nodeStore keeps every node digest of a tree indexed by height and
// position within the level. levels[0] holds the leaves and the last
// level holds the root alone.
//
// The duplicate produced for the last node of an odd-width level is
// never stored, so len(levels[h+1]) == ceil(len(levels[h]) / 2).
type nodeStore struct {
	levels [][]hashing.Digest
}

func newNodeStore(leaves []hashing.Digest) *nodeStore {
	return &nodeStore{levels: [][]hashing.Digest{leaves}}
}

func (s nodeStore) leafCount() uint64 {
	return uint64(len(s.levels[0]))
}

func (s nodeStore) height() uint16 {
	return uint16(len(s.levels) - 1)
}

// width returns the number of nodes stored at the given height.
func (s nodeStore) width(height uint16) uint64 {
	if int(height) >= len(s.levels) {
		return 0
	}
	return uint64(len(s.levels[height]))
}

func (s nodeStore) root() hashing.Digest {
	return s.levels[len(s.levels)-1][0]
}

func (s nodeStore) Get(pos *Position) (hashing.Digest, bool) {
	if pos.Index >= s.width(pos.Height) {
		return nil, false
	}
	return s.levels[pos.Height][pos.Index], true
}

// Put stores the digest of a node. Levels only grow from the right: the
// position must either exist already or be the next slot of its level,
// and a new level can only be opened on top of the current root.
func (s *nodeStore) Put(pos *Position, digest hashing.Digest) {
	if int(pos.Height) == len(s.levels) {
		s.levels = append(s.levels, make([]hashing.Digest, 0, 1))
	}
	if int(pos.Height) > len(s.levels) {
		panic(fmt.Sprintf("Oops, something went wrong. Cannot open level %d over a tree of height %d", pos.Height, s.height()))
	}

	width := s.width(pos.Height)
	switch {
	case pos.Index < width:
		s.levels[pos.Height][pos.Index] = digest
	case pos.Index == width:
		s.levels[pos.Height] = append(s.levels[pos.Height], digest)
	default:
		panic(fmt.Sprintf("Oops, something went wrong. There is a gap before %v, level width is %d", pos, width))
	}
}

// appendLevel stacks a fully computed level over the current top.
func (s *nodeStore) appendLevel(level []hashing.Digest) {
	s.levels = append(s.levels, level)
}
