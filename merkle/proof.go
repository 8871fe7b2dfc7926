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
	"bytes"
	"fmt"
	"strings"

	"github.com/hashicorp/go-msgpack/codec"

	"github.com/bbva/dmt/crypto/hashing"
)

// Side tells on which side of the running digest a sibling goes when
// hashing the parent.
type Side uint8

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("side(%d)", uint8(s))
	}
}

type Sibling struct {
	Digest hashing.Digest
	Side   Side
}

// Proof is an inclusion proof: the siblings met on the way from a leaf
// to the root, leaf level first. Index, LeafCount and HasherID describe
// the tree the proof was taken from; verification only relies on the
// siblings. A proof reflects the tree at generation time and will not
// verify against the root of a tree grown afterwards.
type Proof struct {
	Index     uint64
	LeafCount uint64
	HasherID  string
	Siblings  []Sibling
}

// Prove returns the inclusion proof of the leaf at the given index. It
// returns ErrIndexOutOfRange if there is no such leaf.
func (t Tree) Prove(index uint64) (*Proof, error) {
	if index >= t.LeafCount() {
		return nil, indexOutOfRange(index, t.LeafCount())
	}

	t.log.Debugf("Proving membership for index %d with %d leaves", index, t.LeafCount())

	depth := t.Depth()
	siblings := make([]Sibling, 0, depth)

	pos := newPosition(index, 0)
	for pos.Height < depth {
		var sibling Sibling
		if pos.IsRightChild() {
			sibling.Side = Left
			sibling.Digest, _ = t.store.Get(pos.Sibling())
		} else {
			sibling.Side = Right
			digest, ok := t.store.Get(pos.Sibling())
			if !ok { // last node of an odd-width level, paired with itself
				digest, _ = t.store.Get(pos)
			}
			sibling.Digest = digest
		}
		sibling.Digest = append(hashing.Digest(nil), sibling.Digest...)
		siblings = append(siblings, sibling)
		pos = pos.Parent()
	}

	ProveTotal.Inc()

	return &Proof{
		Index:     index,
		LeafCount: t.LeafCount(),
		HasherID:  t.hasher.ID(),
		Siblings:  siblings,
	}, nil
}

func (p Proof) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Proof(index %d, leaves %d, hasher %s)", p.Index, p.LeafCount, p.HasherID)
	for i, s := range p.Siblings {
		fmt.Fprintf(&b, "\n  %d: %-5s %v", i, s.Side, s.Digest)
	}
	return b.String()
}

func (p *Proof) Encode() ([]byte, error) {
	var buf bytes.Buffer
	encoder := codec.NewEncoder(&buf, &codec.MsgpackHandle{})
	if err := encoder.Encode(p); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (p *Proof) Decode(msg []byte) error {
	reader := bytes.NewReader(msg)
	decoder := codec.NewDecoder(reader, &codec.MsgpackHandle{})
	return decoder.Decode(p)
}
