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

// Package merkle implements a dynamic binary hash tree: it is built
// from an ordered list of elements, grows by appending elements one at a
// time and produces inclusion proofs that can be checked against the
// root digest alone.
//
// Odd-width levels are completed by pairing their last node with itself:
//
//    height 2              ______h(0,2)______
//                         |                  |
//    height 1         __h(0,1)__         __h(1,1)__
//                    |          |       |          |
//    height 0       x0         x1      x2         (x2)
//
// where h(1,1) = NodeHash(x2, x2). The duplicate is not a leaf: the leaf
// count is still 3, and appending x3 takes its place. Building and
// inserting apply the same rule, and proofs record the self-paired
// sibling like any other one.
//
// A Tree is not safe for concurrent use. Insert needs exclusive access,
// and Prove must not run while an Insert is in progress. Proofs are
// immutable values and can be shared freely.
package merkle

import (
	"github.com/bbva/dmt/crypto/hashing"
	"github.com/bbva/dmt/log"
)

// Leaf is a leaf of the tree: its position in insertion order and the
// digest of the element.
type Leaf struct {
	Index  uint64
	Digest hashing.Digest
}

type Tree struct {
	hasher hashing.TreeHasher
	store  *nodeStore
	log    log.Logger
}

// Option configures a Tree.
type Option func(*Tree)

// WithLogger sets the logger used by the tree. By default the tree logs
// through the process logger, named "merkle".
func WithLogger(logger log.Logger) Option {
	return func(t *Tree) {
		t.log = logger
	}
}

// NewTree hashes every element into a leaf and builds all levels up to
// the root. The hasher stays bound to the tree for its whole lifetime.
// It returns ErrEmptyInput if there are no elements.
func NewTree(hasher hashing.TreeHasher, elements [][]byte, opts ...Option) (*Tree, error) {
	if len(elements) == 0 {
		return nil, ErrEmptyInput
	}

	t := &Tree{
		hasher: hasher,
		log:    log.L().Named("merkle"),
	}
	for _, opt := range opts {
		opt(t)
	}

	leaves := make([]hashing.Digest, len(elements))
	for i, e := range elements {
		leaves[i] = hasher.LeafHash(e)
	}
	t.store = newNodeStore(leaves)

	for level := leaves; len(level) > 1; {
		next := make([]hashing.Digest, (len(level)+1)/2)
		for i := 0; i < len(level); i += 2 {
			left, right := level[i], level[i]
			if i+1 < len(level) {
				right = level[i+1]
			}
			next[i/2] = hasher.NodeHash(left, right)
		}
		t.store.appendLevel(next)
		level = next
	}

	BuildTotal.Inc()
	Leaves.Set(float64(len(leaves)))
	t.log.Debugf("Built tree with %d leaves and depth %d: root %v", len(leaves), t.Depth(), t.Root())

	return t, nil
}

// Insert appends an element after the last leaf and returns the new
// root digest. Only the nodes on the path from the new leaf to the root
// are recomputed. The resulting tree is the same one NewTree would
// build from all the elements inserted so far.
func (t *Tree) Insert(element []byte) hashing.Digest {
	index := t.store.leafCount()

	t.log.Debugf("Inserting element at index %d", index)

	pruned := pruneToInsert(index, element)

	if t.log.IsTrace() {
		printer := newPrintVisitor(pruned.Position().Height)
		pruned.Accept(printer)
		t.log.Tracef("Pruned tree: %s", printer.Result())
	}

	visitor := newInsertVisitor(t.hasher, t.store)
	root := pruned.Accept(visitor)

	InsertTotal.Inc()
	Leaves.Set(float64(index + 1))
	t.log.Debugf("Inserted element at index %d rehashing %d nodes: root %v", index, visitor.Result(), root)

	return root
}

// Append inserts the elements in order and returns the final root.
func (t *Tree) Append(elements ...[]byte) hashing.Digest {
	for _, e := range elements {
		t.Insert(e)
	}
	return t.Root()
}

func (t Tree) LeafCount() uint64 {
	return t.store.leafCount()
}

// Depth returns the height of the root, ceil(log2(LeafCount())). It is
// also the length of every proof generated by the tree.
func (t Tree) Depth() uint16 {
	return t.store.height()
}

// Root returns the digest summarizing every leaf in order.
func (t Tree) Root() hashing.Digest {
	return t.store.root()
}

func (t Tree) Hasher() hashing.TreeHasher {
	return t.hasher
}

// Leaf returns the leaf at the given insertion index.
func (t Tree) Leaf(index uint64) (Leaf, error) {
	digest, ok := t.store.Get(newPosition(index, 0))
	if !ok {
		return Leaf{}, indexOutOfRange(index, t.LeafCount())
	}
	return Leaf{Index: index, Digest: digest}, nil
}

// Leaves returns every leaf in insertion order.
func (t Tree) Leaves() []Leaf {
	leaves := make([]Leaf, 0, t.LeafCount())
	for i, d := range t.store.levels[0] {
		leaves = append(leaves, Leaf{Index: uint64(i), Digest: d})
	}
	return leaves
}
