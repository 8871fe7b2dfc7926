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

// operation is a node of a pruned tree: the minimal set of steps needed
// to recompute a digest. Visitors decide what every step means.
type operation interface {
	Accept(visitor opVisitor) hashing.Digest
	String() string
	Position() *Position
}

type opVisitor interface {
	VisitLeafHashOp(op leafHashOp) hashing.Digest
	VisitInnerHashOp(op innerHashOp) hashing.Digest
	VisitDuplicateHashOp(op duplicateHashOp) hashing.Digest
	VisitGetCacheOp(op getCacheOp) hashing.Digest
	VisitPutCacheOp(op putCacheOp) hashing.Digest
}

// leafHashOp hashes a raw element.
type leafHashOp struct {
	pos   *Position
	Value []byte
}

// innerHashOp hashes the digests of two children.
type innerHashOp struct {
	pos         *Position
	Left, Right operation
}

// duplicateHashOp hashes a child paired with itself. It is the node
// above the last member of an odd-width level.
type duplicateHashOp struct {
	pos  *Position
	Left operation
}

// getCacheOp reads an already computed digest.
type getCacheOp struct {
	pos *Position
}

// putCacheOp stores the digest computed by the wrapped operation.
type putCacheOp struct {
	operation
}

func newLeafHashOp(pos *Position, value []byte) *leafHashOp {
	return &leafHashOp{
		pos:   pos,
		Value: value,
	}
}

func (o leafHashOp) Accept(visitor opVisitor) hashing.Digest {
	return visitor.VisitLeafHashOp(o)
}

func (o leafHashOp) Position() *Position {
	return o.pos
}

func (o leafHashOp) String() string {
	return fmt.Sprintf("leafHashOp(%v)[ %x ]", o.pos, o.Value)
}

func newInnerHashOp(pos *Position, left, right operation) *innerHashOp {
	return &innerHashOp{
		pos:   pos,
		Left:  left,
		Right: right,
	}
}

func (o innerHashOp) Accept(visitor opVisitor) hashing.Digest {
	return visitor.VisitInnerHashOp(o)
}

func (o innerHashOp) Position() *Position {
	return o.pos
}

func (o innerHashOp) String() string {
	return fmt.Sprintf("innerHashOp(%v)[ %v | %v ]", o.pos, o.Left, o.Right)
}

func newDuplicateHashOp(pos *Position, left operation) *duplicateHashOp {
	return &duplicateHashOp{
		pos:  pos,
		Left: left,
	}
}

func (o duplicateHashOp) Accept(visitor opVisitor) hashing.Digest {
	return visitor.VisitDuplicateHashOp(o)
}

func (o duplicateHashOp) Position() *Position {
	return o.pos
}

func (o duplicateHashOp) String() string {
	return fmt.Sprintf("duplicateHashOp(%v)[ %v ]", o.pos, o.Left)
}

func newGetCacheOp(pos *Position) *getCacheOp {
	return &getCacheOp{
		pos: pos,
	}
}

func (o getCacheOp) Accept(visitor opVisitor) hashing.Digest {
	return visitor.VisitGetCacheOp(o)
}

func (o getCacheOp) Position() *Position {
	return o.pos
}

func (o getCacheOp) String() string {
	return fmt.Sprintf("getCacheOp(%v)", o.pos)
}

func newPutCacheOp(op operation) *putCacheOp {
	return &putCacheOp{
		operation: op,
	}
}

func (o putCacheOp) Accept(visitor opVisitor) hashing.Digest {
	return visitor.VisitPutCacheOp(o)
}

func (o putCacheOp) Position() *Position {
	return o.operation.Position()
}

func (o putCacheOp) String() string {
	return fmt.Sprintf("putCacheOp( %v )", o.operation)
}
