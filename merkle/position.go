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
	"math/bits"
)

// Position locates a node by its height (0 for leaves) and its index
// among the nodes of that height, counting from the left.
type Position struct {
	Index  uint64
	Height uint16
}

func newPosition(index uint64, height uint16) *Position {
	return &Position{Index: index, Height: height}
}

// newRootPosition returns the position of the root of a tree whose last
// leaf has the given index.
func newRootPosition(lastIndex uint64) *Position {
	return newPosition(0, depthFor(lastIndex+1))
}

// depthFor returns ceil(log2(leafCount)), the height of the root of a
// tree holding leafCount leaves.
func depthFor(leafCount uint64) uint16 {
	if leafCount <= 1 {
		return 0
	}
	return uint16(bits.Len64(leafCount - 1))
}

func (p Position) String() string {
	return fmt.Sprintf("Pos(%d, %d)", p.Index, p.Height)
}

func (p Position) IsLeaf() bool {
	return p.Height == 0
}

// IsRightChild tells if the node is the second operand when hashing
// its parent.
func (p Position) IsRightChild() bool {
	return p.Index%2 == 1
}

func (p Position) Left() *Position {
	if p.IsLeaf() {
		return nil
	}
	return newPosition(p.Index<<1, p.Height-1)
}

func (p Position) Right() *Position {
	if p.IsLeaf() {
		return nil
	}
	return newPosition(p.Index<<1+1, p.Height-1)
}

func (p Position) Parent() *Position {
	return newPosition(p.Index>>1, p.Height+1)
}

// Sibling returns the position of the other child of the same parent.
// The sibling may not exist in the tree: the last node of a level with
// an odd width is paired with itself.
func (p Position) Sibling() *Position {
	return newPosition(p.Index^1, p.Height)
}

// Ancestor returns the position at the given height whose subtree holds
// this node.
func (p Position) Ancestor(height uint16) *Position {
	return newPosition(p.Index>>(height-p.Height), height)
}
