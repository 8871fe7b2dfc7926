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

// pruneToInsert returns the operations needed to append a leaf at the
// given index, which must be the current leaf count.
//
// The new leaf is always the last node of every level it climbs through,
// so at each height either:
//   - the path runs through a right child: its left sibling is already
//     stored and the parent is rehashed from both, or
//   - the path runs through a left child: it has no sibling and the
//     parent is the child paired with itself.
//
// When the previous leaf count was a power of two the root position is
// one level higher than before, and the old root is read back as the
// left child of the new one.
func pruneToInsert(index uint64, value []byte) operation {

	var traverse func(pos *Position) operation
	traverse = func(pos *Position) operation {

		if pos.IsLeaf() {
			return newPutCacheOp(newLeafHashOp(pos, value))
		}

		rightPos := pos.Right()
		if index>>rightPos.Height == rightPos.Index { // go to right
			left := newGetCacheOp(pos.Left())
			right := traverse(rightPos)
			return newPutCacheOp(newInnerHashOp(pos, left, right))
		}

		// go to left, there is nothing on the right
		return newPutCacheOp(newDuplicateHashOp(pos, traverse(pos.Left())))
	}

	return traverse(newRootPosition(index))
}
