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

type insertVisitor struct {
	hasher hashing.TreeHasher
	store  *nodeStore

	stored int
}

func newInsertVisitor(hasher hashing.TreeHasher, store *nodeStore) *insertVisitor {
	return &insertVisitor{
		hasher: hasher,
		store:  store,
	}
}

// Result returns the number of node digests written to the store.
func (v insertVisitor) Result() int {
	return v.stored
}

func (v *insertVisitor) VisitLeafHashOp(op leafHashOp) hashing.Digest {
	return v.hasher.LeafHash(op.Value)
}

func (v *insertVisitor) VisitInnerHashOp(op innerHashOp) hashing.Digest {
	leftHash := op.Left.Accept(v)
	rightHash := op.Right.Accept(v)
	return v.hasher.NodeHash(leftHash, rightHash)
}

func (v *insertVisitor) VisitDuplicateHashOp(op duplicateHashOp) hashing.Digest {
	leftHash := op.Left.Accept(v)
	return v.hasher.NodeHash(leftHash, leftHash)
}

func (v *insertVisitor) VisitGetCacheOp(op getCacheOp) hashing.Digest {
	hash, ok := v.store.Get(op.Position())
	if !ok {
		panic(fmt.Sprintf("Oops, something went wrong. There should be a stored node at position %v", op.Position()))
	}
	return hash
}

func (v *insertVisitor) VisitPutCacheOp(op putCacheOp) hashing.Digest {
	hash := op.operation.Accept(v)
	v.store.Put(op.Position(), hash)
	v.stored++
	return hash
}
