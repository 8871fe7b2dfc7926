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

	"github.com/bbva/dmt/crypto/hashing"
	"github.com/bbva/dmt/log"
)

// Verify tells whether value is the leaf the proof was generated for,
// under a tree whose root is the given one. It does not need the tree.
func Verify(hasher hashing.TreeHasher, value []byte, proof *Proof, root hashing.Digest) bool {
	return VerifyDigest(hasher, hasher.LeafHash(value), proof, root)
}

// VerifyDigest is like Verify for callers that only hold the leaf digest.
//
// A proof of the wrong length is not an error: it just folds into a
// different digest. Proofs carrying siblings of the wrong size or
// unknown sides are rejected without hashing.
func VerifyDigest(hasher hashing.TreeHasher, leafDigest hashing.Digest, proof *Proof, root hashing.Digest) (correct bool) {
	VerifyTotal.Inc()
	defer func() {
		if !correct {
			VerifyFailedTotal.Inc()
		}
	}()

	if proof == nil {
		return false
	}

	log.L().Named("merkle").Debugf("Verifying membership proof for index %d with %d leaves", proof.Index, proof.LeafCount)

	current := leafDigest
	for _, s := range proof.Siblings {
		if len(s.Digest) != hasher.Size() {
			return false
		}
		switch s.Side {
		case Left:
			current = hasher.NodeHash(s.Digest, current)
		case Right:
			current = hasher.NodeHash(current, s.Digest)
		default:
			return false
		}
	}

	return bytes.Equal(current, root)
}

// Verify checks the proof against the current root of the tree.
func (t Tree) Verify(value []byte, proof *Proof) bool {
	return Verify(t.hasher, value, proof, t.Root())
}
