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

package hashing

var (
	// LeafPrefix is prepended to raw element bytes before hashing a leaf.
	LeafPrefix = []byte{0x0}

	// NodePrefix is prepended to the concatenation of two child digests
	// before hashing an interior node.
	NodePrefix = []byte{0x1}
)

// TreeHasher computes the digests of a binary hash tree. Leaf and interior
// inputs are tagged with different prefixes so a leaf payload can never be
// taken for the concatenation of two child digests.
type TreeHasher interface {
	// ID returns the name the hasher is registered with.
	ID() string
	// LeafHash computes the digest of a raw element.
	LeafHash(data []byte) Digest
	// NodeHash computes the digest of an interior node. The order of
	// the arguments matters.
	NodeHash(left, right Digest) Digest
	// Size returns the digest length in bytes.
	Size() int
}

type prefixedHasher struct {
	id         string
	underlying Hasher
}

// NewTreeHasherFrom wraps a plain Hasher with the leaf/node domain
// separation tags.
func NewTreeHasherFrom(id string, h Hasher) TreeHasher {
	return &prefixedHasher{id: id, underlying: h}
}

func (h *prefixedHasher) ID() string {
	return h.id
}

func (h *prefixedHasher) LeafHash(data []byte) Digest {
	return h.underlying.Do(LeafPrefix, data)
}

func (h *prefixedHasher) NodeHash(left, right Digest) Digest {
	return h.underlying.Do(NodePrefix, left, right)
}

func (h *prefixedHasher) Size() int {
	return int(h.underlying.Len() / 8)
}
