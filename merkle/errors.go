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

import "github.com/pkg/errors"

var (
	// ErrEmptyInput is returned when a tree is requested for zero elements.
	ErrEmptyInput = errors.New("cannot build a tree from zero elements")

	// ErrIndexOutOfRange is returned when a leaf index is not present
	// in the tree.
	ErrIndexOutOfRange = errors.New("leaf index out of range")
)

func indexOutOfRange(index, leafCount uint64) error {
	return errors.Wrapf(ErrIndexOutOfRange, "index %d, tree has %d leaves", index, leafCount)
}
