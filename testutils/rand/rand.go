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

// Package rand provides random payloads for tests and benchmarks.
package rand

import (
	"crypto/rand"
	"fmt"
)

// Bytes returns n random bytes. It panics if the system source of
// randomness fails.
func Bytes(n int) []byte {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		panic(fmt.Sprintf("Unable to read random bytes: %v", err))
	}
	return b
}

// Elements returns count random elements of the given size.
func Elements(count, size int) [][]byte {
	elements := make([][]byte, count)
	for i := range elements {
		elements[i] = Bytes(size)
	}
	return elements
}
