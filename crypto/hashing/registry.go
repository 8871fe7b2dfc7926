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

import (
	"fmt"
	"sort"
	"sync"

	"github.com/pkg/errors"
)

// Names of the built-in tree hashers.
const (
	SHA256    = "sha256"
	BLAKE2B   = "blake2b"
	KECCAK256 = "keccak256"
	XOR       = "xor"
	PEARSON   = "pearson"
)

// DefaultHasher is the tree hasher used when none is configured.
const DefaultHasher = SHA256

var ErrUnknownHasher = errors.New("unknown hasher")

var (
	registryLock sync.RWMutex
	registry     = make(map[string]func() Hasher)
)

func init() {
	Register(SHA256, NewSha256Hasher)
	Register(BLAKE2B, NewBlake2bHasher)
	Register(KECCAK256, NewKeccak256Hasher)
	Register(XOR, NewXorHasher)
	Register(PEARSON, NewPearsonHasher)
}

// Register makes a hasher factory available under the given id.
// It panics if the id is already taken.
func Register(id string, factory func() Hasher) {
	registryLock.Lock()
	defer registryLock.Unlock()
	if _, ok := registry[id]; ok {
		panic(fmt.Sprintf("%s is already registered", id))
	}
	registry[id] = factory
}

// NewTreeHasher returns a fresh TreeHasher for the registered id. Tree
// hashers keep internal state, so every caller gets its own instance.
func NewTreeHasher(id string) (TreeHasher, error) {
	registryLock.RLock()
	factory, ok := registry[id]
	registryLock.RUnlock()
	if !ok {
		return nil, errors.Wrapf(ErrUnknownHasher, "%q", id)
	}
	return NewTreeHasherFrom(id, factory()), nil
}

// Hashers lists the registered ids in lexical order.
func Hashers() []string {
	registryLock.RLock()
	defer registryLock.RUnlock()
	ids := make([]string, 0, len(registry))
	for id := range registry {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
