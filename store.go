// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"encoding/binary"
	"fmt"
	"sync/atomic"

	"github.com/willf/bloom"

	"github.com/cybrota/avlstore/avl"
)

// Store wraps an AVL tree with a Bloom filter over every key ever inserted.
// A negative filter answer proves a key was never stored, so point lookups
// for unknown keys skip the tree walk. Deletes leave the filter alone: a
// stale positive only costs a normal lookup.
type Store struct {
	id          uint64
	tree        *avl.Tree
	bloomFilter *bloom.BloomFilter
	version     uint64 // bumped on every mutation
	filterHits  int
}

var storeSeq atomic.Uint64

// NewStore creates an empty store sized by config
func NewStore(config StoreConfig) *Store {
	return &Store{
		id:          storeSeq.Add(1),
		tree:        avl.Initialize(),
		bloomFilter: bloom.New(config.BloomFilterSize, config.BloomFilterHashes),
	}
}

func keyToBytes(key int) []byte {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(key))
	return buf[:]
}

func (s *Store) Insert(key int) {
	s.bloomFilter.Add(keyToBytes(key))
	s.tree.Insert(key)
	s.version++
}

func (s *Store) Delete(key int) bool {
	if !s.bloomFilter.Test(keyToBytes(key)) {
		s.filterHits++
		return false
	}
	removed := s.tree.Delete(key)
	if removed {
		s.version++
	}
	return removed
}

func (s *Store) Search(key int) (int, bool) {
	if !s.bloomFilter.Test(keyToBytes(key)) {
		s.filterHits++
		return 0, false
	}
	return s.tree.Search(key)
}

func (s *Store) SearchRange(low, high int) []int {
	return s.tree.SearchRange(low, high)
}

// Tree exposes the underlying tree for rendering and checks
func (s *Store) Tree() *avl.Tree {
	return s.tree
}

// Version changes whenever the tree changes
func (s *Store) Version() uint64 {
	return s.version
}

// CacheKey identifies the current contents of this store among all stores
func (s *Store) CacheKey() string {
	return fmt.Sprintf("%d/%d", s.id, s.version)
}

// FilterHits counts lookups answered by the Bloom filter alone
func (s *Store) FilterHits() int {
	return s.filterHits
}

// Check verifies the tree invariants
func (s *Store) Check() error {
	return s.tree.Check()
}
