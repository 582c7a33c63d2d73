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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreBloomFilterShortCircuit(t *testing.T) {
	s := NewStore(DefaultConfig().Store)
	s.Insert(10)
	s.Insert(20)

	key, found := s.Search(10)
	assert.True(t, found)
	assert.Equal(t, 10, key)
	assert.Equal(t, 0, s.FilterHits())

	_, found = s.Search(999)
	assert.False(t, found)
	assert.Equal(t, 1, s.FilterHits(), "a never-inserted key should be answered by the filter")

	assert.False(t, s.Delete(12345))
	assert.Equal(t, 2, s.FilterHits())
}

func TestStoreDeleteKeepsFilterPositive(t *testing.T) {
	s := NewStore(DefaultConfig().Store)
	s.Insert(7)
	require.True(t, s.Delete(7))

	// The filter still says "maybe", the tree gives the real answer.
	_, found := s.Search(7)
	assert.False(t, found)
	assert.Equal(t, 0, s.FilterHits())
	assert.False(t, s.Delete(7))
}

func TestStoreVersionAndCacheKey(t *testing.T) {
	s := NewStore(DefaultConfig().Store)
	assert.Equal(t, uint64(0), s.Version())
	initial := s.CacheKey()

	s.Insert(1)
	assert.Equal(t, uint64(1), s.Version())
	afterInsert := s.CacheKey()
	assert.NotEqual(t, initial, afterInsert)

	s.Delete(42)
	s.Delete(1)
	assert.Equal(t, uint64(2), s.Version(), "only effective deletes bump the version")

	s.Search(1)
	s.SearchRange(0, 10)
	assert.Equal(t, uint64(2), s.Version(), "reads never bump the version")

	other := NewStore(DefaultConfig().Store)
	assert.NotEqual(t, initial, other.CacheKey())
}

func TestStoreMatchesTree(t *testing.T) {
	s := NewStore(StoreConfig{BloomFilterSize: 64, BloomFilterHashes: 2})
	for _, k := range []int{5, 3, 8, 3, -1, 12} {
		s.Insert(k)
	}

	assert.Equal(t, []int{-1, 3, 3, 5, 8, 12}, s.Tree().Keys())
	assert.Equal(t, []int{3, 3, 5}, s.SearchRange(0, 5))
	assert.Empty(t, s.SearchRange(100, 200))
	assert.NoError(t, s.Check())
}

func TestKeyToBytes(t *testing.T) {
	assert.Len(t, keyToBytes(1), 8)
	assert.NotEqual(t, keyToBytes(1), keyToBytes(-1))
	assert.Equal(t, keyToBytes(256), keyToBytes(256))
}
