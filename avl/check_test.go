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

package avl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckDetectsCorruption(t *testing.T) {
	testCases := []struct {
		name    string
		corrupt func(tree *Tree)
		want    error
	}{
		{
			name:    "stale height",
			corrupt: func(tree *Tree) { tree.root.left.height = 7 },
			want:    ErrHeight,
		},
		{
			name:    "left key too large",
			corrupt: func(tree *Tree) { tree.root.left.left.key = 99 },
			want:    ErrOrder,
		},
		{
			name:    "right key too small",
			corrupt: func(tree *Tree) { tree.root.right.right.right.key = -1 },
			want:    ErrOrder,
		},
		{
			name: "unbalanced",
			corrupt: func(tree *Tree) {
				// Hang a chain under 30 without rotating.
				n30 := tree.root.right.right.right
				n30.setRight(newNode(40))
				n30.right.setRight(newNode(50))
				n30.setRight(n30.right)
				tree.root.right.right.setRight(n30)
				tree.root.right.setRight(tree.root.right.right)
				tree.root.setRight(tree.root.right)
				tree.count += 2
			},
			want: ErrBalance,
		},
		{
			name:    "miscounted",
			corrupt: func(tree *Tree) { tree.count++ },
			want:    ErrCount,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tree := scenarioA()
			require.NoError(t, tree.Check())
			tc.corrupt(tree)
			assert.ErrorIs(t, tree.Check(), tc.want)
		})
	}
}

func TestNodeHeightFollowsChildren(t *testing.T) {
	var missing *Node
	assert.Equal(t, 0, missing.Height())
	assert.Equal(t, 0, missing.Balance())

	n := newNode(10)
	assert.Equal(t, 1, n.Height())

	n.setLeft(newNode(5))
	assert.Equal(t, 2, n.Height())
	assert.Equal(t, 1, n.Balance())

	n.left.setLeft(newNode(1))
	// Ancestors are refreshed by the caller, not by the child.
	assert.Equal(t, 2, n.Height())
	n.setLeft(n.left)
	assert.Equal(t, 3, n.Height())
	assert.Equal(t, 2, n.Balance())

	n.setRight(newNode(20))
	assert.Equal(t, 1, n.Balance())

	n.setLeft(nil)
	assert.Equal(t, 2, n.Height())
	assert.Equal(t, -1, n.Balance())
}

func TestRotationsPreserveOrder(t *testing.T) {
	root := newNode(20)
	root.setLeft(newNode(10))
	root.setRight(newNode(30))
	root.left.setLeft(newNode(5))
	root.left.setRight(newNode(15))
	root.setLeft(root.left)

	pivot := rotateRight(root)
	assert.Equal(t, 10, pivot.Key())
	assert.Equal(t, 20, pivot.Right().Key())
	assert.Equal(t, 15, pivot.Right().Left().Key())
	assert.Equal(t, 3, pivot.Height())
	assert.Equal(t, 2, pivot.Right().Height())

	var keys []int
	inOrder(pivot, &keys)
	assert.Equal(t, []int{5, 10, 15, 20, 30}, keys)

	back := rotateLeft(pivot)
	assert.Equal(t, 20, back.Key())
	keys = keys[:0]
	inOrder(back, &keys)
	assert.Equal(t, []int{5, 10, 15, 20, 30}, keys)
	assert.Equal(t, 3, back.Height())
}
