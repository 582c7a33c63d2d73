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

// Tree is an AVL tree of int keys. Duplicate keys are kept as separate nodes.
//
// A Tree is not safe for concurrent use; callers serialize access.
type Tree struct {
	orderedTree
}

// Initialize returns an empty tree
func Initialize() *Tree {
	return &Tree{}
}

// New is an alias for Initialize
func New() *Tree {
	return Initialize()
}

// Insert adds key to the tree and rebalances. At most one single or double
// rotation is performed.
func (tree *Tree) Insert(key int) {
	path := tree.insert(key)
	if len(path) < 3 {
		return
	}

	grandchild, child, ancestor := path.pop(), path.pop(), path.pop()
	subtree := balanceOnInsert(grandchild, child, ancestor)
	for subtree == nil && len(path) > 0 {
		grandchild, child, ancestor = child, ancestor, path.pop()
		subtree = balanceOnInsert(grandchild, child, ancestor)
	}
	if subtree == nil {
		return
	}

	tree.splice(path.peek(), ancestor, subtree)
	path.refreshHeights()
}

// Delete removes one occurrence of key and rebalances every ancestor up to
// the root. It reports whether a node was removed.
func (tree *Tree) Delete(key int) bool {
	path, removed := tree.delete(key)
	if !removed {
		return false
	}

	for len(path) > 0 {
		node := path.pop()
		node.updateHeight()
		if subtree := balanceOnDelete(node); subtree != nil {
			tree.splice(path.peek(), node, subtree)
		}
	}
	return true
}

// Search returns key and true when the tree holds it.
func (tree *Tree) Search(key int) (int, bool) {
	return tree.search(key)
}

// SearchRange returns every key k with low <= k <= high in ascending order.
// The result is empty, never nil, when nothing matches.
func (tree *Tree) SearchRange(low, high int) []int {
	return tree.searchRange(low, high)
}

// splice hangs subtree where old used to be: under parent, or as the root
// when parent is nil.
func (tree *Tree) splice(parent, old, subtree *Node) {
	if parent == nil {
		tree.root = subtree
		return
	}
	parent.replaceChild(old, subtree)
}

// Root returns the root node, or nil for an empty tree.
func (tree *Tree) Root() *Node {
	return tree.root
}

// Len returns the number of stored keys, duplicates included.
func (tree *Tree) Len() int {
	return tree.count
}

// Height returns the height of the tree; an empty tree has height 0.
func (tree *Tree) Height() int {
	return tree.root.Height()
}

// Keys returns all keys in order.
func (tree *Tree) Keys() []int {
	keys := make([]int, 0, tree.count)
	inOrder(tree.root, &keys)
	return keys
}
