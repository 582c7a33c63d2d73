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

// trace records the nodes visited by a descent in root-to-leaf order.
// Consumers pop from the end to revisit ancestors bottom-up.
type trace []*Node

func (t *trace) push(n *Node) {
	*t = append(*t, n)
}

func (t *trace) pop() *Node {
	old := *t
	if len(old) == 0 {
		return nil
	}
	n := old[len(old)-1]
	*t = old[:len(old)-1]
	return n
}

// peek returns the innermost node without removing it, or nil when empty.
func (t trace) peek() *Node {
	if len(t) == 0 {
		return nil
	}
	return t[len(t)-1]
}

// refreshHeights recomputes heights bottom-up along the remaining trace.
func (t trace) refreshHeights() {
	for i := len(t) - 1; i >= 0; i-- {
		t[i].updateHeight()
	}
}

// orderedTree is the plain binary search tree engine. It performs the
// structural part of every operation and hands the ancestor trace back to
// the balancing layer.
type orderedTree struct {
	root  *Node
	count int
}

// insert places key in a new leaf. Keys equal to a node's key go right.
// The returned trace ends with the new leaf.
func (t *orderedTree) insert(key int) trace {
	var path trace
	t.root = insertAt(t.root, key, &path)
	t.count++
	return path
}

func insertAt(node *Node, key int, path *trace) *Node {
	if node == nil {
		leaf := newNode(key)
		path.push(leaf)
		return leaf
	}

	path.push(node)
	if key < node.key {
		node.setLeft(insertAt(node.left, key, path))
	} else {
		node.setRight(insertAt(node.right, key, path))
	}
	return node
}

// delete removes one node holding key. The trace lists the surviving nodes
// whose subtrees changed, root first. Nothing changes when key is absent.
func (t *orderedTree) delete(key int) (trace, bool) {
	var path trace
	root, removed := deleteAt(t.root, key, &path)
	t.root = root
	if removed {
		t.count--
	}
	return path, removed
}

func deleteAt(node *Node, key int, path *trace) (*Node, bool) {
	if node == nil {
		return nil, false
	}

	var child *Node
	var removed bool
	switch {
	case key < node.key:
		path.push(node)
		child, removed = deleteAt(node.left, key, path)
		node.setLeft(child)
	case key > node.key:
		path.push(node)
		child, removed = deleteAt(node.right, key, path)
		node.setRight(child)
	default:
		if node.left == nil {
			return node.right, true
		}
		if node.right == nil {
			return node.left, true
		}
		// Two children: take over the in-order predecessor's key and
		// remove the predecessor from the left subtree instead.
		path.push(node)
		node.key = maxKey(node.left)
		child, removed = deleteAt(node.left, node.key, path)
		node.setLeft(child)
	}
	return node, removed
}

func maxKey(node *Node) int {
	for node.right != nil {
		node = node.right
	}
	return node.key
}

func (t *orderedTree) search(key int) (int, bool) {
	return searchAt(t.root, key)
}

func searchAt(node *Node, key int) (int, bool) {
	if node == nil {
		return 0, false
	}
	switch {
	case key < node.key:
		return searchAt(node.left, key)
	case key > node.key:
		return searchAt(node.right, key)
	default:
		return node.key, true
	}
}

func (t *orderedTree) searchRange(low, high int) []int {
	keys := []int{}
	rangeSearch(t.root, low, high, &keys)
	return keys
}

// rangeSearch appends every key in [low, high] under node in ascending order.
// Equal keys may sit in a left subtree after rotations, so the left side is
// entered whenever node.key >= low.
func rangeSearch(node *Node, low, high int, keys *[]int) {
	if node == nil {
		return
	}
	if low <= node.key {
		rangeSearch(node.left, low, high, keys)
	}
	if low <= node.key && node.key <= high {
		*keys = append(*keys, node.key)
	}
	if node.key <= high {
		rangeSearch(node.right, low, high, keys)
	}
}

func inOrder(node *Node, keys *[]int) {
	if node == nil {
		return
	}
	inOrder(node.left, keys)
	*keys = append(*keys, node.key)
	inOrder(node.right, keys)
}
