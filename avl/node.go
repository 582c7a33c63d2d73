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

// Node is a single tree vertex. It owns its children exclusively and caches
// the height of the subtree rooted at it.
type Node struct {
	key    int
	height int
	left   *Node
	right  *Node
}

func newNode(key int) *Node {
	return &Node{key: key, height: 1}
}

// Key returns the key stored at the node
func (n *Node) Key() int {
	return n.key
}

// Height returns the cached height of the subtree rooted at n; nil has height 0.
func (n *Node) Height() int {
	if n == nil {
		return 0
	}
	return n.height
}

// Left returns the left child, or nil
func (n *Node) Left() *Node {
	return n.left
}

// Right returns the right child, or nil
func (n *Node) Right() *Node {
	return n.right
}

// Balance returns height(left) - height(right).
func (n *Node) Balance() int {
	if n == nil {
		return 0
	}
	return n.left.Height() - n.right.Height()
}

// setLeft replaces the left child and recomputes this node's height.
// Ancestors are not touched.
func (n *Node) setLeft(child *Node) {
	n.left = child
	n.updateHeight()
}

// setRight replaces the right child and recomputes this node's height.
func (n *Node) setRight(child *Node) {
	n.right = child
	n.updateHeight()
}

func (n *Node) updateHeight() {
	n.height = max(n.left.Height(), n.right.Height()) + 1
}

// replaceChild swaps old for repl in whichever child slot of n holds old.
// It reports false when old is not a child of n.
func (n *Node) replaceChild(old, repl *Node) bool {
	switch old {
	case n.left:
		n.setLeft(repl)
	case n.right:
		n.setRight(repl)
	default:
		return false
	}
	return true
}
