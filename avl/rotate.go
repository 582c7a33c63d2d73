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

// rotateRight promotes root.left and returns it as the new subtree root.
// The demoted root is re-parented first so its height is current when the
// pivot's height is recomputed.
func rotateRight(root *Node) *Node {
	pivot := root.left
	root.setLeft(pivot.right)
	pivot.setRight(root)
	return pivot
}

// rotateLeft is the mirror of rotateRight.
func rotateLeft(root *Node) *Node {
	pivot := root.right
	root.setRight(pivot.left)
	pivot.setLeft(root)
	return pivot
}

// balanceOnInsert fixes the lowest unbalanced ancestor after an insert.
// grandchild hangs off child, which hangs off ancestor, all on the insert
// path. It returns the new subtree root, or nil when ancestor is balanced.
func balanceOnInsert(grandchild, child, ancestor *Node) *Node {
	balance := ancestor.Balance()
	outerLeft := grandchild == child.left

	switch {
	case balance > 1 && outerLeft: // LL
		return rotateRight(ancestor)
	case balance < -1 && !outerLeft: // RR
		return rotateLeft(ancestor)
	case balance > 1: // LR
		ancestor.setLeft(rotateLeft(child))
		return rotateRight(ancestor)
	case balance < -1: // RL
		ancestor.setRight(rotateRight(child))
		return rotateLeft(ancestor)
	}
	return nil
}

// balanceOnDelete restores the balance of node after one of its subtrees
// shrank. The shape of the taller child picks single or double rotation.
func balanceOnDelete(node *Node) *Node {
	balance := node.Balance()

	switch {
	case balance > 1 && node.left.Balance() >= 0:
		return rotateRight(node)
	case balance < -1 && node.right.Balance() <= 0:
		return rotateLeft(node)
	case balance > 1:
		node.setLeft(rotateLeft(node.left))
		return rotateRight(node)
	case balance < -1:
		node.setRight(rotateRight(node.right))
		return rotateLeft(node)
	}
	return nil
}
