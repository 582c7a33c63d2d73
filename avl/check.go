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
	"errors"
	"fmt"
)

var (
	ErrOrder   = errors.New("avl: keys out of order")
	ErrHeight  = errors.New("avl: stale node height")
	ErrBalance = errors.New("avl: balance factor out of range")
	ErrCount   = errors.New("avl: node count mismatch")
)

type subtreeStats struct {
	count    int
	min, max int
}

// Check walks the whole tree and returns the first violated invariant:
// in-order keys non-decreasing, cached heights exact, every balance factor
// in [-1, 1], and every node reachable exactly once.
func (tree *Tree) Check() error {
	stats, err := checkNode(tree.root)
	if err != nil {
		return err
	}
	if stats.count != tree.count {
		return fmt.Errorf("%w: walked %d nodes, tree holds %d", ErrCount, stats.count, tree.count)
	}
	return nil
}

func checkNode(node *Node) (subtreeStats, error) {
	if node == nil {
		return subtreeStats{}, nil
	}

	stats := subtreeStats{count: 1, min: node.key, max: node.key}
	if node.left != nil {
		left, err := checkNode(node.left)
		if err != nil {
			return stats, err
		}
		if left.max > node.key {
			return stats, fmt.Errorf("%w: left subtree of %d holds %d", ErrOrder, node.key, left.max)
		}
		stats.count += left.count
		stats.min = left.min
	}
	if node.right != nil {
		right, err := checkNode(node.right)
		if err != nil {
			return stats, err
		}
		if right.min < node.key {
			return stats, fmt.Errorf("%w: right subtree of %d holds %d", ErrOrder, node.key, right.min)
		}
		stats.count += right.count
		stats.max = right.max
	}

	if want := max(node.left.Height(), node.right.Height()) + 1; node.height != want {
		return stats, fmt.Errorf("%w: node %d caches %d, want %d", ErrHeight, node.key, node.height, want)
	}
	if b := node.Balance(); b < -1 || b > 1 {
		return stats, fmt.Errorf("%w: node %d has balance %d", ErrBalance, node.key, b)
	}
	return stats, nil
}
