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
	"strconv"
	"strings"
)

const (
	pointerMiddle = "├──"
	pointerLast   = "└──"
	paddingBar    = "│  "
	paddingBlank  = "   "
)

// String renders the tree as ASCII art, see Render.
func (tree *Tree) String() string {
	return Render(tree.root)
}

// Render draws the subtree under root in pre-order, one key per line:
//
//	4
//	├──3
//	│  └──1
//	└──10
//
// An empty subtree renders as "".
func Render(root *Node) string {
	if root == nil {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(root.key))
	renderChildren(&sb, "", root)
	return sb.String()
}

func renderChildren(sb *strings.Builder, padding string, node *Node) {
	leftPointer := pointerLast
	if node.right != nil {
		leftPointer = pointerMiddle
	}
	renderNode(sb, padding, leftPointer, node.left, node.right != nil)
	renderNode(sb, padding, pointerLast, node.right, false)
}

func renderNode(sb *strings.Builder, padding, pointer string, node *Node, hasRightSibling bool) {
	if node == nil {
		return
	}
	sb.WriteByte('\n')
	sb.WriteString(padding)
	sb.WriteString(pointer)
	sb.WriteString(strconv.Itoa(node.key))

	if hasRightSibling {
		padding += paddingBar
	} else {
		padding += paddingBlank
	}
	renderChildren(sb, padding, node)
}
