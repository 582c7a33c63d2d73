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

// Package avl implements an in-memory ordered store of int keys on an AVL
// tree.
//
// Nodes carry no parent pointers. Insert and Delete run a plain binary
// search tree descent that records the visited ancestors, then walk that
// record bottom-up to rotate unbalanced subtrees back into shape:
//
//	Insert: at most one single or double rotation
//	Delete: up to one rotation per ancestor, all the way to the root
//
// Duplicate keys are accepted and stored as separate nodes.
package avl
