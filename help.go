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
	"fmt"
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
)

const commandReference = `# Commands
* **Initialize()** creates a new empty tree (required before anything else)
* **Insert(k)** stores the integer key k; duplicates are kept
* **Delete(k)** removes one occurrence of k, does nothing when k is absent
* **Search(k)** prints k, or NULL when absent
* **Search(lo,hi)** prints every key in [lo, hi] as "1,3,4", or NULL
`

func getUsageMarkdown() string {
	return fmt.Sprintf(`

 **avlstore %s**

An in-memory ordered key store on a self-balancing AVL tree.
Replay command files, print the resulting tree or explore it interactively.

Built with Go %s

%s
# Subcommands
* **run** replays a command file (default input.txt) into an output file (default output.txt)
* **exec** runs commands given as arguments, e.g. avlstore exec "Initialize()" "Insert(3)" "Search(3)"
* **print** replays a command file and prints the tree as ASCII art
* **shell** opens the interactive shell
* **settings** shows (and creates) ~/.avlstore.yaml

# License
Licensed under the Apache License, Version 2.0
Copyright © 2025 Naren Yellavula

`, version, runtime.Version(), commandReference)
}

func getHelpMessage() string {
	result := markdown.Render(getUsageMarkdown(), 80, 3)
	return string(result)
}
