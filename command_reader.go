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
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// CommandLine holds one non-blank line of a command file and its 1-based
// line number
type CommandLine struct {
	Number int
	Text   string
}

// readCommandFile reads every command line from path.
func readCommandFile(path string) ([]CommandLine, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("command file %s not found", path)
		}
		return nil, err
	}
	defer file.Close()

	lines, err := readCommands(file)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return lines, nil
}

func readCommands(r io.Reader) ([]CommandLine, error) {
	var lines []CommandLine

	scanner := bufio.NewScanner(r)
	// Allow long lines without failing the whole file
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	number := 0
	for scanner.Scan() {
		number++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		lines = append(lines, CommandLine{Number: number, Text: text})
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}
