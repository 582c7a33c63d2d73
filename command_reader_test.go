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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCommands(t *testing.T) {
	input := "Initialize()\n\n  Insert(3)  \r\n\t\nSearch(3)"

	lines, err := readCommands(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, []CommandLine{
		{Number: 1, Text: "Initialize()"},
		{Number: 3, Text: "Insert(3)"},
		{Number: 5, Text: "Search(3)"},
	}, lines)
}

func TestReadCommandsEmpty(t *testing.T) {
	lines, err := readCommands(strings.NewReader("\n\n"))
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestReadCommandsLongLine(t *testing.T) {
	long := "Insert(" + strings.Repeat("1", 100*1024) + ")"
	lines, err := readCommands(strings.NewReader(long))
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, long, lines[0].Text)
}

func TestReadCommandFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte("Initialize()\nInsert(1)\n"), 0644))

	lines, err := readCommandFile(path)
	require.NoError(t, err)
	assert.Len(t, lines, 2)
}

func TestReadCommandFileMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.txt")
	_, err := readCommandFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
