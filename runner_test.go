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
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cybrota/avlstore/commands"
)

const sampleSession = `Initialize()
Insert(4)
Insert(3)
Insert(5)
Insert(1)
Insert(10)
Insert(20)
Insert(30)
Search(2,6)
Delete(3)
Delete(4)
Insert(4)
Search(10)
Search(11)
Search(2,6)
Search(10,20)
Search(100,200)
`

const sampleOutput = `3,4,5
10
NULL
4,5
10,20
NULL
`

func mustReadCommands(t *testing.T, text string) []CommandLine {
	t.Helper()
	lines, err := readCommands(strings.NewReader(text))
	require.NoError(t, err)
	return lines
}

func TestRunFileSampleSession(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "input.txt")
	output := filepath.Join(dir, "output.txt")
	require.NoError(t, os.WriteFile(input, []byte(sampleSession), 0644))

	config := DefaultConfig()
	config.Run.VerifyInvariants = true

	replayer, err := runFile(config, input, output)
	require.NoError(t, err)

	got, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, sampleOutput, string(got))

	store := replayer.Store()
	require.NotNil(t, store)
	assert.Equal(t, []int{1, 4, 5, 10, 20, 30}, store.Tree().Keys())
	assert.NoError(t, store.Check())
}

func TestRunFileTruncatesOutput(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "input.txt")
	output := filepath.Join(dir, "output.txt")
	require.NoError(t, os.WriteFile(input, []byte("Initialize()\nInsert(1)\nSearch(1)\n"), 0644))
	require.NoError(t, os.WriteFile(output, []byte("stale\nstale\nstale\n"), 0644))

	_, err := runFile(DefaultConfig(), input, output)
	require.NoError(t, err)

	got, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "1\n", string(got))
}

func TestRunFileMissingInput(t *testing.T) {
	dir := t.TempDir()
	_, err := runFile(DefaultConfig(), filepath.Join(dir, "missing.txt"), filepath.Join(dir, "out.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestReplayStopsAtFirstError(t *testing.T) {
	lines := mustReadCommands(t, "Initialize()\nInsert(2)\nSearch(2)\n\nInsert(x)\nSearch(2)\n")

	var out bytes.Buffer
	err := NewReplayer(DefaultConfig()).Replay(lines, &out, false)

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrMalformedCommand)
	assert.Contains(t, err.Error(), "line 5")
	assert.Equal(t, "2\n", out.String(), "output before the failure is kept")
}

func TestReplayRequiresInitialize(t *testing.T) {
	lines := mustReadCommands(t, "Insert(1)\n")

	var out bytes.Buffer
	err := NewReplayer(DefaultConfig()).Replay(lines, &out, false)

	assert.ErrorIs(t, err, commands.ErrNotInitialized)
	assert.Contains(t, err.Error(), "line 1")
	assert.Empty(t, out.String())
}

func TestReplayUnsupportedCommand(t *testing.T) {
	lines := mustReadCommands(t, "Initialize()\nClear()\n")

	err := NewReplayer(DefaultConfig()).Replay(lines, &bytes.Buffer{}, false)
	assert.ErrorIs(t, err, commands.ErrUnsupportedCommand)
}

func TestReplayWithProgress(t *testing.T) {
	lines := mustReadCommands(t, sampleSession)

	var out bytes.Buffer
	require.NoError(t, NewReplayer(DefaultConfig()).Replay(lines, &out, true))
	assert.Equal(t, sampleOutput, out.String())
}

func TestReplayerReinitializeCreatesNewStore(t *testing.T) {
	r := NewReplayer(DefaultConfig())
	assert.Nil(t, r.Store())

	_, err := r.ExecuteLine("Initialize()")
	require.NoError(t, err)
	first := r.Store()
	require.NotNil(t, first)

	_, err = r.ExecuteLine("Insert(9)")
	require.NoError(t, err)

	_, err = r.ExecuteLine("Initialize()")
	require.NoError(t, err)
	assert.NotSame(t, first, r.Store())
	assert.Zero(t, r.Store().Tree().Len())
}

func TestReplayerVerifiesInvariants(t *testing.T) {
	config := DefaultConfig()
	config.Run.VerifyInvariants = true
	r := NewReplayer(config)

	for _, line := range []string{"Initialize()", "Insert(5)", "Insert(2)", "Insert(9)", "Insert(1)", "Delete(9)"} {
		_, err := r.ExecuteLine(line)
		require.NoError(t, err, line)
	}
	assert.Equal(t, 2, r.Store().Tree().Root().Key())
}

func TestReplayLargeSequenceStaysBalanced(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("Initialize()\n")
	for i := 0; i < 1000; i++ {
		sb.WriteString("Insert(" + strconv.Itoa(i) + ")\n")
	}
	for i := 0; i < 1000; i += 2 {
		sb.WriteString("Delete(" + strconv.Itoa(i) + ")\n")
	}
	sb.WriteString("Search(10,19)\n")

	config := DefaultConfig()
	config.Run.VerifyInvariants = true
	r := NewReplayer(config)

	var out bytes.Buffer
	require.NoError(t, r.Replay(mustReadCommands(t, sb.String()), &out, false))
	assert.Equal(t, "11,13,15,17,19\n", out.String())
	assert.Equal(t, 500, r.Store().Tree().Len())
	assert.LessOrEqual(t, r.Store().Tree().Height(), 13)
}
