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
	"log"
	"os"

	"github.com/schollz/progressbar/v3"

	"github.com/cybrota/avlstore/commands"
)

// Replayer runs command lines against a session of Stores and collects the
// output of every Search.
type Replayer struct {
	manager *commands.Manager
	current *Store
	config  *Config
}

// NewReplayer creates a replayer whose Initialize() builds stores sized by
// config
func NewReplayer(config *Config) *Replayer {
	r := &Replayer{config: config}
	r.manager = commands.NewManager(func() commands.KeyStore {
		r.current = NewStore(config.Store)
		return r.current
	})
	return r
}

// Store returns the store created by the latest Initialize(), or nil
func (r *Replayer) Store() *Store {
	return r.current
}

// ExecuteLine runs a single command line
func (r *Replayer) ExecuteLine(text string) (commands.Result, error) {
	res, err := r.manager.ExecuteLine(text)
	if err != nil {
		return res, err
	}
	if r.config.Run.VerifyInvariants && r.current != nil {
		if err := r.current.Check(); err != nil {
			return res, fmt.Errorf("after %s: %w", text, err)
		}
	}
	return res, nil
}

// Replay executes lines in order and writes one output line per Search to
// w. It stops at the first failing command; output produced before the
// failure is still written.
func (r *Replayer) Replay(lines []CommandLine, w io.Writer, showProgress bool) error {
	out := bufio.NewWriter(w)

	var bar *progressbar.ProgressBar
	if showProgress {
		bar = progressbar.NewOptions(len(lines),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetDescription("🌳 Replaying commands..."),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowCount(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "█",
				SaucerHead:    "█",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
			progressbar.OptionOnCompletion(func() {
				fmt.Fprintf(os.Stderr, "\n✅ Replay completed!\n")
			}),
		)
	}

	var replayErr error
	for _, line := range lines {
		res, err := r.ExecuteLine(line.Text)
		if err != nil {
			replayErr = fmt.Errorf("line %d: %w", line.Number, err)
			break
		}
		if res.HasOutput {
			if _, err := fmt.Fprintln(out, res.Output); err != nil {
				return fmt.Errorf("writing output: %w", err)
			}
		}
		if bar != nil {
			bar.Add(1)
		}
	}

	if bar != nil && replayErr == nil {
		bar.Finish()
	}

	if err := out.Flush(); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return replayErr
}

// runFile replays inputPath and writes the results to outputPath,
// truncating it first.
func runFile(config *Config, inputPath, outputPath string) (*Replayer, error) {
	lines, err := readCommandFile(inputPath)
	if err != nil {
		return nil, err
	}

	file, err := os.Create(outputPath)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", outputPath, err)
	}

	replayer := NewReplayer(config)
	replayErr := replayer.Replay(lines, file, config.Run.ShowProgress)
	if err := file.Close(); err != nil && replayErr == nil {
		replayErr = fmt.Errorf("closing %s: %w", outputPath, err)
	}
	if replayErr != nil {
		return replayer, fmt.Errorf("%s: %w", inputPath, replayErr)
	}

	log.Printf("Replayed %d commands from %s into %s", len(lines), inputPath, outputPath)
	return replayer, nil
}
