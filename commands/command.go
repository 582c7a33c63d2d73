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

package commands

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	NameInitialize = "Initialize"
	NameInsert     = "Insert"
	NameDelete     = "Delete"
	NameSearch     = "Search"
)

var (
	ErrMalformedCommand   = errors.New("malformed command")
	ErrUnsupportedCommand = errors.New("unsupported command")
	ErrNotInitialized     = errors.New("tree not initialized, run Initialize() first")
)

// Command represents one parsed command line, e.g. "Search(2,6)"
type Command struct {
	Name string
	Args []int
	Raw  string
}

// Parse decodes a single command of the form Name(arg, ...). Arguments are
// base-10 signed integers; whitespace around the line and around each
// argument is ignored. Parse does not check the name against the known
// commands, the Manager does.
func Parse(line string) (*Command, error) {
	raw := strings.TrimSpace(line)

	open := strings.IndexByte(raw, '(')
	if open <= 0 || !strings.HasSuffix(raw, ")") {
		return nil, fmt.Errorf("%w: %q", ErrMalformedCommand, raw)
	}

	name := strings.TrimSpace(raw[:open])
	inner := raw[open+1 : len(raw)-1]
	if name == "" || strings.ContainsAny(inner, "()") {
		return nil, fmt.Errorf("%w: %q", ErrMalformedCommand, raw)
	}

	cmd := &Command{Name: name, Raw: raw}
	if strings.TrimSpace(inner) == "" {
		return cmd, nil
	}

	for _, field := range strings.Split(inner, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return nil, fmt.Errorf("%w: %q: bad argument %q", ErrMalformedCommand, raw, field)
		}
		cmd.Args = append(cmd.Args, n)
	}
	return cmd, nil
}

// String renders the command back in its canonical form
func (c *Command) String() string {
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = strconv.Itoa(a)
	}
	return fmt.Sprintf("%s(%s)", c.Name, strings.Join(args, ","))
}
