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
	"fmt"
	"strings"
)

// Manager dispatches parsed commands to registered handlers
type Manager struct {
	handlers []Handler
	session  *Session
}

// NewManager creates a manager with the Initialize, Insert, Delete and
// Search handlers registered. Stores are built with newStore.
func NewManager(newStore func() KeyStore) *Manager {
	manager := &Manager{
		session: NewSession(newStore),
	}

	manager.RegisterHandler(InitializeHandler{})
	manager.RegisterHandler(InsertHandler{})
	manager.RegisterHandler(DeleteHandler{})
	manager.RegisterHandler(SearchHandler{})
	manager.RegisterHandler(RangeSearchHandler{})

	return manager
}

// RegisterHandler registers a new handler. Earlier registrations win when
// two handlers claim the same name and arity.
func (m *Manager) RegisterHandler(h Handler) {
	m.handlers = append(m.handlers, h)
}

// Session returns the session the manager runs commands against
func (m *Manager) Session() *Session {
	return m.session
}

// Execute runs cmd with the first handler matching its name and arity
func (m *Manager) Execute(cmd *Command) (Result, error) {
	known := false
	for _, h := range m.handlers {
		if h.Name() != cmd.Name {
			continue
		}
		known = true
		if h.Arity() == len(cmd.Args) {
			return h.Execute(m.session, cmd.Args)
		}
	}

	if !known {
		return Result{}, fmt.Errorf("%w: %s is not supported, only %s are supported",
			ErrUnsupportedCommand, cmd.Name, m.supportedNames())
	}
	return Result{}, fmt.Errorf("%w: %s does not take %d argument(s)", ErrMalformedCommand, cmd.Raw, len(cmd.Args))
}

// ExecuteLine parses and runs a single command line
func (m *Manager) ExecuteLine(line string) (Result, error) {
	cmd, err := Parse(line)
	if err != nil {
		return Result{}, err
	}
	return m.Execute(cmd)
}

func (m *Manager) supportedNames() string {
	var names []string
	seen := make(map[string]bool)
	for _, h := range m.handlers {
		if !seen[h.Name()] {
			seen[h.Name()] = true
			names = append(names, h.Name())
		}
	}
	if len(names) < 2 {
		return strings.Join(names, "")
	}
	return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
}
