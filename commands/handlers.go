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

// KeyStore is the set of operations a command can run against a tree.
// *avl.Tree satisfies it.
type KeyStore interface {
	Insert(key int)
	Delete(key int) bool
	Search(key int) (int, bool)
	SearchRange(low, high int) []int
}

// Result is what a command produced. Only Search commands have output.
type Result struct {
	Output    string
	HasOutput bool
}

// Handler executes one kind of command
type Handler interface {
	Name() string
	Arity() int
	Execute(s *Session, args []int) (Result, error)
}

// Session owns the current store. It starts empty; Initialize() creates a
// fresh store through the factory, replacing any previous one.
type Session struct {
	store    KeyStore
	newStore func() KeyStore
}

// NewSession creates a session that builds stores with newStore
func NewSession(newStore func() KeyStore) *Session {
	return &Session{newStore: newStore}
}

// Reset replaces the current store with an empty one
func (s *Session) Reset() {
	s.store = s.newStore()
}

// Store returns the current store, or ErrNotInitialized
func (s *Session) Store() (KeyStore, error) {
	if s.store == nil {
		return nil, ErrNotInitialized
	}
	return s.store, nil
}

type InitializeHandler struct{}

func (InitializeHandler) Name() string { return NameInitialize }
func (InitializeHandler) Arity() int   { return 0 }

func (InitializeHandler) Execute(s *Session, _ []int) (Result, error) {
	s.Reset()
	return Result{}, nil
}

type InsertHandler struct{}

func (InsertHandler) Name() string { return NameInsert }
func (InsertHandler) Arity() int   { return 1 }

func (InsertHandler) Execute(s *Session, args []int) (Result, error) {
	store, err := s.Store()
	if err != nil {
		return Result{}, err
	}
	store.Insert(args[0])
	return Result{}, nil
}

// DeleteHandler removes one occurrence of the key. Deleting an absent key is
// not an error.
type DeleteHandler struct{}

func (DeleteHandler) Name() string { return NameDelete }
func (DeleteHandler) Arity() int   { return 1 }

func (DeleteHandler) Execute(s *Session, args []int) (Result, error) {
	store, err := s.Store()
	if err != nil {
		return Result{}, err
	}
	store.Delete(args[0])
	return Result{}, nil
}

type SearchHandler struct{}

func (SearchHandler) Name() string { return NameSearch }
func (SearchHandler) Arity() int   { return 1 }

func (SearchHandler) Execute(s *Session, args []int) (Result, error) {
	store, err := s.Store()
	if err != nil {
		return Result{}, err
	}
	return Result{Output: FormatKey(store.Search(args[0])), HasOutput: true}, nil
}

// RangeSearchHandler serves Search(low,high)
type RangeSearchHandler struct{}

func (RangeSearchHandler) Name() string { return NameSearch }
func (RangeSearchHandler) Arity() int   { return 2 }

func (RangeSearchHandler) Execute(s *Session, args []int) (Result, error) {
	store, err := s.Store()
	if err != nil {
		return Result{}, err
	}
	return Result{Output: FormatKeys(store.SearchRange(args[0], args[1])), HasOutput: true}, nil
}
