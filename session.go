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
	"iter"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/cmora0/AVL-Tree/index"
	"github.com/patrickmn/go-cache"
	"github.com/willf/bloom"
)

const (
	resultSuccess = "successful"
	resultFailure = "unsuccessful"
)

// Index is the set of tree operations a Session drives.
type Index interface {
	Insert(name, key string) error
	RemoveByKey(key string) error
	RemoveByRank(n int) error
	FindByKey(key string) (string, bool)
	FindByName(name string) []string
	Inorder() iter.Seq[string]
	Preorder() iter.Seq[string]
	Postorder() iter.Seq[string]
	LevelCount() int
	Height() int
	Len() int
}

var _ Index = (*index.Tree)(nil)

// Session executes commands against one tree and renders each result in the
// output vocabulary ("successful", "unsuccessful", a name, a list, a count).
type Session struct {
	tree      Index
	seen      *bloom.BloomFilter // every key ever inserted
	names     *cache.Cache       // search-by-name results, flushed on mutation
	separator string

	filtered int // key lookups answered by the bloom filter alone
}

type SessionStats struct {
	Records  int
	Height   int
	Levels   int
	Filtered int
}

func NewSession(tree Index, config *Config) *Session {
	return &Session{
		tree:      tree,
		seen:      bloom.New(config.Filter.BloomBits, config.Filter.BloomHashes),
		names:     NewNameLookupCache(time.Duration(config.Cache.NameLookupMinutes) * time.Minute),
		separator: config.Output.Separator,
	}
}

// ExecuteLine parses and executes one line. Malformed lines are
// unsuccessful.
func (s *Session) ExecuteLine(line string) []string {
	cmd, err := ParseCommand(line)
	if err != nil {
		return []string{resultFailure}
	}
	return s.Execute(cmd)
}

// Execute runs cmd and returns its output lines.
func (s *Session) Execute(cmd Command) []string {
	switch cmd.Kind {
	case CmdInsert:
		if err := s.tree.Insert(cmd.Name, cmd.Key); err != nil {
			return []string{resultFailure}
		}
		s.seen.AddString(cmd.Key)
		s.mutated()
		return []string{resultSuccess}

	case CmdRemove:
		if !s.mayContain(cmd.Key) {
			return []string{resultFailure}
		}
		if err := s.tree.RemoveByKey(cmd.Key); err != nil {
			return []string{resultFailure}
		}
		s.mutated()
		return []string{resultSuccess}

	case CmdRemoveInorder:
		if err := s.tree.RemoveByRank(cmd.Rank); err != nil {
			return []string{resultFailure}
		}
		s.mutated()
		return []string{resultSuccess}

	case CmdSearchKey:
		if !s.mayContain(cmd.Key) {
			return []string{resultFailure}
		}
		name, ok := s.tree.FindByKey(cmd.Key)
		if !ok {
			return []string{resultFailure}
		}
		return []string{name}

	case CmdSearchName:
		keys := s.lookupName(cmd.Name)
		if len(keys) == 0 {
			return []string{resultFailure}
		}
		return keys

	case CmdPrintInorder:
		return []string{s.join(s.tree.Inorder())}
	case CmdPrintPreorder:
		return []string{s.join(s.tree.Preorder())}
	case CmdPrintPostorder:
		return []string{s.join(s.tree.Postorder())}

	case CmdPrintLevelCount:
		return []string{strconv.Itoa(s.tree.LevelCount())}

	case CmdStats:
		st := s.Stats()
		return []string{
			fmt.Sprintf("records: %d", st.Records),
			fmt.Sprintf("height: %d", st.Height),
			fmt.Sprintf("levels: %d", st.Levels),
			fmt.Sprintf("filtered lookups: %d", st.Filtered),
		}
	}

	return []string{resultFailure}
}

func (s *Session) Stats() SessionStats {
	return SessionStats{
		Records:  s.tree.Len(),
		Height:   s.tree.Height(),
		Levels:   s.tree.LevelCount(),
		Filtered: s.filtered,
	}
}

// mayContain reports false only for keys that were never inserted.
func (s *Session) mayContain(key string) bool {
	if s.seen.TestString(key) {
		return true
	}
	s.filtered++
	return false
}

func (s *Session) lookupName(name string) []string {
	if val, ok := s.names.Get(name); ok {
		return val.([]string)
	}
	keys := s.tree.FindByName(name)
	s.names.Set(name, keys, cache.DefaultExpiration)
	return keys
}

func (s *Session) mutated() {
	s.names.Flush()
}

func (s *Session) join(names iter.Seq[string]) string {
	return strings.Join(slices.Collect(names), s.separator)
}
