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
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/cmora0/AVL-Tree/index"
	"github.com/mattn/go-shellwords"
)

// CommandKind identifies one verb of the command language.
type CommandKind int

const (
	CmdInsert CommandKind = iota
	CmdRemove
	CmdSearchKey
	CmdSearchName
	CmdPrintInorder
	CmdPrintPreorder
	CmdPrintPostorder
	CmdPrintLevelCount
	CmdRemoveInorder
	CmdStats
	CmdHelp
	CmdClear
)

// Command is one validated line of input.
type Command struct {
	Kind  CommandKind
	Name  string // insert, search by name
	Key   string // insert, remove, search by key
	Rank  int    // removeInorder
	Topic string // help
	Line  string
}

// ErrMalformed is wrapped by every error ParseCommand returns.
var ErrMalformed = errors.New("malformed command")

var noArgCommands = map[string]CommandKind{
	"printInorder":    CmdPrintInorder,
	"printPreorder":   CmdPrintPreorder,
	"printPostorder":  CmdPrintPostorder,
	"printLevelCount": CmdPrintLevelCount,
	"stats":           CmdStats,
	"clear":           CmdClear,
}

func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformed, fmt.Sprintf(format, args...))
}

// ParseCommand validates one line of the command language.
func ParseCommand(line string) (Command, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return Command{}, malformed("empty line")
	}

	verb, rest := line, ""
	if i := strings.IndexFunc(line, unicode.IsSpace); i >= 0 {
		verb, rest = line[:i], strings.TrimSpace(line[i:])
	}
	cmd := Command{Line: line}

	// Shell metacharacters never appear in names or keys.
	if strings.ContainsAny(rest, ";&|<>`$'\\") {
		return cmd, malformed("unexpected character in %q", rest)
	}
	args, err := splitArgs(rest)
	if err != nil {
		return cmd, err
	}
	quoted := strings.HasPrefix(rest, `"`)

	if kind, ok := noArgCommands[verb]; ok {
		if len(args) != 0 {
			return cmd, malformed("%s takes no arguments", verb)
		}
		cmd.Kind = kind
		return cmd, nil
	}

	switch verb {
	case "insert":
		if len(args) != 2 || !quoted {
			return cmd, malformed(`usage: insert "NAME" ID`)
		}
		name, tail, err := splitQuotedName(rest)
		if err != nil {
			return cmd, err
		}
		fields := strings.Fields(tail)
		if len(fields) != 1 {
			return cmd, malformed(`usage: insert "NAME" ID`)
		}
		if err := validateName(name); err != nil {
			return cmd, err
		}
		if err := validateKey(fields[0]); err != nil {
			return cmd, err
		}
		cmd.Kind, cmd.Name, cmd.Key = CmdInsert, name, fields[0]

	case "remove":
		if len(args) != 1 || quoted {
			return cmd, malformed("usage: remove ID")
		}
		if err := validateKey(args[0]); err != nil {
			return cmd, err
		}
		cmd.Kind, cmd.Key = CmdRemove, args[0]

	case "search":
		if len(args) != 1 {
			return cmd, malformed(`usage: search ID | search "NAME"`)
		}
		if quoted {
			name, tail, err := splitQuotedName(rest)
			if err != nil {
				return cmd, err
			}
			if tail != "" {
				return cmd, malformed("name must be a single quoted string")
			}
			if err := validateName(name); err != nil {
				return cmd, err
			}
			cmd.Kind, cmd.Name = CmdSearchName, name
			return cmd, nil
		}
		if err := validateKey(args[0]); err != nil {
			return cmd, err
		}
		cmd.Kind, cmd.Key = CmdSearchKey, args[0]

	case "removeInorder":
		if len(args) != 1 || quoted {
			return cmd, malformed("usage: removeInorder N")
		}
		rank, err := parseRank(args[0])
		if err != nil {
			return cmd, err
		}
		cmd.Kind, cmd.Rank = CmdRemoveInorder, rank

	case "help":
		if len(args) > 1 {
			return cmd, malformed("usage: help [command]")
		}
		cmd.Kind = CmdHelp
		if len(args) == 1 {
			cmd.Topic = args[0]
		}

	default:
		return cmd, malformed("unknown command %q", verb)
	}

	return cmd, nil
}

// splitArgs splits the text after the verb into arguments.
func splitArgs(rest string) ([]string, error) {
	if rest == "" {
		return nil, nil
	}
	args, err := shellwords.Parse(rest)
	if err != nil {
		return nil, malformed("failed to parse %q: %v", rest, err)
	}
	return args, nil
}

// splitQuotedName returns the raw text between the leading double quote of
// rest and the next one, and the trimmed text after the closing quote.
func splitQuotedName(rest string) (name, tail string, err error) {
	if !strings.HasPrefix(rest, `"`) {
		return "", "", malformed("name must be double-quoted")
	}
	end := strings.IndexByte(rest[1:], '"')
	if end < 0 {
		return "", "", malformed("unterminated name in %q", rest)
	}
	name, tail = rest[1:end+1], rest[end+2:]
	if tail != "" && !unicode.IsSpace(rune(tail[0])) {
		return "", "", malformed("unexpected text after name in %q", rest)
	}
	return name, strings.TrimSpace(tail), nil
}

func validateKey(key string) error {
	if !index.ValidKey(key) {
		return malformed("ID %q must be exactly %d digits", key, index.KeyLength)
	}
	return nil
}

// validateName accepts letters and spaces, with at least one letter.
func validateName(name string) error {
	letters := 0
	for _, r := range name {
		switch {
		case unicode.IsLetter(r):
			letters++
		case r == ' ':
		default:
			return malformed("name %q may only contain letters and spaces", name)
		}
	}
	if letters == 0 {
		return malformed("name must contain a letter")
	}
	return nil
}

func parseRank(s string) (int, error) {
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, malformed("rank %q must be a non-negative integer", s)
		}
	}
	rank, err := strconv.Atoi(s)
	if err != nil {
		return 0, malformed("rank %q is out of bounds", s)
	}
	return rank, nil
}

// ReadScript reads the command lines of a script. Blank lines are skipped.
// When the first line is a number it is the command count, and only that
// many commands are returned.
func ReadScript(r io.Reader) ([]string, error) {
	var lines []string
	limit := -1

	scanner := bufio.NewScanner(r)
	// Allow long names
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)
	first := true
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if first {
			first = false
			if n, err := strconv.Atoi(line); err == nil {
				if n < 0 {
					return nil, fmt.Errorf("invalid command count %d", n)
				}
				limit = n
				continue
			}
		}
		if limit >= 0 && len(lines) >= limit {
			break
		}
		lines = append(lines, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
