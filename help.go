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
	"sort"
	"strings"

	markdown "github.com/MichaelMure/go-term-markdown"
)

// commandHelp holds the markdown help page of every command.
var commandHelp = map[string]string{
	"insert": "# insert\n\n`insert \"NAME\" ID`\n\n" +
		"Adds a record. NAME is double-quoted and holds letters and spaces only; " +
		"ID is exactly 8 digits. Prints `successful`, or `unsuccessful` when the ID " +
		"is already present or either argument is malformed.",
	"remove": "# remove\n\n`remove ID`\n\n" +
		"Deletes the record with the given ID. Prints `unsuccessful` when no such record exists.",
	"search": "# search\n\n`search ID` or `search \"NAME\"`\n\n" +
		"With an ID, prints the record's name. With a quoted NAME, prints the ID of every " +
		"record with that name, one per line, in ascending ID order. " +
		"Prints `unsuccessful` when nothing matches.",
	"printInorder": "# printInorder\n\n" +
		"Prints all names in ascending ID order, separated by the configured separator.",
	"printPreorder": "# printPreorder\n\n" +
		"Prints all names in preorder: each node before its left and right subtrees.",
	"printPostorder": "# printPostorder\n\n" +
		"Prints all names in postorder: each node after its left and right subtrees.",
	"printLevelCount": "# printLevelCount\n\n" +
		"Prints the number of levels in the tree. An empty tree has 0 levels.",
	"removeInorder": "# removeInorder\n\n`removeInorder N`\n\n" +
		"Deletes the record at position N (counting from 0) of an inorder traversal. " +
		"Prints `unsuccessful` when N is not smaller than the number of records.",
	"stats": "# stats\n\n" +
		"Prints the record count, tree height, level count and the number of key " +
		"lookups rejected without walking the tree.",
	"help":  "# help\n\n`help [command]`\n\nShows help for a command, or lists all commands.",
	"clear": "# clear\n\nClears the shell output. Shell only.",
}

// helpTopics returns the known command names, sorted.
func helpTopics() []string {
	topics := make([]string, 0, len(commandHelp))
	for topic := range commandHelp {
		topics = append(topics, topic)
	}
	sort.Strings(topics)
	return topics
}

// helpMarkdown returns the markdown help for topic, or the command index when
// topic is empty or unknown.
func helpMarkdown(topic string) string {
	if page, ok := commandHelp[topic]; ok {
		return page
	}
	var b strings.Builder
	if topic != "" {
		fmt.Fprintf(&b, "Unknown command `%s`.\n\n", topic)
	}
	b.WriteString("# Commands\n\n")
	for _, t := range helpTopics() {
		fmt.Fprintf(&b, "* `%s`\n", t)
	}
	b.WriteString("\nType `help COMMAND` for details.\n")
	return b.String()
}

func getHelpMessage() string {
	message := fmt.Sprintf(`

 **avltree %s**

A balanced index of student records keyed by 8-digit IDs. Commands are read one per line
from a script, from stdin or from the interactive shell.

Built with Go %s

# 1. Commands
* insert "NAME" ID
* remove ID
* search ID
* search "NAME"
* printInorder, printPreorder, printPostorder
* printLevelCount
* removeInorder N
* stats

# 2. Scripts
The first line may hold the number of commands to run. Every command prints
'successful', 'unsuccessful' or its result.

# 3. Subcommands
* run [FILE]: execute a script (stdin when FILE is omitted)
* shell: interactive shell
* view [FILE]: execute a script and browse the resulting tree
* settings: show or create ~/.avltree.yaml

# License
Licensed under the Apache License, Version 2.0

`, version, runtime.Version())
	result := markdown.Render(message, 80, 3)
	return string(result)
}
