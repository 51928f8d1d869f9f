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

	"github.com/schollz/progressbar/v3"
)

type runOptions struct {
	Progress bool // draw a progress bar on stderr
	Echo     bool // prefix every result with its command
}

// runScript executes every command of the script read from in and writes the
// results to out, one per line.
func runScript(in io.Reader, out io.Writer, session *Session, opts runOptions) error {
	lines, err := ReadScript(in)
	if err != nil {
		return fmt.Errorf("failed to read script: %w", err)
	}

	var bar *progressbar.ProgressBar
	if opts.Progress {
		bar = progressbar.NewOptions(len(lines),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetDescription("🌳 Executing commands..."),
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
				fmt.Fprintf(os.Stderr, "\n✅ %d commands executed\n", len(lines))
			}),
		)
	}

	w := bufio.NewWriter(out)
	for _, line := range lines {
		for _, result := range session.ExecuteLine(line) {
			if opts.Echo {
				fmt.Fprintf(w, "%s => %s\n", line, result)
			} else {
				fmt.Fprintln(w, result)
			}
		}
		if bar != nil {
			bar.Add(1)
		}
	}
	return w.Flush()
}

// openScript returns the script named by args, or stdin when there is none.
func openScript(args []string) (io.ReadCloser, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	file, err := os.Open(args[0])
	if err != nil {
		return nil, fmt.Errorf("failed to open script: %v", err)
	}
	return file, nil
}
