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
	"io"
	"log"
	"os"

	"github.com/cmora0/AVL-Tree/index"
	"github.com/spf13/cobra"
)

var version = "v0.1.0"

func loadConfigOrDefault() *Config {
	config, err := LoadConfig()
	if err != nil {
		log.Printf("Failed to load configuration: %v. Using default settings.", err)
		cfg := defaultConfig
		return &cfg
	}
	return config
}

func main() {
	asciiLogo := fmt.Sprintf(`
avltree: a balanced index of 8-digit IDs [Version: %s%s%s]
`, Green, version, Reset)

	var progress, echo bool

	runScriptCmd := func(cmd *cobra.Command, args []string) {
		script, err := openScript(args)
		if err != nil {
			log.Fatalf("Error: %v", err)
		}
		defer script.Close()

		session := NewSession(index.NewTree(), loadConfigOrDefault())
		opts := runOptions{Progress: progress, Echo: echo}
		if err := runScript(script, os.Stdout, session, opts); err != nil {
			log.Fatalf("Error running script: %v", err)
		}
	}

	var cmdRun = &cobra.Command{
		Use:   "run [FILE]",
		Short: "Execute a command script",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Run executes a command script from FILE, or from stdin when FILE is omitted or "-"`),
		Args:  cobra.MaximumNArgs(1),
		Run:   runScriptCmd,
	}
	cmdRun.Flags().BoolVar(&progress, "progress", false, "show a progress bar on stderr")
	cmdRun.Flags().BoolVar(&echo, "echo", false, "prefix each result with its command")

	var cmdShell = &cobra.Command{
		Use:   "shell",
		Short: "Launch the interactive shell",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Shell opens an interactive session over an empty tree`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			config := loadConfigOrDefault()
			session := NewSession(index.NewTree(), config)
			if err := runBubbleTeaApp(session, config); err != nil {
				log.Fatalf("Error running shell: %v", err)
			}
		},
	}

	var check bool
	var cmdView = &cobra.Command{
		Use:   "view [FILE]",
		Short: "Execute a script and browse the resulting tree",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `View executes a command script silently, then displays the tree`),
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			script, err := openScript(args)
			if err != nil {
				log.Fatalf("Error: %v", err)
			}
			defer script.Close()

			tree := index.NewTree()
			session := NewSession(tree, loadConfigOrDefault())
			if err := runScript(script, io.Discard, session, runOptions{}); err != nil {
				log.Fatalf("Error running script: %v", err)
			}
			if check {
				if err := tree.Validate(); err != nil {
					log.Fatalf("Tree check failed: %v", err)
				}
			}
			if err := viewTree(tree); err != nil {
				log.Fatalf("Error displaying tree: %v", err)
			}
		},
	}
	cmdView.Flags().BoolVar(&check, "check", false, "validate tree invariants before display")

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print avltree usage guide",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getHelpMessage())
		},
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show current configuration",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			displaySettings()
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print avltree version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:     "avltree",
		Version: version,
		Long:    asciiLogo,
		Args:    cobra.MaximumNArgs(1),
		// Default to run when no subcommand is provided
		Run: runScriptCmd,
	}
	rootCmd.Flags().BoolVar(&progress, "progress", false, "show a progress bar on stderr")
	rootCmd.Flags().BoolVar(&echo, "echo", false, "prefix each result with its command")

	rootCmd.AddCommand(cmdRun, cmdShell, cmdView, cmdUsage, cmdSettings, cmdVersion)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
