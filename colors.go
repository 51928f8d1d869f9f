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
	"os"
	"strings"

	ui "github.com/gizak/termui/v3"
)

type TerminalMode int

const (
	TerminalModeLight TerminalMode = iota
	TerminalModeDark
)

var detectedMode = detectTerminalMode()

// ANSI colors for plain console output
var Green, Reset = GetANSIColors()

// detectTerminalMode attempts to detect whether the terminal is in light or dark mode
func detectTerminalMode() TerminalMode {
	// COLORFGBG format is typically "foreground;background"
	if colorScheme := os.Getenv("COLORFGBG"); colorScheme != "" {
		parts := strings.Split(colorScheme, ";")
		if len(parts) >= 2 {
			bg := parts[len(parts)-1]
			if bg == "0" || bg == "8" || bg == "16" {
				return TerminalModeDark
			} else if bg == "15" || bg == "7" || bg == "255" {
				return TerminalModeLight
			}
		}
	}

	for _, name := range []string{"TERM_THEME", "THEME"} {
		if theme := strings.ToLower(os.Getenv(name)); theme != "" {
			if strings.Contains(theme, "dark") {
				return TerminalModeDark
			} else if strings.Contains(theme, "light") {
				return TerminalModeLight
			}
		}
	}

	// Default to dark mode as it's more common in terminals
	return TerminalModeDark
}

// GetANSIColors returns escape codes adapted to the terminal mode. Setting
// NO_COLOR disables them.
func GetANSIColors() (success, reset string) {
	if os.Getenv("NO_COLOR") != "" {
		return
	}
	if detectedMode == TerminalModeLight {
		success = "\033[32m" // Green
	} else {
		success = "\033[92m" // Bright Green
	}

	reset = "\033[0m"
	return
}

// treeTextStyle is the style of unselected rows in the tree viewer.
func treeTextStyle() ui.Style {
	if detectedMode == TerminalModeLight {
		return ui.NewStyle(ui.ColorBlack)
	}
	return ui.NewStyle(ui.ColorWhite)
}

// treeSelectedStyle highlights the selected row in the tree viewer.
func treeSelectedStyle() ui.Style {
	if detectedMode == TerminalModeLight {
		return ui.NewStyle(ui.ColorWhite, ui.Color(4)) // White text on dark blue
	}
	return ui.NewStyle(ui.ColorBlack, ui.Color(6)) // Black text on cyan
}

func treeBorderStyle() ui.Style {
	if detectedMode == TerminalModeLight {
		return ui.NewStyle(ui.Color(4))
	}
	return ui.NewStyle(ui.Color(14))
}
