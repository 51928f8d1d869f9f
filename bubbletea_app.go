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
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/patrickmn/go-cache"
)

// Model represents the Bubble Tea shell state
type Model struct {
	ready bool

	textInput      textinput.Model
	outputViewport viewport.Model
	helpViewport   viewport.Model

	// Data
	session   *Session
	helpCache *cache.Cache
	config    *Config

	// State
	lines      []string // rendered scrollback
	lastResult string
	status     string
	helpTopic  string

	// Styling
	styles          *Styles
	glamourRenderer *glamour.TermRenderer

	// Dimensions
	width  int
	height int
}

// Styles holds all the styling for the application
type Styles struct {
	Border         lipgloss.Style
	Title          lipgloss.Style
	Prompt         lipgloss.Style
	HelpKey        lipgloss.Style
	HelpDesc       lipgloss.Style
	SuccessMessage lipgloss.Style
	ErrorMessage   lipgloss.Style
}

// NewStyles creates the default styles
func NewStyles() *Styles {
	return &Styles{
		Border: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")),
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Padding(0, 1).
			Bold(true),
		Prompt: lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true),
		HelpKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")),
		SuccessMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")).
			Bold(true),
		ErrorMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
	}
}

func InitialModel(session *Session, hc *cache.Cache, config *Config) Model {
	ti := textinput.New()
	ti.Placeholder = `insert "Alice Smith" 12345678`
	ti.Prompt = config.Shell.Prompt
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 50

	outputViewport := viewport.New(0, 0)
	helpViewport := viewport.New(0, 0)

	glamourRenderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(60),
	)

	model := Model{
		textInput:       ti,
		outputViewport:  outputViewport,
		helpViewport:    helpViewport,
		session:         session,
		helpCache:       hc,
		config:          config,
		styles:          NewStyles(),
		glamourRenderer: glamourRenderer,
	}
	model.updateHelp("")
	return model
}

// Init is called when the program starts
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all the I/O
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			m.submit(m.textInput.Value())
			m.textInput.SetValue("")
			return m, nil
		case "ctrl+y":
			if m.lastResult == "" {
				m.status = "Nothing to copy yet"
			} else if err := clipboard.WriteAll(m.lastResult); err != nil {
				m.status = "Copy failed: " + err.Error()
			} else {
				m.status = "📋 Copied last result to clipboard"
			}
			return m, nil
		case "pgup", "pgdown":
			m.outputViewport, cmd = m.outputViewport.Update(msg)
			return m, cmd
		case "ctrl+u", "ctrl+d":
			m.helpViewport, cmd = m.helpViewport.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.ready = true
	}

	m.textInput, cmd = m.textInput.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// submit executes one input line and records its output.
func (m *Model) submit(line string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}
	m.status = ""

	cmd, err := ParseCommand(line)
	if err != nil {
		m.appendOutput(line, []string{resultFailure})
		m.status = err.Error()
		return
	}

	switch cmd.Kind {
	case CmdHelp:
		m.updateHelp(cmd.Topic)
		return
	case CmdClear:
		m.lines = nil
		m.outputViewport.SetContent("")
		return
	}

	results := m.session.Execute(cmd)
	m.appendOutput(line, results)
	m.lastResult = strings.Join(results, "\n")

	verb, _, _ := strings.Cut(line, " ")
	if verb != m.helpTopic {
		m.updateHelp(verb)
	}
}

func (m *Model) appendOutput(line string, results []string) {
	m.lines = append(m.lines, m.styles.Prompt.Render(m.config.Shell.Prompt)+line)
	for _, result := range results {
		switch result {
		case resultSuccess:
			result = m.styles.SuccessMessage.Render(result)
		case resultFailure:
			result = m.styles.ErrorMessage.Render(result)
		}
		m.lines = append(m.lines, result)
	}
	if over := len(m.lines) - m.config.Shell.Scrollback; over > 0 {
		m.lines = m.lines[over:]
	}
	m.outputViewport.SetContent(strings.Join(m.lines, "\n"))
	m.outputViewport.GotoBottom()
}

// updateHelp renders the help page for topic into the help viewport.
func (m *Model) updateHelp(topic string) {
	m.helpTopic = topic
	page := GetHelpPage(m.helpCache, topic)
	if page == "" {
		page = helpMarkdown(topic)
		if m.glamourRenderer != nil {
			if rendered, err := m.glamourRenderer.Render(page); err == nil {
				page = rendered
			}
		}
		CacheHelpPage(m.helpCache, topic, page)
	}
	m.helpViewport.SetContent(page)
	m.helpViewport.GotoTop()
}

// updateLayout updates component dimensions
func (m *Model) updateLayout() {
	leftWidth := (m.width * 6 / 10) - 1
	rightWidth := m.width - leftWidth - 3
	outputHeight := m.height - 3 - 6

	m.textInput.Width = leftWidth - 4 - len(m.config.Shell.Prompt)
	m.outputViewport.Width = leftWidth - 2
	m.outputViewport.Height = outputHeight - 2
	m.helpViewport.Width = rightWidth - 2
	m.helpViewport.Height = outputHeight + 3
}

func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.width < 40 || m.height < 12 {
		return "Terminal too small. Please resize your terminal."
	}

	leftWidth := (m.width * 6 / 10) - 1
	rightWidth := m.width - leftWidth - 3
	outputHeight := m.height - 3 - 6

	outputBox := m.styles.Border.
		Width(leftWidth).
		Height(outputHeight).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Render(" 🌳 Output "),
			m.outputViewport.View(),
		))

	inputBox := m.styles.Border.
		Width(leftWidth).
		Height(1).
		Padding(0, 1).
		Render(m.textInput.View())

	helpBox := m.styles.Border.
		Width(rightWidth).
		Height(outputHeight + 3).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Render(" 📖 Help "),
			m.helpViewport.View(),
		))

	main := lipgloss.JoinHorizontal(
		lipgloss.Top,
		lipgloss.JoinVertical(lipgloss.Left, outputBox, inputBox),
		helpBox,
	)

	return lipgloss.JoinVertical(lipgloss.Left, main, m.renderFooter())
}

func (m Model) renderFooter() string {
	keys := []string{"enter", "ctrl+y", "pgup/pgdown", "ctrl+u/ctrl+d", "esc"}
	descs := []string{"run command", "copy result", "scroll output", "scroll help", "quit"}

	var parts []string
	for i, key := range keys {
		parts = append(parts, m.styles.HelpKey.Render(key)+" "+m.styles.HelpDesc.Render(descs[i]))
	}
	footer := strings.Join(parts, m.styles.HelpDesc.Render(" • "))
	if m.status != "" {
		footer = m.styles.HelpDesc.Render(m.status) + "\n" + footer
	}
	return footer
}

// runBubbleTeaApp starts the interactive shell
func runBubbleTeaApp(session *Session, config *Config) error {
	hc := NewHelpCache(time.Duration(config.Cache.HelpPageMinutes) * time.Minute)
	model := InitialModel(session, hc, config)

	program := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := program.Run()
	return err
}
