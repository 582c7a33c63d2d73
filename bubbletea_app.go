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
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-shellwords"
	"github.com/patrickmn/go-cache"
)

// maxTranscriptLines bounds the command log kept on screen
const maxTranscriptLines = 200

const shellKeysMarkdown = `# Keys
* **enter** run the typed commands (separate several with spaces, quote a command that contains spaces)
* **pgup / pgdown** scroll the tree
* **ctrl+y** copy the tree to the clipboard
* **f1** toggle this help
* **esc / ctrl+c** quit
`

// Model represents the shell state
type Model struct {
	ready bool

	input    textinput.Model
	treeView viewport.Model

	// Data
	replayer    *Replayer
	renderCache *cache.Cache

	// State
	transcript    []string
	status        string
	statusIsError bool
	showHelp      bool

	// Styling
	styles          *Styles
	glamourRenderer *glamour.TermRenderer

	// Dimensions
	width  int
	height int
}

// Styles holds all the styling for the shell
type Styles struct {
	BorderFocused  lipgloss.Style
	BorderBlurred  lipgloss.Style
	Title          lipgloss.Style
	Prompt         lipgloss.Style
	HelpKey        lipgloss.Style
	HelpDesc       lipgloss.Style
	SuccessMessage lipgloss.Style
	ErrorMessage   lipgloss.Style
}

// NewStyles creates styles from the detected color scheme
func NewStyles() *Styles {
	scheme := GetColorScheme()
	return &Styles{
		BorderFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(scheme.BorderFocus).
			Bold(true),
		BorderBlurred: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(scheme.Border),
		Title: lipgloss.NewStyle().
			Foreground(scheme.Primary).
			Padding(0, 1).
			Bold(true),
		Prompt: lipgloss.NewStyle().
			Foreground(scheme.Accent).
			Bold(true),
		HelpKey: lipgloss.NewStyle().
			Foreground(scheme.TextMuted).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(scheme.TextMuted),
		SuccessMessage: lipgloss.NewStyle().
			Foreground(scheme.Success).
			Bold(true),
		ErrorMessage: lipgloss.NewStyle().
			Foreground(scheme.Error).
			Bold(true),
	}
}

// InitialModel creates the shell model around a fresh replayer
func InitialModel(config *Config) Model {
	ti := textinput.New()
	ti.Placeholder = "Initialize() Insert(4) Search(4)"
	ti.Prompt = "avl> "
	ti.Focus()
	ti.CharLimit = 1024
	ti.Width = 50

	treeView := viewport.New(0, 0)

	model := Model{
		input:       ti,
		treeView:    treeView,
		replayer:    NewReplayer(config),
		renderCache: NewRenderCache(config.RenderCacheExpiration()),
		styles:      NewStyles(),
		status:      "Type Initialize() to create a tree",
	}
	model.refreshTree()

	return model
}

// Init is called when the program starts
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all the I/O
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			m.runLine(m.input.Value())
			m.input.SetValue("")
			return m, nil
		case "f1":
			m.showHelp = !m.showHelp
			m.refreshTree()
			return m, nil
		case "ctrl+y":
			m.copyTree()
			return m, nil
		case "pgup", "pgdown":
			m.treeView, cmd = m.treeView.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.ready = true
		return m, nil
	}

	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// splitShellLine splits an input line into separate commands
func splitShellLine(line string) ([]string, error) {
	return shellwords.Parse(escapeParens(line))
}

// escapeParens backslash-escapes parentheses outside single quotes.
// shellwords rejects a bare '(' unless it opens a $(...) substitution.
func escapeParens(line string) string {
	var sb strings.Builder
	inSingle := false
	for _, r := range line {
		switch {
		case r == '\'':
			inSingle = !inSingle
		case !inSingle && (r == '(' || r == ')'):
			sb.WriteByte('\\')
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// runLine executes every command on the line in order, stopping at the
// first failure
func (m *Model) runLine(line string) {
	cmds, err := splitShellLine(line)
	if err != nil {
		m.setStatus(fmt.Sprintf("Cannot split input: %v", err), true)
		return
	}
	if len(cmds) == 0 {
		return
	}

	for _, text := range cmds {
		m.appendTranscript("> " + text)
		res, err := m.replayer.ExecuteLine(text)
		if err != nil {
			m.appendTranscript("! " + err.Error())
			m.setStatus(err.Error(), true)
			m.refreshTree()
			return
		}
		if res.HasOutput {
			m.appendTranscript(res.Output)
		}
	}

	m.setStatus(fmt.Sprintf("Ran %d command(s)", len(cmds)), false)
	m.refreshTree()
}

func (m *Model) appendTranscript(line string) {
	m.transcript = append(m.transcript, line)
	if over := len(m.transcript) - maxTranscriptLines; over > 0 {
		m.transcript = m.transcript[over:]
	}
}

func (m *Model) setStatus(status string, isError bool) {
	m.status = status
	m.statusIsError = isError
}

// currentRendering returns the ASCII tree, or a placeholder
func (m *Model) currentRendering() string {
	store := m.replayer.Store()
	if store == nil {
		return "No tree yet. Type Initialize() to start."
	}
	rendering := RenderStore(m.renderCache, store)
	if rendering == "" {
		return "(empty tree)"
	}
	return rendering
}

func (m *Model) refreshTree() {
	if m.showHelp {
		m.treeView.SetContent(m.renderHelpPane())
		return
	}
	m.treeView.SetContent(m.currentRendering())
}

func (m *Model) renderHelpPane() string {
	content := shellKeysMarkdown + "\n" + commandReference
	if m.glamourRenderer == nil {
		m.glamourRenderer, _ = glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(72),
		)
	}
	if m.glamourRenderer != nil {
		if rendered, err := m.glamourRenderer.Render(content); err == nil {
			return rendered
		}
	}
	return content
}

func (m *Model) copyTree() {
	store := m.replayer.Store()
	if store == nil {
		m.setStatus("Nothing to copy yet", true)
		return
	}
	if err := clipboard.WriteAll(RenderStore(m.renderCache, store)); err != nil {
		m.setStatus(fmt.Sprintf("Copy failed: %v", err), true)
		return
	}
	m.setStatus(fmt.Sprintf("📋 Copied tree with %d key(s) to clipboard", store.Tree().Len()), false)
}

// updateLayout updates component dimensions
func (m *Model) updateLayout() {
	leftWidth := (m.width / 2) - 1
	rightWidth := m.width - leftWidth - 3
	bodyHeight := m.height - 6

	m.input.Width = leftWidth - 10
	m.treeView.Width = rightWidth - 2
	m.treeView.Height = bodyHeight
}

// View renders the shell
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.width < 30 || m.height < 10 {
		return "Terminal too small. Please resize your terminal."
	}

	leftWidth := (m.width / 2) - 1
	rightWidth := m.width - leftWidth - 3
	bodyHeight := m.height - 6
	inputHeight := 3
	transcriptHeight := bodyHeight - inputHeight - 2

	inputBox := m.styles.BorderFocused.
		Width(leftWidth).
		Height(inputHeight).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Render(" ⌨ Commands "),
			m.input.View(),
		))

	transcriptBox := m.styles.BorderBlurred.
		Width(leftWidth).
		Height(transcriptHeight).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Render(" 📜 Output "),
			m.visibleTranscript(transcriptHeight-1),
		))

	treeTitle := " 🌳 Tree "
	if m.showHelp {
		treeTitle = " 📖 Help "
	}
	treeBox := m.styles.BorderBlurred.
		Width(rightWidth).
		Height(bodyHeight + 2).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Render(treeTitle),
			m.treeView.View(),
		))

	main := lipgloss.JoinHorizontal(
		lipgloss.Top,
		lipgloss.JoinVertical(lipgloss.Left, inputBox, transcriptBox),
		treeBox,
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		main,
		m.renderStatus(),
		m.renderFooter(),
	)
}

func (m Model) visibleTranscript(lines int) string {
	if lines <= 0 {
		return ""
	}
	start := max(len(m.transcript)-lines, 0)
	return strings.Join(m.transcript[start:], "\n")
}

func (m Model) renderStatus() string {
	if m.statusIsError {
		return m.styles.ErrorMessage.Render(m.status)
	}
	return m.styles.SuccessMessage.Render(m.status)
}

func (m Model) renderFooter() string {
	keys := []string{"enter", "pgup/pgdown", "ctrl+y", "f1", "esc"}
	descs := []string{"run", "scroll tree", "copy tree", "help", "quit"}

	var parts []string
	for i, key := range keys {
		parts = append(parts, m.styles.HelpKey.Render(key)+" "+m.styles.HelpDesc.Render(descs[i]))
	}
	return strings.Join(parts, "  •  ")
}

// runBubbleTeaApp starts the interactive shell
func runBubbleTeaApp(config *Config) error {
	InitializeColors()

	program := tea.NewProgram(
		InitialModel(config),
		tea.WithAltScreen(),
	)

	_, err := program.Run()
	return err
}
