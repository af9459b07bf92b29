package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// focus represents which panel has keyboard input.
type focus int

const (
	focusEditor focus = iota
	focusResults
)

const defaultQASM = `OPENQASM 2.0;
include "qelib1.inc";

qreg q[2];

h q[0];
cx q[0], q[1];
`

// Model represents the TUI application state.
type Model struct {
	editor    textarea.Model
	focus     focus
	path      string // file the program was loaded from, if any
	shots     int
	state     *StateVector // final state of the last run, nil before first run
	counts    Counts
	runErr    error
	statusMsg string // transient status message (e.g. save confirmation)
	width     int
	height    int
}

func initialModel(path string, shots int) Model {
	ta := textarea.New()
	ta.Placeholder = "Write QASM here..."
	ta.SetWidth(44)
	ta.SetHeight(20)
	ta.ShowLineNumbers = true
	ta.KeyMap.InsertNewline.SetEnabled(true)

	qasm := defaultQASM
	if path != "" {
		if data, err := os.ReadFile(path); err == nil {
			qasm = string(data)
		}
	}
	ta.SetValue(qasm)
	ta.Focus()

	return Model{
		editor: ta,
		focus:  focusEditor,
		path:   path,
		shots:  shots,
	}
}

// run parses the editor contents, simulates, and samples counts.
func (m *Model) run() {
	m.state = nil
	m.counts = nil

	var program Program
	if err := program.ParseQASM(m.editor.Value()); err != nil {
		m.runErr = err
		return
	}
	state, err := program.Run()
	if err != nil {
		m.runErr = err
		return
	}
	m.state = state
	m.counts = GetCounts(state, m.shots)
	m.runErr = nil
	m.statusMsg = fmt.Sprintf("ran %d instruction(s), %d shot(s)", len(program.Instructions), m.shots)
}

func (m *Model) save() {
	if m.path == "" {
		m.statusMsg = "no file to save to (start with a path argument)"
		return
	}
	if err := os.WriteFile(m.path, []byte(m.editor.Value()), 0o644); err != nil {
		m.statusMsg = "save failed: " + err.Error()
		return
	}
	m.statusMsg = "saved " + m.path
}

// ──────────────────────────── Init / Update ────────────────────────────

func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		editorW := max(msg.Width/2-6, 24)
		m.editor.SetWidth(editorW)
		m.editor.SetHeight(max(msg.Height-9, 6))

	case tea.KeyMsg:
		key := msg.String()
		m.statusMsg = ""

		switch key {
		case "ctrl+c":
			return m, tea.Quit
		case "ctrl+r":
			m.run()
			return m, nil
		case "ctrl+s":
			m.save()
			return m, nil
		case "tab":
			if m.focus == focusEditor {
				m.focus = focusResults
				m.editor.Blur()
			} else {
				m.focus = focusEditor
				cmds = append(cmds, m.editor.Focus())
			}
			return m, tea.Batch(cmds...)
		}

		if m.focus == focusResults {
			switch key {
			case "q", "esc":
				return m, tea.Quit
			case "+", "=":
				m.shots *= 2
				return m, nil
			case "-":
				if m.shots > 1 {
					m.shots /= 2
				}
				return m, nil
			}
			return m, nil
		}
	}

	if m.focus == focusEditor {
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// ──────────────────────────── View ────────────────────────────

func (m Model) renderResults() string {
	var sb strings.Builder

	if m.runErr != nil {
		sb.WriteString(errorStyle.Render("error: " + m.runErr.Error()))
		sb.WriteString("\n")
		return sb.String()
	}
	if m.state == nil {
		sb.WriteString(dimStyle.Render("ctrl+r to run the program"))
		sb.WriteString("\n")
		return sb.String()
	}

	sb.WriteString(titleStyle.Render("State"))
	sb.WriteString("\n")
	sb.WriteString(RenderAmplitudes(m.state, amplitudeRows))
	sb.WriteString("\n")
	sb.WriteString(titleStyle.Render("Qubits"))
	sb.WriteString("\n")
	sb.WriteString(RenderMarginals(m.state))
	sb.WriteString("\n")
	sb.WriteString(titleStyle.Render(fmt.Sprintf("Counts (%d shots)", m.shots)))
	sb.WriteString("\n")
	sb.WriteString(RenderHistogram(m.counts, histogramBarW))
	return sb.String()
}

func (m Model) View() string {
	editorPanel := editorStyle
	resultsPanel := resultsStyle
	if m.focus == focusEditor {
		editorPanel = focusedBorderStyle
	} else {
		resultsPanel = focusedBorderStyle
	}

	editor := editorPanel.Render(
		titleStyle.Render("Program") + "\n\n" + m.editor.View())
	results := resultsPanel.Render(m.renderResults())

	controls := controlsStyle.Render(
		"Tab switch  ·  Ctrl+R run  ·  Ctrl+S save  ·  +/- shots  ·  Ctrl+C quit")

	status := ""
	if m.statusMsg != "" {
		status = dimStyle.Render(m.statusMsg)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, editor, results),
		controls,
		status,
	)
}
