package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	wasmcalc "github.com/wippyai/wasm-calculator"
	"github.com/wippyai/wasm-calculator/world"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	funcStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

const (
	inputX = iota
	inputY
)

type interactiveModel struct {
	ctx      context.Context
	calc     wasmcalc.Calculator
	err      error
	backend  string
	result   string
	inputs   []textinput.Model
	focusIdx int
	op       wasmcalc.Op
}

type calcResultMsg struct {
	err    error
	result string
}

func newInteractiveModel(ctx context.Context, calc wasmcalc.Calculator, backend string) *interactiveModel {
	m := &interactiveModel{
		ctx:     ctx,
		calc:    calc,
		backend: backend,
		op:      wasmcalc.OpAdd,
	}

	for i, name := range []string{"x", "y"} {
		ti := textinput.New()
		ti.Prompt = name + ": "
		ti.Placeholder = "u32"
		ti.CharLimit = 10
		ti.Width = 12
		if i == inputX {
			ti.Focus()
		}
		m.inputs = append(m.inputs, ti)
	}

	return m
}

func (m *interactiveModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "tab", "shift+tab":
			step := 1
			if msg.String() == "shift+tab" {
				step = len(m.inputs) - 1
			}
			m.inputs[m.focusIdx].Blur()
			m.focusIdx = (m.focusIdx + step) % len(m.inputs)
			return m, m.inputs[m.focusIdx].Focus()

		case "+":
			m.op = wasmcalc.OpAdd
			return m, nil

		case "-":
			m.op = wasmcalc.OpSub
			return m, nil

		case "enter":
			return m, m.calculate
		}

	case calcResultMsg:
		m.result = msg.result
		m.err = msg.err
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focusIdx], cmd = m.inputs[m.focusIdx].Update(msg)
	return m, cmd
}

func (m *interactiveModel) calculate() tea.Msg {
	x, err := parseOperand("x", m.inputs[inputX].Value())
	if err != nil {
		return calcResultMsg{err: err}
	}
	y, err := parseOperand("y", m.inputs[inputY].Value())
	if err != nil {
		return calcResultMsg{err: err}
	}

	result, err := m.calc.Calculate(m.ctx, m.op, x, y)
	if err != nil {
		return calcResultMsg{err: err}
	}
	return calcResultMsg{result: wasmcalc.Expression(m.op, x, y, result)}
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Calculator"))
	b.WriteString(" ")
	b.WriteString(funcStyle.Render(world.Calculate.String()))
	b.WriteString(" [")
	b.WriteString(m.backend)
	b.WriteString("]\n\n")

	b.WriteString(m.inputs[inputX].View())
	b.WriteString("\n")

	b.WriteString("op: ")
	for i, op := range wasmcalc.Ops() {
		if i > 0 {
			b.WriteString(" ")
		}
		label := fmt.Sprintf(" %s %s ", op.Symbol(), op)
		if op == m.op {
			b.WriteString(selectedStyle.Render(label))
		} else {
			b.WriteString(label)
		}
	}
	b.WriteString("\n")

	b.WriteString(m.inputs[inputY].View())
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
	case m.result != "":
		b.WriteString(resultStyle.Render(m.result))
	}
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("tab next field • +/- operator • enter calculate • esc quit"))

	return b.String()
}

func runInteractive(ctx context.Context, calc wasmcalc.Calculator, backend string) error {
	p := tea.NewProgram(newInteractiveModel(ctx, calc, backend), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
