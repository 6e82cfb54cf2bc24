package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type coachingDoneMsg struct {
	err error
}

type coachingSpinnerModel struct {
	spinner  spinner.Model
	label    string
	generate tea.Cmd
	err      error
	done     bool
}

func newCoachingSpinnerModel(label string, generate tea.Cmd) coachingSpinnerModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return coachingSpinnerModel{
		spinner:  s,
		label:    label,
		generate: generate,
	}
}

func (m coachingSpinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.generate)
}

func (m coachingSpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case coachingDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m coachingSpinnerModel) View() string {
	if m.done {
		return ""
	}

	return fmt.Sprintf("%s %s", m.spinner.View(), m.label)
}

func runCoachingSpinner(ctx context.Context, output io.Writer, label string, generate func(context.Context) error) error {
	generateCmd := func() tea.Msg {
		return coachingDoneMsg{err: generate(ctx)}
	}

	p := tea.NewProgram(
		newCoachingSpinnerModel(label, generateCmd),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(coachingSpinnerModel)
	if !ok {
		return fmt.Errorf("unexpected final spinner model type %T", finalModel)
	}

	return result.err
}
