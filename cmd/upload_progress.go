package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

type uploadPercentMsg float64

type uploadDoneMsg struct {
	err error
}

type uploadProgressModel struct {
	bar     progress.Model
	label   string
	start   tea.Cmd
	percent float64
	err     error
	done    bool
}

func newUploadProgressModel(label string, start tea.Cmd) uploadProgressModel {
	return uploadProgressModel{
		bar:   progress.New(progress.WithDefaultGradient(), progress.WithWidth(30)),
		label: label,
		start: start,
	}
}

func (m uploadProgressModel) Init() tea.Cmd {
	return m.start
}

func (m uploadProgressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case uploadPercentMsg:
		m.percent = float64(msg) / 100
		return m, nil
	case uploadDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m uploadProgressModel) View() string {
	if m.done {
		return ""
	}

	return fmt.Sprintf("%s %s\n", m.label, m.bar.ViewAs(m.percent))
}

// runUploadProgress draws a progress bar on output while upload runs. upload
// receives the callback to feed with completed percentages. Without a
// terminal, progress is reported as plain lines at 25% steps.
func runUploadProgress(ctx context.Context, output io.Writer, label string, upload func(context.Context, func(float64)) error) error {
	if !isTerminal(output) {
		next := 25.0
		return upload(ctx, func(percent float64) {
			for percent >= next && next <= 100 {
				_, _ = fmt.Fprintf(output, "%s %3.0f%%\n", label, next)
				next += 25
			}
		})
	}

	var p *tea.Program
	start := func() tea.Msg {
		return uploadDoneMsg{err: upload(ctx, func(percent float64) {
			p.Send(uploadPercentMsg(percent))
		})}
	}

	p = tea.NewProgram(
		newUploadProgressModel(label, start),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(uploadProgressModel)
	if !ok {
		return fmt.Errorf("unexpected final upload model type %T", finalModel)
	}

	return result.err
}
