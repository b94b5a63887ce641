// Package ui provides the interactive terminal scan view.
package ui

import (
	"context"
	"fmt"
	"time"

	pb "github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pr0nt0-Zz/StorageCleaner/internal/advisor"
	"github.com/pr0nt0-Zz/StorageCleaner/internal/progress"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

type progressMsg progress.Update

type scanDoneMsg struct {
	result *advisor.ScanResult
	err    error
}

type scanModel struct {
	root   string
	sub    <-chan progress.Update
	cancel context.CancelFunc

	bar    pb.Model
	spin   spinner.Model
	update progress.Update

	result *advisor.ScanResult
	err    error
	done   bool
}

func newScanModel(root string, sub <-chan progress.Update, cancel context.CancelFunc) scanModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return scanModel{
		root:   root,
		sub:    sub,
		cancel: cancel,
		bar:    pb.New(pb.WithDefaultGradient()),
		spin:   sp,
		update: progress.Update{StartTime: time.Now()},
	}
}

func (m scanModel) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, waitForUpdate(m.sub))
}

func waitForUpdate(sub <-chan progress.Update) tea.Cmd {
	return func() tea.Msg {
		u, ok := <-sub
		if !ok {
			return nil
		}
		return progressMsg(u)
	}
}

func (m scanModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			// Cancel the pipeline; the done message carries the error
			m.cancel()
			return m, nil
		}

	case progressMsg:
		m.update = progress.Update(msg)
		return m, waitForUpdate(m.sub)

	case scanDoneMsg:
		m.result = msg.result
		m.err = msg.err
		m.done = true
		return m, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.bar.Width = msg.Width - 8
		return m, nil
	}

	return m, nil
}

func (m scanModel) View() string {
	if m.done {
		if m.err != nil {
			return errStyle.Render(fmt.Sprintf("Scan failed: %v", m.err)) + "\n"
		}
		return ""
	}

	phase := string(m.update.Phase)
	if phase == "" {
		phase = "starting"
	}

	return fmt.Sprintf("%s\n\n %s %s\n\n %s\n\n%s\n",
		titleStyle.Render("Scanning "+m.root),
		m.spin.View(),
		dimStyle.Render(phase),
		m.bar.ViewAs(float64(m.update.Percent)/100),
		dimStyle.Render("press q to cancel"))
}

// RunScan runs a scan with a live terminal view. The view owns the
// terminal until the scan completes, fails, or is cancelled with q.
func RunScan(a *advisor.Advisor, root string, opts advisor.Options) (*advisor.ScanResult, error) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reporter := progress.NewReporter()
	opts.Progress = reporter.PercentFunc()
	sub := reporter.Subscribe()

	p := tea.NewProgram(newScanModel(root, sub, cancel))

	go func() {
		result, err := a.Scan(ctx, root, opts)
		p.Send(scanDoneMsg{result: result, err: err})
	}()

	final, err := p.Run()
	if err != nil {
		return nil, err
	}

	m := final.(scanModel)
	return m.result, m.err
}
