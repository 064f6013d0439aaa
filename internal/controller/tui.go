package controller

import (
	"fmt"
	"io"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	m "github.com/mouse-blink/exportgen/internal/model"
)

// TUI implements UI with a Bubble Tea program. The program takes no input:
// it shows a spinner until a report arrives, renders it and exits.
type TUI struct {
	output  io.Writer
	program *tea.Program
	done    chan struct{}
	started bool
	runErr  error
	mu      sync.Mutex
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start launches the Bubble Tea program in the background.
func (t *TUI) Start(options ...StartOption) error {
	cfg := newStartConfig(options)
	return t.startWithModel(newReportModel(cfg.mode))
}

func (t *TUI) startWithModel(model tea.Model) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.started {
		return nil
	}

	t.program = tea.NewProgram(model, tea.WithOutput(t.output), tea.WithInput(nil))
	t.done = make(chan struct{})
	t.started = true

	program := t.program
	done := t.done

	go func() {
		defer close(done)

		if _, err := program.Run(); err != nil {
			t.mu.Lock()
			t.runErr = err
			t.mu.Unlock()
		}
	}()

	return nil
}

func (t *TUI) ensureStarted() {
	t.mu.Lock()
	started := t.started
	t.mu.Unlock()

	if !started {
		_ = t.Start()
	}
}

func (t *TUI) send(msg tea.Msg) {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program == nil {
		return
	}

	program.Send(msg)
}

// Close asks the program to stop once pending messages are rendered.
func (t *TUI) Close() {
	t.send(tea.Quit())
}

// Wait blocks until the program has exited and returns the error it
// stopped with, if any.
func (t *TUI) Wait() error {
	t.mu.Lock()
	done := t.done
	t.mu.Unlock()

	if done == nil {
		return nil
	}

	<-done

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.runErr != nil {
		return fmt.Errorf("terminal UI: %w", t.runErr)
	}

	return nil
}

// DisplaySummary renders the generation summary.
func (t *TUI) DisplaySummary(summary m.Summary, err error) error {
	t.ensureStarted()
	t.send(summaryMsg{summary: summary, err: err})

	return reported(err)
}

// DisplayUnits renders the discovered units.
func (t *TUI) DisplayUnits(units []m.SourceUnit, err error) error {
	t.ensureStarted()
	t.send(unitsMsg{units: units, err: err})

	return reported(err)
}

// DisplayDrift renders the drift report.
func (t *TUI) DisplayDrift(drift m.Drift, err error) error {
	t.ensureStarted()
	t.send(driftMsg{drift: drift, err: err})

	return reported(err)
}
