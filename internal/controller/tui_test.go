package controller

import (
	"bytes"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/exportgen/internal/model"
)

type quitModel struct{}

func (q quitModel) Init() tea.Cmd { return tea.Quit }
func (q quitModel) Update(_ tea.Msg) (tea.Model, tea.Cmd) {
	return q, tea.Quit
}
func (q quitModel) View() string { return "" }

func waitWithTimeout(t *testing.T, name string, fn func()) {
	t.Helper()

	done := make(chan struct{})
	go func() {
		fn()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("%s timed out", name)
	}
}

func TestTUI_StartWithModel_WaitAndClose(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	require.NoError(t, tui.startWithModel(quitModel{}))

	tui.send(summaryMsg{})

	waitWithTimeout(t, "Wait()", func() { assert.NoError(t, tui.Wait()) })
	waitWithTimeout(t, "Close()", tui.Close)
}

func TestTUI_DisplaySummary_QuitsAfterReport(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	require.NoError(t, tui.Start(WithGenerateMode()))
	require.NoError(t, tui.DisplaySummary(m.Summary{Descriptor: "package.json", Total: 3}, nil))

	waitWithTimeout(t, "Wait()", func() { assert.NoError(t, tui.Wait()) })
	waitWithTimeout(t, "Close()", tui.Close)
}

func TestTUI_Send_And_EnsureStarted_NoPanic(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	// send before start should be no-op
	tui.send(unitsMsg{})

	// ensureStarted should not re-start when already started
	tui.started = true
	tui.ensureStarted()
	assert.Nil(t, tui.program)
}

func TestTUI_Wait_ReturnsRunError(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	require.NoError(t, tui.Start(WithCheckMode()))

	tui.mu.Lock()
	program := tui.program
	tui.mu.Unlock()

	program.Kill()

	var err error

	waitWithTimeout(t, "Wait()", func() { err = tui.Wait() })
	require.ErrorIs(t, err, tea.ErrProgramKilled)
	assert.Contains(t, err.Error(), "terminal UI")
}

func TestTUI_MultipleClose(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	tui.Close()
	tui.Close()

	tui2 := NewTUI(&buf)
	assert.NoError(t, tui2.Wait()) // Wait without start should be no-op
}

func TestTUI_DisplayMethods_NoProgram(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	// Avoid starting Bubble Tea program in tests
	tui.started = true

	assert.NoError(t, tui.DisplaySummary(m.Summary{}, nil))
	assert.NoError(t, tui.DisplayUnits(nil, nil))
	assert.NoError(t, tui.DisplayDrift(m.Drift{}, nil))

	err := tui.DisplaySummary(m.Summary{}, errSentinel)
	require.ErrorIs(t, err, errSentinel)
	assert.True(t, IsReported(err))

	assert.ErrorIs(t, tui.DisplayUnits(nil, errSentinel), errSentinel)
	assert.ErrorIs(t, tui.DisplayDrift(m.Drift{}, errSentinel), errSentinel)
}

var errSentinel = errors.New("boom")
