// Package controller provides output adapters for reporting export generation.
package controller

import (
	m "github.com/mouse-blink/exportgen/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeGenerate StartMode = iota
	ModeList
	ModeCheck
)

func (s StartMode) String() string {
	switch s {
	case ModeList:
		return "list"
	case ModeCheck:
		return "check"
	default:
		return "generate"
	}
}

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

func newStartConfig(options []StartOption) StartConfig {
	cfg := StartConfig{mode: ModeGenerate}
	for _, option := range options {
		option(&cfg)
	}

	return cfg
}

// WithGenerateMode sets the UI to generation mode.
func WithGenerateMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeGenerate
	}
}

// WithListMode sets the UI to discovery listing mode.
func WithListMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeList
	}
}

// WithCheckMode sets the UI to drift checking mode.
func WithCheckMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeCheck
	}
}

// UI defines how run results are shown to the operator.
// Implementations can use different output methods (simple text, TUI, etc).
// Display methods return the error they were given, marked as reported.
type UI interface {
	Start(options ...StartOption) error
	Close()
	Wait() error // Wait for UI to finish rendering
	DisplaySummary(summary m.Summary, err error) error
	DisplayUnits(units []m.SourceUnit, err error) error
	DisplayDrift(drift m.Drift, err error) error
}
