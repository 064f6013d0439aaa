package controller

import m "github.com/mouse-blink/exportgen/internal/model"

// Message types.
type summaryMsg struct {
	summary m.Summary
	err     error
}

type unitsMsg struct {
	units []m.SourceUnit
	err   error
}

type driftMsg struct {
	drift m.Drift
	err   error
}
