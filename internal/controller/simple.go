package controller

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/exportgen/internal/model"
)

// SimpleUI implements UI by writing plain text through the cobra command.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(_ ...StartOption) error {
	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {}

// Wait returns immediately; output is written synchronously.
func (s *SimpleUI) Wait() error { return nil }

// DisplaySummary prints the entry count and a bounded preview.
func (s *SimpleUI) DisplaySummary(summary m.Summary, err error) error {
	if err != nil {
		s.errorf("generation failed: %v\n", err)
		return reported(err)
	}

	if summary.DryRun {
		s.printf("Dry run: %s not written\n", summary.Descriptor)
	}

	s.printf("Generated %d exports in %s\n", summary.Total, summary.Descriptor)

	if len(summary.Preview) == 0 {
		return nil
	}

	table, buf := newPlainTable()
	table.SetHeader([]string{"Export", "Target"})

	for _, item := range summary.Preview {
		table.Append([]string{item.Key, previewTarget(item.Entry)})
	}

	table.Render()
	s.printf("\n%s", buf.String())

	if summary.Omitted > 0 {
		s.printf("... and %d more\n", summary.Omitted)
	}

	return nil
}

// DisplayUnits prints every discovered unit.
func (s *SimpleUI) DisplayUnits(units []m.SourceUnit, err error) error {
	if err != nil {
		s.errorf("discovery failed: %v\n", err)
		return reported(err)
	}

	if len(units) == 0 {
		s.printf("No source units found\n")
		return nil
	}

	table, buf := newPlainTable()
	table.SetHeader([]string{"Kind", "Export", "Source"})

	for _, unit := range units {
		table.Append([]string{string(unit.Kind), unit.Key(), unit.SourcePath})
	}

	table.SetFooter([]string{"", "Total Units", fmt.Sprintf("%d", len(units))})
	table.Render()
	s.printf("\n%s", buf.String())

	return nil
}

// DisplayDrift prints the difference between persisted and generated exports.
func (s *SimpleUI) DisplayDrift(drift m.Drift, err error) error {
	if err == nil {
		s.printf("%s exports are up to date\n", drift.Descriptor)
		return nil
	}

	if drift.Empty() {
		s.errorf("check failed: %v\n", err)
		return reported(err)
	}

	s.printf("%s exports are out of date\n", drift.Descriptor)

	for _, key := range drift.Added {
		s.printf("  + %s\n", key)
	}

	for _, key := range drift.Removed {
		s.printf("  - %s\n", key)
	}

	for _, key := range drift.Changed {
		s.printf("  ~ %s\n", key)
	}

	if drift.Reordered {
		s.printf("  entries match but order or formatting differs\n")
	}

	s.printf("Run exportgen to update it.\n")

	return reported(err)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func (s *SimpleUI) errorf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.ErrOrStderr(), format, args...)
}

func newPlainTable() (*tablewriter.Table, *bytes.Buffer) {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)

	return table, &buf
}

func previewTarget(entry m.ExportEntry) string {
	if entry.IsPath() {
		return entry.Path
	}

	return entry.Import
}
