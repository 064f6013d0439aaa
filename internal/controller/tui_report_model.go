package controller

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	defaultWidth   = 80
	maxColumnWidth = 60
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Padding(1, 0, 0, 2)
	summaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Padding(0, 0, 1, 2)
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true).Padding(0, 0, 0, 2)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Padding(0, 0, 0, 2)
	addedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	removeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	changeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	boxStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("6")).
			Margin(0, 1).
			Padding(0, 1)
)

// reportModel shows a spinner while the workflow runs and renders a single
// report once it arrives, then quits.
type reportModel struct {
	mode    StartMode
	spinner spinner.Model
	width   int

	received bool
	summary  *summaryMsg
	units    *unitsMsg
	drift    *driftMsg
}

func newReportModel(mode StartMode) reportModel {
	return reportModel{
		mode:    mode,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(accentStyle)),
		width:   defaultWidth,
	}
}

func (r reportModel) Init() tea.Cmd {
	return r.spinner.Tick
}

func (r reportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		r.width = msg.Width
		return r, nil

	case spinner.TickMsg:
		if r.received {
			return r, nil
		}

		var cmd tea.Cmd

		r.spinner, cmd = r.spinner.Update(msg)

		return r, cmd

	case summaryMsg:
		r.summary = &msg
		r.received = true

		return r, tea.Quit

	case unitsMsg:
		r.units = &msg
		r.received = true

		return r, tea.Quit

	case driftMsg:
		r.drift = &msg
		r.received = true

		return r, tea.Quit
	}

	return r, nil
}

func (r reportModel) View() string {
	if !r.received {
		return fmt.Sprintf("  %s %s\n", r.spinner.View(), r.loadingText())
	}

	title := titleStyle.Render("exportgen " + r.mode.String())

	var body string

	switch {
	case r.summary != nil:
		body = r.renderSummary(*r.summary)
	case r.units != nil:
		body = r.renderUnits(*r.units)
	case r.drift != nil:
		body = r.renderDrift(*r.drift)
	}

	return lipgloss.JoinVertical(lipgloss.Left, title, body) + "\n"
}

func (r reportModel) loadingText() string {
	switch r.mode {
	case ModeList:
		return "Scanning source tree…"
	case ModeCheck:
		return "Checking package exports…"
	default:
		return "Generating package exports…"
	}
}

func (r reportModel) renderSummary(msg summaryMsg) string {
	if msg.err != nil {
		return errorStyle.Render(r.fit("generation failed: " + msg.err.Error()))
	}

	s := msg.summary

	headline := fmt.Sprintf("Exports: %s   Descriptor: %s",
		accentStyle.Render(fmt.Sprintf("%d", s.Total)),
		accentStyle.Render(string(s.Descriptor)),
	)
	if s.DryRun {
		headline += "   " + changeStyle.Render("(dry run, not written)")
	}

	parts := []string{summaryStyle.Render(headline)}

	if len(s.Preview) > 0 {
		rows := make([]table.Row, 0, len(s.Preview))
		for _, item := range s.Preview {
			rows = append(rows, table.Row{item.Key, previewTarget(item.Entry)})
		}

		parts = append(parts, boxStyle.Render(renderTable([]string{"Export", "Target"}, rows)))
	}

	if s.Omitted > 0 {
		parts = append(parts, mutedStyle.Render(fmt.Sprintf("… and %d more", s.Omitted)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (r reportModel) renderUnits(msg unitsMsg) string {
	if msg.err != nil {
		return errorStyle.Render(r.fit("discovery failed: " + msg.err.Error()))
	}

	if len(msg.units) == 0 {
		return mutedStyle.Render("No source units found")
	}

	rows := make([]table.Row, 0, len(msg.units))
	for _, unit := range msg.units {
		rows = append(rows, table.Row{string(unit.Kind), unit.Key(), unit.SourcePath})
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		summaryStyle.Render(fmt.Sprintf("Units: %s", accentStyle.Render(fmt.Sprintf("%d", len(msg.units))))),
		boxStyle.Render(renderTable([]string{"Kind", "Export", "Source"}, rows)),
	)
}

func (r reportModel) renderDrift(msg driftMsg) string {
	d := msg.drift

	if msg.err == nil {
		return summaryStyle.Render(fmt.Sprintf("%s exports are up to date", accentStyle.Render(string(d.Descriptor))))
	}

	if d.Empty() {
		return errorStyle.Render(r.fit("check failed: " + msg.err.Error()))
	}

	lines := make([]string, 0, len(d.Added)+len(d.Removed)+len(d.Changed)+1)
	for _, key := range d.Added {
		lines = append(lines, addedStyle.Render("+ "+key))
	}

	for _, key := range d.Removed {
		lines = append(lines, removeStyle.Render("- "+key))
	}

	for _, key := range d.Changed {
		lines = append(lines, changeStyle.Render("~ "+key))
	}

	if d.Reordered {
		lines = append(lines, changeStyle.Render("entries match but order or formatting differs"))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		errorStyle.Render(fmt.Sprintf("%s exports are out of date", d.Descriptor)),
		boxStyle.Render(strings.Join(lines, "\n")),
		mutedStyle.Render("Run exportgen to update it."),
	)
}

func (r reportModel) fit(text string) string {
	return truncateToWidth(text, r.width-4)
}

// renderTable draws a static bubbles table sized to its content.
func renderTable(headers []string, rows []table.Row) string {
	columns := make([]table.Column, len(headers))
	for i, header := range headers {
		width := lipgloss.Width(header)

		for _, row := range rows {
			width = max(width, lipgloss.Width(row[i]))
		}

		columns[i] = table.Column{Title: header, Width: min(width, maxColumnWidth)}
	}

	styles := table.DefaultStyles()
	styles.Header = styles.Header.Foreground(lipgloss.Color("8")).Bold(true)
	styles.Selected = lipgloss.NewStyle()

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
		table.WithFocused(false),
		table.WithStyles(styles),
	)

	return t.View()
}

// truncateToWidth shortens text to width cells, ending with an ellipsis.
func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	if width <= 1 {
		return ellipsis
	}

	maxWidth := width - lipgloss.Width(ellipsis)
	currentWidth := 0

	result := make([]rune, 0, len(text))
	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}
