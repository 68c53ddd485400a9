package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/felixgeelhaar/specdrift/pkg/domain/drift"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	hintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// renderReport prints one validator run, errors before warnings. Issue order
// within each severity is the validator's fixed check order.
func renderReport(w io.Writer, title string, report *drift.Report) {
	fmt.Fprintln(w, titleStyle.Render(title))
	fmt.Fprintln(w)

	if !report.HasIssues() {
		fmt.Fprintln(w, okStyle.Render("✓ no drift detected"))
		fmt.Fprintln(w)
		return
	}

	for _, issue := range report.Issues {
		if issue.Severity != drift.SeverityError {
			continue
		}
		fmt.Fprintf(w, "  %s %s\n", errorStyle.Render("✗"), issue.Message)
		if issue.Hint != "" {
			fmt.Fprintf(w, "    %s\n", hintStyle.Render(issue.Hint))
		}
	}
	for _, issue := range report.Issues {
		if issue.Severity != drift.SeverityWarning {
			continue
		}
		fmt.Fprintf(w, "  %s %s\n", warningStyle.Render("!"), issue.Message)
		if issue.Hint != "" {
			fmt.Fprintf(w, "    %s\n", hintStyle.Render(issue.Hint))
		}
	}
	fmt.Fprintln(w)
}

// renderSummary prints a static overview table across the executed checks.
func renderSummary(w io.Writer, names []string, reports []*drift.Report) {
	columns := []table.Column{
		{Title: "Check", Width: 14},
		{Title: "UCs", Width: 5},
		{Title: "Features", Width: 8},
		{Title: "Services", Width: 8},
		{Title: "Errors", Width: 6},
		{Title: "Warnings", Width: 8},
	}

	rows := make([]table.Row, 0, len(reports))
	for i, r := range reports {
		rows = append(rows, table.Row{
			names[i],
			fmt.Sprintf("%d", r.Counts.UseCases),
			fmt.Sprintf("%d", r.Counts.Features),
			fmt.Sprintf("%d", r.Counts.Services),
			fmt.Sprintf("%d", r.ErrorCount()),
			fmt.Sprintf("%d", r.WarningCount()),
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Bold(true)
	s.Selected = lipgloss.NewStyle() // Disable selection style for static view
	t.SetStyles(s)

	fmt.Fprintln(w, t.View())
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	fmt.Fprintln(w, string(data))
	return nil
}

func writeYAML(w io.Writer, v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	fmt.Fprint(w, string(data))
	return nil
}

// writeReport dispatches one report to the structured output encoders;
// unrecognized formats fall back to the text renderer via ok=false.
func writeReport(w io.Writer, format string, v any) (bool, error) {
	switch format {
	case "json":
		return true, writeJSON(w, v)
	case "yaml":
		return true, writeYAML(w, v)
	}
	return false, nil
}
