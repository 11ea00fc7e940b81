package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
)

var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("76"))
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("204"))
	dimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	boldStyle = lipgloss.NewStyle().Bold(true)
)

func okMsg(format string, a ...any) string {
	return okStyle.Render("✓") + " " + fmt.Sprintf(format, a...)
}

func warnMsg(format string, a ...any) string {
	return warnStyle.Render("!") + " " + fmt.Sprintf(format, a...)
}

func failMsg(format string, a ...any) string {
	return failStyle.Render("✗") + " " + fmt.Sprintf(format, a...)
}

func hint(s string) string {
	return "    " + dimStyle.Render(s)
}

// newTable returns a borderless, left-aligned table writing to w.
func newTable(w io.Writer) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	return table
}
