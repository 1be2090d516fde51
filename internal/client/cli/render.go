package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/dmitrijs2005/marketadmin/internal/client/slices/entity"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#AAAAAA")).Width(16)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF6B6B"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#5FD38D"))
	borderStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#444444"))
)

func renderTable(headers []string, rows [][]string) string {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		Rows(rows...).
		String()
}

type field struct {
	label string
	value string
}

func renderFields(title string, fields []field) string {
	lines := make([]string, 0, len(fields)+1)
	lines = append(lines, titleStyle.Render(title))
	for _, f := range fields {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(f.label), f.value))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// renderPage prints a collection as a table with a paging footer.
func renderPage[T entity.Identifiable](title string, c entity.Collection[T], perPage int, headers []string, row func(T) []string) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	if len(c.Items) == 0 {
		b.WriteString(mutedStyle.Render("Nothing found."))
		return b.String()
	}
	rows := make([][]string, 0, len(c.Items))
	for _, it := range c.Items {
		rows = append(rows, row(it))
	}
	b.WriteString(renderTable(headers, rows))
	b.WriteString("\n")
	footer := fmt.Sprintf("Page %d of %d, %d total", c.Query.Page, c.PageCount(perPage), c.TotalCount)
	if c.Stale {
		footer += " (out of date, list again)"
	}
	b.WriteString(mutedStyle.Render(footer))
	return b.String()
}

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
