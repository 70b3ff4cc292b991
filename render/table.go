package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/pairwise/ipo"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	runNoStyle  = cellStyle.Align(lipgloss.Right)
)

// Table renders runs over n parameters as a titled table.
func Table(runs []ipo.Run, n int, l Labeler, opts ...Option) string {
	cfg := tableConfig{title: DefaultTitle, border: BorderNormal}
	for _, opt := range opts {
		opt(&cfg)
	}

	headers, rows := Cells(runs, n, l)
	t := table.New().
		Border(cfg.border.lipgloss()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0:
				return runNoStyle
			default:
				return cellStyle
			}
		})

	var sb strings.Builder
	if cfg.title != "" {
		sb.WriteString(titleStyle.Render(cfg.title))
		sb.WriteByte('\n')
	}
	sb.WriteString(t.String())
	sb.WriteByte('\n')

	return sb.String()
}
