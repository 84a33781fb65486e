package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/philipparndt/cadoverlay/internal/autoposition"
)

var (
	colorCyan  = lipgloss.Color("36")
	colorGreen = lipgloss.Color("35")
	colorGray  = lipgloss.Color("245")
	colorDim   = lipgloss.Color("240")

	styleTitle       = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleDim         = lipgloss.NewStyle().Foreground(colorDim)
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
)

const iconSuccess = "✓"

func printSuccess(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconSuccess.Render(iconSuccess)+" "+fmt.Sprintf(format, args...))
}

// boxKind names the overlay element a box belongs to
func boxKind(b autoposition.Box) string {
	switch {
	case b.Static:
		return "window"
	case !b.Initialized:
		return "pending"
	default:
		return "label"
	}
}

// renderBoxTable renders the engine boxes in registration order
func renderBoxTable(boxes []autoposition.Box) string {
	rows := make([][]string, 0, len(boxes))
	for _, b := range boxes {
		rows = append(rows, []string{
			b.ID,
			boxKind(b),
			fmt.Sprintf("%.1f", b.X),
			fmt.Sprintf("%.1f", b.Y),
			fmt.Sprintf("%.0fx%.0f", b.W, b.H),
			fmt.Sprintf("%.1f, %.1f", b.AnchorX, b.AnchorY),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("ID", "Kind", "X", "Y", "Size", "Anchor").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			base := lipgloss.NewStyle().Padding(0, 1)
			if col == 0 {
				return base.Foreground(colorCyan)
			}
			if row < len(boxes) && boxes[row].Static {
				return base.Foreground(colorGray)
			}
			return base
		})
	return t.Render()
}
