// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/swatch-cli/swatch/color"
	"github.com/swatch-cli/swatch/icon"
	"github.com/swatch-cli/swatch/palette"
	"github.com/swatch-cli/swatch/style"
)

// listItem implements the list.Item interface for one palette entry.
// Items are rebuilt from the store after every gesture and never mutated.
type listItem struct {
	color    palette.Color
	selected bool
}

// FilterValue returns the string used for list filtering.
func (t *listItem) FilterValue() string {
	return t.color.String()
}

// swatchDelegate renders every item as a filled block of its own color.
type swatchDelegate struct {
	width   int
	spacing int
	showHex bool
}

func (d swatchDelegate) Height() int  { return 1 }
func (d swatchDelegate) Spacing() int { return d.spacing }

func (d swatchDelegate) Update(tea.Msg, *list.Model) tea.Cmd { return nil }

func (d swatchDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	t, ok := item.(*listItem)
	if !ok {
		return
	}

	var label string
	if d.showHex {
		label = t.color.String()
	}

	block := style.Swatch(color.New(t.color.Contrast().String()), color.New(t.color.String()), d.width)(label)

	cursor := "  "
	if index == m.Index() {
		cursor = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(style.AccentColor).
			Render(" ")
	}

	var sb strings.Builder
	sb.WriteString(cursor)
	sb.WriteString(block)
	if t.selected {
		sb.WriteString(" ")
		sb.WriteString(lipgloss.NewStyle().Bold(true).Foreground(style.AccentColor).Render(icon.Get(icon.Mark)))
	}

	_, _ = fmt.Fprint(w, sb.String())
}
