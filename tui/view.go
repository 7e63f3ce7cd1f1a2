// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wrap"
	"github.com/swatch-cli/swatch/icon"
	"github.com/swatch-cli/swatch/style"
)

var paddingStyle = lipgloss.NewStyle().Padding(1, 2)

func (b *statefulBubble) View() string {
	var output string

	switch b.state {
	case paletteState:
		output = b.viewPalette()
	case errorState:
		output = b.viewError()
	default:
		output = "Unknown state"
	}

	return b.notifier.View(output)
}

// viewPalette renders the whole palette from scratch; nothing is cached between frames.
func (b *statefulBubble) viewPalette() string {
	header := b.header()
	if c, ok := b.store.SelectedColor().Get(); ok {
		header = style.Swatch(lipgloss.Color(c.Contrast()), lipgloss.Color(c), lipgloss.Width(header)+2)(header)
	} else {
		header = style.Title(icon.Get(icon.Palette) + " " + header)
	}

	return paddingStyle.Render(header + "\n\n" + b.paletteC.View())
}

func (b *statefulBubble) viewError() string {
	errorStyle := lipgloss.NewStyle().Foreground(style.ErrorColor).Bold(true)
	errorBody := errorStyle.Render(fmt.Sprintf("Error: %v", b.lastError))
	errorMsg := wrap.String(errorBody, b.width)
	return b.renderLines(
		true,
		[]string{
			style.ErrorTitle("Error"),
			"",
			icon.Get(icon.Fail) + " An error occurred:",
			"",
			errorMsg,
		},
	)
}

func (b *statefulBubble) renderLines(addHelp bool, lines []string) string {
	h := len(lines)
	l := strings.Join(lines, "\n")
	if addHelp {
		if b.height > h {
			l += strings.Repeat("\n", b.height-h)
		}
		l += b.helpC.View(b.keymap)
	}

	return paddingStyle.Render(l)
}
