// Package tui provides the primary terminal user interface implementation.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/swatch-cli/swatch/palette"
)

// Options encapsulates the runtime configuration for the terminal user interface.
type Options struct {
	// Title is shown in the header while nothing is selected.
	Title string
	// SwatchWidth is the width of one swatch in cells.
	SwatchWidth int
	// Spacing is the number of blank lines between swatches.
	Spacing int
	// ShowHex prints the color value inside its swatch.
	ShowHex bool
}

// Run starts the Bubble Tea program over store and blocks until the user quits.
func Run(store *palette.Store, options *Options) error {
	bubble := newBubble(store, options)
	_, err := tea.NewProgram(bubble, tea.WithAltScreen()).Run()
	return err
}
