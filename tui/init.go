// Package tui provides the primary terminal user interface implementation.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/swatch-cli/swatch/constant"
)

// Init sets the terminal title. The palette is already in memory, so there is nothing to load.
func (b *statefulBubble) Init() tea.Cmd {
	return tea.SetWindowTitle(constant.Swatch)
}
