// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/swatch-cli/swatch/icon"
	"github.com/swatch-cli/swatch/internal/ui"
)

func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	// Notifications are handled regardless of state.
	if uiCmd := b.notifier.Update(msg); uiCmd != nil {
		cmd = uiCmd
	}

	switch msg := msg.(type) {
	case error:
		b.raiseError(msg)
		return b, cmd
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
	case tea.KeyMsg:
		if key.Matches(msg, b.keymap.forceQuit) {
			return b, tea.Quit
		}
	}

	var stateCmd tea.Cmd
	switch b.state {
	case paletteState:
		stateCmd = b.updatePalette(msg)
	case errorState:
		stateCmd = b.updateError(msg)
	}

	return b, tea.Batch(cmd, stateCmd)
}

// updatePalette routes the three gestures to the store. Each gesture is exactly one store
// operation followed by a full sync; remove and select never share a key.
func (b *statefulBubble) updatePalette(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, b.keymap.add):
			added := b.store.Add()
			cmd := b.sync()
			b.paletteC.Select(b.store.Len() - 1)
			return tea.Batch(cmd, ui.Notify(fmt.Sprintf("%s added %s", icon.Get(icon.Add), added)))
		case key.Matches(msg, b.keymap.remove):
			index := b.paletteC.Index()
			removed, ok := b.store.At(index).Get()
			if !ok || !b.store.Remove(index) {
				return nil
			}
			return tea.Batch(b.sync(), ui.Notify(fmt.Sprintf("%s removed %s", icon.Get(icon.Remove), removed)))
		case key.Matches(msg, b.keymap.selectOne):
			if b.store.Len() == 0 {
				return nil
			}
			if err := b.store.Select(b.paletteC.Index()); err != nil {
				b.raiseError(err)
				return nil
			}
			return b.sync()
		}
	}

	var cmd tea.Cmd
	b.paletteC, cmd = b.paletteC.Update(msg)
	return cmd
}

func (b *statefulBubble) updateError(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, b.keymap.back):
			b.lastError = nil
			b.previousState()
		case key.Matches(msg, b.keymap.quit):
			return tea.Quit
		}
	}

	return nil
}
