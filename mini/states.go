// Package mini implements a lightweight, prompt-driven interface over a palette.
package mini

import (
	"fmt"

	"github.com/swatch-cli/swatch/color"
	"github.com/swatch-cli/swatch/icon"
	"github.com/swatch-cli/swatch/style"
	"github.com/swatch-cli/swatch/util"
)

type state int

const (
	menuState state = iota + 1
	selectState
	removeState
	quitState
)

func (m *mini) handleMenuState() error {
	m.render()

	a, err := m.prompt.next(m.store.Len() > 0)
	if err != nil {
		return err
	}

	switch a {
	case actionSelect:
		m.newState(selectState)
	case actionRemove:
		m.newState(removeState)
	case actionAdd:
		added := m.store.Add()
		m.success(fmt.Sprintf("added %s", added))
	case actionQuit:
		m.newState(quitState)
	}

	return nil
}

func (m *mini) handleSelectState() error {
	index, ok, err := m.prompt.pick("Select which color?", m.store.Colors())
	if err != nil {
		return err
	}

	if ok {
		if err := m.store.Select(index); err != nil {
			return err
		}
	}

	m.previousState()
	return nil
}

func (m *mini) handleRemoveState() error {
	index, ok, err := m.prompt.pick("Remove which color?", m.store.Colors())
	if err != nil {
		return err
	}

	if ok {
		removed := m.store.At(index)
		if m.store.Remove(index) {
			m.success(fmt.Sprintf("removed %s", removed.MustGet()))
		}
	}

	m.previousState()
	return nil
}

// render prints the header and then every color, marking the selected one.
func (m *mini) render() {
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, style.Title(m.store.Header(m.title)))

	colors := m.store.Colors()
	for i, c := range colors {
		line := fmt.Sprintf("%2d %s %s", i, swatch(c), c)
		if m.store.IsSelected(i) {
			line += " " + style.Fg(color.Orange)(icon.Get(icon.Mark))
		}
		fmt.Fprintln(m.out, fit(line))
	}

	fmt.Fprintln(m.out, style.Faint(util.Quantify(len(colors), "color", "colors")))
}

func (m *mini) success(msg string) {
	fmt.Fprintln(m.out, style.Fg(color.Green)(icon.Get(icon.Success)+" "+msg))
}
