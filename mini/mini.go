// Package mini implements a lightweight, prompt-driven interface over a palette.
package mini

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/samber/lo"
	"github.com/swatch-cli/swatch/palette"
	"github.com/swatch-cli/swatch/util"
)

var truncateAt = 100

// Options configures a mini session.
type Options struct {
	// Title is shown while nothing is selected.
	Title string
	// Out receives the rendered palette. Defaults to stdout.
	Out io.Writer
}

type mini struct {
	state         state
	statesHistory util.Stack[state]

	store  *palette.Store
	prompt prompter
	title  string
	out    io.Writer
}

func newMini(store *palette.Store, prompt prompter, options *Options) *mini {
	return &mini{
		state:         menuState,
		statesHistory: util.Stack[state]{},
		store:         store,
		prompt:        prompt,
		title:         options.Title,
		out:           lo.Ternary[io.Writer](options.Out != nil, options.Out, os.Stdout),
	}
}

func (m *mini) previousState() {
	if m.statesHistory.Len() > 0 {
		m.setState(m.statesHistory.Pop())
	}
}

func (m *mini) setState(s state) {
	m.state = s
}

func (m *mini) newState(s state) {
	if m.state == s {
		return
	}

	m.statesHistory.Push(m.state)
	m.setState(s)
}

// Run drives store through survey prompts until the user quits.
func Run(store *palette.Store, options *Options) error {
	if w, _, err := util.TerminalSize(); err == nil {
		truncateAt = w
	}

	return newMini(store, surveyPrompter{}, options).loop()
}

func (m *mini) loop() error {
	for m.state != quitState {
		err := m.handleState()
		if errors.Is(err, terminal.InterruptErr) {
			return nil
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (m *mini) handleState() error {
	switch m.state {
	case menuState:
		return m.handleMenuState()
	case selectState:
		return m.handleSelectState()
	case removeState:
		return m.handleRemoveState()
	default:
		return fmt.Errorf("unknown state %d", m.state)
	}
}
