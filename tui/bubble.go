// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
	"github.com/swatch-cli/swatch/internal/ui"
	"github.com/swatch-cli/swatch/palette"
	"github.com/swatch-cli/swatch/util"
)

const (
	fallbackWidth  = 80
	fallbackHeight = 24

	// header, blank line
	headerHeight = 2
)

// statefulBubble is the presentation over one palette store.
// It holds no palette state of its own; the list is a projection rebuilt by sync.
type statefulBubble struct {
	state         state
	statesHistory util.Stack[state]

	keymap *statefulKeymap
	store  *palette.Store

	// components
	paletteC list.Model
	helpC    help.Model
	notifier *ui.Model

	title     string
	lastError error

	width, height int
}

// raiseError dispatches an error and transitions the application to the failure view.
func (b *statefulBubble) raiseError(err error) {
	b.lastError = err
	b.newState(errorState)
}

// setState performs a synchronous transition of both the application workflow and its associated keymap.
func (b *statefulBubble) setState(s state) {
	b.state = s
	b.keymap.setState(s)
}

// newState transitions to s, recording the previous state so back can return to it.
func (b *statefulBubble) newState(s state) {
	if b.state == s {
		return
	}

	b.statesHistory.Push(b.state)
	b.setState(s)
}

// previousState restores the application to its immediate predecessor in the navigation stack.
func (b *statefulBubble) previousState() {
	if b.statesHistory.Len() > 0 {
		b.setState(b.statesHistory.Pop())
	}
}

// resize propagates terminal dimension changes to all child component models.
func (b *statefulBubble) resize(width, height int) {
	x, y := paddingStyle.GetFrameSize()

	b.width = width - x
	b.height = height - y

	b.paletteC.SetSize(b.width, util.Max(b.height-headerHeight, 1))
	b.paletteC.Help.Width = b.width
	b.helpC.Width = b.width
}

// sync rebuilds the list from the store. The cursor is kept in place and clamped to the new length.
func (b *statefulBubble) sync() tea.Cmd {
	colors := b.store.Colors()
	items := lo.Map(colors, func(c palette.Color, i int) list.Item {
		return &listItem{color: c, selected: b.store.IsSelected(i)}
	})

	cursor := b.paletteC.Index()
	cmd := b.paletteC.SetItems(items)
	if len(items) > 0 {
		b.paletteC.Select(util.Min(cursor, len(items)-1))
	}

	return cmd
}

// header is recomputed on every render.
func (b *statefulBubble) header() string {
	return b.store.Header(b.title)
}

// newBubble builds the UI model over store.
func newBubble(store *palette.Store, options *Options) *statefulBubble {
	keymap := newStatefulKeymap()
	bubble := statefulBubble{
		statesHistory: util.Stack[state]{},
		keymap:        keymap,
		store:         store,
		notifier:      &ui.Model{},
		title:         options.Title,
	}

	delegate := swatchDelegate{
		width:   options.SwatchWidth,
		spacing: options.Spacing,
		showHex: options.ShowHex,
	}

	listC := list.New([]list.Item{}, delegate, 0, 0)
	listC.KeyMap = keymap.forList()
	listC.AdditionalShortHelpKeys = keymap.ShortHelp
	listC.AdditionalFullHelpKeys = func() []key.Binding {
		return keymap.FullHelp()[0]
	}
	listC.SetShowTitle(false)
	listC.SetFilteringEnabled(false)
	listC.SetShowPagination(true)
	listC.SetStatusBarItemName("color", "colors")
	listC.Styles.NoItems = lipgloss.NewStyle().Faint(true)
	bubble.paletteC = listC

	bubble.helpC = help.New()

	bubble.setState(paletteState)
	bubble.sync()

	if w, h, err := util.TerminalSize(); err == nil {
		bubble.resize(w, h)
	} else {
		bubble.resize(fallbackWidth, fallbackHeight)
	}

	return &bubble
}
