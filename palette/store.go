// Package palette owns the ordered list of colors and the optional selection over it.
//
// A Store is the single source of truth for a session. Presentation layers hold
// a *Store, call one operation per user gesture and then render the whole store again.
// A Store is not safe for concurrent use.
package palette

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/swatch-cli/swatch/constant"
	"github.com/swatch-cli/swatch/log"
)

var (
	// ErrIndexOutOfRange is returned by Select for an index outside the palette.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrInvalidColor is returned by ParseColors for entries that are not #RRGGBB.
	ErrInvalidColor = errors.New("invalid color")
)

// Store holds the palette state.
type Store struct {
	colors   []Color
	selected mo.Option[int]
	intN     func(int) int
}

// Option configures a Store at construction.
type Option func(*Store)

// WithColors replaces the stock initial colors.
func WithColors(colors []Color) Option {
	return func(s *Store) {
		s.colors = append([]Color(nil), colors...)
	}
}

// WithRand makes Add draw digits from r instead of the global source.
func WithRand(r *rand.Rand) Option {
	return func(s *Store) {
		s.intN = r.IntN
	}
}

// New creates a palette holding the stock colors and no selection.
func New(options ...Option) *Store {
	s := &Store{
		colors: lo.Map(constant.DefaultColors, func(c string, _ int) Color {
			return Color(c)
		}),
		selected: mo.None[int](),
		intN:     rand.IntN,
	}

	for _, option := range options {
		option(s)
	}

	return s
}

// Add appends a random color and returns it. The selection is left alone.
func (s *Store) Add() Color {
	c := Random(s.intN)
	s.colors = append(s.colors, c)
	log.Debugf("palette: added %s", c)
	return c
}

// Remove deletes the color at index. An index outside the palette is a no-op and reports false.
//
// The selection follows the color it pointed at: removing the selected color clears it,
// removing an earlier one shifts it down by one.
func (s *Store) Remove(index int) bool {
	if !s.inRange(index) {
		log.Debugf("palette: remove %d ignored, %d colors", index, len(s.colors))
		return false
	}

	removed := s.colors[index]
	s.colors = lo.Filter(s.colors, func(_ Color, i int) bool {
		return i != index
	})

	if selected, ok := s.selected.Get(); ok {
		switch {
		case selected == index:
			s.selected = mo.None[int]()
		case selected > index:
			s.selected = mo.Some(selected - 1)
		}
	}

	log.Debugf("palette: removed %s at %d", removed, index)
	return true
}

// Select marks the color at index. The index is validated rather than trusted:
// out of range returns ErrIndexOutOfRange and the previous selection stays.
func (s *Store) Select(index int) error {
	if !s.inRange(index) {
		return fmt.Errorf("%w: %d (palette has %d colors)", ErrIndexOutOfRange, index, len(s.colors))
	}

	s.selected = mo.Some(index)
	log.Debugf("palette: selected %s at %d", s.colors[index], index)
	return nil
}

// Colors returns a copy of the palette in display order.
func (s *Store) Colors() []Color {
	return append([]Color(nil), s.colors...)
}

// Len returns the number of colors.
func (s *Store) Len() int {
	return len(s.colors)
}

// At returns the color at index, if there is one.
func (s *Store) At(index int) mo.Option[Color] {
	if !s.inRange(index) {
		return mo.None[Color]()
	}
	return mo.Some(s.colors[index])
}

// Selected returns the selected index.
func (s *Store) Selected() mo.Option[int] {
	return s.selected
}

// IsSelected reports whether index is the current selection.
func (s *Store) IsSelected(index int) bool {
	selected, ok := s.selected.Get()
	return ok && selected == index
}

// SelectedColor returns the selected color.
func (s *Store) SelectedColor() mo.Option[Color] {
	selected, ok := s.selected.Get()
	if !ok {
		return mo.None[Color]()
	}
	return s.At(selected)
}

// Header is the heading line: the selected color when there is one, title otherwise.
func (s *Store) Header(title string) string {
	if c, ok := s.SelectedColor().Get(); ok {
		return "Selected Color: " + c.String()
	}
	return title
}

func (s *Store) inRange(index int) bool {
	return index >= 0 && index < len(s.colors)
}
