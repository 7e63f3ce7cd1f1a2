// Package inline provides the implementation for the application's non-interactive, programmable execution mode.
package inline

import (
	"fmt"
	"io"
	"os"

	"github.com/swatch-cli/swatch/log"
	"github.com/swatch-cli/swatch/palette"
)

// Run applies the gestures to a fresh palette and writes the result.
func Run(options *Options) error {
	if options.Out == nil {
		options.Out = os.Stdout
	}

	store := palette.New()
	if options.Initial != nil {
		store = palette.New(palette.WithColors(options.Initial))
	}

	for i, g := range options.Gestures {
		if err := apply(store, g); err != nil {
			return fmt.Errorf("gesture %d (%s): %w", i+1, g, err)
		}
	}

	snapshot := store.Snapshot(options.Title)
	if options.Json {
		return writeJson(options.Out, options.Gestures, snapshot)
	}

	return writeText(options.Out, store, options.Title)
}

func apply(store *palette.Store, g Gesture) error {
	switch g.Verb {
	case Add:
		store.Add()
	case Select:
		return store.Select(g.Index)
	case Remove:
		if !store.Remove(g.Index) {
			log.Infof("inline: %s ignored, palette has %d colors", g, store.Len())
		}
	default:
		return fmt.Errorf("unknown verb %q", g.Verb)
	}
	return nil
}

// writeText prints the header and one color per line, with the selected one starred.
func writeText(out io.Writer, store *palette.Store, title string) error {
	if _, err := fmt.Fprintln(out, store.Header(title)); err != nil {
		return err
	}

	for i, c := range store.Colors() {
		mark := " "
		if store.IsSelected(i) {
			mark = "*"
		}
		if _, err := fmt.Fprintf(out, "%s %d %s\n", mark, i, c); err != nil {
			return err
		}
	}

	return nil
}

func writeJson(out io.Writer, gestures []Gesture, snapshot palette.Snapshot) error {
	data, err := asJson(gestures, snapshot)
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}
