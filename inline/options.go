// Package inline provides the implementation for the application's non-interactive, programmable execution mode.
package inline

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/swatch-cli/swatch/palette"
	"github.com/swatch-cli/swatch/util"
)

// Verb names one of the three palette gestures.
type Verb string

const (
	Add    Verb = "add"
	Select Verb = "select"
	Remove Verb = "remove"
)

// Gesture is one scripted user action.
type Gesture struct {
	Verb Verb `json:"verb" jsonschema:"enum=add,enum=select,enum=remove"`
	// Index is the target position for select and remove.
	Index int `json:"index,omitempty"`
}

func (g Gesture) String() string {
	if g.Verb == Add {
		return string(g.Verb)
	}
	return fmt.Sprintf("%s:%d", g.Verb, g.Index)
}

// Options configures one inline run.
type Options struct {
	Out      io.Writer
	Json     bool
	Title    string
	Initial  []palette.Color
	Gestures []Gesture
}

var gesturePattern = regexp.MustCompile(`^(?P<verb>add|select|remove)(?::(?P<index>-?\d+))?$`)

// ParseGesture parses "add", "select:N" or "remove:N".
func ParseGesture(description string) (Gesture, error) {
	groups := util.ReGroups(gesturePattern, strings.ToLower(strings.TrimSpace(description)))
	verb, ok := groups["verb"]
	if !ok {
		return Gesture{}, fmt.Errorf("invalid gesture: %q", description)
	}

	g := Gesture{Verb: Verb(verb)}
	index := groups["index"]

	switch g.Verb {
	case Add:
		if index != "" {
			return Gesture{}, fmt.Errorf("invalid gesture: %q: add takes no index", description)
		}
	default:
		if index == "" {
			return Gesture{}, fmt.Errorf("invalid gesture: %q: %s needs an index, e.g. %s:0", description, verb, verb)
		}
		n, err := strconv.Atoi(index)
		if err != nil {
			return Gesture{}, fmt.Errorf("invalid gesture: %q: %w", description, err)
		}
		g.Index = n
	}

	return g, nil
}

// ParseGestures parses every description, stopping at the first invalid one.
func ParseGestures(descriptions []string) ([]Gesture, error) {
	gestures := make([]Gesture, 0, len(descriptions))
	for _, d := range descriptions {
		g, err := ParseGesture(d)
		if err != nil {
			return nil, err
		}
		gestures = append(gestures, g)
	}
	return gestures, nil
}
