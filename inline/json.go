// Package inline provides the implementation for the application's non-interactive, programmable execution mode.
package inline

import (
	"encoding/json"

	"github.com/swatch-cli/swatch/palette"
)

// Output is the JSON document inline mode writes.
type Output struct {
	// Gestures that were applied, in order.
	Gestures []Gesture `json:"gestures"`
	// Palette is the resulting state.
	Palette palette.Snapshot `json:"palette"`
}

func asJson(gestures []Gesture, snapshot palette.Snapshot) ([]byte, error) {
	if gestures == nil {
		gestures = []Gesture{}
	}

	return json.Marshal(&Output{
		Gestures: gestures,
		Palette:  snapshot,
	})
}
