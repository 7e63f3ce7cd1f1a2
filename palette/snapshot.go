package palette

import "github.com/samber/lo"

// Snapshot is a serializable copy of a Store.
type Snapshot struct {
	// Colors in display order.
	Colors []string `json:"colors"`
	// Selected is the selected index, null without a selection.
	Selected *int `json:"selected"`
	// Header is the heading line the presentation shows for this state.
	Header string `json:"header"`
}

// Snapshot captures the current state. title is used for the header when nothing is selected.
func (s *Store) Snapshot(title string) Snapshot {
	return Snapshot{
		Colors:   lo.Map(s.colors, func(c Color, _ int) string { return c.String() }),
		Selected: s.selected.ToPointer(),
		Header:   s.Header(title),
	}
}
