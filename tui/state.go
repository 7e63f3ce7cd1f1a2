// Package tui provides the primary terminal user interface implementation.
package tui

type state int

const (
	paletteState state = iota + 1
	errorState
)
