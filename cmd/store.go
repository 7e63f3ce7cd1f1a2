// Package cmd implements the command-line interface for swatch.
package cmd

import (
	"fmt"

	"github.com/spf13/viper"
	"github.com/swatch-cli/swatch/key"
	"github.com/swatch-cli/swatch/palette"
)

// initialColors reads the starting palette from configuration.
func initialColors() ([]palette.Color, error) {
	colors, err := palette.ParseColors(viper.GetStringSlice(key.PaletteInitial))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", key.PaletteInitial, err)
	}
	return colors, nil
}

// newStore builds the session's palette from configuration.
func newStore() (*palette.Store, error) {
	colors, err := initialColors()
	if err != nil {
		return nil, err
	}
	return palette.New(palette.WithColors(colors)), nil
}
