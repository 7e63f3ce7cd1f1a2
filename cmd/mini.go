// Package cmd implements the command-line interface for swatch.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/swatch-cli/swatch/key"
	"github.com/swatch-cli/swatch/mini"
)

func init() {
	rootCmd.AddCommand(miniCmd)
}

// miniCmd launches the prompt-driven interface.
var miniCmd = &cobra.Command{
	Use:   "mini",
	Short: "Manage the palette through a sequence of prompts",
	Long:  `Print the palette and ask for one gesture at a time: select, remove, add or quit.`,
	Run: func(cmd *cobra.Command, args []string) {
		store, err := newStore()
		handleErr(err)

		handleErr(mini.Run(store, &mini.Options{
			Title: viper.GetString(key.TUITitle),
		}))
	},
}
