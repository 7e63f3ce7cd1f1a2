// Package cmd implements the command-line interface for swatch.
package cmd

import (
	"fmt"
	"os"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/swatch-cli/swatch/color"
	"github.com/swatch-cli/swatch/constant"
	"github.com/swatch-cli/swatch/icon"
	"github.com/swatch-cli/swatch/key"
	"github.com/swatch-cli/swatch/log"
	"github.com/swatch-cli/swatch/style"
	"github.com/swatch-cli/swatch/tui"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, square)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().StringSliceP("colors", "C", []string{}, "Start from these colors instead of the configured palette (#RRGGBB)")
	lo.Must0(viper.BindPFlag(key.PaletteInitial, rootCmd.PersistentFlags().Lookup("colors")))

	rootCmd.PersistentFlags().StringP("title", "t", "", "Header text shown while no color is selected")
	lo.Must0(viper.BindPFlag(key.TUITitle, rootCmd.PersistentFlags().Lookup("title")))

	rootCmd.Flags().BoolP("mini", "m", false, "Use the prompt-driven interface instead of the full-screen one")
}

// rootCmd defines the entry point for the swatch application.
var rootCmd = &cobra.Command{
	Use:   constant.Swatch,
	Short: "A minimal terminal color-palette manager",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiPurple).Render("    - A minimal terminal color-palette manager"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		if lo.Must(cmd.Flags().GetBool("mini")) {
			miniCmd.Run(miniCmd, args)
			return
		}

		store, err := newStore()
		handleErr(err)

		handleErr(tui.Run(store, &tui.Options{
			Title:       viper.GetString(key.TUITitle),
			SwatchWidth: viper.GetInt(key.TUISwatchWidth),
			Spacing:     viper.GetInt(key.TUIItemSpacing),
			ShowHex:     viper.GetBool(key.TUIShowHex),
		}))
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
