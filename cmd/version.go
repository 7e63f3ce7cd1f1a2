// Package cmd implements the command-line interface for swatch.
package cmd

import (
	"os"
	"runtime"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/swatch-cli/swatch/color"
	"github.com/swatch-cli/swatch/constant"
	"github.com/swatch-cli/swatch/style"
)

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.SetOut(os.Stdout)
	versionCmd.Flags().BoolP("short", "s", false, "Display only the version string without metadata")
}

// versionCmd displays application version and build metadata.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display version and build metadata",
	Long:  "Display the current application version, build revision, platform and related metadata.",
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("short")) {
			cmd.Println(constant.Version)
			return
		}

		rows := []lo.Tuple2[string, string]{
			lo.T2("Version", constant.Version),
			lo.T2("Git Commit", constant.Revision),
			lo.T2("Build Date", strings.TrimSpace(constant.BuiltAt)),
			lo.T2("Built By", constant.BuiltBy),
			lo.T2("Platform", runtime.GOOS+"/"+runtime.GOARCH),
		}

		// stock palette as the banner
		banner := strings.Join(lo.Map(constant.DefaultColors, func(c string, _ int) string {
			return style.Bg(color.New(c))(" ")
		}), "")

		cmd.Println(banner + " " + style.Fg(color.Purple)(constant.Swatch))
		cmd.Println()
		for _, row := range rows {
			label := style.New().Faint(true).Width(16).Render(row.A)
			cmd.Println("  " + label + style.Bold(row.B))
		}
	},
}
