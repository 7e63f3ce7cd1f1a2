// Package cmd implements the command-line interface for swatch.
package cmd

import (
	"encoding/json"
	"os"
	"reflect"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/swatch-cli/swatch/filesystem"
	"github.com/swatch-cli/swatch/inline"
	"github.com/swatch-cli/swatch/key"
	"github.com/swatch-cli/swatch/util"
)

func init() {
	rootCmd.AddCommand(inlineCmd)

	inlineCmd.Flags().StringArrayP("gesture", "g", []string{}, "A gesture to apply, in order: add, select:N or remove:N")
	inlineCmd.Flags().BoolP("json", "j", false, "Format the command output as a JSON object")
	inlineCmd.Flags().StringP("output", "o", "", "Specify a file path to write the command output")

	_ = inlineCmd.RegisterFlagCompletionFunc("gesture", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"add", "select:", "remove:"}, cobra.ShellCompDirectiveNoSpace | cobra.ShellCompDirectiveNoFileComp
	})
}

// inlineCmd applies scripted gestures to a fresh palette.
var inlineCmd = &cobra.Command{
	Use:   "inline",
	Short: "Apply gestures to a fresh palette without the interactive interface",
	Long: `Start from the configured palette, apply every --gesture in order and print the result.

Gestures:
  add - append a random color
  select:N - select the color at index N (starting from 0); out of range is an error
  remove:N - remove the color at index N; out of range is ignored`,
	Example: "  swatch inline -g add -g select:3 -g remove:0 --json",
	Run: func(cmd *cobra.Command, args []string) {
		gestures, err := inline.ParseGestures(lo.Must(cmd.Flags().GetStringArray("gesture")))
		handleErr(err)

		colors, err := initialColors()
		handleErr(err)

		writer, err := filesystem.Writer(lo.Must(cmd.Flags().GetString("output")))
		handleErr(err)
		defer util.Ignore(writer.Close)

		options := &inline.Options{
			Out:      writer,
			Json:     lo.Must(cmd.Flags().GetBool("json")),
			Title:    viper.GetString(key.TUITitle),
			Initial:  colors,
			Gestures: gestures,
		}

		handleErr(inline.Run(options))
	},
}

func init() {
	inlineCmd.AddCommand(inlineSchemaCmd)
}

// inlineSchemaCmd generates the JSON schema for structured inline mode output.
var inlineSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate the JSON schema for structured inline mode output",
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true
		reflector.Namer = func(t reflect.Type) string {
			name := t.Name()
			switch strings.ToLower(name) {
			case "output", "snapshot", "gesture":
				return t.PkgPath()[strings.LastIndex(t.PkgPath(), "/")+1:] + "." + name
			}

			return name
		}

		handleErr(json.NewEncoder(os.Stdout).Encode(reflector.Reflect(&inline.Output{})))
	},
}
