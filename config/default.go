// Package config provides centralized management for application settings, defaults, and the Viper-based configuration engine.
package config

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/swatch-cli/swatch/color"
	"github.com/swatch-cli/swatch/constant"
	"github.com/swatch-cli/swatch/key"
	"github.com/swatch-cli/swatch/palette"
	"github.com/swatch-cli/swatch/style"
)

// Field represents a configuration field definition.
type Field struct {
	Key         string
	Value       any
	Description string

	// validate runs on parsed values before they are written. Nil accepts anything of the right type.
	validate func(any) error
}

// Pretty returns a colored, multi-line description of the field for `config info`.
func (f *Field) Pretty() string {
	label := style.Fg(color.Blue)
	lines := []string{
		style.Faint(f.Description),
		label("Key:") + "     " + style.Fg(color.Purple)(f.Key),
		label("Env:") + "     " + f.Env(),
		label("Value:") + "   " + highlight(viper.Get(f.Key)),
		label("Default:") + " " + highlight(f.Value),
		label("Type:") + "    " + f.typeName(),
	}

	return strings.Join(lines, "\n")
}

// Env returns the environment variable name for this field.
func (f *Field) Env() string {
	env := strings.ToUpper(EnvKeyReplacer.Replace(f.Key))
	prefix := strings.ToUpper(constant.Swatch + "_")
	if strings.HasPrefix(env, prefix) {
		return env
	}
	return prefix + env
}

// Parse converts command-line words into a value of the field's type and validates it.
func (f *Field) Parse(raw []string) (any, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("%s: value is required", f.Key)
	}

	var value any
	switch f.Value.(type) {
	case string:
		value = raw[0]
	case int:
		n, err := strconv.Atoi(raw[0])
		if err != nil {
			return nil, fmt.Errorf("%s: invalid integer value: %s", f.Key, raw[0])
		}
		value = n
	case bool:
		b, err := strconv.ParseBool(raw[0])
		if err != nil {
			return nil, fmt.Errorf("%s: invalid boolean value: %s", f.Key, raw[0])
		}
		value = b
	case []string:
		value = lo.FlatMap(raw, func(r string, _ int) []string {
			return lo.Compact(strings.Split(r, ","))
		})
	default:
		return nil, fmt.Errorf("%s: unsupported type %s", f.Key, f.typeName())
	}

	if f.validate != nil {
		if err := f.validate(value); err != nil {
			return nil, fmt.Errorf("%s: %w", f.Key, err)
		}
	}

	return value, nil
}

// MarshalJSON customizes JSON output to include current and default values.
func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key         string `json:"key"`
		Value       any    `json:"value"`
		Default     any    `json:"default"`
		Description string `json:"description"`
		Type        string `json:"type"`
	}{
		Key:         f.Key,
		Value:       viper.Get(f.Key),
		Default:     f.Value,
		Description: f.Description,
		Type:        f.typeName(),
	})
}

// typeName returns the string representation of the field's underlying value type.
func (f *Field) typeName() string {
	switch f.Value.(type) {
	case string:
		return "string"
	case int:
		return "int"
	case bool:
		return "bool"
	case []string:
		return "[]string"
	default:
		return "unknown"
	}
}

// highlight colors a value by type. Hex colors get a small swatch in front.
func highlight(v any) string {
	switch value := v.(type) {
	case bool:
		b := strconv.FormatBool(value)
		return lo.Ternary(value, style.Fg(color.Green)(b), style.Fg(color.Red)(b))
	case string:
		return style.Fg(color.Yellow)(value)
	case []string:
		return strings.Join(lo.Map(value, func(s string, _ int) string {
			if palette.Color(s).Valid() {
				return style.Bg(color.New(s))("  ") + " " + s
			}
			return s
		}), ", ")
	default:
		return fmt.Sprint(value)
	}
}

// Default holds the map of all configuration fields.
var Default = make(map[string]Field)

// EnvExposed holds keys that are bound to environment variables.
var EnvExposed []string

func nonNegative(v any) error {
	if n, ok := v.(int); ok && n < 0 {
		return fmt.Errorf("must not be negative, got %d", n)
	}
	return nil
}

func colorList(v any) error {
	_, err := palette.ParseColors(v.([]string))
	return err
}

func oneOf(options ...string) func(any) error {
	return func(v any) error {
		if s, ok := v.(string); ok && !lo.Contains(options, s) {
			return fmt.Errorf("unknown option %q, expected one of: %s", s, strings.Join(options, ", "))
		}
		return nil
	}
}

func init() {
	register := func(k string, v any, desc string, validate func(any) error) {
		if _, exists := Default[k]; exists {
			panic("Duplicate config key: " + k)
		}
		Default[k] = Field{Key: k, Value: v, Description: desc, validate: validate}
		EnvExposed = append(EnvExposed, k)
	}

	register(key.PaletteInitial, constant.DefaultColors, "Colors every session starts with.\nEach entry must be written as #RRGGBB", colorList)
	register(key.IconsVariant, "plain", "Icons variant.\nAvailable options are: emoji, kaomoji, plain, squares, nerd (nerd-font required)",
		oneOf("emoji", "kaomoji", "plain", "squares", "nerd"))
	register(key.TUITitle, constant.DefaultTitle, "Header text shown while no color is selected", nil)
	register(key.TUIItemSpacing, 0, "Blank lines between swatches in the TUI", nonNegative)
	register(key.TUISwatchWidth, 24, "Width of a single swatch in the TUI", nonNegative)
	register(key.TUIShowHex, true, "Print the hex value inside each swatch", nil)
	register(key.LogsWrite, false, "Write logs", nil)
	register(key.LogsLevel, "info", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace",
		oneOf("panic", "fatal", "error", "warn", "info", "debug", "trace"))
	register(key.LogsJson, false, "Use json format for logs", nil)
	register(key.CliColored, true, "Enable colored CLI output", nil)
}
