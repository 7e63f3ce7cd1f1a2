// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Palette - these keys shape the palette a session starts with.
const (
	PaletteInitial = "palette.initial"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Terminal User Interface (TUI) - these keys define the interactive environment's styling.
const (
	TUITitle       = "tui.title"
	TUIItemSpacing = "tui.item_spacing"
	TUISwatchWidth = "tui.swatch_width"
	TUIShowHex     = "tui.show_hex"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these settings govern the non-TUI application behavior.
const (
	CliColored = "cli.colored"
)
