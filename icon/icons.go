package icon

// Icon identifies a UI symbol in the registry.
type Icon int

const (
	Success Icon = iota + 1
	Fail
	Mark
	Add
	Remove
	Palette
)

var icons = map[Icon]*iconDef{
	Success: {
		emoji:   "✅",
		nerd:    "\uf00c",
		plain:   "v",
		kaomoji: "(ᵔ◡ᵔ)",
		squares: "🟩",
	},
	Fail: {
		emoji:   "❌",
		nerd:    "\uf00d",
		plain:   "x",
		kaomoji: "(╯°□°)╯︵ ┻━┻",
		squares: "🟥",
	},
	Mark: {
		emoji:   "🎯",
		nerd:    "\uf192",
		plain:   "*",
		kaomoji: "(◕‿◕✿)",
		squares: "▣",
	},
	Add: {
		emoji:   "➕",
		nerd:    "\uf067",
		plain:   "+",
		kaomoji: "(ﾉ◕ヮ◕)ﾉ",
		squares: "🟦",
	},
	Remove: {
		emoji:   "🗑️",
		nerd:    "\uf1f8",
		plain:   "-",
		kaomoji: "(ノಠ益ಠ)ノ",
		squares: "⬛",
	},
	Palette: {
		emoji:   "🎨",
		nerd:    "\uf1fc",
		plain:   "#",
		kaomoji: "ヽ(°〇°)ﾉ",
		squares: "▦",
	},
}
