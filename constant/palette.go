package constant

// DefaultColors is the palette every session starts with.
var DefaultColors = []string{"#ff5733", "#33ff57", "#5733ff"}

// DefaultTitle is shown in the header while nothing is selected.
const DefaultTitle = "Color Palette Manager"
