package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorBlack
	ColorSalmon
)

// palette holds approximate RGB values for each Color, used to map image
// pixels onto the terminal palette. Index matches the Color value.
var palette = [...][3]uint8{
	ColorDefault:       {0, 0, 0},
	ColorRed:           {205, 0, 0},
	ColorGreen:         {0, 205, 0},
	ColorYellow:        {205, 205, 0},
	ColorBlue:          {0, 0, 238},
	ColorMagenta:       {205, 0, 205},
	ColorCyan:          {0, 205, 205},
	ColorWhite:         {229, 229, 229},
	ColorBrightRed:     {255, 0, 0},
	ColorBrightGreen:   {0, 255, 0},
	ColorBrightYellow:  {255, 255, 0},
	ColorBrightBlue:    {92, 92, 255},
	ColorBrightMagenta: {255, 0, 255},
	ColorBrightCyan:    {0, 255, 255},
	ColorBrightWhite:   {255, 255, 255},
	ColorOrange:        {255, 135, 0},
	ColorGray:          {138, 138, 138},
	ColorBlack:         {18, 18, 18},
	ColorSalmon:        {255, 96, 96},
}

// NearestColor returns the palette color closest to the given RGB value.
// ColorDefault is never returned since it has no fixed appearance.
func NearestColor(r, g, b uint8) Color {
	best := ColorBlack
	bestDist := -1
	for c := ColorRed; int(c) < len(palette); c++ {
		p := palette[c]
		dr := int(r) - int(p[0])
		dg := int(g) - int(p[1])
		db := int(b) - int(p[2])
		dist := dr*dr + dg*dg + db*db
		if bestDist < 0 || dist < bestDist {
			best = c
			bestDist = dist
		}
	}
	return best
}
