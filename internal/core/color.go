package core

// Color is a foreground color for a screen cell, mapped to ANSI 256-color
// codes by the terminal renderer.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorOrange
	ColorGray
)

// skinColors is the brick palette, one entry per row skin.
var skinColors = []Color{
	ColorRed,
	ColorOrange,
	ColorYellow,
	ColorGreen,
	ColorCyan,
	ColorBlue,
	ColorMagenta,
}

// SkinColor returns the palette color for a brick skin. Skins wrap around.
func SkinColor(skin int) Color {
	if skin < 0 {
		skin = -skin
	}
	return skinColors[skin%len(skinColors)]
}
