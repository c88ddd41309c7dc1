package core

import "strconv"

// Color is a terminal color for a screen cell, either the foreground or the
// background. The zero value keeps the terminal default.
type Color uint8

// Colors used by the board, the HUD and the tile palette.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorWhite
	ColorBrightWhite
	ColorGray
	ColorDarkGray
	ColorBoard   // empty board background
	ColorTile2   // light ivory
	ColorTile4   // beige
	ColorTile8   // light orange
	ColorTile16  // orange
	ColorTile32  // coral
	ColorTile64  // red orange
	ColorTile128 // pale gold
	ColorTile256 // gold
	ColorTile512 // deep gold
	ColorTile1K  // amber
	ColorTile2K  // bright yellow
	ColorTileMax // anything above 2048
)

// ansi256 maps each Color to its xterm-256 code.
var ansi256 = [...]int{
	ColorBlack:       0,
	ColorRed:         1,
	ColorGreen:       2,
	ColorYellow:      3,
	ColorWhite:       7,
	ColorBrightWhite: 15,
	ColorGray:        245,
	ColorDarkGray:    238,
	ColorBoard:       243,
	ColorTile2:       255,
	ColorTile4:       230,
	ColorTile8:       215,
	ColorTile16:      209,
	ColorTile32:      203,
	ColorTile64:      196,
	ColorTile128:     222,
	ColorTile256:     221,
	ColorTile512:     220,
	ColorTile1K:      214,
	ColorTile2K:      226,
	ColorTileMax:     54,
}

// ANSI returns the xterm-256 code as a string, or "" for ColorDefault.
func (c Color) ANSI() string {
	if c == ColorDefault || int(c) >= len(ansi256) {
		return ""
	}
	return strconv.Itoa(ansi256[c])
}
