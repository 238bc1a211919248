package core

// Color is the foreground color of a screen cell.
// The zero value renders with the terminal's default color.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorMagenta
	ColorGray
	ColorOrange
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightCyan
	ColorBrightWhite
)

var ansiCodes = [...]string{
	ColorRed:          "1",
	ColorMagenta:      "5",
	ColorGray:         "245",
	ColorOrange:       "208",
	ColorBrightRed:    "9",
	ColorBrightGreen:  "10",
	ColorBrightYellow: "11",
	ColorBrightCyan:   "14",
	ColorBrightWhite:  "15",
}

// ANSI returns the ANSI 256-color code for c.
// It reports false for ColorDefault and unknown values.
func (c Color) ANSI() (string, bool) {
	if int(c) >= len(ansiCodes) || ansiCodes[c] == "" {
		return "", false
	}
	return ansiCodes[c], true
}
