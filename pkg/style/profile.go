package style

import (
	"io"
	"os"
	"strings"

	"github.com/muesli/termenv"
)

// ColorSetting is the user's explicit color choice
type ColorSetting int

const (
	// ColorAuto detects support from the stream and environment
	ColorAuto ColorSetting = iota
	// ColorNever disables color
	ColorNever
	// ColorAlways forces at least basic color, even when piped
	ColorAlways
)

// DetectProfile determines the color profile for output written to w.
//
// NO_COLOR disables color unless ColorAlways is given. A TERM naming a
// 256 color terminal upgrades a basic ANSI profile.
func DetectProfile(w io.Writer, setting ColorSetting) termenv.Profile {
	if setting == ColorNever {
		return termenv.Ascii
	}
	if os.Getenv("NO_COLOR") != "" && setting != ColorAlways {
		return termenv.Ascii
	}

	profile := termenv.NewOutput(w).EnvColorProfile()
	if profile == termenv.Ascii && setting == ColorAlways {
		profile = termenv.ANSI
	}
	if profile == termenv.ANSI && strings.Contains(os.Getenv("TERM"), "256") {
		profile = termenv.ANSI256
	}
	return profile
}

// Has256 reports whether the profile can show the 256 color palette
func Has256(profile termenv.Profile) bool {
	return profile == termenv.ANSI256 || profile == termenv.TrueColor
}
