package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the chalkline ASCII art banner with a chalk-dust
// gradient, adapted to the terminal's color profile.
func PrintBanner() {
	p := termenv.ColorProfile()
	lines := []struct {
		text  string
		color string
	}{
		{`       _           _ _    _ _            `, "#f8fafc"},
		{`   ___| |__   __ _| | | _| (_)_ __   ___ `, "#e2e8f0"},
		{`  / __| '_ \ / _' | | |/ / | | '_ \ / _ \`, "#cbd5e1"},
		{` | (__| | | | (_| | |   <| | | | | |  __/`, "#94a3b8"},
		{`  \___|_| |_|\__,_|_|_|\_\_|_|_| |_|\___|`, "#64748b"},
	}

	fmt.Println()
	for _, l := range lines {
		fmt.Println(termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Println()
}
