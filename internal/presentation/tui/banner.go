package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the ASCII art banner.
func PrintBanner() {
	p := termenv.ColorProfile()
	lines := []struct {
		text  string
		color string
	}{
		{"                 _         _     ", "#818cf8"},
		{" ___  ___  _ __ | |___   _(_)___ ", "#a78bfa"},
		{"/ __|/ _ \\| '__|| __\\ \\ / / / __|", "#c084fc"},
		{"\\__ \\ (_) | |   | |_ \\ V /| \\__ \\", "#e879f9"},
		{"|___/\\___/|_|    \\__| \\_/ |_|___/", "#f472b6"},
	}

	fmt.Println()
	for _, l := range lines {
		fmt.Println(termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Println()
}
