package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs an ASCII art banner for view-python.
func PrintBanner(version string) {
	p := termenv.ColorProfile()
	// Subtle gradient-like color scheme (indigo to pink)
	s1 := termenv.String("        _                                 ").Foreground(p.Color("#818cf8"))
	s2 := termenv.String(" __   _(_) _____      ______  _   _      ").Foreground(p.Color("#a78bfa"))
	s3 := termenv.String(" \\ \\ / / |/ _ \\ \\ /\\ / /  _ \\| | | |").Foreground(p.Color("#c084fc"))
	s4 := termenv.String("  \\ V /| |  __/\\ V  V /| |_) | |_| |").Foreground(p.Color("#e879f9"))
	s5 := termenv.String("   \\_/ |_|\\___| \\_/\\_/ | .__/ \\__, |").Foreground(p.Color("#f472b6"))
	s6 := termenv.String("                       |_|    |___/ ").Foreground(p.Color("#fb7185"))

	fmt.Println()
	fmt.Println(s1)
	fmt.Println(s2)
	fmt.Println(s3)
	fmt.Println(s4)
	fmt.Println(s5)
	fmt.Println(s6)
	fmt.Printf("  notebook dependency runner %s\n\n", version)
}
