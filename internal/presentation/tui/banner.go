package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

var bannerLines = []struct {
	text  string
	color string
}{
	{`     _                         _____`, "#fbbf24"},
	{`    / \   _ __ ___  _ __ ___  |_   _|__  _ __   ___`, "#f59e0b"},
	{`   / _ \ | '__/ _ \| '_ ' _ \ / _' || |/ _ \| '_ \ / _ \`, "#f97316"},
	{`  / ___ \| | | (_) | | | | | | (_| || | (_) | | | |  __/`, "#ef4444"},
	{` /_/   \_\_|  \___/|_| |_| |_|\__,_||_|\___/|_| |_|\___|`, "#e11d48"},
}

// PrintBanner writes the AromaTone banner to w, coloured for the terminal's
// colour profile.
func PrintBanner(w io.Writer) {
	p := termenv.NewOutput(w).ColorProfile()
	fmt.Fprintln(w)
	for _, l := range bannerLines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w)
}

// Accent colours s with the brand orange.
func Accent(w io.Writer, s string) string {
	p := termenv.NewOutput(w).ColorProfile()
	return termenv.String(s).Foreground(p.Color("#f97316")).Bold().String()
}
