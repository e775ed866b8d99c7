package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/arthur-debert/editorconfig/pkg/properties"
)

// styledOutput reports whether the output can carry colors: a real
// terminal with a color profile and NO_COLOR unset.
func styledOutput(f *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return false
	}
	return termenv.ColorProfile() != termenv.Ascii
}

// writePlain prints one key=value line per property, in insertion
// order.
func writePlain(w io.Writer, set *properties.Set) {
	for _, key := range set.Keys() {
		v, _ := set.Get(key)
		fmt.Fprintf(w, "%s=%s\n", key, v)
	}
}

// writeTable renders the property set as a bordered two-column table.
func writeTable(w io.Writer, set *properties.Set, styled bool) {
	cell := lipgloss.NewStyle().Padding(0, 1)
	header := cell
	if styled {
		header = cell.Bold(true).Foreground(lipgloss.Color("12"))
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("PROPERTY", "VALUE").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})
	for _, key := range set.Keys() {
		v, _ := set.Get(key)
		t.Row(key, v)
	}
	fmt.Fprintln(w, t.Render())
}
