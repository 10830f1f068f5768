package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/jorgecontrerasostos/unitconv/internal/menu"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan  = lipgloss.Color("36")  // Teal - primary actions
	colorGreen = lipgloss.Color("35")  // Green - results
	colorRed   = lipgloss.Color("167") // Soft red - errors
	colorWhite = lipgloss.Color("255") // Bright white - values
	colorGray  = lipgloss.Color("245") // Gray - secondary text
	colorDim   = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Styles
// =============================================================================

// styles is the set of styles used by the non-interactive commands. Styles
// are bound to a renderer for the destination writer, so output to a pipe
// stays free of escape codes.
type styles struct {
	dim    lipgloss.Style
	value  lipgloss.Style
	number lipgloss.Style
	header lipgloss.Style
	border lipgloss.Style
}

func newStyles(w io.Writer, noColor bool) styles {
	if noColor {
		plain := lipgloss.NewStyle()
		return styles{plain, plain, plain, plain, plain}
	}
	r := lipgloss.NewRenderer(w)
	return styles{
		dim:    r.NewStyle().Foreground(colorDim),
		value:  r.NewStyle().Foreground(colorWhite),
		number: r.NewStyle().Bold(true).Foreground(colorGreen),
		header: r.NewStyle().Bold(true).Foreground(colorGray),
		border: r.NewStyle().Foreground(colorDim),
	}
}

// styles returns the styles for writing to w.
func (c *CLI) styles(w io.Writer) styles {
	return newStyles(w, c.noColor)
}

// menuTheme returns the theme for the line-based menu writing to w.
func (c *CLI) menuTheme(w io.Writer) menu.Theme {
	if c.noColor {
		return menu.PlainTheme()
	}
	return menu.NewTheme(lipgloss.NewRenderer(w))
}

// =============================================================================
// Icons
// =============================================================================

const (
	iconError  = "✗"
	iconArrow  = "→"
	iconCursor = "▸ "
)

// =============================================================================
// Output
// =============================================================================

// printResult prints a converted value, optionally with units.
func printResult(w io.Writer, st styles, value, result, from, to string, withUnits bool) {
	if !withUnits {
		fmt.Fprintln(w, st.number.Render(result))
		return
	}
	fmt.Fprintf(w, "%s %s %s %s %s\n",
		st.value.Render(value), st.dim.Render(from),
		st.dim.Render(iconArrow),
		st.number.Render(result), st.dim.Render(to))
}

// =============================================================================
// Terminal Detection
// =============================================================================

// isTerminal reports whether r is an interactive terminal.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
