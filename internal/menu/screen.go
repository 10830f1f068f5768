package menu

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/jorgecontrerasostos/unitconv/pkg/convert"
)

// Screen text.
const (
	textWelcome        = "Welcome to the Unit Converter"
	textQuitHint       = "Press 'Q' to quit"
	textSelectOption   = "Select an option"
	textGoBack         = "Go Back"
	textPickConversion = "Pick a conversion"
	textInsertNumber   = "Insert a number:"
	textNotFound       = "Option not found"
)

// Theme styles the menu output. The zero value renders plain text.
type Theme struct {
	Title  lipgloss.Style
	Option lipgloss.Style
	Prompt lipgloss.Style
	Result lipgloss.Style
	Notice lipgloss.Style
}

// PlainTheme returns a theme without any styling.
func PlainTheme() Theme {
	return Theme{
		Title:  lipgloss.NewStyle(),
		Option: lipgloss.NewStyle(),
		Prompt: lipgloss.NewStyle(),
		Result: lipgloss.NewStyle(),
		Notice: lipgloss.NewStyle(),
	}
}

// NewTheme returns the colored theme bound to r. The renderer decides the
// color profile, so a renderer for a pipe or buffer still yields plain text.
func NewTheme(r *lipgloss.Renderer) Theme {
	return Theme{
		Title:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("36")),
		Option: r.NewStyle().Foreground(lipgloss.Color("255")),
		Prompt: r.NewStyle().Foreground(lipgloss.Color("245")),
		Result: r.NewStyle().Bold(true).Foreground(lipgloss.Color("35")),
		Notice: r.NewStyle().Foreground(lipgloss.Color("220")),
	}
}

// screen writes menu text to the output stream.
type screen struct {
	w     io.Writer
	theme Theme
}

func (s screen) line(style lipgloss.Style, text string) {
	fmt.Fprintln(s.w, style.Render(text))
}

func (s screen) option(code, label string) {
	s.line(s.theme.Option, code+". "+label)
}

func (s screen) topMenu() {
	s.line(s.theme.Title, textWelcome)
	for i, c := range convert.Categories() {
		s.option(fmt.Sprint(i+1), c.Title())
	}
	s.line(s.theme.Option, textQuitHint)
	s.line(s.theme.Prompt, textSelectOption)
}

func (s screen) categoryMenu(c convert.Category) {
	dirs := c.Directions()
	for i, d := range dirs {
		s.option(fmt.Sprint(i+1), d.Label())
	}
	s.option(fmt.Sprint(len(dirs)+1), textGoBack)
	s.line(s.theme.Prompt, textPickConversion)
}

func (s screen) numberPrompt() {
	s.line(s.theme.Prompt, textInsertNumber)
}

func (s screen) result(v float64) {
	s.line(s.theme.Result, convert.FormatResult(v))
}

func (s screen) notFound() {
	s.line(s.theme.Notice, textNotFound)
}
