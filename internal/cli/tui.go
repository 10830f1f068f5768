package cli

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jorgecontrerasostos/unitconv/pkg/convert"
	"github.com/jorgecontrerasostos/unitconv/pkg/errors"
	"github.com/jorgecontrerasostos/unitconv/pkg/observability"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	listTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listResultStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorGreen)
	listErrorStyle    = lipgloss.NewStyle().Foreground(colorRed)
)

// maxValueLength caps the number being typed.
const maxValueLength = 32

// =============================================================================
// PickModel - full-screen menu
// =============================================================================

// PickStage is the screen the picker is showing.
type PickStage int

const (
	StageCategory PickStage = iota
	StageDirection
	StageValue
)

// PickModel is the bubbletea model behind the pick command. It walks the
// same menus as the line-based controller: category, then direction, then a
// number, then back to the categories.
type PickModel struct {
	Stage     PickStage
	Cursor    int
	Category  convert.Category
	Direction convert.Direction
	Input     string
	Result    string
	Err       string
	Quitting  bool

	ctx context.Context
}

// NewPickModel creates a picker positioned on the category list.
func NewPickModel(ctx context.Context) PickModel {
	return PickModel{ctx: ctx}
}

func (m PickModel) Init() tea.Cmd {
	return nil
}

// items returns the labels of the list on the current stage.
func (m PickModel) items() []string {
	switch m.Stage {
	case StageCategory:
		var labels []string
		for _, c := range convert.Categories() {
			labels = append(labels, c.Title())
		}
		return labels
	case StageDirection:
		var labels []string
		for _, d := range m.Category.Directions() {
			labels = append(labels, d.Label())
		}
		return append(labels, "Go Back")
	default:
		return nil
	}
}

func (m PickModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if key.Type == tea.KeyCtrlC {
		m.Quitting = true
		return m, tea.Quit
	}

	if m.Stage == StageValue {
		return m.updateValue(key)
	}
	return m.updateList(key)
}

func (m PickModel) updateList(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := m.items()

	switch key.String() {
	case "q", "Q":
		if m.Stage == StageCategory {
			m.Quitting = true
			return m, tea.Quit
		}
	case "esc":
		if m.Stage == StageCategory {
			m.Quitting = true
			return m, tea.Quit
		}
		m.Stage, m.Cursor = StageCategory, 0
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(items)-1 {
			m.Cursor++
		}
	case "enter":
		return m.choose(), nil
	}
	return m, nil
}

// choose acts on the highlighted list entry.
func (m PickModel) choose() PickModel {
	switch m.Stage {
	case StageCategory:
		m.Category = convert.Categories()[m.Cursor]
		m.Stage, m.Cursor = StageDirection, 0
	case StageDirection:
		dirs := m.Category.Directions()
		if m.Cursor >= len(dirs) {
			m.Stage, m.Cursor = StageCategory, 0
			return m
		}
		m.Direction = dirs[m.Cursor]
		m.Stage, m.Input = StageValue, ""
	}
	return m
}

func (m PickModel) updateValue(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.Type {
	case tea.KeyEsc:
		m.Stage, m.Cursor = StageDirection, 0
	case tea.KeyBackspace:
		if r := []rune(m.Input); len(r) > 0 {
			m.Input = string(r[:len(r)-1])
		}
	case tea.KeyEnter:
		m.submit()
	case tea.KeyRunes, tea.KeySpace:
		for _, r := range key.Runes {
			if unicode.IsPrint(r) && len(m.Input) < maxValueLength {
				m.Input += string(r)
			}
		}
	}
	return m, nil
}

// submit converts the typed value. Either way the picker returns to the
// category list, as the line-based menu does.
func (m *PickModel) submit() {
	ctx := m.ctx
	if ctx == nil {
		ctx = context.Background()
	}

	m.Result, m.Err = "", ""
	conv, err := convert.Lookup(m.Category, m.Direction)
	if err == nil {
		start := time.Now()
		var v float64
		if v, err = convert.ParseValue(m.Input); err == nil {
			m.Result = fmt.Sprintf("%s %s %s %s %s",
				convert.FormatResult(v), conv.From, iconArrow, convert.FormatResult(conv.Apply(v)), conv.To)
			observability.Conversion().OnConversion(ctx, m.Category.String(), m.Direction.String(), time.Since(start))
		} else {
			observability.Conversion().OnInvalidInput(ctx, observability.InputKindNumber, m.Input)
		}
	}
	if err != nil {
		m.Err = errors.UserMessage(err)
	}

	m.Stage, m.Cursor, m.Input = StageCategory, 0, ""
}

func (m PickModel) View() string {
	if m.Quitting {
		return ""
	}

	var b strings.Builder

	switch m.Stage {
	case StageCategory:
		b.WriteString(listTitleStyle.Render("Unit Converter"))
	case StageDirection:
		b.WriteString(listTitleStyle.Render(m.Category.Title()))
	case StageValue:
		b.WriteString(listTitleStyle.Render(m.Category.Title() + " · " + m.Direction.Label()))
	}
	b.WriteString("\n")

	if m.Stage == StageValue {
		b.WriteString(listDimStyle.Render("type a number  ⏎ convert  esc back"))
		b.WriteString("\n\n")
		b.WriteString(listNormalStyle.Render("Insert a number: " + m.Input + "█"))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	for i, item := range m.items() {
		cursor := "  "
		if i == m.Cursor {
			cursor = iconCursor
		}
		line := cursor + item
		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	if m.Result != "" {
		b.WriteString("\n")
		b.WriteString(listResultStyle.Render(m.Result))
		b.WriteString("\n")
	}
	if m.Err != "" {
		b.WriteString("\n")
		b.WriteString(listErrorStyle.Render(iconError + " " + m.Err))
		b.WriteString("\n")
	}

	return b.String()
}
