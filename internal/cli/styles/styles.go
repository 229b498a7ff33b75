package styles

import (
	"fmt"
	"strings"
	"sync"

	"charm.land/huh/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/glamour"

	"github.com/thenoetrevino/focusflow/internal/config/colors"
	"github.com/thenoetrevino/focusflow/internal/models"
)

var (
	// Card styles
	CardStyle lipgloss.Style
	CardWidth = 80

	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	LabelStyle    lipgloss.Style // For field labels like "List:", "Pomodoros:"
	ValueStyle    lipgloss.Style // For field values
	SectionStyle  lipgloss.Style // For section headers like "Description"

	// Markers
	PinnedStyle    lipgloss.Style
	CompletedStyle lipgloss.Style
	RepeatedStyle  lipgloss.Style

	// Status styles
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style

	scheme colors.ColorScheme
)

func init() {
	Init(*colors.Default())
}

// Init initializes all CLI styles with the given color scheme
func Init(c colors.ColorScheme) {
	c.ApplyDefaults()
	scheme = c

	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(c.Accent)).
		Padding(1, 2).
		Width(CardWidth)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(c.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.Subtle))

	LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(c.Accent))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.Normal))

	SectionStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.Accent)).
		Bold(true).
		MarginTop(1)

	PinnedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(c.Pinned))
	CompletedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(c.Completed))
	RepeatedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(c.Repeated))

	SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(c.Create))

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(c.ErrorFg))

	WarningStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(c.WarningFg))
}

// ColoredText renders text with a hex color
func ColoredText(text, hexColor string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(hexColor)).
		Render(text)
}

// RenderCard wraps content in a styled card border
func RenderCard(content string) string {
	return CardStyle.Render(content)
}

// RenderBoardLine renders "★ Title (type)" for board listings
func RenderBoardLine(b *models.Board) string {
	marker := " "
	if b.IsPinned {
		marker = PinnedStyle.Render("★")
	}
	line := marker + " " + TitleStyle.Render(b.Title)
	if b.Type != "" {
		line += " " + SubtitleStyle.Render("("+b.Type+")")
	}
	return line + "  " + SubtitleStyle.Render(b.ID)
}

// RenderTaskLine renders a checkbox line for a task
func RenderTaskLine(t *models.Task) string {
	box := "[ ]"
	title := ValueStyle.Render(t.Title)
	if t.IsCompleted {
		box = CompletedStyle.Render("[x]")
		title = CompletedStyle.Render(t.Title)
	}
	line := fmt.Sprintf("%s %s", box, title)
	if t.IsRepeated {
		line += " " + RepeatedStyle.Render("↻")
	}
	if t.PomodoroCount > 0 {
		line += " " + SubtitleStyle.Render(fmt.Sprintf("(%d🍅)", t.PomodoroCount))
	}
	return line + "  " + SubtitleStyle.Render(t.ID)
}

// Cache Glamour renderers by width to avoid expensive re-creation
var rendererCache sync.Map // map[int]*glamour.TermRenderer

// getRenderer returns a cached renderer for the given width
func getRenderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := rendererCache.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	rendererCache.Store(width, renderer)
	return renderer, nil
}

// RenderDescription renders a markdown description, falling back to the raw
// text when glamour fails
func RenderDescription(description string, width int) string {
	if description == "" {
		return SubtitleStyle.Italic(true).Render("No description")
	}

	renderer, err := getRenderer(width)
	if err == nil {
		rendered, err := renderer.Render(description)
		if err == nil {
			return strings.TrimSpace(rendered)
		}
	}
	return description
}

// ConfirmTheme returns a huh theme matching the configured color scheme
func ConfirmTheme() huh.Theme {
	c := scheme
	return huh.ThemeFunc(func(isDark bool) *huh.Styles {
		t := huh.ThemeBase(isDark)

		accent := lipgloss.Color(c.Accent)
		subtle := lipgloss.Color(c.Subtle)
		normal := lipgloss.Color(c.Normal)
		danger := lipgloss.Color(c.Delete)

		t.Focused.Base = t.Focused.Base.BorderForeground(accent)
		t.Focused.Title = t.Focused.Title.Foreground(lipgloss.Color(c.Title)).Bold(true)
		t.Focused.Description = t.Focused.Description.Foreground(subtle)
		t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(danger)
		t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(danger)
		t.Focused.FocusedButton = t.Focused.FocusedButton.
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(danger).
			Bold(true)
		t.Focused.BlurredButton = t.Focused.BlurredButton.
			Foreground(normal).
			Background(subtle)

		t.Blurred = t.Focused
		t.Blurred.Base = t.Blurred.Base.BorderStyle(lipgloss.HiddenBorder())
		t.Blurred.Title = t.Blurred.Title.Foreground(subtle)

		return t
	})
}
