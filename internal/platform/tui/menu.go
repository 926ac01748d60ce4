package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("11"))

	startStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("10")).
			Padding(0, 3)

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))
)

// StartScreen is shown before the first run of a session.
type StartScreen struct {
	title string
	keys  KeyMap
	help  help.Model
}

// NewStartScreen creates the start screen for a game title.
func NewStartScreen(title string, keys KeyMap) StartScreen {
	h := help.New()
	h.ShowAll = false

	return StartScreen{
		title: title,
		keys:  keys,
		help:  h,
	}
}

// View renders the start screen centered in a width x height area.
func (s StartScreen) View(width, height int) string {
	s.help.Width = width

	var b strings.Builder
	b.WriteString(titleStyle.Render(spaced(s.title)))
	b.WriteString("\n\n")
	b.WriteString(startStyle.Render("START"))
	b.WriteString("\n\n")
	b.WriteString(hintStyle.Render("Jump over barriers, stay under birds"))
	b.WriteString("\n\n")
	b.WriteString(s.help.View(s.keys))

	if width <= 0 || height <= 0 {
		return b.String()
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, strings.Split(b.String(), "\n")...))
}

// spaced upper-cases a title and puts a space between its letters.
func spaced(title string) string {
	runes := []rune(strings.ToUpper(title))
	parts := make([]string, len(runes))
	for i, r := range runes {
		parts[i] = string(r)
	}
	return strings.Join(parts, " ")
}
