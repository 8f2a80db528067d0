package main

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

var (
	colorError = lipgloss.Color("1")
	colorMuted = lipgloss.Color("8")

	errorStyle = lipgloss.NewStyle().Bold(true).Foreground(colorError)
	dimStyle   = lipgloss.NewStyle().Foreground(colorMuted)
)

// thinkingMessages are shown next to the spinner while waiting for the API.
var thinkingMessages = []string{
	"Thinking...",
	"Drafting the plugin...",
	"Consulting the Codex...",
	"Brewing a response...",
	"Assembling hooks...",
	"Crunching tokens...",
}

func thinkingTitle() string {
	return thinkingMessages[rand.IntN(len(thinkingMessages))] //nolint:gosec // cosmetic choice
}

// renderMarkdown converts markdown text to terminal-formatted output using
// glamour. Falls back to plain text if rendering fails.
func renderMarkdown(text string, width int) string {
	if width <= 0 {
		width = 100
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return text
	}

	out, err := r.Render(text)
	if err != nil {
		return text
	}

	return strings.TrimRight(out, "\n")
}

func renderError(err error) string {
	return errorStyle.Render("error:") + " " + err.Error()
}

// fmtTokens formats a token count for display, using k/M suffixes for
// readability.
func fmtTokens(n int) string {
	switch {
	case n >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(n)/1_000_000)
	case n >= 1_000:
		return fmt.Sprintf("%.1fk", float64(n)/1_000)
	default:
		return fmt.Sprintf("%d", n)
	}
}
