package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	skerror "github.com/msto63/strkit/foundation/core/error"
)

// Color Palette
var (
	ColorPrimary = lipgloss.Color("#8B5CF6") // Violet
	ColorError   = lipgloss.Color("#EF4444") // Red
	ColorMuted   = lipgloss.Color("#6B7280") // Gray
	ColorText    = lipgloss.Color("#F8FAFC") // Slate 50
)

type styles struct {
	title      lipgloss.Style
	label      lipgloss.Style
	errorLabel lipgloss.Style
	errorCode  lipgloss.Style
	errorText  lipgloss.Style
	muted      lipgloss.Style
}

// newStyles builds styles rendered for w. With color disabled every style
// is empty and renders its input unchanged.
func newStyles(w io.Writer, color bool) styles {
	if !color {
		return styles{}
	}

	r := lipgloss.NewRenderer(w)
	return styles{
		title: r.NewStyle().
			Foreground(ColorPrimary).
			Bold(true),
		label: r.NewStyle().
			Foreground(ColorMuted),
		errorLabel: r.NewStyle().
			Foreground(ColorError).
			Bold(true),
		errorCode: r.NewStyle().
			Foreground(ColorError),
		errorText: r.NewStyle().
			Foreground(ColorText),
		muted: r.NewStyle().
			Foreground(ColorMuted).
			Italic(true),
	}
}

// renderError formats err as "error [CODE]: message" followed by the
// expected value when the error carries one.
func (s styles) renderError(err error) string {
	var b strings.Builder
	b.WriteString(s.errorLabel.Render("error"))

	var e *skerror.Error
	if errors.As(err, &e) {
		b.WriteString(" ")
		b.WriteString(s.errorCode.Render("[" + e.Code().String() + "]"))
	}
	b.WriteString(": ")
	b.WriteString(s.errorText.Render(err.Error()))

	if e != nil {
		for _, key := range []string{"expected", "expected_format"} {
			if expected, ok := e.Detail(key); ok {
				b.WriteString("\n  ")
				b.WriteString(s.muted.Render(fmt.Sprintf("expected: %v", expected)))
				break
			}
		}
	}
	return b.String()
}
