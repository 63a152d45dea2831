package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorGreen  = lipgloss.Color("35")  // success
	colorYellow = lipgloss.Color("220") // warnings
	colorCyan   = lipgloss.Color("36")  // numbers
	colorDim    = lipgloss.Color("240") // muted keys
)

const (
	iconSuccess = "✓"
	iconWarning = "!"
)

// ui prints status summaries. Styles are bound to a renderer for w so that
// colour detection follows w rather than stdout.
type ui struct {
	w      io.Writer
	styled bool

	success lipgloss.Style
	warning lipgloss.Style
	number  lipgloss.Style
	dim     lipgloss.Style
}

func newUI(w io.Writer, styled bool) *ui {
	r := lipgloss.NewRenderer(w)

	return &ui{
		w:       w,
		styled:  styled,
		success: r.NewStyle().Foreground(colorGreen),
		warning: r.NewStyle().Foreground(colorYellow),
		number:  r.NewStyle().Foreground(colorCyan).Bold(true),
		dim:     r.NewStyle().Foreground(colorDim),
	}
}

func (u *ui) render(s lipgloss.Style, text string) string {
	if !u.styled {
		return text
	}

	return s.Render(text)
}

// printSuccess prints "✓ msg".
func (u *ui) printSuccess(format string, args ...any) {
	fmt.Fprintln(u.w, u.render(u.success, iconSuccess)+" "+fmt.Sprintf(format, args...))
}

// printWarning prints "! msg".
func (u *ui) printWarning(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(u.w, u.render(u.warning, iconWarning)+" "+u.render(u.warning, msg))
}

// printKeyValue prints an indented "key: value" detail line.
func (u *ui) printKeyValue(key string, value any) {
	fmt.Fprintf(u.w, "  %s %s\n", u.render(u.dim, key+":"), u.render(u.number, fmt.Sprint(value)))
}
