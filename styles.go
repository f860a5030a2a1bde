package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
	dark "github.com/thiagokokada/dark-mode-go"

	"github.com/zam-dot/scrollkit/internal/scrollbar"
)

// ============================================================================
// THEME
// ============================================================================

// resolveDark turns the theme setting into a dark/light flag. "auto" asks the
// OS first and falls back to probing the terminal background.
func resolveDark(theme string) bool {
	switch theme {
	case "dark":
		return true
	case "light":
		return false
	}
	if isDark, err := dark.IsDarkMode(); err == nil {
		return isDark
	}
	return lipgloss.HasDarkBackground()
}

// ============================================================================
// STYLES
// ============================================================================

// styles groups every lipgloss style the views use. Colors are picked once
// from the resolved theme.
type styles struct {
	// doc provides overall page margins around the whole view
	doc lipgloss.Style

	// title is the app name at the left of the tab bar
	title lipgloss.Style

	// tab and activeTab draw the tab bar and the format switcher on the Code
	// tab; the active one gets the accent background
	tab       lipgloss.Style
	activeTab lipgloss.Style

	// label is a control name on the Controls tab, fixed width so values line up
	label lipgloss.Style

	// selected replaces label on the row under the cursor
	selected lipgloss.Style

	// value styles slider bars, swatches and custom CSS text
	value lipgloss.Style

	// muted is for help lines and secondary text
	muted lipgloss.Style

	// tip shows the rotating tip under the Styles tab
	tip lipgloss.Style

	// status and statusError style the bottom line; errors switch to red text
	status      lipgloss.Style
	statusError lipgloss.Style

	// panel frames the mock scrollbar and the custom CSS editor
	panel lipgloss.Style
}

func newStyles(isDark bool) styles {
	accent := lipgloss.Color("63")  // Purple
	text := lipgloss.Color("236")   // Near black
	muted := lipgloss.Color("244")  // Gray
	statusBg := lipgloss.Color("254")
	if isDark {
		text = lipgloss.Color("252") // Light gray
		muted = lipgloss.Color("241")
		statusBg = lipgloss.Color("236")
	}

	return styles{
		doc:   lipgloss.NewStyle().Margin(1, 2),
		title: lipgloss.NewStyle().Bold(true).Foreground(accent),
		tab: lipgloss.NewStyle().
			Foreground(muted).
			Padding(0, 2),
		activeTab: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("255")).
			Background(accent).
			Padding(0, 2),
		label:       lipgloss.NewStyle().Foreground(text).Width(16),
		selected:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")).Width(16),
		value:       lipgloss.NewStyle().Foreground(text),
		muted:       lipgloss.NewStyle().Foreground(muted),
		tip:         lipgloss.NewStyle().Italic(true).Foreground(muted).MarginTop(1),
		status:      lipgloss.NewStyle().Foreground(muted).Background(statusBg).Padding(0, 1),
		statusError: lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Background(statusBg).Padding(0, 1),
		panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(muted).
			Padding(0, 1),
	}
}

// ============================================================================
// CSS COLOR -> TERMINAL COLOR
// ============================================================================

// termColor maps a CSS color string to a terminal color. Only hex colors are
// understood; an 8 digit hex keeps its RGB part. Named colors, rgba() and
// transparent report false and are drawn without a background.
func termColor(css string) (lipgloss.Color, bool) {
	css = strings.TrimSpace(css)
	if len(css) == 9 && strings.HasPrefix(css, "#") {
		css = css[:7]
	}
	if !strings.HasPrefix(css, "#") {
		return "", false
	}
	c, err := colorful.Hex(css)
	if err != nil {
		return "", false
	}
	return lipgloss.Color(c.Hex()), true
}

// swatch renders a small color sample followed by the raw value. Six digit
// hex colors also show their rgba() form.
func swatch(css string) string {
	block := "   "
	if c, ok := termColor(css); ok {
		block = lipgloss.NewStyle().Background(c).Render(block)
	} else {
		block = lipgloss.NewStyle().Faint(true).Render("░░░")
	}
	out := block + " " + css
	if rgba := scrollbar.HexToRGBA(css, 1); rgba != css {
		out += "  " + lipgloss.NewStyle().Faint(true).Render(rgba)
	}
	return out
}
