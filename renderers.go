package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/zam-dot/scrollkit/internal/codegen"
	"github.com/zam-dot/scrollkit/internal/scrollbar"
)

func (m *model) View() string {
	if !m.ready {
		return "\n  Initializing..."
	}

	var body string
	switch m.activeTab {
	case tabControls:
		body = m.renderControls()
	case tabPresets:
		body = m.presetList.View()
	case tabCode:
		body = m.renderCodeTab()
	case tabStyles:
		body = m.renderStyles()
	}

	return m.styles.doc.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderTabBar(),
		"",
		body,
		m.statusView(),
	))
}

func (m *model) renderTabBar() string {
	parts := []string{m.styles.title.Render("scrollkit") + "  "}
	for i, name := range tabNames {
		label := fmt.Sprintf("%d %s", i+1, name)
		if tab(i) == m.activeTab {
			parts = append(parts, m.styles.activeTab.Render(label))
		} else {
			parts = append(parts, m.styles.tab.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *model) renderControls() string {
	cfg := m.store.Config()

	var rows strings.Builder
	for i, c := range controls {
		label := m.styles.label.Render(c.label)
		cursor := "  "
		if i == m.field {
			label = m.styles.selected.Render(c.label)
			cursor = "➤ "
		}

		var value string
		switch c.kind {
		case colorField:
			value = swatch(colorValue(cfg, i))
			if i == m.field && m.colorInput.Focused() {
				value = m.colorInput.View()
			}
		case sizeField:
			value = slider(numberValue(cfg, i), scrollbar.MaxSize)
		case radiusField:
			value = slider(numberValue(cfg, i), scrollbar.MaxRadius)
		case visibilityField:
			value = visibilityChoice(cfg.Visibility)
		}
		rows.WriteString(cursor + label + m.styles.value.Render(value) + "\n")
	}

	help := m.styles.muted.Render("↑/↓ select · ←/→ adjust · enter edit color · r random · ctrl+r reset · p preview")

	left := lipgloss.JoinVertical(lipgloss.Left, rows.String(), help)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, "   ", m.renderMockScrollbar(cfg))
}

// slider draws a numeric value as a bar with its pixel value.
func slider(v, limit int) string {
	cells := 15
	filled := 0
	if limit > 0 {
		filled = min(max(v*cells/limit, 0), cells)
	}
	return strings.Repeat("━", filled) + "●" + strings.Repeat("─", cells-filled) + " " + scrollbar.Px(v)
}

func visibilityChoice(current scrollbar.Visibility) string {
	parts := make([]string, len(scrollbar.Visibilities))
	for i, v := range scrollbar.Visibilities {
		if v == current {
			parts[i] = "[" + string(v) + "]"
		} else {
			parts[i] = " " + string(v) + " "
		}
	}
	return strings.Join(parts, " ")
}

// renderMockScrollbar approximates the effective scrollbar in the terminal:
// a column of track cells with the thumb drawn over the upper part.
func (m *model) renderMockScrollbar(cfg scrollbar.Config) string {
	e := cfg.Effective()
	const rows = 10

	var b strings.Builder
	b.WriteString(m.styles.muted.Render("preview") + "\n")
	if e.Width == 0 {
		b.WriteString(m.styles.muted.Render("(no scrollbar)"))
		return m.styles.panel.Render(b.String())
	}

	cols := max(1, min(e.Width/4, 5))
	track := lipgloss.NewStyle()
	if c, ok := termColor(e.TrackColor); ok {
		track = track.Background(c)
	}
	thumb := lipgloss.NewStyle()
	if c, ok := termColor(e.ThumbColor); ok {
		thumb = thumb.Background(c)
	}

	for row := 0; row < rows; row++ {
		if row >= 1 && row <= 4 {
			b.WriteString(thumb.Render(strings.Repeat("█", cols)))
		} else {
			b.WriteString(track.Render(strings.Repeat(" ", cols)))
		}
		if row < rows-1 {
			b.WriteString("\n")
		}
	}
	return m.styles.panel.Render(b.String())
}

// refreshCode re-renders the export text into the code viewport.
func (m *model) refreshCode() {
	code := codegen.Render(m.format, m.store.Config())
	md := "```" + m.format.Lang() + "\n" + code + "\n```\n"

	styled, err := m.renderWithStyle(md)
	if err != nil {
		m.logger.Debug("glamour render failed, showing plain code")
		styled = code
	}
	m.viewport.SetContent(styled)
}

// renderWithStyle renders markdown with glamour using the active theme.
func (m *model) renderWithStyle(md string) (string, error) {
	style := "light"
	if m.dark {
		style = "dark"
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(max(m.viewport.Width-2, 20)),
	)
	if err != nil {
		return "", err
	}
	return r.Render(md)
}

func (m *model) renderCodeTab() string {
	var formats []string
	for _, f := range codegen.Formats {
		label := f.Label()
		if f == m.format {
			formats = append(formats, m.styles.activeTab.Render(label))
		} else {
			formats = append(formats, m.styles.tab.Render(label))
		}
	}
	header := lipgloss.JoinHorizontal(lipgloss.Top, formats...) + "  " +
		m.styles.muted.Render(codegen.FileName(m.format)+" · f format · y copy · w write file")
	return lipgloss.JoinVertical(lipgloss.Left, header, m.viewport.View())
}

func (m *model) renderStyles() string {
	cfg := m.store.Config()

	editor := m.styles.muted.Render("Custom CSS (E to edit)") + "\n"
	if m.cssInput.Focused() {
		editor += m.cssInput.View() + "\n" + m.styles.muted.Render("ctrl+s save · esc cancel")
	} else if strings.TrimSpace(cfg.CustomCSS) == "" {
		editor += m.styles.muted.Render("(none)")
	} else {
		editor += m.styles.value.Render(cfg.CustomCSS)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.tweakList.View(),
		m.styles.panel.Render(editor),
		m.styles.tip.Render("💡 "+tips[m.tip]),
	)
}

func (m *model) statusView() string {
	text := m.status
	if text == "" {
		cfg := m.store.Config()
		preset := "custom"
		if p, ok := m.store.Preset(); ok {
			preset = p.Name
		}
		text = fmt.Sprintf("%s · %s · %s · tab switch · q quit", preset, cfg.Visibility, m.previewPath)
	}
	style := m.styles.status
	if m.statusErr {
		style = m.styles.statusError
	}
	return style.Width(max(m.width-4, 0)).Render(text)
}
