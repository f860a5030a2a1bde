package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/zam-dot/scrollkit/internal/codegen"
	"github.com/zam-dot/scrollkit/internal/scrollbar"
)

// Handle key messages
func (m *model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// Text editors swallow everything except their own commit/cancel keys.
	if m.colorInput.Focused() {
		return m.handleColorInput(msg)
	}
	if m.cssInput.Focused() {
		return m.handleCSSInput(msg)
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "tab":
		m.nextTab()
		return m, nil
	case "shift+tab":
		m.prevTab()
		return m, nil
	case "1", "2", "3", "4":
		m.switchTab(tab(msg.String()[0] - '1'))
		return m, nil
	case "r":
		m.store.ApplyRandom()
		m.setStatus("Randomized")
		return m, nil
	case "ctrl+r":
		m.store.Reset()
		m.setStatus("Reset to default")
		return m, nil
	case "p":
		return m, m.openPreview()
	}

	switch m.activeTab {
	case tabControls:
		return m.handleControlsKey(msg)
	case tabPresets:
		return m.handlePresetsKey(msg)
	case tabCode:
		return m.handleCodeKey(msg)
	case tabStyles:
		return m.handleStylesKey(msg)
	}
	return m, nil
}

// handleControlsKey moves the cursor, adjusts sliders and opens the color editor.
func (m *model) handleControlsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		m.selectField(-1)
	case "down", "j":
		m.selectField(1)
	case "left", "h", "-":
		m.adjust(-1)
	case "right", "l", "+", "=":
		m.adjust(1)
	case "enter", "e":
		if controls[m.field].kind == colorField {
			m.colorInput.SetValue(colorValue(m.store.Config(), m.field))
			m.colorInput.CursorEnd()
			m.colorInput.Focus()
			return m, nil
		}
		m.adjust(1)
	}
	return m, nil
}

// adjust applies a slider step or visibility cycle to the selected field.
func (m *model) adjust(delta int) {
	if p, ok := adjustPatch(m.store.Config(), m.field, delta); ok {
		m.store.Update(p)
	}
}

// handleColorInput commits the color on enter; any text is accepted.
func (m *model) handleColorInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		value := strings.TrimSpace(m.colorInput.Value())
		m.colorInput.Blur()
		if value == "" {
			m.setError("Color cannot be empty")
			return m, nil
		}
		m.store.Update(colorPatch(m.field, value))
		m.setStatus(fmt.Sprintf("%s set to %s", controls[m.field].label, value))
		return m, nil
	case "esc":
		m.colorInput.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.colorInput, cmd = m.colorInput.Update(msg)
	return m, cmd
}

// handlePresetsKey applies the selected preset on enter and lets the list
// handle navigation.
func (m *model) handlePresetsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "enter" {
		if item, ok := m.presetList.SelectedItem().(presetItem); ok {
			if err := m.store.ApplyPreset(item.preset.Name); err != nil {
				m.setError(err.Error())
			} else {
				m.setStatus("Applied preset " + item.preset.Name)
			}
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.presetList, cmd = m.presetList.Update(msg)
	return m, cmd
}

// handleCodeKey switches format, copies or writes the export; other keys
// scroll the code viewport.
func (m *model) handleCodeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "f":
		m.setFormat(nextFormat(m.format))
		return m, nil
	case "y":
		return m, m.copyCode()
	case "w":
		return m, m.writeExport()
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *model) setFormat(f codegen.Format) {
	m.format = f
	m.refreshCode()
}

// nextFormat cycles CSS, SCSS, JS.
func nextFormat(f codegen.Format) codegen.Format {
	for i, candidate := range codegen.Formats {
		if candidate == f {
			return codegen.Formats[(i+1)%len(codegen.Formats)]
		}
	}
	return codegen.CSS
}

// copyCode copies the current export text off the update loop.
func (m *model) copyCode() tea.Cmd {
	text := codegen.Render(m.format, m.store.Config())
	format := m.format
	copier := m.copier
	return func() tea.Msg {
		return copiedMsg{ok: copier.Copy(text), format: format}
	}
}

// handleStylesKey applies tweaks and opens the custom CSS editor.
func (m *model) handleStylesKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if item, ok := m.tweakList.SelectedItem().(tweakItem); ok {
			m.store.Update(item.tweak.Patch)
			m.setStatus("Applied " + item.tweak.Name)
		}
		return m, nil
	case "e":
		m.cssInput.SetValue(m.store.Config().CustomCSS)
		return m, m.cssInput.Focus()
	}
	var cmd tea.Cmd
	m.tweakList, cmd = m.tweakList.Update(msg)
	return m, cmd
}

// handleCSSInput saves on ctrl+s and discards on esc.
func (m *model) handleCSSInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		css := m.cssInput.Value()
		m.cssInput.Blur()
		m.store.Update(scrollbar.Patch{CustomCSS: &css})
		m.setStatus("Custom CSS saved")
		return m, nil
	case "esc":
		m.cssInput.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.cssInput, cmd = m.cssInput.Update(msg)
	return m, cmd
}

// Message handlers
func (m *model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	headerHeight := 4
	footerHeight := 3
	bodyHeight := max(msg.Height-headerHeight-footerHeight, 3)

	m.width = msg.Width
	m.height = msg.Height
	if !m.ready {
		m.viewport = viewport.New(msg.Width-4, bodyHeight)
		m.ready = true
	} else {
		m.viewport.Width = msg.Width - 4
		m.viewport.Height = bodyHeight
	}
	m.presetList.SetSize(msg.Width-4, bodyHeight)
	m.tweakList.SetSize(msg.Width-4, max(bodyHeight-8, 3))
	m.cssInput.SetWidth(max(msg.Width-8, 20))
	m.refreshCode()
	return m, nil
}

// handleExported reports the written file and its size.
func (m *model) handleExported(msg exportedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.setError(fmt.Sprintf("Export failed: %v", msg.err))
		return m, nil
	}
	m.setStatus(fmt.Sprintf("Wrote %s (%s)", msg.path, humanize.Bytes(uint64(msg.size))))
	return m, nil
}
