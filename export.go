package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/zam-dot/scrollkit/internal/codegen"
	"github.com/zam-dot/scrollkit/internal/scrollbar"
)

// writeExportFile saves the export text for cfg into dir and returns the path
// and byte count.
func writeExportFile(dir string, f codegen.Format, cfg scrollbar.Config) (string, int, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", 0, fmt.Errorf("create export dir: %w", err)
	}
	path := filepath.Join(dir, codegen.FileName(f))
	data := []byte(codegen.Render(f, cfg))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", 0, fmt.Errorf("write %s: %w", path, err)
	}
	return path, len(data), nil
}

// writeExport writes the current format off the update loop.
func (m *model) writeExport() tea.Cmd {
	dir := m.config.ExportDir
	format := m.format
	cfg := m.store.Config()
	return func() tea.Msg {
		path, size, err := writeExportFile(dir, format, cfg)
		return exportedMsg{path: path, size: size, err: err}
	}
}
