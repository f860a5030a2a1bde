package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/browser"
	"go.uber.org/zap"

	"github.com/zam-dot/scrollkit/internal/dom"
	"github.com/zam-dot/scrollkit/internal/scrollbar"
)

// previewSink keeps the preview page in sync with the configuration. It is
// the boundary where planned document effects become a file on disk.
type previewSink struct {
	doc    *dom.Document
	path   string
	logger *zap.Logger
}

func newPreviewSink(path string, isDark bool, logger *zap.Logger) (*previewSink, error) {
	doc, err := dom.NewPreviewDocument(isDark)
	if err != nil {
		return nil, err
	}
	return &previewSink{doc: doc, path: path, logger: logger}, nil
}

// Apply is subscribed to the store.
func (p *previewSink) Apply(cfg scrollbar.Config) {
	p.doc.Apply(cfg)
	if err := p.doc.WriteFile(p.path); err != nil {
		p.logger.Warn("could not write preview", zap.String("path", p.path), zap.Error(err))
		return
	}
	p.logger.Debug("preview updated", zap.String("path", p.path), zap.String("visibility", string(cfg.Visibility)))
}

// openInBrowser hands the preview page to the default browser.
func openInBrowser(path string) error {
	return browser.OpenFile(path)
}

// openPreview opens the preview page without blocking the UI.
func (m *model) openPreview() tea.Cmd {
	path := m.previewPath
	return func() tea.Msg {
		return previewOpenedMsg{path: path, err: openInBrowser(path)}
	}
}
