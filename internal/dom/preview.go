package dom

import (
	"fmt"
	"html"
	"strings"

	"github.com/zam-dot/scrollkit/internal/scrollbar"
)

// previewTheme holds the page colors for light and dark mode.
type previewTheme struct {
	background string
	surface    string
	text       string
}

var (
	lightPreview = previewTheme{background: "#f8fafc", surface: "#ffffff", text: "#0f172a"}
	darkPreview  = previewTheme{background: "#0f172a", surface: "#1e293b", text: "#e2e8f0"}
)

// NewPreviewDocument builds the built-in preview page: enough content to
// scroll both the page and an inner box in both directions.
func NewPreviewDocument(dark bool) (*Document, error) {
	return NewDocument(strings.NewReader(PreviewHTML(dark)))
}

// PreviewHTML returns the preview page markup before any styles are applied.
func PreviewHTML(dark bool) string {
	t := lightPreview
	if dark {
		t = darkPreview
	}

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html lang=\"en\"><head><meta charset=\"utf-8\">")
	b.WriteString("<title>Scrollbar preview</title>")
	fmt.Fprintf(&b, `<style>
body { margin: 0; padding: 2rem; font-family: system-ui, sans-serif; background: %s; color: %s; }
.box { height: 16rem; overflow: auto; background: %s; border-radius: 0.75rem; padding: 1rem; margin-bottom: 2rem; }
.wide { width: 160rem; }
</style>`, t.background, t.text, t.surface)
	b.WriteString("</head><body>")
	b.WriteString("<h1>Scrollbar preview</h1>")

	b.WriteString(`<div class="box"><div class="wide">`)
	for i := 1; i <= 30; i++ {
		fmt.Fprintf(&b, "<p>Scrollable line %d. Drag the thumb or hover it to see the hover color.</p>", i)
	}
	b.WriteString("</div></div>")

	b.WriteString("<h2>Presets</h2><ul>")
	for _, p := range scrollbar.Presets() {
		fmt.Fprintf(&b, "<li>%s %s: %s</li>", p.Icon, html.EscapeString(p.Name), html.EscapeString(p.Description))
	}
	b.WriteString("</ul>")

	for i := 1; i <= 40; i++ {
		fmt.Fprintf(&b, "<p>Page paragraph %d keeps the document taller than the window.</p>", i)
	}
	b.WriteString("</body></html>")
	return b.String()
}
