package dom

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/zam-dot/scrollkit/internal/scrollbar"
)

// Document is a parsed HTML page that scrollbar styles are applied to.
type Document struct {
	doc *goquery.Document

	// rootBase is the root inline style as it was before the first Apply,
	// minus any scrollbar properties. Every Apply rebuilds the root style
	// from it, so declarations smuggled in through a value never outlive
	// the configuration that carried them.
	rootBase inlineStyle
	captured bool
}

// NewDocument parses an HTML page. The parser always produces <html>,
// <head> and <body>, even for fragments.
func NewDocument(r io.Reader) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	return &Document{doc: doc}, nil
}

// Apply makes the document reflect cfg. Calling it repeatedly with the same
// configuration leaves the document unchanged after the first call.
func (d *Document) Apply(cfg scrollbar.Config) {
	d.ApplyEffects(Plan(cfg))
}

// ApplyEffects performs a previously planned set of changes.
func (d *Document) ApplyEffects(e Effects) {
	d.doc.Find("#" + ID).Remove()

	root := d.doc.Find("html").First()
	if !d.captured {
		d.rootBase = parseInlineStyle(root.AttrOr("style", "")).without(e.Properties)
		d.captured = true
	}
	style := append(inlineStyle(nil), d.rootBase...)
	for _, p := range e.Properties {
		style = style.set(p.Name, p.Value)
	}
	root.SetAttr("style", style.String())

	d.doc.Find("head").First().AppendNodes(styleNode(e.RuleBlock))

	if e.Overflow != "" {
		body := d.doc.Find("body").First()
		bs := parseInlineStyle(body.AttrOr("style", ""))
		body.SetAttr("style", bs.set("overflow", e.Overflow).String())
	}
}

var closeStyle = regexp.MustCompile(`(?i)</style`)

// styleNode builds the <style> element directly so the rule text is never
// re-parsed as markup. Style content is raw text when rendered, so a closing
// tag inside custom CSS is broken up to keep it inside the element.
func styleNode(css string) *html.Node {
	css = closeStyle.ReplaceAllString(css, `<\/style`)
	n := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Style,
		Data:     "style",
		Attr:     []html.Attribute{{Key: "id", Val: ID}},
	}
	n.AppendChild(&html.Node{Type: html.TextNode, Data: css})
	return n
}

// RootProperty returns a custom property from the root inline style.
func (d *Document) RootProperty(name string) (string, bool) {
	attr, _ := d.doc.Find("html").First().Attr("style")
	return parseInlineStyle(attr).get(name)
}

// BodyOverflow returns the overflow set on the body inline style.
func (d *Document) BodyOverflow() (string, bool) {
	attr, _ := d.doc.Find("body").First().Attr("style")
	return parseInlineStyle(attr).get("overflow")
}

// StyleBlocks returns the text of every injected dynamic style block.
func (d *Document) StyleBlocks() []string {
	var out []string
	d.doc.Find("style").Each(func(_ int, s *goquery.Selection) {
		if id, _ := s.Attr("id"); id == ID {
			out = append(out, s.Text())
		}
	})
	return out
}

// Render writes the document as HTML.
func (d *Document) Render(w io.Writer) error {
	for _, n := range d.doc.Nodes {
		if err := html.Render(w, n); err != nil {
			return err
		}
	}
	return nil
}

func (d *Document) HTML() (string, error) {
	var buf bytes.Buffer
	if err := d.Render(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// WriteFile renders the document to path, creating parent directories.
func (d *Document) WriteFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := d.Render(&buf); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}
