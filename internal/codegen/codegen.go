// Package codegen renders a scrollbar configuration as copy-pasteable source.
// Every renderer is a pure function of its input.
package codegen

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/zam-dot/scrollkit/internal/scrollbar"
)

// Stylesheet renders plain CSS using the stored values. The hidden override is
// not collapsed here; the legacy IE hint carries visibility instead.
func Stylesheet(cfg scrollbar.Config) string {
	var b strings.Builder

	b.WriteString("/* Custom Scrollbar Styles */\n")
	fmt.Fprintf(&b, "::-webkit-scrollbar {\n  width: %s;\n  height: %s;\n}\n\n",
		scrollbar.Px(cfg.Width), scrollbar.Px(cfg.Height))
	fmt.Fprintf(&b, "::-webkit-scrollbar-track {\n  background: %s;\n  border-radius: %s;\n}\n\n",
		cfg.TrackColor, scrollbar.Px(cfg.TrackRadius))
	fmt.Fprintf(&b, "::-webkit-scrollbar-thumb {\n  background: %s;\n  border-radius: %s;\n  transition: background-color 0.2s ease;\n}\n\n",
		cfg.ThumbColor, scrollbar.Px(cfg.ThumbRadius))
	fmt.Fprintf(&b, "::-webkit-scrollbar-thumb:hover {\n  background: %s;\n}\n\n",
		cfg.HoverColor)

	overflow := "scrollbar"
	if cfg.Visibility == scrollbar.VisibilityHidden {
		overflow = "none"
	}
	fmt.Fprintf(&b, "/* For Internet Explorer */\nbody {\n  -ms-overflow-style: %s;\n}", overflow)

	writeCustom(&b, cfg.CustomCSS, "/* Custom CSS */")
	return b.String()
}

// variables maps each SCSS variable to its stored value, in declaration order.
func variables(cfg scrollbar.Config) [][2]string {
	return [][2]string{
		{"$scrollbar-width", scrollbar.Px(cfg.Width)},
		{"$scrollbar-height", scrollbar.Px(cfg.Height)},
		{"$scrollbar-thumb-color", cfg.ThumbColor},
		{"$scrollbar-track-color", cfg.TrackColor},
		{"$scrollbar-thumb-hover-color", cfg.HoverColor},
		{"$scrollbar-thumb-radius", scrollbar.Px(cfg.ThumbRadius)},
		{"$scrollbar-track-radius", scrollbar.Px(cfg.TrackRadius)},
	}
}

// VariableStylesheet renders SCSS with the values hoisted into variables.
func VariableStylesheet(cfg scrollbar.Config) string {
	var b strings.Builder

	b.WriteString("// Scrollbar Variables\n")
	for _, v := range variables(cfg) {
		fmt.Fprintf(&b, "%s: %s;\n", v[0], v[1])
	}

	b.WriteString(`
// Scrollbar Styles
::-webkit-scrollbar {
  width: $scrollbar-width;
  height: $scrollbar-height;
}

::-webkit-scrollbar-track {
  background: $scrollbar-track-color;
  border-radius: $scrollbar-track-radius;
}

::-webkit-scrollbar-thumb {
  background: $scrollbar-thumb-color;
  border-radius: $scrollbar-thumb-radius;
  transition: background-color 0.2s ease;

  &:hover {
    background: $scrollbar-thumb-hover-color;
  }
}`)

	writeCustom(&b, cfg.CustomCSS, "// Custom CSS")
	return b.String()
}

// scriptProperties pairs each root custom property with the JS expression
// producing its effective value. The names come from the scrollbar package so
// the script and the live applier always write the same properties.
var scriptProperties = [][2]string{
	{scrollbar.PropWidth, "(hidden ? 0 : config.width) + 'px'"},
	{scrollbar.PropHeight, "(hidden ? 0 : config.height) + 'px'"},
	{scrollbar.PropThumbColor, "hidden ? 'transparent' : config.thumbColor"},
	{scrollbar.PropTrackColor, "hidden ? 'transparent' : config.trackColor"},
	{scrollbar.PropHoverColor, "config.hoverColor"},
	{scrollbar.PropThumbRadius, "(hidden ? 0 : config.thumbRadius) + 'px'"},
	{scrollbar.PropTrackRadius, "(hidden ? 0 : config.trackRadius) + 'px'"},
	{scrollbar.PropVisibility, "config.visibility"},
}

// Script renders a JavaScript snippet holding the configuration object and a
// function that writes the effective custom properties onto the document root.
func Script(cfg scrollbar.Config) string {
	var b strings.Builder

	b.WriteString("// Scrollbar Configuration Object\n")
	fmt.Fprintf(&b, "const scrollbarConfig = %s;\n\n", jsonLiteral(cfg))

	b.WriteString("// Function to apply scrollbar styles\n")
	b.WriteString("function applyScrollbarStyles(config) {\n")
	b.WriteString("  const root = document.documentElement;\n")
	b.WriteString("  const hidden = config.visibility === 'hidden';\n\n")
	for _, p := range scriptProperties {
		fmt.Fprintf(&b, "  root.style.setProperty('%s', %s);\n", p[0], p[1])
	}
	b.WriteString("}\n\n")

	b.WriteString("// Apply the configuration\n")
	b.WriteString("applyScrollbarStyles(scrollbarConfig);")
	return b.String()
}

func jsonLiteral(cfg scrollbar.Config) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	// Config only holds strings and ints; encoding cannot fail.
	_ = enc.Encode(cfg)
	return strings.TrimRight(buf.String(), "\n")
}

func writeCustom(b *strings.Builder, css, header string) {
	if strings.TrimSpace(css) == "" {
		return
	}
	b.WriteString("\n\n")
	b.WriteString(header)
	b.WriteString("\n")
	b.WriteString(css)
}
