package dom

import (
	"strings"

	"github.com/zam-dot/scrollkit/internal/scrollbar"
)

// declaration is one "name: value" pair of an inline style attribute.
type declaration struct {
	name  string
	value string
}

// inlineStyle is an ordered inline style attribute.
type inlineStyle []declaration

func parseInlineStyle(attr string) inlineStyle {
	var out inlineStyle
	for _, part := range strings.Split(attr, ";") {
		name, value, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		out = append(out, declaration{name: name, value: strings.TrimSpace(value)})
	}
	return out
}

func (s inlineStyle) get(name string) (string, bool) {
	for _, d := range s {
		if d.name == name {
			return d.value, true
		}
	}
	return "", false
}

// set replaces name in place, or appends it.
func (s inlineStyle) set(name, value string) inlineStyle {
	for i := range s {
		if s[i].name == name {
			s[i].value = value
			return s
		}
	}
	return append(s, declaration{name: name, value: value})
}

// without drops every declaration named by props.
func (s inlineStyle) without(props []scrollbar.Property) inlineStyle {
	var out inlineStyle
	for _, d := range s {
		owned := false
		for _, p := range props {
			if d.name == p.Name {
				owned = true
				break
			}
		}
		if !owned {
			out = append(out, d)
		}
	}
	return out
}

func (s inlineStyle) String() string {
	parts := make([]string, len(s))
	for i, d := range s {
		parts[i] = d.name + ": " + d.value
	}
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, "; ") + ";"
}
