// Package dom projects a scrollbar configuration onto an HTML document.
//
// Plan is pure: it describes what should change. Document.Apply performs the
// mutation on a parsed document, which the caller may then write out as the
// live preview page.
package dom

import (
	"fmt"
	"strings"

	"github.com/zam-dot/scrollkit/internal/scrollbar"
)

// ID identifies the single injected style block.
const ID = "dynamic-scrollbar-styles"

// Effects describes every change Apply makes to a document.
type Effects struct {
	// Properties are set on the root element's inline style.
	Properties []scrollbar.Property
	// RuleBlock is the text of the injected <style id=ID> element.
	RuleBlock string
	// Overflow is the body overflow value. Empty leaves the body untouched.
	Overflow string
}

// Plan computes the document effects for cfg.
func Plan(cfg scrollbar.Config) Effects {
	e := cfg.Effective()
	return Effects{
		Properties: e.CustomProperties(),
		RuleBlock:  ruleBlock(e, cfg),
		Overflow:   overflow(cfg.Visibility),
	}
}

func overflow(v scrollbar.Visibility) string {
	switch v {
	case scrollbar.VisibilityVisible:
		return "scroll"
	case scrollbar.VisibilityHidden:
		// Zero width already hides the bars.
		return ""
	default:
		return "auto"
	}
}

func ruleBlock(e scrollbar.Effective, cfg scrollbar.Config) string {
	var b strings.Builder

	b.WriteString("/* WebKit browsers (Chrome, Safari, Edge) */\n")
	fmt.Fprintf(&b, "::-webkit-scrollbar {\n  width: %s !important;\n  height: %s !important;\n}\n\n",
		scrollbar.Px(e.Width), scrollbar.Px(e.Height))
	fmt.Fprintf(&b, "::-webkit-scrollbar-track {\n  background: %s !important;\n  border-radius: %s !important;\n}\n\n",
		e.TrackColor, scrollbar.Px(e.TrackRadius))
	fmt.Fprintf(&b, "::-webkit-scrollbar-thumb {\n  background: %s !important;\n  border-radius: %s !important;\n  transition: background-color 0.2s ease !important;\n}\n\n",
		e.ThumbColor, scrollbar.Px(e.ThumbRadius))
	fmt.Fprintf(&b, "::-webkit-scrollbar-thumb:hover {\n  background: %s !important;\n}\n",
		e.HoverColor)

	if strings.TrimSpace(cfg.CustomCSS) != "" {
		b.WriteString("\n")
		b.WriteString(cfg.CustomCSS)
		b.WriteString("\n")
	}
	return b.String()
}
