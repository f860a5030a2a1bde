package codegen

import (
	"fmt"
	"strings"

	"github.com/zam-dot/scrollkit/internal/scrollbar"
)

// Format selects the export target.
type Format string

const (
	CSS  Format = "css"
	SCSS Format = "scss"
	JS   Format = "js"
)

// Formats lists the export formats in display order.
var Formats = []Format{CSS, SCSS, JS}

// BaseName is the file name stem used for exports.
const BaseName = "scrollbar-styles"

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case CSS, SCSS, JS:
		return f, nil
	case "javascript":
		return JS, nil
	}
	return "", fmt.Errorf("unknown export format %q (want css, scss or js)", s)
}

// Extension is the file suffix, including the dot.
func (f Format) Extension() string {
	switch f {
	case SCSS:
		return ".scss"
	case JS:
		return ".js"
	default:
		return ".css"
	}
}

// Label is the human readable name.
func (f Format) Label() string {
	switch f {
	case SCSS:
		return "SCSS"
	case JS:
		return "JavaScript"
	default:
		return "CSS"
	}
}

// Lang is the fenced code block language used when highlighting output.
func (f Format) Lang() string {
	if f == JS {
		return "javascript"
	}
	return string(f)
}

// FileName is the suggested download name for f.
func FileName(f Format) string {
	return BaseName + f.Extension()
}

// Render produces the export text for cfg in format f.
func Render(f Format, cfg scrollbar.Config) string {
	switch f {
	case SCSS:
		return VariableStylesheet(cfg)
	case JS:
		return Script(cfg)
	default:
		return Stylesheet(cfg)
	}
}
