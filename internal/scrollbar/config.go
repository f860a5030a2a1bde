package scrollbar

import (
	"fmt"
	"strings"
)

// Visibility controls whether scrollbars are drawn.
type Visibility string

const (
	VisibilityAuto    Visibility = "auto"
	VisibilityVisible Visibility = "visible"
	VisibilityHidden  Visibility = "hidden"
)

// Visibilities lists the visibility modes in the order the controls cycle them.
var Visibilities = []Visibility{VisibilityAuto, VisibilityVisible, VisibilityHidden}

// ParseVisibility accepts "auto", "visible" or "hidden" in any case.
func ParseVisibility(s string) (Visibility, error) {
	v := Visibility(strings.ToLower(strings.TrimSpace(s)))
	switch v {
	case VisibilityAuto, VisibilityVisible, VisibilityHidden:
		return v, nil
	}
	return "", fmt.Errorf("unknown visibility %q", s)
}

// Slider bounds used by the controls. The model itself never clamps.
const (
	MaxSize   = 30
	MaxRadius = 15
)

const Transparent = "transparent"

// Config is a complete scrollbar appearance. Sizes are in pixels.
type Config struct {
	ThumbColor  string     `json:"thumbColor"`
	TrackColor  string     `json:"trackColor"`
	HoverColor  string     `json:"hoverColor"`
	Width       int        `json:"width"`
	Height      int        `json:"height"`
	ThumbRadius int        `json:"thumbRadius"`
	TrackRadius int        `json:"trackRadius"`
	Visibility  Visibility `json:"visibility"`
	CustomCSS   string     `json:"customCSS,omitempty"`
}

// Default returns the configuration used on first start.
func Default() Config {
	return Config{
		ThumbColor:  "#94a3b8",
		TrackColor:  Transparent,
		HoverColor:  "#64748b",
		Width:       8,
		Height:      8,
		ThumbRadius: 4,
		TrackRadius: 4,
		Visibility:  VisibilityAuto,
	}
}

// Equal reports whether every field of c and other match.
func (c Config) Equal(other Config) bool {
	return c == other
}

// Patch is a partial update. A nil field leaves the current value untouched.
type Patch struct {
	ThumbColor  *string
	TrackColor  *string
	HoverColor  *string
	Width       *int
	Height      *int
	ThumbRadius *int
	TrackRadius *int
	Visibility  *Visibility
	CustomCSS   *string
}

// Merge applies p on top of current.
func Merge(current Config, p Patch) Config {
	next := current
	if p.ThumbColor != nil {
		next.ThumbColor = *p.ThumbColor
	}
	if p.TrackColor != nil {
		next.TrackColor = *p.TrackColor
	}
	if p.HoverColor != nil {
		next.HoverColor = *p.HoverColor
	}
	if p.Width != nil {
		next.Width = *p.Width
	}
	if p.Height != nil {
		next.Height = *p.Height
	}
	if p.ThumbRadius != nil {
		next.ThumbRadius = *p.ThumbRadius
	}
	if p.TrackRadius != nil {
		next.TrackRadius = *p.TrackRadius
	}
	if p.Visibility != nil {
		next.Visibility = *p.Visibility
	}
	if p.CustomCSS != nil {
		next.CustomCSS = *p.CustomCSS
	}
	return next
}

// Ptr is a small helper for building patches from literals.
func Ptr[T any](v T) *T {
	return &v
}
