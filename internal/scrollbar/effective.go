package scrollbar

import "strconv"

// Effective holds the values that are actually applied or exported after the
// hidden override has been resolved.
type Effective struct {
	ThumbColor  string
	TrackColor  string
	HoverColor  string
	Width       int
	Height      int
	ThumbRadius int
	TrackRadius int
	Visibility  Visibility
}

// Effective resolves the visibility override. A hidden scrollbar has zero
// sizes and radii and transparent thumb and track colors; the hover color
// passes through unchanged.
func (c Config) Effective() Effective {
	e := Effective{
		ThumbColor:  c.ThumbColor,
		TrackColor:  c.TrackColor,
		HoverColor:  c.HoverColor,
		Width:       c.Width,
		Height:      c.Height,
		ThumbRadius: c.ThumbRadius,
		TrackRadius: c.TrackRadius,
		Visibility:  c.Visibility,
	}
	if c.Visibility == VisibilityHidden {
		e.ThumbColor = Transparent
		e.TrackColor = Transparent
		e.Width = 0
		e.Height = 0
		e.ThumbRadius = 0
		e.TrackRadius = 0
	}
	return e
}

// Property is a single CSS custom property.
type Property struct {
	Name  string
	Value string
}

// Custom property names written on the document root.
const (
	PropWidth       = "--scrollbar-width"
	PropHeight      = "--scrollbar-height"
	PropThumbColor  = "--scrollbar-thumb-color"
	PropTrackColor  = "--scrollbar-track-color"
	PropHoverColor  = "--scrollbar-thumb-hover-color"
	PropThumbRadius = "--scrollbar-thumb-radius"
	PropTrackRadius = "--scrollbar-track-radius"
	PropVisibility  = "--scrollbar-visibility"
)

// CustomProperties returns the root custom properties in a fixed order.
func (e Effective) CustomProperties() []Property {
	return []Property{
		{PropWidth, Px(e.Width)},
		{PropHeight, Px(e.Height)},
		{PropThumbColor, e.ThumbColor},
		{PropTrackColor, e.TrackColor},
		{PropHoverColor, e.HoverColor},
		{PropThumbRadius, Px(e.ThumbRadius)},
		{PropTrackRadius, Px(e.TrackRadius)},
		{PropVisibility, string(e.Visibility)},
	}
}

// Px formats a pixel length.
func Px(n int) string {
	return strconv.Itoa(n) + "px"
}
