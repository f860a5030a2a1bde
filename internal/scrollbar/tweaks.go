package scrollbar

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Tweak is a named partial update offered next to the custom CSS editor.
type Tweak struct {
	Name        string
	Description string
	Patch       Patch
}

// Tweaks returns the built-in style tweaks in display order.
func Tweaks() []Tweak {
	return []Tweak{
		{"Rounded Corners", "Smooth rounded scrollbars", Patch{ThumbRadius: Ptr(8), TrackRadius: Ptr(8)}},
		{"Sharp Edges", "Angular, modern look", Patch{ThumbRadius: Ptr(0), TrackRadius: Ptr(0)}},
		{"Thick Scrollbar", "Bold and prominent", Patch{Width: Ptr(16), Height: Ptr(16)}},
		{"Thin Scrollbar", "Subtle and minimal", Patch{Width: Ptr(4), Height: Ptr(4)}},
		{"High Contrast", "Maximum visibility", Patch{
			ThumbColor: Ptr("#000000"),
			TrackColor: Ptr("#ffffff"),
			HoverColor: Ptr("#333333"),
		}},
		{"Subtle Transparency", "Blend with background", Patch{
			ThumbColor: Ptr("rgba(0, 0, 0, 0.3)"),
			TrackColor: Ptr("rgba(0, 0, 0, 0.1)"),
			HoverColor: Ptr("rgba(0, 0, 0, 0.5)"),
		}},
	}
}

// HexToRGBA converts a #rrggbb color to rgba() notation. Anything that is not
// a six digit hex color is returned unchanged.
func HexToRGBA(hex string, alpha float64) string {
	full := hex
	if len(full) == 6 {
		full = "#" + full
	}
	if len(full) != 7 {
		return hex
	}
	c, err := colorful.Hex(full)
	if err != nil {
		return hex
	}
	r, g, b := c.RGB255()
	return fmt.Sprintf("rgba(%d, %d, %d, %g)", r, g, b, alpha)
}
