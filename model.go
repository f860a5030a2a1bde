package main

import (
	"github.com/zam-dot/scrollkit/internal/scrollbar"
)

// ============================================================================
// CONTROL FIELDS
// ============================================================================

type fieldKind int

const (
	colorField fieldKind = iota
	sizeField
	radiusField
	visibilityField
)

// control is one editable row on the Controls tab.
type control struct {
	label string
	kind  fieldKind
}

var controls = []control{
	{"Thumb Color", colorField},
	{"Track Color", colorField},
	{"Hover Color", colorField},
	{"Width", sizeField},
	{"Height", sizeField},
	{"Thumb Radius", radiusField},
	{"Track Radius", radiusField},
	{"Visibility", visibilityField},
}

// colorValue returns the color held by control i.
func colorValue(cfg scrollbar.Config, i int) string {
	switch i {
	case 0:
		return cfg.ThumbColor
	case 1:
		return cfg.TrackColor
	default:
		return cfg.HoverColor
	}
}

// colorPatch sets the color held by control i.
func colorPatch(i int, v string) scrollbar.Patch {
	switch i {
	case 0:
		return scrollbar.Patch{ThumbColor: &v}
	case 1:
		return scrollbar.Patch{TrackColor: &v}
	default:
		return scrollbar.Patch{HoverColor: &v}
	}
}

func numberValue(cfg scrollbar.Config, i int) int {
	switch i {
	case 3:
		return cfg.Width
	case 4:
		return cfg.Height
	case 5:
		return cfg.ThumbRadius
	default:
		return cfg.TrackRadius
	}
}

// adjustPatch nudges a numeric control by delta, or cycles visibility. The
// sliders stay inside their ranges even though the model accepts anything.
func adjustPatch(cfg scrollbar.Config, i, delta int) (scrollbar.Patch, bool) {
	c := controls[i]
	switch c.kind {
	case sizeField, radiusField:
		limit := scrollbar.MaxSize
		if c.kind == radiusField {
			limit = scrollbar.MaxRadius
		}
		v := min(max(numberValue(cfg, i)+delta, 0), limit)
		switch i {
		case 3:
			return scrollbar.Patch{Width: &v}, true
		case 4:
			return scrollbar.Patch{Height: &v}, true
		case 5:
			return scrollbar.Patch{ThumbRadius: &v}, true
		default:
			return scrollbar.Patch{TrackRadius: &v}, true
		}
	case visibilityField:
		next := nextVisibility(cfg.Visibility, delta)
		return scrollbar.Patch{Visibility: &next}, true
	}
	return scrollbar.Patch{}, false
}

func nextVisibility(v scrollbar.Visibility, delta int) scrollbar.Visibility {
	n := len(scrollbar.Visibilities)
	for i, candidate := range scrollbar.Visibilities {
		if candidate == v {
			return scrollbar.Visibilities[((i+delta)%n+n)%n]
		}
	}
	return scrollbar.VisibilityAuto
}

// ============================================================================
// TIPS
// ============================================================================

var tips = []string{
	"Use transparent track colors for a cleaner look",
	"Match your scrollbar colors to your brand palette",
	"Consider accessibility - ensure sufficient contrast",
	"Test your scrollbar on different screen sizes",
	"Subtle animations can enhance user experience",
	"Less is often more - don't over-design your scrollbars",
}
