package scrollbar

import "math/rand/v2"

// Palette is the set of colors the randomizer draws from.
var Palette = []string{
	"#ef4444", "#f97316", "#f59e0b", "#eab308", "#84cc16", "#22c55e",
	"#10b981", "#14b8a6", "#06b6d4", "#0ea5e9", "#3b82f6", "#6366f1",
	"#8b5cf6", "#a855f7", "#d946ef", "#ec4899", "#f43f5e",
}

// trackAlpha is appended to a palette color to give the track a faint tint.
const trackAlpha = "20"

// Randomize draws a new configuration from r. Fields are independent of each
// other and of any previous configuration.
func Randomize(r *rand.Rand) Config {
	color := func() string { return Palette[r.IntN(len(Palette))] }
	between := func(lo, hi int) int { return lo + r.IntN(hi-lo+1) }

	track := Transparent
	if r.Float64() >= 0.5 {
		track = color() + trackAlpha
	}
	visibility := VisibilityAuto
	if r.Float64() < 0.2 {
		visibility = VisibilityHidden
	}

	return Config{
		ThumbColor:  color(),
		TrackColor:  track,
		HoverColor:  color(),
		Width:       between(6, 20),
		Height:      between(6, 20),
		ThumbRadius: between(0, 10),
		TrackRadius: between(0, 10),
		Visibility:  visibility,
	}
}

// Random draws a configuration from the package-level source.
func Random() Config {
	return Randomize(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
}
