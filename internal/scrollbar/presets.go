package scrollbar

import "strings"

// Preset is a named, ready-made configuration.
type Preset struct {
	Name        string
	Description string
	Config      Config
	Gradient    string
	Icon        string
}

var catalog = []Preset{
	{
		Name:        "Default",
		Description: "Clean and minimal",
		Config:      Default(),
		Gradient:    "linear-gradient(135deg, #94a3b8 0%, #64748b 100%)",
		Icon:        "🎨",
	},
	{
		Name:        "Dark Mode",
		Description: "Perfect for dark themes",
		Config:      solid("#374151", "#1f2937", "#4b5563", 5),
		Gradient:    "linear-gradient(135deg, #374151 0%, #1f2937 100%)",
		Icon:        "🌙",
	},
	{
		Name:        "Neon",
		Description: "Electric and vibrant",
		Config:      solid("#10b981", "#064e3b", "#059669", 6),
		Gradient:    "linear-gradient(135deg, #10b981 0%, #059669 100%)",
		Icon:        "⚡",
	},
	{
		Name:        "Glassmorphism",
		Description: "Translucent and modern",
		Config:      solid("rgba(255, 255, 255, 0.3)", "rgba(255, 255, 255, 0.1)", "rgba(255, 255, 255, 0.5)", 7),
		Gradient:    "linear-gradient(135deg, rgba(255, 255, 255, 0.3) 0%, rgba(255, 255, 255, 0.1) 100%)",
		Icon:        "🔮",
	},
	{
		Name:        "Ocean Breeze",
		Description: "Calm and refreshing",
		Config:      solid("#0ea5e9", "#e0f2fe", "#0284c7", 5),
		Gradient:    "linear-gradient(135deg, #0ea5e9 0%, #0284c7 100%)",
		Icon:        "🌊",
	},
	{
		Name:        "Cyberpunk",
		Description: "Futuristic and bold",
		Config:      solid("#f59e0b", "#7c2d12", "#d97706", 2),
		Gradient:    "linear-gradient(135deg, #f59e0b 0%, #d97706 100%)",
		Icon:        "🤖",
	},
	{
		Name:        "Sunset",
		Description: "Warm and inviting",
		Config:      solid("#f97316", "#fed7aa", "#ea580c", 6),
		Gradient:    "linear-gradient(135deg, #f97316 0%, #ea580c 100%)",
		Icon:        "🌅",
	},
	{
		Name:        "Forest",
		Description: "Natural and earthy",
		Config:      solid("#16a34a", "#dcfce7", "#15803d", 5),
		Gradient:    "linear-gradient(135deg, #16a34a 0%, #15803d 100%)",
		Icon:        "🌲",
	},
	{
		Name:        "Lavender",
		Description: "Soft and elegant",
		Config:      solid("#8b5cf6", "#f3e8ff", "#7c3aed", 4),
		Gradient:    "linear-gradient(135deg, #8b5cf6 0%, #7c3aed 100%)",
		Icon:        "🌸",
	},
	{
		Name:        "Invisible",
		Description: "Minimal and hidden",
		Config: Config{
			ThumbColor: Transparent,
			TrackColor: Transparent,
			HoverColor: "rgba(0, 0, 0, 0.1)",
			Visibility: VisibilityHidden,
		},
		Gradient: "linear-gradient(135deg, transparent 0%, transparent 100%)",
		Icon:     "👻",
	},
}

// solid builds the common 8px preset shape with equal radii.
func solid(thumb, track, hover string, radius int) Config {
	return Config{
		ThumbColor:  thumb,
		TrackColor:  track,
		HoverColor:  hover,
		Width:       8,
		Height:      8,
		ThumbRadius: radius,
		TrackRadius: radius,
		Visibility:  VisibilityAuto,
	}
}

// Presets returns a copy of the catalog in display order.
func Presets() []Preset {
	out := make([]Preset, len(catalog))
	copy(out, catalog)
	return out
}

// FindPreset looks a preset up by name, ignoring case.
func FindPreset(name string) (Preset, bool) {
	for _, p := range catalog {
		if strings.EqualFold(p.Name, strings.TrimSpace(name)) {
			return p, true
		}
	}
	return Preset{}, false
}

// MatchPreset returns the first preset whose configuration equals cfg.
func MatchPreset(cfg Config) (Preset, bool) {
	for _, p := range catalog {
		if p.Config.Equal(cfg) {
			return p, true
		}
	}
	return Preset{}, false
}
