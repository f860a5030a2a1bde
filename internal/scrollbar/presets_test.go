package scrollbar

import (
	"math/rand/v2"
	"testing"
)

func TestPresetCatalog(t *testing.T) {
	presets := Presets()
	if len(presets) != 10 {
		t.Fatalf("expected 10 presets, got %d", len(presets))
	}
	seen := map[string]bool{}
	for _, p := range presets {
		if seen[p.Name] {
			t.Errorf("duplicate preset name %q", p.Name)
		}
		seen[p.Name] = true
		if p.Config.ThumbColor == "" || p.Config.TrackColor == "" || p.Config.HoverColor == "" {
			t.Errorf("%s: missing colors", p.Name)
		}
		if p.Config.Visibility == "" {
			t.Errorf("%s: missing visibility", p.Name)
		}
	}
}

func TestPresetsReturnsCopy(t *testing.T) {
	p := Presets()
	p[0].Config.Width = 99
	if Presets()[0].Config.Width == 99 {
		t.Fatal("catalog was mutated through the returned slice")
	}
}

func TestMatchPresetAfterApply(t *testing.T) {
	// Each change touches exactly one field and never lands on another preset.
	changes := map[string]func(Config) Patch{
		"thumbColor":  func(c Config) Patch { return Patch{ThumbColor: Ptr(c.ThumbColor + "0")} },
		"trackColor":  func(c Config) Patch { return Patch{TrackColor: Ptr(c.TrackColor + "0")} },
		"hoverColor":  func(c Config) Patch { return Patch{HoverColor: Ptr(c.HoverColor + "0")} },
		"width":       func(c Config) Patch { return Patch{Width: Ptr(c.Width + 100)} },
		"height":      func(c Config) Patch { return Patch{Height: Ptr(c.Height + 100)} },
		"thumbRadius": func(c Config) Patch { return Patch{ThumbRadius: Ptr(c.ThumbRadius + 100)} },
		"trackRadius": func(c Config) Patch { return Patch{TrackRadius: Ptr(c.TrackRadius + 100)} },
		"visibility":  func(c Config) Patch { return Patch{Visibility: Ptr(Visibility(string(c.Visibility) + "-x"))} },
		"customCSS":   func(c Config) Patch { return Patch{CustomCSS: Ptr(c.CustomCSS + "body{}")} },
	}

	for _, p := range Presets() {
		got, ok := MatchPreset(p.Config)
		if !ok || got.Name != p.Name {
			t.Errorf("preset %q: match = %q, %v", p.Name, got.Name, ok)
		}

		for field, change := range changes {
			live := Merge(p.Config, change(p.Config))
			if live.Equal(p.Config) {
				t.Fatalf("preset %q: change to %s left the config unchanged", p.Name, field)
			}
			if got, ok := MatchPreset(live); ok {
				t.Errorf("preset %q: still matches %q after changing %s", p.Name, got.Name, field)
			}
		}
	}
}

func TestFindPreset(t *testing.T) {
	p, ok := FindPreset("ocean breeze")
	if !ok || p.Config.ThumbColor != "#0ea5e9" {
		t.Fatalf("FindPreset = %+v, %v", p, ok)
	}
	if _, ok := FindPreset("nope"); ok {
		t.Fatal("expected unknown preset to be absent")
	}
}

func TestRandomizeBounds(t *testing.T) {
	r := rand.New(rand.NewPCG(42, 7))
	palette := map[string]bool{}
	for _, c := range Palette {
		palette[c] = true
	}

	const draws = 10000
	hidden := 0
	transparentTrack := 0
	for i := 0; i < draws; i++ {
		c := Randomize(r)
		if c.Width < 6 || c.Width > 20 || c.Height < 6 || c.Height > 20 {
			t.Fatalf("size out of range: %+v", c)
		}
		if c.ThumbRadius < 0 || c.ThumbRadius > 10 || c.TrackRadius < 0 || c.TrackRadius > 10 {
			t.Fatalf("radius out of range: %+v", c)
		}
		if !palette[c.ThumbColor] || !palette[c.HoverColor] {
			t.Fatalf("color outside palette: %+v", c)
		}
		switch {
		case c.TrackColor == Transparent:
			transparentTrack++
		case !palette[c.TrackColor[:len(c.TrackColor)-2]] || c.TrackColor[len(c.TrackColor)-2:] != "20":
			t.Fatalf("unexpected track color %q", c.TrackColor)
		}
		switch c.Visibility {
		case VisibilityHidden:
			hidden++
		case VisibilityAuto:
		default:
			t.Fatalf("unexpected visibility %q", c.Visibility)
		}
	}

	if hidden < 1800 || hidden > 2200 {
		t.Errorf("hidden in %d/%d draws, want about 20%%", hidden, draws)
	}
	if transparentTrack < 4700 || transparentTrack > 5300 {
		t.Errorf("transparent track in %d/%d draws, want about 50%%", transparentTrack, draws)
	}
}

func TestRandomizeDeterministicForSeed(t *testing.T) {
	a := Randomize(rand.New(rand.NewPCG(9, 9)))
	b := Randomize(rand.New(rand.NewPCG(9, 9)))
	if a != b {
		t.Fatalf("same seed gave %+v and %+v", a, b)
	}
}
