package state_test

import (
	"errors"
	"testing"

	"github.com/zam-dot/scrollkit/internal/dom"
	"github.com/zam-dot/scrollkit/internal/scrollbar"
	"github.com/zam-dot/scrollkit/internal/state"
	"github.com/zam-dot/scrollkit/internal/storage"
)

// wire builds the same pipeline main uses: store -> applier and store -> storage.
func wire(t *testing.T, kv storage.KV) (*state.Store, *dom.Document, *storage.Adapter) {
	t.Helper()
	adapter := storage.NewAdapter(kv, nil)
	doc, err := dom.NewPreviewDocument(false)
	if err != nil {
		t.Fatal(err)
	}
	s := state.Boot(adapter)
	s.Subscribe(doc.Apply)
	s.Subscribe(adapter.Save)
	s.Notify()
	return s, doc, adapter
}

func TestBootFallsBackToDefault(t *testing.T) {
	s, doc, _ := wire(t, storage.NewMemoryKV())
	if !s.Config().Equal(scrollbar.Default()) {
		t.Fatalf("boot config = %+v", s.Config())
	}
	if v, _ := doc.RootProperty(scrollbar.PropThumbColor); v != "#94a3b8" {
		t.Fatalf("initial apply missing, thumb = %q", v)
	}
}

func TestBootRestoresSavedConfig(t *testing.T) {
	kv := storage.NewMemoryKV()
	s, _, _ := wire(t, kv)
	s.Update(scrollbar.Patch{Width: scrollbar.Ptr(17)})

	s2, doc, _ := wire(t, kv)
	if s2.Config().Width != 17 {
		t.Fatalf("restored width = %d", s2.Config().Width)
	}
	if v, _ := doc.RootProperty(scrollbar.PropWidth); v != "17px" {
		t.Fatalf("restored document width = %q", v)
	}
}

func TestMutationsNotifyInOrder(t *testing.T) {
	s := state.New(scrollbar.Default())
	var calls []string
	s.Subscribe(func(scrollbar.Config) { calls = append(calls, "apply") })
	s.Subscribe(func(scrollbar.Config) { calls = append(calls, "save") })

	s.Update(scrollbar.Patch{Height: scrollbar.Ptr(3)})
	s.Reset()
	s.ApplyRandom()
	if err := s.ApplyPreset("Neon"); err != nil {
		t.Fatal(err)
	}

	if len(calls) != 8 {
		t.Fatalf("expected 8 notifications, got %d: %v", len(calls), calls)
	}
	for i := 0; i < len(calls); i += 2 {
		if calls[i] != "apply" || calls[i+1] != "save" {
			t.Fatalf("unexpected order: %v", calls)
		}
	}
}

func TestApplyPresetUnknown(t *testing.T) {
	s := state.New(scrollbar.Default())
	notified := false
	s.Subscribe(func(scrollbar.Config) { notified = true })

	err := s.ApplyPreset("Nope")
	if !errors.Is(err, state.ErrUnknownPreset) {
		t.Fatalf("err = %v", err)
	}
	if notified {
		t.Fatal("failed preset lookup should not notify")
	}
}

func TestPresetMatchThroughStore(t *testing.T) {
	s, _, adapter := wire(t, storage.NewMemoryKV())
	for _, p := range scrollbar.Presets() {
		if err := s.ApplyPreset(p.Name); err != nil {
			t.Fatal(err)
		}
		if got, ok := s.Preset(); !ok || got.Name != p.Name {
			t.Errorf("after applying %q, match = %q, %v", p.Name, got.Name, ok)
		}
		if saved, ok := adapter.Load(); !ok || !saved.Equal(p.Config) {
			t.Errorf("preset %q not persisted", p.Name)
		}

		s.Update(scrollbar.Patch{HoverColor: scrollbar.Ptr("#123456")})
		if got, ok := s.Preset(); ok && got.Name == p.Name {
			t.Errorf("preset %q still matched after edit", p.Name)
		}
	}
}

func TestSaveFailureKeepsMemoryState(t *testing.T) {
	kv := storage.NewMemoryKV()
	s, _, _ := wire(t, kv)
	kv.SetErr = errors.New("quota exceeded")

	s.Update(scrollbar.Patch{ThumbColor: scrollbar.Ptr("#abcdef")})
	if s.Config().ThumbColor != "#abcdef" {
		t.Fatalf("in-memory config lost after save failure: %+v", s.Config())
	}
}
