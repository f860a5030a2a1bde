// Package state owns the live scrollbar configuration and tells subscribers
// whenever it changes.
package state

import (
	"errors"
	"fmt"

	"github.com/zam-dot/scrollkit/internal/scrollbar"
)

var ErrUnknownPreset = errors.New("unknown preset")

// Listener is called with the new configuration after every mutation.
type Listener func(scrollbar.Config)

// Store holds the single live configuration. It is driven from one goroutine
// (the UI update loop) and does no locking.
type Store struct {
	cfg       scrollbar.Config
	listeners []Listener
}

func New(initial scrollbar.Config) *Store {
	return &Store{cfg: initial}
}

// Loader is the subset of the persistence adapter Boot needs.
type Loader interface {
	Load() (scrollbar.Config, bool)
}

// Boot creates a store from the persisted configuration, falling back to
// scrollbar.Default when nothing usable is stored.
func Boot(l Loader) *Store {
	if cfg, ok := l.Load(); ok {
		return New(cfg)
	}
	return New(scrollbar.Default())
}

func (s *Store) Config() scrollbar.Config {
	return s.cfg
}

// Subscribe registers fn. Listeners run in registration order.
func (s *Store) Subscribe(fn Listener) {
	s.listeners = append(s.listeners, fn)
}

// Notify runs every listener with the current configuration without
// changing it. Used once at start-up to apply the loaded state.
func (s *Store) Notify() {
	for _, fn := range s.listeners {
		fn(s.cfg)
	}
}

// Update merges a partial change.
func (s *Store) Update(p scrollbar.Patch) {
	s.Replace(scrollbar.Merge(s.cfg, p))
}

// Replace swaps the whole configuration.
func (s *Store) Replace(cfg scrollbar.Config) {
	s.cfg = cfg
	s.Notify()
}

func (s *Store) Reset() {
	s.Replace(scrollbar.Default())
}

func (s *Store) ApplyPreset(name string) error {
	p, ok := scrollbar.FindPreset(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	s.Replace(p.Config)
	return nil
}

func (s *Store) ApplyRandom() {
	s.Replace(scrollbar.Random())
}

// Preset reports which catalog preset, if any, matches the live configuration.
func (s *Store) Preset() (scrollbar.Preset, bool) {
	return scrollbar.MatchPreset(s.cfg)
}
