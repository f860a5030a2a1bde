// Package storage persists the scrollbar configuration between sessions.
// Every failure degrades to a logged warning; callers never see an error.
package storage

import (
	"encoding/json"

	"go.uber.org/zap"

	"github.com/zam-dot/scrollkit/internal/scrollbar"
)

// Key is the storage key holding the serialized configuration.
const Key = "scrollbar-config"

type Adapter struct {
	kv     KV
	logger *zap.Logger
}

func NewAdapter(kv KV, logger *zap.Logger) *Adapter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Adapter{kv: kv, logger: logger}
}

// Save writes cfg under Key. Errors are logged and dropped.
func (a *Adapter) Save(cfg scrollbar.Config) {
	data, err := json.Marshal(cfg)
	if err != nil {
		a.logger.Warn("could not encode config", zap.Error(err))
		return
	}
	if err := a.kv.Set(Key, string(data)); err != nil {
		a.logger.Warn("could not save config", zap.String("key", Key), zap.Error(err))
	}
}

// Load returns the stored configuration. ok is false when nothing usable is
// stored, in which case the caller should fall back to scrollbar.Default.
func (a *Adapter) Load() (scrollbar.Config, bool) {
	raw, found, err := a.kv.Get(Key)
	if err != nil {
		a.logger.Warn("could not load config", zap.String("key", Key), zap.Error(err))
		return scrollbar.Config{}, false
	}
	if !found {
		return scrollbar.Config{}, false
	}
	// A stored JSON null decodes without error but holds no configuration.
	var cfg *scrollbar.Config
	if err := json.Unmarshal([]byte(raw), &cfg); err != nil {
		a.logger.Warn("stored config is corrupt", zap.String("key", Key), zap.Error(err))
		return scrollbar.Config{}, false
	}
	if cfg == nil {
		return scrollbar.Config{}, false
	}
	return *cfg, true
}
