package settings

import (
	"context"
	"fmt"
	"log/slog"
)

// Storage keys. LegacyKey is read when Key is absent.
const (
	Key       = "quizSettings"
	LegacyKey = "appSettings"
)

// KV is the persistence capability the store needs.
type KV interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Store reads and writes the settings record. Reads never fail: any
// problem degrades to defaults.
type Store struct {
	kv     KV
	logger *slog.Logger
}

// NewStore creates a Store over kv. A nil logger uses slog.Default().
func NewStore(kv KV, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{kv: kv, logger: logger}
}

// Load returns the stored settings, or the defaults when nothing usable is
// stored.
func (s *Store) Load(ctx context.Context) Settings {
	for _, key := range []string{Key, LegacyKey} {
		raw, ok, err := s.kv.Get(ctx, key)
		if err != nil {
			s.logger.Warn("settings load failed, using defaults", "key", key, "err", err)
			return Defaults()
		}
		if !ok {
			continue
		}
		settings, err := decode(raw)
		if err != nil {
			s.logger.Debug("stored settings unusable, using defaults", "key", key, "err", err)
			return Defaults()
		}
		return settings
	}
	return Defaults()
}

// Save overwrites the stored record with settings.
func (s *Store) Save(ctx context.Context, settings Settings) error {
	raw, err := encode(settings)
	if err != nil {
		return err
	}
	if err := s.kv.Set(ctx, Key, raw); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// Reset removes the stored record (and any legacy one) so the next Load
// returns the defaults.
func (s *Store) Reset(ctx context.Context) error {
	for _, key := range []string{Key, LegacyKey} {
		if err := s.kv.Delete(ctx, key); err != nil {
			return fmt.Errorf("reset settings: %w", err)
		}
	}
	return nil
}
