package settings

import (
	"context"
	"log/slog"
)

// Repo is what a Provider persists through. *Store implements it.
type Repo interface {
	Load(ctx context.Context) Settings
	Save(ctx context.Context, settings Settings) error
}

// Provider owns the in-memory settings for the lifetime of the app.
// Mutations update memory first and then write through to the repo; a
// failed write is logged and memory stays authoritative.
type Provider struct {
	repo    Repo
	logger  *slog.Logger
	current Settings
}

// NewProvider creates a Provider holding the defaults until Load is called.
// A nil repo keeps settings in memory only.
func NewProvider(repo Repo, logger *slog.Logger) *Provider {
	if logger == nil {
		logger = slog.Default()
	}
	return &Provider{repo: repo, logger: logger, current: Defaults()}
}

// Load replaces the in-memory settings with the stored ones.
func (p *Provider) Load(ctx context.Context) Settings {
	if p.repo != nil {
		p.current = p.repo.Load(ctx)
	}
	return p.current
}

// Current returns the in-memory settings.
func (p *Provider) Current() Settings {
	return p.current
}

func (p *Provider) SetShowHints(ctx context.Context, v bool) Settings {
	return p.Set(ctx, FieldShowHints, v)
}

func (p *Provider) SetShuffleQuestions(ctx context.Context, v bool) Settings {
	return p.Set(ctx, FieldShuffleQuestions, v)
}

func (p *Provider) SetDarkMode(ctx context.Context, v bool) Settings {
	return p.Set(ctx, FieldDarkMode, v)
}

// Toggle flips the named field.
func (p *Provider) Toggle(ctx context.Context, field string) Settings {
	v, ok := p.current.Get(field)
	if !ok {
		return p.current
	}
	return p.Set(ctx, field, !v)
}

// Set updates the named field and persists the result. Unknown fields are
// ignored.
func (p *Provider) Set(ctx context.Context, field string, v bool) Settings {
	next, ok := p.current.With(field, v)
	if !ok {
		return p.current
	}
	p.current = next
	p.persist(ctx)
	return p.current
}

// Replace swaps in a whole settings value and persists it.
func (p *Provider) Replace(ctx context.Context, s Settings) Settings {
	p.current = s
	p.persist(ctx)
	return p.current
}

func (p *Provider) persist(ctx context.Context) {
	if p.repo == nil {
		return
	}
	if err := p.repo.Save(ctx, p.current); err != nil {
		p.logger.Warn("failed to save settings", "err", err)
	}
}
