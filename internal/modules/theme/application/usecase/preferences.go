package usecase

import (
	"log/slog"
	"sync"

	"dinesync/internal/modules/theme/domain"
)

// Store persists the theme across restarts.
type Store interface {
	Load() (domain.Theme, bool, error)
	Save(domain.Theme) error
}

// Preferences is the process-wide theme state. It lives for the whole process and is
// never torn down.
type Preferences struct {
	mu      sync.RWMutex
	current domain.Theme
	store   Store
}

var (
	globalMu sync.RWMutex
	global   *Preferences
)

// Init reads the persisted theme once, falling back to the system hint (light when the
// hint is not a theme), and installs the result as the process-wide instance.
func Init(store Store, systemHint string) (*Preferences, error) {
	current, ok, err := store.Load()
	if err != nil {
		return nil, err
	}
	source := "store"
	if !ok {
		source = "system hint"
		if current, err = domain.ParseTheme(systemHint); err != nil {
			current = domain.Light
		}
	}
	prefs := &Preferences{current: current, store: store}

	globalMu.Lock()
	global = prefs
	globalMu.Unlock()

	slog.Info("theme initialized", slog.String("theme", string(current)), slog.String("source", source))
	return prefs, nil
}

// Current returns the instance installed by Init, or nil before Init.
func Current() *Preferences {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return global
}

func (p *Preferences) Get() domain.Theme {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.current
}

// Set persists theme before making it current.
func (p *Preferences) Set(theme domain.Theme) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.store.Save(theme); err != nil {
		return err
	}
	p.current = theme
	return nil
}

// Toggle flips and persists the theme, returning the new value.
func (p *Preferences) Toggle() (domain.Theme, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	next := p.current.Toggle()
	if err := p.store.Save(next); err != nil {
		return p.current, err
	}
	p.current = next
	return next, nil
}
