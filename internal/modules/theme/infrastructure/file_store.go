package infrastructure

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"dinesync/internal/modules/theme/domain"
)

type storedTheme struct {
	Theme     domain.Theme `json:"theme"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

// FileStore keeps the theme in a small JSON file. Writes replace the file atomically.
type FileStore struct {
	path string
	now  func() time.Time
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path, now: time.Now}
}

// Load reports false when nothing has been persisted yet.
func (s *FileStore) Load() (domain.Theme, bool, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read theme: %w", err)
	}
	var stored storedTheme
	if err := json.Unmarshal(raw, &stored); err != nil {
		return "", false, fmt.Errorf("decode theme: %w", err)
	}
	theme, err := domain.ParseTheme(string(stored.Theme))
	if err != nil {
		return "", false, err
	}
	return theme, true, nil
}

func (s *FileStore) Save(theme domain.Theme) error {
	body, err := json.Marshal(storedTheme{Theme: theme, UpdatedAt: s.now().UTC()})
	if err != nil {
		return fmt.Errorf("encode theme: %w", err)
	}
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create theme dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".theme-*.json")
	if err != nil {
		return fmt.Errorf("create theme file: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(body); err != nil {
		tmp.Close()
		return fmt.Errorf("write theme: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close theme file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace theme file: %w", err)
	}
	return nil
}
