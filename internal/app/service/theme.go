package service

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/axlwolf/task-manager/internal/core/ports"
)

const (
	themeKey      = "theme"
	FallbackTheme = "theme-purple"
)

type Theme struct {
	Name  string `json:"name"`
	Label string `json:"label"`
}

var themes = []Theme{
	{Name: "theme-purple", Label: "Purple (Default)"},
	{Name: "theme-dark", Label: "Dark Premium"},
	{Name: "theme-neodigital", Label: "Neo-Digital"},
	{Name: "theme-gradient", Label: "Gradientes Suaves"},
	{Name: "theme-harmony", Label: "Armonía Oceánica"},
	{Name: "theme-turquesa-fresco", Label: "Turquesa Fresco"},
}

type ThemeService struct {
	kv     ports.KeyValueStore
	logger *zap.Logger

	mu      sync.RWMutex
	current string
}

// NewThemeService restores the stored theme. When none is stored, initial (or
// FallbackTheme when empty) is applied and persisted.
func NewThemeService(ctx context.Context, kv ports.KeyValueStore, initial string, logger *zap.Logger) *ThemeService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if initial == "" {
		initial = FallbackTheme
	}
	s := &ThemeService{kv: kv, logger: logger, current: initial}

	stored, err := kv.Get(ctx, themeKey)
	switch {
	case err == nil:
		if _, err := s.SetTheme(ctx, stored); err != nil {
			logger.Warn("failed to restore theme", zap.Error(err))
		}
	case errors.Is(err, ports.ErrKeyNotFound):
		if _, err := s.SetTheme(ctx, initial); err != nil {
			logger.Warn("failed to save initial theme", zap.Error(err))
		}
	default:
		logger.Error("failed to load theme", zap.Error(err))
	}
	return s
}

func (s *ThemeService) Themes() []Theme {
	result := make([]Theme, len(themes))
	copy(result, themes)
	return result
}

func (s *ThemeService) Current() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// SetTheme stores name as the current theme. Unknown names fall back to
// FallbackTheme. The applied theme name is returned.
func (s *ThemeService) SetTheme(ctx context.Context, name string) (string, error) {
	if !knownTheme(name) {
		s.logger.Warn("theme not found, using default theme", zap.String("theme", name))
		name = FallbackTheme
	}

	if err := s.kv.Set(ctx, themeKey, name); err != nil {
		return s.Current(), err
	}

	s.mu.Lock()
	s.current = name
	s.mu.Unlock()
	return name, nil
}

func knownTheme(name string) bool {
	for _, theme := range themes {
		if theme.Name == name {
			return true
		}
	}
	return false
}
