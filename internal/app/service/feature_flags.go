package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/axlwolf/task-manager/internal/core/ports"
)

const featureFlagsKey = "featureFlags"

var ErrUnknownFlag = errors.New("unknown feature flag")

func defaultFlags() map[string]bool {
	return map[string]bool{
		"new-task-dialog":     true,
		"task-filtering":      false,
		"user-management":     false,
		"dark-mode":           true,
		"analytics-dashboard": false,
	}
}

// FeatureFlagService toggles feature flags persisted as one JSON document.
type FeatureFlagService struct {
	kv     ports.KeyValueStore
	logger *zap.Logger

	mu    sync.RWMutex
	flags map[string]bool
}

// NewFeatureFlagService loads the stored flags merged over the defaults.
func NewFeatureFlagService(ctx context.Context, kv ports.KeyValueStore, logger *zap.Logger) *FeatureFlagService {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &FeatureFlagService{kv: kv, logger: logger, flags: defaultFlags()}
	s.Load(ctx)
	return s
}

// Load reads the stored flags. Unreadable data resets the flags to defaults.
func (s *FeatureFlagService) Load(ctx context.Context) {
	raw, err := s.kv.Get(ctx, featureFlagsKey)
	if errors.Is(err, ports.ErrKeyNotFound) {
		return
	}
	if err != nil {
		s.logger.Error("failed to load feature flags", zap.Error(err))
		return
	}

	var stored map[string]bool
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		s.logger.Error("failed to decode feature flags", zap.Error(err))
		if resetErr := s.Reset(ctx); resetErr != nil {
			s.logger.Error("failed to reset feature flags", zap.Error(resetErr))
		}
		return
	}

	flags := defaultFlags()
	for name, enabled := range stored {
		flags[name] = enabled
	}
	s.mu.Lock()
	s.flags = flags
	s.mu.Unlock()
}

func (s *FeatureFlagService) IsEnabled(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.flags[name]
}

// All returns a copy of the current flags.
func (s *FeatureFlagService) All() map[string]bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	flags := make(map[string]bool, len(s.flags))
	for name, enabled := range s.flags {
		flags[name] = enabled
	}
	return flags
}

// Names returns the known flag names in lexical order.
func (s *FeatureFlagService) Names() []string {
	flags := s.All()
	names := make([]string, 0, len(flags))
	for name := range flags {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Toggle flips an existing flag and persists the result.
func (s *FeatureFlagService) Toggle(ctx context.Context, name string) (bool, error) {
	s.mu.Lock()
	enabled, exists := s.flags[name]
	if !exists {
		s.mu.Unlock()
		s.logger.Warn("feature flag does not exist", zap.String("flag", name))
		return false, fmt.Errorf("%w: %s", ErrUnknownFlag, name)
	}
	s.flags[name] = !enabled
	s.mu.Unlock()

	return !enabled, s.save(ctx)
}

// Reset restores the default flags and persists them.
func (s *FeatureFlagService) Reset(ctx context.Context) error {
	s.mu.Lock()
	s.flags = defaultFlags()
	s.mu.Unlock()
	return s.save(ctx)
}

func (s *FeatureFlagService) save(ctx context.Context) error {
	payload, err := json.Marshal(s.All())
	if err != nil {
		return err
	}
	if err := s.kv.Set(ctx, featureFlagsKey, string(payload)); err != nil {
		s.logger.Error("failed to save feature flags", zap.Error(err))
		return err
	}
	return nil
}
