// Package settings persists the user-facing service settings.
package settings

import (
	"context"
	"sync"
)

// KeyUseTestData selects mock data instead of the remote tables.
const KeyUseTestData = "use_test_data"

// Reader exposes the settings loaders consult on every screen load.
type Reader interface {
	UseTestData(ctx context.Context) (bool, error)
}

// Store reads and writes settings.
type Store interface {
	Reader
	SetUseTestData(ctx context.Context, value bool) error
}

// Memory is a process-local Store used when no database path is configured.
type Memory struct {
	mu          sync.RWMutex
	useTestData bool
}

// NewMemory returns a Memory store seeded with useTestData.
func NewMemory(useTestData bool) *Memory {
	return &Memory{useTestData: useTestData}
}

func (m *Memory) UseTestData(ctx context.Context) (bool, error) {
	_ = ctx
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.useTestData, nil
}

func (m *Memory) SetUseTestData(ctx context.Context, value bool) error {
	_ = ctx
	m.mu.Lock()
	defer m.mu.Unlock()
	m.useTestData = value
	return nil
}
