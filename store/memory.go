// SPDX-License-Identifier: EPL-2.0

package store

import (
	"context"
	"fmt"
	"slices"
	"sync"
)

// Memory is a process local Store.
type Memory struct {
	items map[string][]byte

	mtx *sync.RWMutex
}

var _ Store = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{
		items: make(map[string][]byte),
		mtx:   &sync.RWMutex{},
	}
}

// Get returns a copy of the stored value.
func (m *Memory) Get(_ context.Context, key string) ([]byte, error) {
	m.mtx.RLock()
	defer m.mtx.RUnlock()

	v, ok := m.items[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	return slices.Clone(v), nil
}

// Put stores a copy of value.
func (m *Memory) Put(_ context.Context, key string, value []byte) error {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	m.items[key] = slices.Clone(value)
	return nil
}

// Len reports the number of stored values.
func (m *Memory) Len() int {
	m.mtx.RLock()
	defer m.mtx.RUnlock()

	return len(m.items)
}
