package store

import (
	"context"
	"sync"
	"time"

	"github.com/alexiusacademia/gocable/internal/models"
)

// Memory keeps records in process memory
type Memory struct {
	mu      sync.RWMutex
	records []models.Simulation // in insertion order
	byID    map[string]int
	now     func() time.Time
}

// NewMemory creates an empty in-memory store
func NewMemory() *Memory {
	return &Memory{
		byID: make(map[string]int),
		now:  time.Now,
	}
}

func (m *Memory) Create(_ context.Context, sim *models.Simulation) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stamp(sim, m.now())
	m.byID[sim.ID] = len(m.records)
	m.records = append(m.records, *sim)
	return nil
}

func (m *Memory) List(_ context.Context, limit int) ([]models.Simulation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	limit = normalizeLimit(limit)
	out := make([]models.Simulation, 0, min(limit, len(m.records)))
	for i := len(m.records) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, m.records[i])
	}
	return out, nil
}

func (m *Memory) Get(_ context.Context, id string) (*models.Simulation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	i, ok := m.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	sim := m.records[i]
	return &sim, nil
}
