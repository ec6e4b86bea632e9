package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gocable/internal/models"
)

func TestMemoryCreateAssignsIdentity(t *testing.T) {
	m := NewMemory()
	fixed := time.Date(2025, 3, 1, 12, 0, 0, 0, time.FixedZone("PHT", 8*3600))
	m.now = func() time.Time { return fixed }

	sim := &models.Simulation{Weight: 100, Theta1: 30, Theta2: 60, Tension1: 50, Tension2: 86.6}
	require.NoError(t, m.Create(context.Background(), sim))

	assert.True(t, ValidID(sim.ID))
	assert.Equal(t, fixed.UTC(), sim.CreatedAt)

	got, err := m.Get(context.Background(), sim.ID)
	require.NoError(t, err)
	assert.Equal(t, *sim, *got)
}

func TestMemoryListNewestFirst(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	for w := 1; w <= 5; w++ {
		require.NoError(t, m.Create(ctx, &models.Simulation{Weight: w * 10, Theta1: 45, Theta2: 45}))
	}

	all, err := m.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 5)
	assert.Equal(t, 50, all[0].Weight)
	assert.Equal(t, 10, all[4].Weight)

	two, err := m.List(ctx, 2)
	require.NoError(t, err)
	require.Len(t, two, 2)
	assert.Equal(t, 40, two[1].Weight)
}

func TestMemoryGetMissing(t *testing.T) {
	_, err := NewMemory().Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryConcurrentCreate(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			_ = m.Create(ctx, &models.Simulation{Weight: w})
		}(i)
	}
	wg.Wait()

	all, err := m.List(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 50)
}

func TestNormalizeLimit(t *testing.T) {
	assert.Equal(t, DefaultListLimit, normalizeLimit(0))
	assert.Equal(t, DefaultListLimit, normalizeLimit(-3))
	assert.Equal(t, DefaultListLimit, normalizeLimit(5000))
	assert.Equal(t, 7, normalizeLimit(7))
}

func TestListKey(t *testing.T) {
	assert.Equal(t, "gocable:simulations:list:25", listKey(25))
}
