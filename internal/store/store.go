// Package store persists simulation records.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/alexiusacademia/gocable/internal/models"
)

// ErrNotFound is returned when no record has the requested ID
var ErrNotFound = errors.New("simulation not found")

// DefaultListLimit caps List when the caller passes a non-positive limit
const DefaultListLimit = 100

// Store saves and retrieves simulation records
type Store interface {
	// Create assigns the record an ID and creation time and saves it
	Create(ctx context.Context, sim *models.Simulation) error
	// List returns up to limit records, newest first
	List(ctx context.Context, limit int) ([]models.Simulation, error)
	// Get returns the record with the given ID or ErrNotFound
	Get(ctx context.Context, id string) (*models.Simulation, error)
}

// stamp gives a new record its identity
func stamp(sim *models.Simulation, now time.Time) {
	sim.ID = uuid.NewString()
	sim.CreatedAt = now.UTC()
}

func normalizeLimit(limit int) int {
	if limit <= 0 || limit > DefaultListLimit {
		return DefaultListLimit
	}
	return limit
}

// ValidID reports whether id has the shape of a record ID
func ValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
