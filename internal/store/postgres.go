package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/alexiusacademia/gocable/internal/models"
)

// Postgres stores records in the simulations table
type Postgres struct {
	db *sqlx.DB
}

// NewPostgres wraps an open connection; the schema comes from migrations
func NewPostgres(db *sqlx.DB) *Postgres {
	return &Postgres{db: db}
}

func (p *Postgres) Create(ctx context.Context, sim *models.Simulation) error {
	stamp(sim, time.Now())

	query := `
		INSERT INTO simulations (id, weight, theta1, theta2, tension1, tension2, created_at)
		VALUES (:id, :weight, :theta1, :theta2, :tension1, :tension2, :created_at)
	`
	if _, err := p.db.NamedExecContext(ctx, query, sim); err != nil {
		return fmt.Errorf("insert simulation: %w", err)
	}
	return nil
}

func (p *Postgres) List(ctx context.Context, limit int) ([]models.Simulation, error) {
	query := `
		SELECT id, weight, theta1, theta2, tension1, tension2, created_at
		FROM simulations
		ORDER BY created_at DESC
		LIMIT $1
	`

	sims := []models.Simulation{}
	if err := p.db.SelectContext(ctx, &sims, query, normalizeLimit(limit)); err != nil {
		return nil, fmt.Errorf("list simulations: %w", err)
	}
	return sims, nil
}

func (p *Postgres) Get(ctx context.Context, id string) (*models.Simulation, error) {
	query := `
		SELECT id, weight, theta1, theta2, tension1, tension2, created_at
		FROM simulations
		WHERE id = $1
	`

	var sim models.Simulation
	if err := p.db.GetContext(ctx, &sim, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get simulation %s: %w", id, err)
	}
	return &sim, nil
}
