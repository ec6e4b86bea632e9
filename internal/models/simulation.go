package models

import "time"

// Simulation is one persisted solver run.
// Weight and angles are stored as whole numbers, tensions as reals.
type Simulation struct {
	ID        string    `db:"id" json:"id"`
	Weight    int       `db:"weight" json:"weight"`
	Theta1    int       `db:"theta1" json:"theta1"`
	Theta2    int       `db:"theta2" json:"theta2"`
	Tension1  float64   `db:"tension1" json:"tension1"`
	Tension2  float64   `db:"tension2" json:"tension2"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// SimulationInput is the flat record a client submits
type SimulationInput struct {
	Weight   *int     `json:"weight" binding:"required"`
	Theta1   *int     `json:"theta1" binding:"required"`
	Theta2   *int     `json:"theta2" binding:"required"`
	Tension1 *float64 `json:"tension1" binding:"required"`
	Tension2 *float64 `json:"tension2" binding:"required"`
}

// ToSimulation copies the submitted fields into a record without identity
func (in SimulationInput) ToSimulation() Simulation {
	return Simulation{
		Weight:   *in.Weight,
		Theta1:   *in.Theta1,
		Theta2:   *in.Theta2,
		Tension1: *in.Tension1,
		Tension2: *in.Tension2,
	}
}
