// Package simulation holds the interactive state that drives the solver:
// the current weight and angles, the caller-side clamping policy and the last
// valid solve, which is kept whenever a change cannot be solved.
package simulation

import (
	"math"

	"github.com/alexiusacademia/gocable/internal/equilibrium"
	"github.com/alexiusacademia/gocable/internal/models"
	"github.com/alexiusacademia/gocable/internal/physics"
)

// State is the live simulation. It is driven from a single control loop and
// is not safe for concurrent use.
type State struct {
	solver  *equilibrium.Solver
	anchors equilibrium.AnchorGeometry

	weight float64
	theta1 float64
	theta2 float64

	// weight at the start of the current drag
	dragStart float64
	dragging  bool

	last *equilibrium.Result
}

// New creates a state at the initial values and solves it once
func New(solver *equilibrium.Solver, anchors equilibrium.AnchorGeometry) (*State, error) {
	s := &State{
		solver:  solver,
		anchors: anchors,
		weight:  physics.InitialWeight,
		theta1:  physics.InitialTheta1,
		theta2:  physics.InitialTheta2,
	}
	if _, err := s.resolve(); err != nil {
		return nil, err
	}
	return s, nil
}

// Inputs returns the current weight and angles
func (s *State) Inputs() equilibrium.Input {
	return equilibrium.Input{Weight: s.weight, Theta1: s.theta1, Theta2: s.theta2}
}

// Snapshot returns the last valid solve
func (s *State) Snapshot() equilibrium.Result {
	return *s.last
}

// NudgeTheta1 moves θ1 by delta degrees, clamped to the interactive range
func (s *State) NudgeTheta1(delta float64) (equilibrium.Result, error) {
	s.theta1 = clampAngle(s.theta1 + delta)
	return s.resolve()
}

// NudgeTheta2 moves θ2 by delta degrees, clamped to the interactive range
func (s *State) NudgeTheta2(delta float64) (equilibrium.Result, error) {
	s.theta2 = clampAngle(s.theta2 + delta)
	return s.resolve()
}

// SetAngles sets both angles, clamped to the interactive range
func (s *State) SetAngles(theta1, theta2 float64) (equilibrium.Result, error) {
	s.theta1 = clampAngle(theta1)
	s.theta2 = clampAngle(theta2)
	return s.resolve()
}

// BeginDrag starts a vertical weight drag from the current weight
func (s *State) BeginDrag() {
	s.dragStart = s.weight
	s.dragging = true
}

// DragTo sets the weight from the vertical drag distance dy (px, down is
// positive), clamped to the drag limits. Without an active drag it is a no-op.
func (s *State) DragTo(dy float64) (equilibrium.Result, error) {
	if !s.dragging {
		return *s.last, nil
	}
	s.weight = physics.Clamp(s.dragStart+dy*physics.DragSensitivity, physics.MinDragWeight, physics.MaxDragWeight)
	return s.resolve()
}

// EndDrag finishes the current drag
func (s *State) EndDrag() {
	s.dragging = false
}

// SetWeight sets the weight directly (N). Out-of-domain values are reported,
// the previous weight is restored and the last valid solve is kept.
func (s *State) SetWeight(weight float64) (equilibrium.Result, error) {
	prev := s.weight
	s.weight = weight
	res, err := s.resolve()
	if err != nil {
		s.weight = prev
	}
	return res, err
}

// SetMass sets the weight from a mass in kilograms
func (s *State) SetMass(kg float64) (equilibrium.Result, error) {
	w, err := s.solver.KilogramsToNewtons(kg)
	if err != nil {
		return *s.last, err
	}
	return s.SetWeight(w)
}

// Load applies a persisted record's weight and angles
func (s *State) Load(rec models.Simulation) (equilibrium.Result, error) {
	s.weight = float64(rec.Weight)
	s.theta1 = clampAngle(float64(rec.Theta1))
	s.theta2 = clampAngle(float64(rec.Theta2))
	return s.resolve()
}

// Record builds the persistence record from the last valid solve
func (s *State) Record() models.Simulation {
	r := s.last
	return models.Simulation{
		Weight:   int(r.Input.Weight),
		Theta1:   int(r.Input.Theta1),
		Theta2:   int(r.Input.Theta2),
		Tension1: r.Tensions.T1,
		Tension2: r.Tensions.T2,
	}
}

// resolve re-solves the current inputs; on failure the previous result stays
// current and is returned together with the error.
func (s *State) resolve() (equilibrium.Result, error) {
	res, err := s.solver.Solve(s.Inputs(), s.anchors)
	if err != nil {
		if s.last == nil {
			return equilibrium.Result{}, err
		}
		return *s.last, err
	}
	s.last = res
	return *res, nil
}

func clampAngle(deg float64) float64 {
	return physics.Clamp(math.Round(deg), physics.MinInteractiveAngle, physics.MaxInteractiveAngle)
}
