package scene

import (
	"fmt"

	"github.com/alexiusacademia/gocable/internal/equilibrium"
	"github.com/alexiusacademia/gocable/internal/physics"
)

// Scene describes one suspended-body setup: the viewport the anchors are
// derived from, the load and both cable angles.
//
// The load is given either as a weight in newtons or as a mass in kilograms;
// when both are present the weight wins. A nil field is absent, so an explicit
// zero load is kept.
type Scene struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	Viewport Viewport `json:"viewport" yaml:"viewport"`

	// Load
	Weight *float64 `json:"weight,omitempty" yaml:"weight,omitempty"` // N
	Mass   *float64 `json:"mass,omitempty" yaml:"mass,omitempty"`     // kg

	// Cable angles from the horizontal (degrees)
	Theta1 float64 `json:"theta1" yaml:"theta1"`
	Theta2 float64 `json:"theta2" yaml:"theta2"`
}

// Viewport is the drawing area in pixels
type Viewport struct {
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

// Default returns the initial scene of the interactive simulator
func Default() *Scene {
	return &Scene{
		Name: "default",
		Viewport: Viewport{
			Width:  physics.DefaultViewportWidth,
			Height: physics.DefaultViewportHeight,
		},
		Weight: Float(physics.InitialWeight),
		Theta1: physics.InitialTheta1,
		Theta2: physics.InitialTheta2,
	}
}

// Validate checks if the scene definition is usable
func (s *Scene) Validate() error {
	if s.Viewport.Width <= 0 || s.Viewport.Height <= 0 {
		return &ValidationError{msg: fmt.Sprintf("viewport must be positive, got %dx%d", s.Viewport.Width, s.Viewport.Height)}
	}
	if s.Weight == nil && s.Mass == nil {
		return &ValidationError{"scene needs a weight (N) or a mass (kg)"}
	}
	if s.Weight != nil && *s.Weight < 0 {
		return &ValidationError{"weight must not be negative"}
	}
	if s.Mass != nil && *s.Mass < 0 {
		return &ValidationError{"mass must not be negative"}
	}
	return nil
}

// Anchors derives the anchor geometry from the viewport
func (s *Scene) Anchors() equilibrium.AnchorGeometry {
	return equilibrium.AnchorsForViewport(s.Viewport.Width, s.Viewport.Height)
}

// Input builds the solver input, converting a mass load with the solver's gravity
func (s *Scene) Input(solver *equilibrium.Solver) (equilibrium.Input, error) {
	var weight float64
	switch {
	case s.Weight != nil:
		weight = *s.Weight
	case s.Mass != nil:
		w, err := solver.KilogramsToNewtons(*s.Mass)
		if err != nil {
			return equilibrium.Input{}, err
		}
		weight = w
	default:
		return equilibrium.Input{}, &ValidationError{"scene needs a weight (N) or a mass (kg)"}
	}

	in := equilibrium.Input{Weight: weight, Theta1: s.Theta1, Theta2: s.Theta2}
	if err := solver.ValidateInput(in); err != nil {
		return equilibrium.Input{}, err
	}
	return in, nil
}

// Float returns a pointer to v, for filling the optional load fields
func Float(v float64) *float64 {
	return &v
}

// ValidationError represents a scene validation error
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}
