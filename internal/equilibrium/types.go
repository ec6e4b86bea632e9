package equilibrium

import (
	"math"

	"github.com/alexiusacademia/gocable/internal/physics"
)

// Config holds the immutable parameters of a Solver
type Config struct {
	Gravity           float64 // m/s²
	SingularTolerance float64 // threshold on |sin(θ1+θ2)|
}

// DefaultConfig returns standard gravity and the default singular tolerance
func DefaultConfig() Config {
	return Config{
		Gravity:           physics.StandardGravity,
		SingularTolerance: physics.DefaultSingularTolerance,
	}
}

// Validate checks that the configuration is usable
func (c Config) Validate() error {
	if !physics.IsFinite(c.Gravity) || c.Gravity <= 0 {
		return &DomainError{Field: "gravity", Value: c.Gravity, Reason: "must be a positive finite number"}
	}
	if !physics.IsFinite(c.SingularTolerance) || c.SingularTolerance <= 0 {
		return &DomainError{Field: "singular_tolerance", Value: c.SingularTolerance, Reason: "must be a positive finite number"}
	}
	return nil
}

// Input is a suspended weight and the two cable angles.
// Angles are in degrees, measured from the horizontal on each side of the body.
type Input struct {
	Weight float64 // N
	Theta1 float64 // cable toward anchor 1 (left)
	Theta2 float64 // cable toward anchor 2 (right)
}

// Validate applies the range checks for weight and both angles
func (in Input) Validate() error {
	if err := checkWeight("weight", in.Weight); err != nil {
		return err
	}
	if err := checkAngle("theta1", in.Theta1); err != nil {
		return err
	}
	return checkAngle("theta2", in.Theta2)
}

// Tensions holds the resolved cable tensions (N)
type Tensions struct {
	T1 float64
	T2 float64
}

// AnchorGeometry locates the two fixed anchors in screen space.
// Screen y grows downward, so the body hangs at y > AnchorY.
type AnchorGeometry struct {
	Anchor1X float64
	Anchor2X float64
	AnchorY  float64
}

// AnchorsForViewport places the anchors at a quarter and three quarters of the
// viewport width, a quarter of the way down.
func AnchorsForViewport(width, height int) AnchorGeometry {
	return AnchorGeometry{
		Anchor1X: float64(width / 4),
		Anchor2X: float64(3 * width / 4),
		AnchorY:  float64(height / 4),
	}
}

// Span is the horizontal distance between the anchors
func (g AnchorGeometry) Span() float64 {
	return g.Anchor2X - g.Anchor1X
}

// Position is the screen point where the body hangs
type Position struct {
	X float64
	Y float64
}

// Result bundles one full solve
type Result struct {
	Input    Input
	Mass     float64 // kg, weight / g
	Tensions Tensions
	Position Position
}

func checkWeight(field string, w float64) error {
	if !physics.IsFinite(w) {
		return &DomainError{Field: field, Value: w, Reason: "must be a finite number"}
	}
	if w < 0 {
		return &DomainError{Field: field, Value: w, Reason: "must not be negative"}
	}
	return nil
}

func checkAngle(field string, deg float64) error {
	if !physics.IsFinite(deg) {
		return &DomainError{Field: field, Value: deg, Reason: "must be a finite number"}
	}
	if deg < physics.MinAngle || deg >= physics.MaxAngle {
		return &DomainError{Field: field, Value: deg, Reason: "must be in [0°, 180°)"}
	}
	return nil
}

// sinSum returns sin(θ1+θ2) with angles in degrees
func sinSum(theta1, theta2 float64) float64 {
	return math.Sin(physics.Radians(theta1 + theta2))
}

// checkAngleBounds accepts any finite angle in [0°, 180°]
func checkAngleBounds(field string, deg float64) error {
	if !physics.IsFinite(deg) {
		return &DomainError{Field: field, Value: deg, Reason: "must be a finite number"}
	}
	if deg < physics.MinAngle || deg > physics.MaxAngle {
		return &DomainError{Field: field, Value: deg, Reason: "must be in [0°, 180°)"}
	}
	return nil
}
