package physics

import "math"

// Physical and simulation constants

const (
	// Standard gravitational acceleration (m/s²)
	StandardGravity = 9.81

	// Singular configuration threshold on |sin(θ1+θ2)|
	DefaultSingularTolerance = 1e-9

	// Accepted cable angle domain in degrees: [MinAngle, MaxAngle)
	MinAngle = 0.0
	MaxAngle = 180.0

	// Interactive angle range (the caller clamps nudges into it)
	MinInteractiveAngle = 0
	MaxInteractiveAngle = 90

	// Weight drag limits (N) and drag sensitivity (N per pixel)
	MinDragWeight   = 50.0
	MaxDragWeight   = 1000.0
	DragSensitivity = 2.0

	// Initial values
	InitialWeight = 100.0 // N
	InitialTheta1 = 45.0  // degrees
	InitialTheta2 = 45.0  // degrees

	// Default viewport (px)
	DefaultViewportWidth  = 1350
	DefaultViewportHeight = 840
)

// Radians converts an angle in degrees to radians
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Degrees converts an angle in radians to degrees
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// Clamp limits v to the closed interval [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// IsFinite reports whether v is neither NaN nor ±Inf
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
