package equilibrium

import (
	"math"

	"github.com/alexiusacademia/gocable/internal/physics"
)

// Solver resolves the two-cable equilibrium problem.
// It keeps no state between calls and is safe for concurrent use.
type Solver struct {
	cfg Config
}

// NewSolver creates a solver. Zero-valued fields of cfg take their defaults.
func NewSolver(cfg Config) *Solver {
	def := DefaultConfig()
	if cfg.Gravity == 0 {
		cfg.Gravity = def.Gravity
	}
	if cfg.SingularTolerance == 0 {
		cfg.SingularTolerance = def.SingularTolerance
	}
	return &Solver{cfg: cfg}
}

// Config returns the solver configuration
func (s *Solver) Config() Config {
	return s.cfg
}

// ResolveTensions solves the force balance of a body of the given weight held
// by two cables at theta1 and theta2 degrees above the horizontal:
//
//	T1·cos θ1 = T2·cos θ2
//	T1·sin θ1 + T2·sin θ2 = W
//
// giving T1 = W·cos θ2 / sin(θ1+θ2) and T2 = W·cos θ1 / sin(θ1+θ2).
func (s *Solver) ResolveTensions(weight, theta1, theta2 float64) (Tensions, error) {
	if err := checkWeight("weight", weight); err != nil {
		return Tensions{}, err
	}
	if err := s.checkAngles(theta1, theta2); err != nil {
		return Tensions{}, err
	}

	den := sinSum(theta1, theta2)
	r1 := physics.Radians(theta1)
	r2 := physics.Radians(theta2)
	t := Tensions{
		T1: weight * math.Cos(r2) / den,
		T2: weight * math.Cos(r1) / den,
	}

	// Round-off around 90° leaves tensions a few ulps below zero
	noise := s.cfg.SingularTolerance * weight
	if t.T1 < -noise || t.T2 < -noise {
		return Tensions{}, &DomainError{
			Field:  "theta1+theta2",
			Value:  theta1 + theta2,
			Reason: "a cable would have to push to hold the body",
		}
	}
	t.T1 = math.Max(t.T1, 0)
	t.T2 = math.Max(t.T2, 0)
	return t, nil
}

// ValidateInput applies the checks ResolveTensions would, in the same order,
// so a collinear pair such as (0°, 180°) is reported as singular.
func (s *Solver) ValidateInput(in Input) error {
	if err := checkWeight("weight", in.Weight); err != nil {
		return err
	}
	return s.checkAngles(in.Theta1, in.Theta2)
}

// checkAngles validates a pair of cable angles. A pair summing to 0° or 180°
// is reported as singular before the half-open range check, so (0°, 180°)
// is singular rather than out of range.
func (s *Solver) checkAngles(theta1, theta2 float64) error {
	if err := checkAngleBounds("theta1", theta1); err != nil {
		return err
	}
	if err := checkAngleBounds("theta2", theta2); err != nil {
		return err
	}
	if math.Abs(sinSum(theta1, theta2)) < s.cfg.SingularTolerance {
		return &SingularConfigurationError{Theta1: theta1, Theta2: theta2}
	}
	if err := checkAngle("theta1", theta1); err != nil {
		return err
	}
	return checkAngle("theta2", theta2)
}

// Solution returns the tensions shown on the tension labels.
//
// Deprecated: Solution is the same quantity as ResolveTensions; use ResolveTensions.
func (s *Solver) Solution(weight, theta1, theta2 float64) (Tensions, error) {
	return s.ResolveTensions(weight, theta1, theta2)
}

// MapBodyPosition places the body where the two cables, drawn from their
// anchors at theta1 and theta2 below the anchor line, meet.
//
// With vertical tension components V1 = T1·sin θ1, V2 = T2·sin θ2 and the
// horizontal component H, the body sits at
//
//	x = Anchor1X + span·V2/(V1+V2)
//	y = AnchorY  + span·V1·V2/((V1+V2)·H)
//
// Equal angles center the body, steeper cables hang it lower, and raising θ1
// with θ2 fixed moves it toward anchor 1. The result is not clamped.
func (s *Solver) MapBodyPosition(g AnchorGeometry, t Tensions, theta1, theta2 float64) (Position, error) {
	if err := checkWeight("tension1", t.T1); err != nil {
		return Position{}, err
	}
	if err := checkWeight("tension2", t.T2); err != nil {
		return Position{}, err
	}
	if err := s.checkAngles(theta1, theta2); err != nil {
		return Position{}, err
	}

	r1 := physics.Radians(theta1)
	r2 := physics.Radians(theta2)
	v1 := t.T1 * math.Sin(r1)
	v2 := t.T2 * math.Sin(r2)

	// A weightless body carries no tension; the shares do not depend on the
	// weight, so take them from a unit load.
	if v1+v2 == 0 {
		unit, err := s.ResolveTensions(1, theta1, theta2)
		if err != nil {
			return Position{}, err
		}
		t = unit
		v1 = t.T1 * math.Sin(r1)
		v2 = t.T2 * math.Sin(r2)
	}

	// The cables meet at depth span/(cot θ1 + cot θ2); a non-positive sum means
	// they fan out from the anchors and never meet below them.
	if cotSum(r1, r2) <= s.cfg.SingularTolerance {
		return Position{}, &DomainError{
			Field:  "theta1+theta2",
			Value:  theta1 + theta2,
			Reason: "cables do not meet below the anchors",
		}
	}

	h := (t.T1*math.Cos(r1) + t.T2*math.Cos(r2)) / 2

	span := g.Span()
	return Position{
		X: g.Anchor1X + span*v2/(v1+v2),
		Y: g.AnchorY + span*v1*v2/((v1+v2)*h),
	}, nil
}

// cotSum returns cot θ1 + cot θ2; a horizontal cable gives +Inf
func cotSum(r1, r2 float64) float64 {
	return math.Cos(r1)/math.Sin(r1) + math.Cos(r2)/math.Sin(r2)
}

// KilogramsToNewtons converts a mass to the weight it exerts: N = kg·g
func (s *Solver) KilogramsToNewtons(kg float64) (float64, error) {
	if err := checkWeight("mass", kg); err != nil {
		return 0, err
	}
	return kg * s.cfg.Gravity, nil
}

// NewtonsToKilograms converts a weight back to mass: kg = N/g
func (s *Solver) NewtonsToKilograms(n float64) (float64, error) {
	if err := checkWeight("weight", n); err != nil {
		return 0, err
	}
	return n / s.cfg.Gravity, nil
}

// Solve resolves the tensions for in and maps the body position within g
func (s *Solver) Solve(in Input, g AnchorGeometry) (*Result, error) {
	tensions, err := s.ResolveTensions(in.Weight, in.Theta1, in.Theta2)
	if err != nil {
		return nil, err
	}

	pos, err := s.MapBodyPosition(g, tensions, in.Theta1, in.Theta2)
	if err != nil {
		return nil, err
	}

	mass, err := s.NewtonsToKilograms(in.Weight)
	if err != nil {
		return nil, err
	}

	return &Result{
		Input:    in,
		Mass:     mass,
		Tensions: tensions,
		Position: pos,
	}, nil
}
