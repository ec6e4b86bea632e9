package equilibrium

import "fmt"

// DomainError reports an input outside the range the solver accepts:
// an angle outside [0°, 180°), a negative or non-finite weight, mass or tension.
type DomainError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("domain error: %s=%g: %s", e.Field, e.Value, e.Reason)
}

// SingularConfigurationError reports cable angles for which the equilibrium
// equations have no unique solution (θ1+θ2 at or near 0° or 180°).
type SingularConfigurationError struct {
	Theta1 float64
	Theta2 float64
}

func (e *SingularConfigurationError) Error() string {
	return fmt.Sprintf("singular configuration: θ1=%g°, θ2=%g° (θ1+θ2=%g°) has no unique equilibrium",
		e.Theta1, e.Theta2, e.Theta1+e.Theta2)
}
