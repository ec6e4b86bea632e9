package equilibrium

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gocable/internal/physics"
)

func newTestSolver() *Solver {
	return NewSolver(DefaultConfig())
}

func relClose(t *testing.T, want, got float64, msgAndArgs ...interface{}) {
	t.Helper()
	tol := 1e-6 * math.Max(1, math.Abs(want))
	assert.InDelta(t, want, got, tol, msgAndArgs...)
}

func TestResolveTensionsEquilibriumIdentity(t *testing.T) {
	s := newTestSolver()
	weights := []float64{1, 50, 100, 437.5, 1000, 2500}

	for _, w := range weights {
		for a := 1.0; a < 90; a += 7 {
			for b := 1.0; b < 90; b += 11 {
				ten, err := s.ResolveTensions(w, a, b)
				require.NoError(t, err)

				r1, r2 := physics.Radians(a), physics.Radians(b)
				relClose(t, ten.T1*math.Cos(r1), ten.T2*math.Cos(r2), "horizontal balance w=%g θ1=%g θ2=%g", w, a, b)
				relClose(t, w, ten.T1*math.Sin(r1)+ten.T2*math.Sin(r2), "vertical balance w=%g θ1=%g θ2=%g", w, a, b)
				assert.GreaterOrEqual(t, ten.T1, 0.0)
				assert.GreaterOrEqual(t, ten.T2, 0.0)
			}
		}
	}
}

func TestResolveTensionsSymmetry(t *testing.T) {
	s := newTestSolver()
	for _, a := range []float64{5, 30, 45, 60, 89} {
		ten, err := s.ResolveTensions(250, a, a)
		require.NoError(t, err)
		assert.Equal(t, ten.T1, ten.T2, "θ=%g", a)
	}
}

func TestResolveTensionsLinearInWeight(t *testing.T) {
	s := newTestSolver()
	base, err := s.ResolveTensions(100, 25, 70)
	require.NoError(t, err)

	for _, k := range []float64{0.5, 2, 3.7, 10} {
		scaled, err := s.ResolveTensions(k*100, 25, 70)
		require.NoError(t, err)
		relClose(t, k*base.T1, scaled.T1)
		relClose(t, k*base.T2, scaled.T2)
	}
}

func TestResolveTensionsKnownCases(t *testing.T) {
	s := newTestSolver()

	tests := []struct {
		name           string
		w, t1, t2      float64
		wantT1, wantT2 float64
	}{
		{"equal 45°", 100, 45, 45, 70.7107, 70.7107},
		{"30° and 60°", 100, 30, 60, 50, 86.6025},
		{"60° and 30°", 100, 60, 30, 86.6025, 50},
		{"horizontal left cable", 100, 0, 60, 57.7350, 115.4701},
		{"vertical right cable", 100, 30, 90, 0, 100},
		{"zero weight", 0, 40, 50, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ten, err := s.ResolveTensions(tc.w, tc.t1, tc.t2)
			require.NoError(t, err)
			assert.InDelta(t, tc.wantT1, ten.T1, 1e-3)
			assert.InDelta(t, tc.wantT2, ten.T2, 1e-3)
		})
	}
}

func TestResolveTensionsSingular(t *testing.T) {
	s := newTestSolver()
	pairs := [][2]float64{{0, 180}, {0, 0}, {90, 90}, {10, 170}, {179.99999999999, 0}}

	for _, p := range pairs {
		ten, err := s.ResolveTensions(100, p[0], p[1])
		var singular *SingularConfigurationError
		require.True(t, errors.As(err, &singular), "θ1=%g θ2=%g: got %v", p[0], p[1], err)
		assert.Equal(t, p[0], singular.Theta1)
		assert.Equal(t, p[1], singular.Theta2)
		assert.Equal(t, Tensions{}, ten)
		assert.False(t, math.IsNaN(ten.T1) || math.IsInf(ten.T1, 0))
	}
}

func TestResolveTensionsDomainErrors(t *testing.T) {
	s := newTestSolver()

	tests := []struct {
		name      string
		w, t1, t2 float64
		field     string
	}{
		{"negative weight", -1, 45, 45, "weight"},
		{"NaN weight", math.NaN(), 45, 45, "weight"},
		{"infinite weight", math.Inf(1), 45, 45, "weight"},
		{"negative angle", 100, -5, 45, "theta1"},
		{"angle past 180", 100, 45, 181, "theta2"},
		{"straight angle with non-singular partner", 100, 30, 180, "theta2"},
		{"NaN angle", 100, 45, math.NaN(), "theta2"},
		{"cable would push", 100, 120, 30, "theta1+theta2"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.ResolveTensions(tc.w, tc.t1, tc.t2)
			var domain *DomainError
			require.True(t, errors.As(err, &domain), "got %v", err)
			assert.Equal(t, tc.field, domain.Field)
		})
	}
}

func TestSolutionMatchesResolveTensions(t *testing.T) {
	s := newTestSolver()
	want, err := s.ResolveTensions(320, 35, 55)
	require.NoError(t, err)

	//nolint:staticcheck // the alias must keep returning the canonical tensions
	got, err := s.Solution(320, 35, 55)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestKilogramsToNewtons(t *testing.T) {
	s := newTestSolver()

	n, err := s.KilogramsToNewtons(10)
	require.NoError(t, err)
	assert.InDelta(t, 98.1, n, 1e-9)

	n, err = s.KilogramsToNewtons(0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, n)

	for _, bad := range []float64{-1, math.NaN(), math.Inf(-1)} {
		_, err = s.KilogramsToNewtons(bad)
		var domain *DomainError
		assert.True(t, errors.As(err, &domain), "kg=%g", bad)
	}
}

func TestNewtonsToKilograms(t *testing.T) {
	s := newTestSolver()
	kg, err := s.NewtonsToKilograms(98.1)
	require.NoError(t, err)
	assert.InDelta(t, 10, kg, 1e-9)

	_, err = s.NewtonsToKilograms(-3)
	assert.Error(t, err)
}

func TestCustomGravity(t *testing.T) {
	s := NewSolver(Config{Gravity: 1.62})
	n, err := s.KilogramsToNewtons(10)
	require.NoError(t, err)
	assert.InDelta(t, 16.2, n, 1e-9)
	assert.Equal(t, physics.DefaultSingularTolerance, s.Config().SingularTolerance)
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
	assert.Error(t, Config{Gravity: -9.81, SingularTolerance: 1e-9}.Validate())
	assert.Error(t, Config{Gravity: 9.81, SingularTolerance: 0}.Validate())
	assert.Error(t, Config{Gravity: math.NaN(), SingularTolerance: 1e-9}.Validate())
}

func TestInputValidate(t *testing.T) {
	assert.NoError(t, Input{Weight: 100, Theta1: 45, Theta2: 45}.Validate())
	assert.NoError(t, Input{Weight: 0, Theta1: 0, Theta2: 179.5}.Validate())
	assert.Error(t, Input{Weight: -1, Theta1: 45, Theta2: 45}.Validate())
	assert.Error(t, Input{Weight: 100, Theta1: 180, Theta2: 45}.Validate())
}

func TestValidateInputMatchesResolveOrder(t *testing.T) {
	s := newTestSolver()

	var singular *SingularConfigurationError
	assert.True(t, errors.As(s.ValidateInput(Input{Weight: 10, Theta1: 0, Theta2: 180}), &singular))

	// Input.Validate stays strict on the half-open range
	var domain *DomainError
	require.True(t, errors.As(Input{Weight: 10, Theta1: 0, Theta2: 180}.Validate(), &domain))
	assert.Equal(t, "theta2", domain.Field)

	require.True(t, errors.As(s.ValidateInput(Input{Weight: 10, Theta1: 30, Theta2: 180}), &domain))
	assert.Equal(t, "theta2", domain.Field)

	require.True(t, errors.As(s.ValidateInput(Input{Weight: -1, Theta1: 30, Theta2: 60}), &domain))
	assert.Equal(t, "weight", domain.Field)

	assert.NoError(t, s.ValidateInput(Input{Weight: 0, Theta1: 30, Theta2: 60}))
}
