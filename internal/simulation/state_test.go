package simulation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gocable/internal/equilibrium"
	"github.com/alexiusacademia/gocable/internal/models"
)

func newState(t *testing.T) *State {
	t.Helper()
	s, err := New(equilibrium.NewSolver(equilibrium.DefaultConfig()), equilibrium.AnchorsForViewport(1350, 840))
	require.NoError(t, err)
	return s
}

func TestNewStartsAtInitialValues(t *testing.T) {
	s := newState(t)

	in := s.Inputs()
	assert.Equal(t, 100.0, in.Weight)
	assert.Equal(t, 45.0, in.Theta1)
	assert.Equal(t, 45.0, in.Theta2)

	snap := s.Snapshot()
	assert.InDelta(t, 70.71, snap.Tensions.T1, 1e-2)
	assert.InDelta(t, 674.5, snap.Position.X, 1e-9)
}

func TestNudgesClampToInteractiveRange(t *testing.T) {
	s := newState(t)

	for i := 0; i < 100; i++ {
		_, err := s.NudgeTheta1(-1)
		require.NoError(t, err)
	}
	assert.Equal(t, 0.0, s.Inputs().Theta1)

	for i := 0; i < 100; i++ {
		_, _ = s.NudgeTheta2(+1)
	}
	assert.Equal(t, 90.0, s.Inputs().Theta2)
}

func TestSingularChangeKeepsLastValidResult(t *testing.T) {
	s := newState(t)

	_, err := s.SetAngles(90, 89)
	require.NoError(t, err)
	valid := s.Snapshot()

	res, err := s.NudgeTheta2(+1)
	var singular *equilibrium.SingularConfigurationError
	require.True(t, errors.As(err, &singular))
	assert.Equal(t, valid, res)
	assert.Equal(t, valid, s.Snapshot())

	// Moving away from the singular pair solves again
	res, err = s.NudgeTheta1(-10)
	require.NoError(t, err)
	assert.Equal(t, 80.0, res.Input.Theta1)
	assert.Equal(t, 90.0, res.Input.Theta2)
}

func TestSetWeightRejectsNegative(t *testing.T) {
	s := newState(t)
	before := s.Snapshot()

	res, err := s.SetWeight(-20)
	var domain *equilibrium.DomainError
	require.True(t, errors.As(err, &domain))
	assert.Equal(t, before, res)
	assert.Equal(t, 100.0, s.Inputs().Weight)

	_, err = s.SetMass(-1)
	assert.Error(t, err)

	res, err = s.SetMass(10)
	require.NoError(t, err)
	assert.InDelta(t, 98.1, res.Input.Weight, 1e-9)
}

func TestDragClampsWeight(t *testing.T) {
	s := newState(t)

	// No active drag
	res, err := s.DragTo(50)
	require.NoError(t, err)
	assert.Equal(t, 100.0, res.Input.Weight)

	s.BeginDrag()
	res, err = s.DragTo(30)
	require.NoError(t, err)
	assert.Equal(t, 160.0, res.Input.Weight)

	res, _ = s.DragTo(10_000)
	assert.Equal(t, 1000.0, res.Input.Weight)

	res, _ = s.DragTo(-10_000)
	assert.Equal(t, 50.0, res.Input.Weight)
	s.EndDrag()

	res, _ = s.DragTo(100)
	assert.Equal(t, 50.0, res.Input.Weight)
}

func TestLoadAndRecord(t *testing.T) {
	s := newState(t)

	res, err := s.Load(models.Simulation{Weight: 100, Theta1: 30, Theta2: 60})
	require.NoError(t, err)
	assert.InDelta(t, 50, res.Tensions.T1, 1e-9)

	rec := s.Record()
	assert.Equal(t, 100, rec.Weight)
	assert.Equal(t, 30, rec.Theta1)
	assert.Equal(t, 60, rec.Theta2)
	assert.InDelta(t, 50, rec.Tension1, 1e-9)
	assert.InDelta(t, 86.6025, rec.Tension2, 1e-4)

	// Angles outside the interactive range are clamped on load
	res, err = s.Load(models.Simulation{Weight: 100, Theta1: 120, Theta2: 45})
	require.NoError(t, err)
	assert.Equal(t, 90.0, res.Input.Theta1)
}
