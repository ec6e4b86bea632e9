package scene

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gocable/internal/equilibrium"
)

func TestLoadYAML(t *testing.T) {
	doc := `
name: textbook
description: 30/60 split
viewport:
  width: 800
  height: 600
weight: 100
theta1: 30
theta2: 60
`
	s, err := Load(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, "textbook", s.Name)
	assert.Equal(t, 800, s.Viewport.Width)
	require.NotNil(t, s.Weight)
	assert.Equal(t, 100.0, *s.Weight)
	assert.Nil(t, s.Mass)
	assert.Equal(t, equilibrium.AnchorGeometry{Anchor1X: 200, Anchor2X: 600, AnchorY: 150}, s.Anchors())
}

func TestLoadJSONWithMass(t *testing.T) {
	doc := `{"name": "crate", "mass": 10, "theta1": 45, "theta2": 45}`
	s, err := Load(strings.NewReader(doc))
	require.NoError(t, err)

	// Viewport falls back to the default
	assert.Equal(t, 1350, s.Viewport.Width)
	assert.Equal(t, 840, s.Viewport.Height)

	in, err := s.Input(equilibrium.NewSolver(equilibrium.DefaultConfig()))
	require.NoError(t, err)
	assert.InDelta(t, 98.1, in.Weight, 1e-9)
	assert.Equal(t, 45.0, in.Theta1)
}

func TestLoadRejectsInvalidScenes(t *testing.T) {
	tests := map[string]string{
		"empty":          ``,
		"no load":        `{"theta1": 45, "theta2": 45}`,
		"negative mass":  `{"mass": -2, "theta1": 45, "theta2": 45}`,
		"bad viewport":   `{"weight": 10, "theta1": 45, "theta2": 45, "viewport": {"width": 0, "height": 10}}`,
		"unknown field":  `{"weight": 10, "theta1": 45, "theta2": 45, "angle": 3}`,
		"malformed yaml": "weight: [",
	}

	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(strings.NewReader(doc))
			assert.Error(t, err)
		})
	}
}

func TestInputRejectsOutOfRangeAngle(t *testing.T) {
	s := Default()
	s.Theta2 = 200
	_, err := s.Input(equilibrium.NewSolver(equilibrium.DefaultConfig()))
	assert.Error(t, err)
}

func TestInputReportsCollinearCablesAsSingular(t *testing.T) {
	s := Default()
	s.Theta1 = 0
	s.Theta2 = 180
	_, err := s.Input(equilibrium.NewSolver(equilibrium.DefaultConfig()))

	var singular *equilibrium.SingularConfigurationError
	assert.True(t, errors.As(err, &singular), "got %v", err)

	// Past 180° is still out of range
	s.Theta1 = 30
	s.Theta2 = 180
	_, err = s.Input(equilibrium.NewSolver(equilibrium.DefaultConfig()))
	var domain *equilibrium.DomainError
	assert.True(t, errors.As(err, &domain), "got %v", err)
}

func TestZeroWeightIsALoad(t *testing.T) {
	s, err := Load(strings.NewReader(`{"weight": 0, "theta1": 30, "theta2": 60}`))
	require.NoError(t, err)
	require.NotNil(t, s.Weight)

	solver := equilibrium.NewSolver(equilibrium.DefaultConfig())
	in, err := s.Input(solver)
	require.NoError(t, err)
	assert.Equal(t, 0.0, in.Weight)

	res, err := solver.Solve(in, s.Anchors())
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.Tensions.T1)
	assert.Equal(t, 0.0, res.Tensions.T2)
}

func TestWeightWinsOverMass(t *testing.T) {
	s := Default()
	s.Mass = Float(50)
	in, err := s.Input(equilibrium.NewSolver(equilibrium.DefaultConfig()))
	require.NoError(t, err)
	assert.Equal(t, 100.0, in.Weight)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte("weight: 250\ntheta1: 20\ntheta2: 70\n"), 0o644))

	s, err := LoadFromFile(path)
	require.NoError(t, err)
	require.NotNil(t, s.Weight)
	assert.Equal(t, 250.0, *s.Weight)

	_, err = LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
