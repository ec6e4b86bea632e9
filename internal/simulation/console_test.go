package simulation

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/alexiusacademia/gocable/internal/models"
)

type fakeRecorder struct {
	saved   []models.SimulationInput
	records map[string]models.Simulation
	failing bool
}

func (f *fakeRecorder) Save(_ context.Context, in models.SimulationInput) (*models.Simulation, error) {
	if f.failing {
		return nil, errors.New("connection refused")
	}
	f.saved = append(f.saved, in)
	sim := in.ToSimulation()
	sim.ID = "rec-1"
	return &sim, nil
}

func (f *fakeRecorder) Get(_ context.Context, id string) (*models.Simulation, error) {
	rec, ok := f.records[id]
	if !ok {
		return nil, errors.New("simulation not found")
	}
	return &rec, nil
}

func TestConsoleRunsScript(t *testing.T) {
	rec := &fakeRecorder{}
	var out bytes.Buffer
	c := NewConsole(newState(t), rec, zap.NewNop(), &out)

	script := strings.Join([]string{
		"t1 -15",
		"t2 +15",
		"",
		"save",
		"quit",
		"t1 +5",
	}, "\n")
	require.NoError(t, c.Run(context.Background(), strings.NewReader(script)))

	require.Len(t, rec.saved, 1)
	assert.Equal(t, 30, *rec.saved[0].Theta1)
	assert.Equal(t, 60, *rec.saved[0].Theta2)
	assert.InDelta(t, 50.0, *rec.saved[0].Tension1, 1e-9)
	assert.Contains(t, out.String(), "saved rec-1")

	// Commands after quit are not run
	assert.Equal(t, 30.0, c.state.Inputs().Theta1)
}

func TestConsoleDragAndMass(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(newState(t), nil, zap.NewNop(), &out)
	ctx := context.Background()

	require.NoError(t, c.Exec(ctx, "drag", []string{"50"}))
	assert.Equal(t, 200.0, c.state.Inputs().Weight)

	require.NoError(t, c.Exec(ctx, "mass", []string{"10"}))
	assert.InDelta(t, 98.1, c.state.Inputs().Weight, 1e-9)
	assert.Contains(t, out.String(), "(10.00 kg)")
}

func TestConsoleErrorsKeepState(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(newState(t), nil, zap.NewNop(), &out)
	ctx := context.Background()

	assert.Error(t, c.Exec(ctx, "weight", []string{"-5"}))
	assert.Contains(t, out.String(), "keeping last valid state")
	assert.Equal(t, 100.0, c.state.Snapshot().Input.Weight)

	assert.EqualError(t, c.Exec(ctx, "t1", nil), "missing argument 1")
	assert.EqualError(t, c.Exec(ctx, "angles", []string{"10", "x"}), `argument 2: "x" is not a number`)
	assert.EqualError(t, c.Exec(ctx, "save", nil), "no record service configured")
	assert.Error(t, c.Exec(ctx, "fly", nil))
}

func TestConsoleLoad(t *testing.T) {
	rec := &fakeRecorder{records: map[string]models.Simulation{
		"abc": {ID: "abc", Weight: 300, Theta1: 30, Theta2: 60},
	}}
	var out bytes.Buffer
	c := NewConsole(newState(t), rec, zap.NewNop(), &out)
	ctx := context.Background()

	require.NoError(t, c.Exec(ctx, "load", []string{"abc"}))
	snap := c.state.Snapshot()
	assert.Equal(t, 300.0, snap.Input.Weight)
	assert.InDelta(t, 150.0, snap.Tensions.T1, 1e-9)

	assert.Error(t, c.Exec(ctx, "load", []string{"missing"}))
	assert.Error(t, c.Exec(ctx, "load", nil))
}

func TestConsoleSaveFailureIsReported(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(newState(t), &fakeRecorder{failing: true}, zap.NewNop(), &out)

	err := c.Exec(context.Background(), "save", nil)
	assert.EqualError(t, err, "connection refused")
}
