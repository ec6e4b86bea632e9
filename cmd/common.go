package cmd

import (
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/alexiusacademia/gocable/internal/config"
	"github.com/alexiusacademia/gocable/internal/diagram"
	"github.com/alexiusacademia/gocable/internal/equilibrium"
	"github.com/alexiusacademia/gocable/internal/logging"
	"github.com/alexiusacademia/gocable/internal/physics"
)

// setup loads the environment configuration and builds the logger
func setup() (*config.Config, *zap.Logger) {
	cfg := config.Load()
	logger := logging.NewOrNop(cfg.LogLevel, !cfg.IsProduction())
	return cfg, logger
}

// newSolver builds a solver from the environment, falling back to defaults
// when the configured gravity or tolerance is unusable.
func newSolver(cfg *config.Config) *equilibrium.Solver {
	sc := cfg.Solver()
	if err := sc.Validate(); err != nil {
		fmt.Printf("Warning: %v; using defaults\n", err)
		sc = equilibrium.DefaultConfig()
	}
	return equilibrium.NewSolver(sc)
}

func printSolveError(err error) {
	fmt.Printf("Error: %v\n", err)

	var singular *equilibrium.SingularConfigurationError
	if errors.As(err, &singular) {
		fmt.Println("  The cables are collinear; change either angle so that θ1+θ2 is")
		fmt.Println("  strictly between 0° and 180°.")
	}
}

func forceData(res *equilibrium.Result, g equilibrium.AnchorGeometry) diagram.ForceDiagramData {
	return diagram.ForceDiagramData{
		Weight:  res.Input.Weight,
		Mass:    res.Mass,
		Theta1:  res.Input.Theta1,
		Theta2:  res.Input.Theta2,
		T1:      res.Tensions.T1,
		T2:      res.Tensions.T2,
		Anchor1: diagram.Point{X: g.Anchor1X, Y: g.AnchorY},
		Anchor2: diagram.Point{X: g.Anchor2X, Y: g.AnchorY},
		Body:    diagram.Point{X: res.Position.X, Y: res.Position.Y},
	}
}

func sinDeg(deg float64) float64 {
	return math.Sin(physics.Radians(deg))
}
