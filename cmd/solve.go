package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gocable/internal/diagram"
	"github.com/alexiusacademia/gocable/internal/scene"
)

var (
	// Load
	solveWeight float64
	solveMass   float64

	// Cable angles (degrees)
	solveTheta1 float64
	solveTheta2 float64

	// Scene
	solveFile   string
	solveWidth  int
	solveHeight int

	// Output
	solveShowDiagram bool
	solveExportFile  string
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Resolve cable tensions and body position",
	Long: `Resolve the tension in both cables holding a suspended body, and the
position where the body hangs between the two anchors.

Equilibrium equations:
  ΣFx = 0:  T1·cos θ1 = T2·cos θ2
  ΣFy = 0:  T1·sin θ1 + T2·sin θ2 = W

  T1 = W·cos θ2 / sin(θ1+θ2)
  T2 = W·cos θ1 / sin(θ1+θ2)

Angles are measured from the horizontal and must be in [0°, 180°).
Configurations with θ1+θ2 at 0° or 180° have no unique solution.

The anchors sit at 1/4 and 3/4 of the viewport width, 1/4 of the way down.

Examples:
  # 100 N body, cables at 30° and 60°
  gocable solve -w 100 --theta1 30 --theta2 60

  # Load given as a mass, with the ASCII diagram
  gocable solve --mass 10 --theta1 45 --theta2 45 --diagram

  # Scene file, angles overridden, force diagram exported
  gocable solve -f scene.yaml --theta1 40 -o forces.png`,
	Run: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)

	// Load flags
	solveCmd.Flags().Float64VarP(&solveWeight, "weight", "w", 0, "Weight of the body (N)")
	solveCmd.Flags().Float64VarP(&solveMass, "mass", "m", 0, "Mass of the body (kg), used when no weight is given")

	// Angle flags
	solveCmd.Flags().Float64Var(&solveTheta1, "theta1", 45, "Angle of cable 1 from the horizontal (°)")
	solveCmd.Flags().Float64Var(&solveTheta2, "theta2", 45, "Angle of cable 2 from the horizontal (°)")

	// Scene flags
	solveCmd.Flags().StringVarP(&solveFile, "file", "f", "", "Scene file (yaml or json)")
	solveCmd.Flags().IntVar(&solveWidth, "width", 0, "Viewport width (px)")
	solveCmd.Flags().IntVar(&solveHeight, "height", 0, "Viewport height (px)")

	// Output flags
	solveCmd.Flags().BoolVar(&solveShowDiagram, "diagram", false, "Show ASCII scene and force diagram")
	solveCmd.Flags().StringVarP(&solveExportFile, "output", "o", "", "Export force diagram to file (png, svg, pdf)")
}

func runSolve(cmd *cobra.Command, args []string) {
	cfg, _ := setup()
	solver := newSolver(cfg)

	sc, err := buildScene(cmd, cfg.ViewportWidth, cfg.ViewportHeight)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	in, err := sc.Input(solver)
	if err != nil {
		printSolveError(err)
		return
	}

	anchors := sc.Anchors()
	res, err := solver.Solve(in, anchors)
	if err != nil {
		printSolveError(err)
		return
	}

	// Print results
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          SUSPENDED BODY STATIC EQUILIBRIUM")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	// Input summary
	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if sc.Name != "" {
		fmt.Fprintf(w, "  Scene:\t%s\n", sc.Name)
	}
	fmt.Fprintf(w, "  Weight (W):\t%.2f N\n", res.Input.Weight)
	fmt.Fprintf(w, "  Mass (m = W/g):\t%.3f kg\n", res.Mass)
	fmt.Fprintf(w, "  Gravity (g):\t%.3f m/s²\n", solver.Config().Gravity)
	fmt.Fprintf(w, "  Cable 1 angle (θ1):\t%.2f°\n", res.Input.Theta1)
	fmt.Fprintf(w, "  Cable 2 angle (θ2):\t%.2f°\n", res.Input.Theta2)
	w.Flush()
	fmt.Println()

	// Scene geometry
	fmt.Println("SCENE GEOMETRY (px, y down):")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Viewport:\t%d × %d\n", sc.Viewport.Width, sc.Viewport.Height)
	fmt.Fprintf(w, "  Anchor 1:\t(%.0f, %.0f)\n", anchors.Anchor1X, anchors.AnchorY)
	fmt.Fprintf(w, "  Anchor 2:\t(%.0f, %.0f)\n", anchors.Anchor2X, anchors.AnchorY)
	fmt.Fprintf(w, "  Span:\t%.0f\n", anchors.Span())
	w.Flush()
	fmt.Println()

	// Tensions
	fmt.Println("CABLE TENSIONS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  sin(θ1+θ2):\t%.6f\n", sinDeg(res.Input.Theta1+res.Input.Theta2))
	fmt.Fprintf(w, "  T1 = W·cos θ2 / sin(θ1+θ2):\t%.4f N\n", res.Tensions.T1)
	fmt.Fprintf(w, "  T2 = W·cos θ1 / sin(θ1+θ2):\t%.4f N\n", res.Tensions.T2)
	w.Flush()
	fmt.Println()

	// Result
	fmt.Println("RESULT:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	fmt.Print(diagram.DrawSummaryBox("EQUILIBRIUM", []string{
		fmt.Sprintf("T1 = %.2f N", res.Tensions.T1),
		fmt.Sprintf("T2 = %.2f N", res.Tensions.T2),
		fmt.Sprintf("Body at (%.1f, %.1f) px", res.Position.X, res.Position.Y),
	}))
	fmt.Println()

	data := forceData(res, anchors)

	if solveShowDiagram {
		fmt.Println(diagram.DrawSceneDiagram(data))
		fmt.Println(diagram.DrawForceTable(data))
	}

	if solveExportFile != "" {
		if err := diagram.ExportForceDiagram(data, solveExportFile); err != nil {
			fmt.Printf("Error exporting diagram: %v\n", err)
		} else {
			fmt.Printf("Diagram exported to: %s\n", solveExportFile)
		}
	}
}

// buildScene starts from the scene file (or the default scene) and applies
// the flags the user set explicitly.
func buildScene(cmd *cobra.Command, width, height int) (*scene.Scene, error) {
	sc := scene.Default()
	sc.Viewport = scene.Viewport{Width: width, Height: height}

	if solveFile != "" {
		loaded, err := scene.LoadFromFile(solveFile)
		if err != nil {
			return nil, err
		}
		sc = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("weight") {
		sc.Weight = scene.Float(solveWeight)
		sc.Mass = nil
	}
	if flags.Changed("mass") && !flags.Changed("weight") {
		sc.Mass = scene.Float(solveMass)
		sc.Weight = nil
	}
	if flags.Changed("theta1") {
		sc.Theta1 = solveTheta1
	}
	if flags.Changed("theta2") {
		sc.Theta2 = solveTheta2
	}
	if flags.Changed("width") {
		sc.Viewport.Width = solveWidth
	}
	if flags.Changed("height") {
		sc.Viewport.Height = solveHeight
	}

	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return sc, nil
}
