package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gocable/internal/diagram"
	"github.com/alexiusacademia/gocable/internal/equilibrium"
)

var (
	sweepWeight     float64
	sweepTheta2     float64
	sweepFrom       float64
	sweepTo         float64
	sweepStep       float64
	sweepExportFile string
	sweepGraph      bool
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Tabulate tensions and body position as θ1 varies",
	Long: `Hold the weight and θ2 fixed and step θ1 through a range, printing the
cable tensions and body position at each step. Singular or out-of-range
steps are reported and skipped.

Examples:
  gocable sweep -w 100 --theta2 45 --from 5 --to 85 --step 5
  gocable sweep -w 250 --theta2 30 -o sweep.png`,
	Run: runSweep,
}

func init() {
	rootCmd.AddCommand(sweepCmd)

	sweepCmd.Flags().Float64VarP(&sweepWeight, "weight", "w", 100, "Weight of the body (N)")
	sweepCmd.Flags().Float64Var(&sweepTheta2, "theta2", 45, "Fixed angle of cable 2 (°)")
	sweepCmd.Flags().Float64Var(&sweepFrom, "from", 5, "First θ1 (°)")
	sweepCmd.Flags().Float64Var(&sweepTo, "to", 85, "Last θ1 (°)")
	sweepCmd.Flags().Float64Var(&sweepStep, "step", 5, "θ1 increment (°)")
	sweepCmd.Flags().BoolVarP(&sweepGraph, "graph", "g", true, "Plot tensions in the terminal")
	sweepCmd.Flags().StringVarP(&sweepExportFile, "output", "o", "", "Export sweep plot to file (png, svg, pdf)")
}

func runSweep(cmd *cobra.Command, args []string) {
	if sweepStep <= 0 || sweepTo < sweepFrom {
		fmt.Println("Error: --step must be positive and --to must not be below --from.")
		return
	}

	cfg, _ := setup()
	solver := newSolver(cfg)
	anchors := equilibrium.AnchorsForViewport(cfg.ViewportWidth, cfg.ViewportHeight)

	points, skipped := sweepTheta1(solver, anchors)

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("     θ1 SWEEP  (W = %.2f N, θ2 = %.1f°)\n", sweepWeight, sweepTheta2)
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()
	fmt.Print(diagram.DrawSweepTable(points))
	fmt.Println()

	if sweepGraph && len(points) > 1 {
		fmt.Println(diagram.DrawSweepGraph(points))
		fmt.Println()
	}

	for _, s := range skipped {
		fmt.Printf("  skipped %s\n", s)
	}
	if len(skipped) > 0 {
		fmt.Println()
	}

	if sweepExportFile != "" {
		if err := diagram.ExportSweepPlot(points, sweepExportFile); err != nil {
			fmt.Printf("Error exporting plot: %v\n", err)
		} else {
			fmt.Printf("Plot exported to: %s\n", sweepExportFile)
		}
	}
}

func sweepTheta1(solver *equilibrium.Solver, anchors equilibrium.AnchorGeometry) ([]diagram.SweepPoint, []string) {
	var (
		points  []diagram.SweepPoint
		skipped []string
	)

	// Step by index so rounding does not drop the last angle
	n := int((sweepTo-sweepFrom)/sweepStep + 1e-9)
	for i := 0; i <= n; i++ {
		theta1 := sweepFrom + float64(i)*sweepStep
		res, err := solver.Solve(equilibrium.Input{Weight: sweepWeight, Theta1: theta1, Theta2: sweepTheta2}, anchors)
		if err != nil {
			skipped = append(skipped, fmt.Sprintf("θ1=%.1f°: %v", theta1, err))
			continue
		}
		points = append(points, diagram.SweepPoint{
			Theta1: theta1,
			Theta2: sweepTheta2,
			T1:     res.Tensions.T1,
			T2:     res.Tensions.T2,
			BodyX:  res.Position.X,
			BodyY:  res.Position.Y,
		})
	}
	return points, skipped
}
