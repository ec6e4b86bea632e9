package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/alexiusacademia/gocable/internal/client"
	"github.com/alexiusacademia/gocable/internal/diagram"
	"github.com/alexiusacademia/gocable/internal/equilibrium"
	"github.com/alexiusacademia/gocable/internal/models"
	"github.com/alexiusacademia/gocable/internal/simulation"
)

var (
	historyLimit       int
	historyShowDiagram bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse simulations stored in the record API",
	Long: `Browse simulations stored in the record API at API_URL.

Subcommands:
  list    Recent simulations, newest first
  show    One simulation, re-solved for the body position`,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored simulations, newest first",
	Run:   runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a stored simulation",
	Args:  cobra.ExactArgs(1),
	Run:   runHistoryShow,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)

	historyListCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Number of simulations to list")
	historyShowCmd.Flags().BoolVar(&historyShowDiagram, "diagram", false, "Show ASCII scene diagram")
}

func runHistoryList(cmd *cobra.Command, args []string) {
	cfg, logger := setup()
	defer logger.Sync()

	sims, err := client.New(cfg.APIURL).List(context.Background(), historyLimit)
	if err != nil {
		logger.Error("list simulations", zap.String("api", cfg.APIURL), zap.Error(err))
		fmt.Printf("Error fetching history: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("SIMULATION HISTORY:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	if len(sims) == 0 {
		fmt.Println("  No simulations stored yet.")
		fmt.Println()
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  ID\tSaved\tW (N)\tθ1\tθ2\tT1 (N)\tT2 (N)\n")
	fmt.Fprintf(w, "  ──\t─────\t─────\t──\t──\t──────\t──────\n")
	for _, s := range sims {
		fmt.Fprintf(w, "  %s\t%s\t%d\t%d°\t%d°\t%.2f\t%.2f\n",
			s.ID, s.CreatedAt.Local().Format("2006-01-02 15:04"), s.Weight, s.Theta1, s.Theta2, s.Tension1, s.Tension2)
	}
	w.Flush()
	fmt.Println()
}

func runHistoryShow(cmd *cobra.Command, args []string) {
	cfg, logger := setup()
	defer logger.Sync()

	rec, err := client.New(cfg.APIURL).Get(context.Background(), args[0])
	if err != nil {
		logger.Error("get simulation", zap.String("id", args[0]), zap.Error(err))
		fmt.Printf("Error fetching simulation: %v\n", err)
		return
	}

	fmt.Println()
	printRecord(rec)

	// Re-solve to place the body; stored tensions are shown as saved
	anchors := equilibrium.AnchorsForViewport(cfg.ViewportWidth, cfg.ViewportHeight)
	state, err := simulation.New(newSolver(cfg), anchors)
	if err != nil {
		printSolveError(err)
		return
	}
	res, err := state.Load(*rec)
	if err != nil {
		printSolveError(err)
		return
	}

	fmt.Printf("  Body position: (%.1f, %.1f) px\n", res.Position.X, res.Position.Y)
	fmt.Println()

	if historyShowDiagram {
		fmt.Println(diagram.DrawSceneDiagram(forceData(&res, anchors)))
	}
}

func printRecord(s *models.Simulation) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  ID:\t%s\n", s.ID)
	fmt.Fprintf(w, "  Saved:\t%s\n", s.CreatedAt.Local().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(w, "  Weight (W):\t%d N\n", s.Weight)
	fmt.Fprintf(w, "  θ1 / θ2:\t%d° / %d°\n", s.Theta1, s.Theta2)
	fmt.Fprintf(w, "  T1:\t%.4f N\n", s.Tension1)
	fmt.Fprintf(w, "  T2:\t%.4f N\n", s.Tension2)
	w.Flush()
}

func recordInput(weight, theta1, theta2 int, t1, t2 float64) models.SimulationInput {
	return models.SimulationInput{Weight: &weight, Theta1: &theta1, Theta2: &theta2, Tension1: &t1, Tension2: &t2}
}
