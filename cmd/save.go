package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/alexiusacademia/gocable/internal/client"
	"github.com/alexiusacademia/gocable/internal/equilibrium"
	"github.com/alexiusacademia/gocable/internal/simulation"
)

var (
	saveWeight float64
	saveMass   float64
	saveTheta1 float64
	saveTheta2 float64
)

var saveCmd = &cobra.Command{
	Use:   "save",
	Short: "Solve a configuration and store it in the record API",
	Long: `Solve a configuration the way the interactive session does (angles
rounded and held to 0°..90°) and store the result through the record API
at API_URL. A failed save is reported once and not retried.

Examples:
  gocable save -w 100 --theta1 30 --theta2 60
  API_URL=http://records:5000 gocable save --mass 12 --theta1 50 --theta2 40`,
	Run: runSave,
}

func init() {
	rootCmd.AddCommand(saveCmd)

	saveCmd.Flags().Float64VarP(&saveWeight, "weight", "w", 0, "Weight of the body (N)")
	saveCmd.Flags().Float64VarP(&saveMass, "mass", "m", 0, "Mass of the body (kg), used when no weight is given")
	saveCmd.Flags().Float64Var(&saveTheta1, "theta1", 0, "Angle of cable 1 from the horizontal (°) [required]")
	saveCmd.Flags().Float64Var(&saveTheta2, "theta2", 0, "Angle of cable 2 from the horizontal (°) [required]")

	saveCmd.MarkFlagRequired("theta1")
	saveCmd.MarkFlagRequired("theta2")
}

func runSave(cmd *cobra.Command, args []string) {
	cfg, logger := setup()
	defer logger.Sync()

	solver := newSolver(cfg)
	state, err := simulation.New(solver, equilibrium.AnchorsForViewport(cfg.ViewportWidth, cfg.ViewportHeight))
	if err != nil {
		printSolveError(err)
		return
	}

	flags := cmd.Flags()
	switch {
	case flags.Changed("weight"):
		_, err = state.SetWeight(saveWeight)
	case flags.Changed("mass"):
		_, err = state.SetMass(saveMass)
	default:
		fmt.Println("Error: Please provide --weight or --mass.")
		return
	}
	if err != nil {
		printSolveError(err)
		return
	}

	res, err := state.SetAngles(saveTheta1, saveTheta2)
	if err != nil {
		printSolveError(err)
		return
	}
	if res.Input.Theta1 != saveTheta1 || res.Input.Theta2 != saveTheta2 {
		fmt.Printf("Note: angles adjusted to θ1=%.0f°, θ2=%.0f°\n", res.Input.Theta1, res.Input.Theta2)
	}

	rec := state.Record()
	api := client.New(cfg.APIURL)
	saved, err := api.Save(context.Background(), recordInput(rec.Weight, rec.Theta1, rec.Theta2, rec.Tension1, rec.Tension2))
	if err != nil {
		logger.Error("save simulation", zap.String("api", cfg.APIURL), zap.Error(err))
		fmt.Printf("Error saving simulation: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Printf("Simulation saved: %s\n", saved.ID)
	printRecord(saved)
}
