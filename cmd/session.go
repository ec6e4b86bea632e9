package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/alexiusacademia/gocable/internal/client"
	"github.com/alexiusacademia/gocable/internal/equilibrium"
	"github.com/alexiusacademia/gocable/internal/simulation"
)

var sessionOffline bool

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Interactive solver session",
	Long: `Start an interactive session at W = 100 N, θ1 = θ2 = 45°. Each command
changes the configuration and re-solves it; a change that cannot be solved
keeps the last valid state. Angles are held to whole degrees in 0°..90° and
dragged weights to 50..1000 N.

Type 'help' inside the session for the command list. 'save' and 'load <id>'
use the record API at API_URL unless --offline is given.`,
	Run: runSession,
}

func init() {
	rootCmd.AddCommand(sessionCmd)

	sessionCmd.Flags().BoolVar(&sessionOffline, "offline", false, "Disable save and load")
}

func runSession(cmd *cobra.Command, args []string) {
	cfg, logger := setup()
	defer logger.Sync()

	anchors := equilibrium.AnchorsForViewport(cfg.ViewportWidth, cfg.ViewportHeight)
	state, err := simulation.New(newSolver(cfg), anchors)
	if err != nil {
		printSolveError(err)
		return
	}

	var recorder simulation.Recorder
	if !sessionOffline {
		recorder = client.New(cfg.APIURL)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Println("gocable session, type 'help' for commands")
	console := simulation.NewConsole(state, recorder, logger, os.Stdout)
	if err := console.Run(ctx, os.Stdin); err != nil && ctx.Err() == nil {
		logger.Error("session", zap.Error(err))
	}
}
