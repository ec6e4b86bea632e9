package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var (
	convertKilograms float64
	convertNewtons   float64
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert between mass (kg) and weight (N)",
	Long: `Convert a mass in kilograms to a weight in newtons (W = m·g), or a
weight back to a mass (m = W/g). Gravity comes from GRAVITY (default 9.81 m/s²).

Examples:
  gocable convert --kg 10
  gocable convert --newtons 98.1
  gocable convert --kg 25 --newtons 500`,
	Run: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().Float64Var(&convertKilograms, "kg", 0, "Mass to convert (kg)")
	convertCmd.Flags().Float64VarP(&convertNewtons, "newtons", "n", 0, "Weight to convert (N)")
}

func runConvert(cmd *cobra.Command, args []string) {
	flags := cmd.Flags()
	if !flags.Changed("kg") && !flags.Changed("newtons") {
		fmt.Println("Error: Please provide --kg or --newtons.")
		fmt.Println("Use 'gocable convert --help' for usage information.")
		return
	}

	cfg, _ := setup()
	solver := newSolver(cfg)

	fmt.Println()
	fmt.Println("UNIT CONVERSION:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Gravity (g):\t%.3f m/s²\n", solver.Config().Gravity)

	if flags.Changed("kg") {
		n, err := solver.KilogramsToNewtons(convertKilograms)
		if err != nil {
			fmt.Fprintf(w, "  %.3f kg:\terror: %v\n", convertKilograms, err)
		} else {
			fmt.Fprintf(w, "  %.3f kg × g:\t%.3f N\n", convertKilograms, n)
		}
	}
	if flags.Changed("newtons") {
		kg, err := solver.NewtonsToKilograms(convertNewtons)
		if err != nil {
			fmt.Fprintf(w, "  %.3f N:\terror: %v\n", convertNewtons, err)
		} else {
			fmt.Fprintf(w, "  %.3f N / g:\t%.3f kg\n", convertNewtons, kg)
		}
	}
	w.Flush()
	fmt.Println()
}
