package diagram

import (
	"fmt"

	"github.com/guptarohit/asciigraph"
)

// DrawSweepGraph plots T1 and T2 of a sweep as terminal line charts, one
// column per sweep step. An empty sweep draws nothing.
func DrawSweepGraph(points []SweepPoint) string {
	if len(points) == 0 {
		return ""
	}

	t1 := make([]float64, len(points))
	t2 := make([]float64, len(points))
	for i, p := range points {
		t1[i] = p.T1
		t2[i] = p.T2
	}

	first, last := points[0].Theta1, points[len(points)-1].Theta1
	return asciigraph.PlotMany([][]float64{t1, t2},
		asciigraph.Height(12),
		asciigraph.Width(60),
		asciigraph.Precision(1),
		asciigraph.Caption(fmt.Sprintf("T1, T2 (N) for θ1 = %.0f° … %.0f°", first, last)),
	)
}
