package diagram

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	weightColor   = color.RGBA{R: 0, G: 128, B: 0, A: 255}
	tension1Color = color.RGBA{R: 0, G: 0, B: 200, A: 255}
	tension2Color = color.RGBA{R: 200, G: 0, B: 0, A: 255}
)

// ExportForceDiagram exports the free-body diagram of the suspended body.
// Force vectors are drawn from the body, scaled so the largest has unit length.
func ExportForceDiagram(data ForceDiagramData, filename string) error {
	p := plot.New()
	p.Title.Text = "Equilibrium Diagram"
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Legend.Top = true

	scale := math.Max(data.Weight, math.Max(data.T1, data.T2))
	if scale <= 0 {
		scale = 1
	}

	r1 := data.Theta1 * math.Pi / 180
	r2 := data.Theta2 * math.Pi / 180

	vectors := []struct {
		dx, dy float64
		col    color.Color
		label  string
	}{
		{0, -data.Weight / scale, weightColor, fmt.Sprintf("P = %.2f N", data.Weight)},
		{-data.T1 * math.Cos(r1) / scale, data.T1 * math.Sin(r1) / scale, tension1Color,
			fmt.Sprintf("T1 = %.2f N (θ1 = %.0f°)", data.T1, data.Theta1)},
		{data.T2 * math.Cos(r2) / scale, data.T2 * math.Sin(r2) / scale, tension2Color,
			fmt.Sprintf("T2 = %.2f N (θ2 = %.0f°)", data.T2, data.Theta2)},
	}

	for _, v := range vectors {
		line, err := plotter.NewLine(plotter.XYs{{X: 0, Y: 0}, {X: v.dx, Y: v.dy}})
		if err != nil {
			return err
		}
		line.LineStyle.Width = vg.Points(2)
		line.LineStyle.Color = v.col
		p.Add(line)
		p.Legend.Add(v.label, line)

		tip, err := plotter.NewScatter(plotter.XYs{{X: v.dx, Y: v.dy}})
		if err != nil {
			return err
		}
		tip.GlyphStyle.Color = v.col
		tip.GlyphStyle.Radius = vg.Points(4)
		tip.GlyphStyle.Shape = draw.TriangleGlyph{}
		p.Add(tip)
	}

	body, err := plotter.NewScatter(plotter.XYs{{X: 0, Y: 0}})
	if err != nil {
		return err
	}
	body.GlyphStyle.Color = color.Black
	body.GlyphStyle.Radius = vg.Points(6)
	body.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(body)

	p.X.Min, p.X.Max = -1.2, 1.2
	p.Y.Min, p.Y.Max = -1.2, 1.2
	p.Add(plotter.NewGrid())

	return save(p, 6*vg.Inch, 6*vg.Inch, filename)
}

// ExportSweepPlot exports tension curves of an angle sweep against θ1
func ExportSweepPlot(points []SweepPoint, filename string) error {
	if len(points) == 0 {
		return fmt.Errorf("sweep has no points")
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Cable Tensions (θ2 = %.0f°)", points[0].Theta2)
	p.X.Label.Text = "θ1 (degrees)"
	p.Y.Label.Text = "Tension (N)"
	p.Legend.Top = true

	t1 := make(plotter.XYs, len(points))
	t2 := make(plotter.XYs, len(points))
	for i, pt := range points {
		t1[i] = plotter.XY{X: pt.Theta1, Y: pt.T1}
		t2[i] = plotter.XY{X: pt.Theta1, Y: pt.T2}
	}

	l1, err := plotter.NewLine(t1)
	if err != nil {
		return err
	}
	l1.LineStyle.Width = vg.Points(2)
	l1.LineStyle.Color = tension1Color
	p.Add(l1)
	p.Legend.Add("T1", l1)

	l2, err := plotter.NewLine(t2)
	if err != nil {
		return err
	}
	l2.LineStyle.Width = vg.Points(2)
	l2.LineStyle.Color = tension2Color
	l2.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	p.Add(l2)
	p.Legend.Add("T2", l2)

	p.Add(plotter.NewGrid())

	return save(p, 8*vg.Inch, 6*vg.Inch, filename)
}

// save writes p to filename, picking the format from its extension.
// Unknown extensions get ".png" appended.
func save(p *plot.Plot, width, height vg.Length, filename string) error {
	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}
