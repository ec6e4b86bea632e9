package diagram

import (
	"fmt"
	"math"
	"strings"
)

// Point represents a 2D screen coordinate (y grows downward)
type Point struct {
	X float64
	Y float64
}

// ForceDiagramData holds data for drawing the suspended body and its forces
type ForceDiagramData struct {
	// Load
	Weight float64 // N
	Mass   float64 // kg

	// Cable angles (degrees from horizontal)
	Theta1 float64
	Theta2 float64

	// Resolved tensions (N)
	T1 float64
	T2 float64

	// Scene geometry (px)
	Anchor1 Point
	Anchor2 Point
	Body    Point
}

// SweepPoint is one row of an angle sweep
type SweepPoint struct {
	Theta1 float64
	Theta2 float64
	T1     float64
	T2     float64
	BodyX  float64
	BodyY  float64
}

// DrawSceneDiagram creates an ASCII picture of the anchors, both cables and the body
func DrawSceneDiagram(data ForceDiagramData) string {
	var sb strings.Builder

	widthChars := 61
	heightChars := 14

	minX := math.Min(data.Anchor1.X, data.Body.X)
	maxX := math.Max(data.Anchor2.X, data.Body.X)
	top := data.Anchor1.Y
	drop := data.Body.Y - top
	if drop <= 0 {
		drop = 1
	}
	spanX := maxX - minX
	if spanX <= 0 {
		spanX = 1
	}

	col := func(x float64) int {
		return int(math.Round((x - minX) / spanX * float64(widthChars-1)))
	}
	row := func(y float64) int {
		return int(math.Round((y - top) / drop * float64(heightChars-1)))
	}

	grid := make([][]rune, heightChars+1)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", widthChars))
	}

	// Ceiling between the anchors
	for c := col(data.Anchor1.X); c <= col(data.Anchor2.X); c++ {
		grid[0][c] = '═'
	}

	plotCable(grid, col(data.Anchor1.X), 0, col(data.Body.X), row(data.Body.Y), '\\')
	plotCable(grid, col(data.Anchor2.X), 0, col(data.Body.X), row(data.Body.Y), '/')

	grid[0][col(data.Anchor1.X)] = 'A'
	grid[0][col(data.Anchor2.X)] = 'B'

	bodyRow := row(data.Body.Y)
	bodyCol := col(data.Body.X)
	grid[bodyRow][bodyCol] = '●'
	if bodyRow+1 <= heightChars {
		grid[bodyRow+1][bodyCol] = '↓'
	}

	sb.WriteString("\n")
	sb.WriteString("  SUSPENDED BODY\n")
	sb.WriteString("  ──────────────\n")
	for _, line := range grid {
		sb.WriteString("  ")
		sb.WriteString(strings.TrimRight(string(line), " "))
		sb.WriteString("\n")
	}

	// Legend
	sb.WriteString("\n")
	sb.WriteString("  Legend:\n")
	sb.WriteString(fmt.Sprintf("  A   = Anchor 1 at (%.0f, %.0f), cable at θ1 = %.1f°, T1 = %.2f N\n",
		data.Anchor1.X, data.Anchor1.Y, data.Theta1, data.T1))
	sb.WriteString(fmt.Sprintf("  B   = Anchor 2 at (%.0f, %.0f), cable at θ2 = %.1f°, T2 = %.2f N\n",
		data.Anchor2.X, data.Anchor2.Y, data.Theta2, data.T2))
	sb.WriteString(fmt.Sprintf("  ●   = Body at (%.1f, %.1f)\n", data.Body.X, data.Body.Y))
	sb.WriteString(fmt.Sprintf("  ↓   = Weight P = %.2f N (m = %.2f kg)\n", data.Weight, data.Mass))

	return sb.String()
}

// plotCable draws a straight segment between two grid cells
func plotCable(grid [][]rune, c0, r0, c1, r1 int, mark rune) {
	steps := max(abs(c1-c0), abs(r1-r0))
	if steps == 0 {
		return
	}
	for i := 1; i < steps; i++ {
		t := float64(i) / float64(steps)
		c := c0 + int(math.Round(t*float64(c1-c0)))
		r := r0 + int(math.Round(t*float64(r1-r0)))
		if r < 0 || r >= len(grid) || c < 0 || c >= len(grid[r]) {
			continue
		}
		if r == 0 {
			// Keep the ceiling intact for flat cables
			continue
		}
		grid[r][c] = mark
	}
}

// DrawForceTable creates an ASCII table of the three forces acting on the body
// with their horizontal and vertical components
func DrawForceTable(data ForceDiagramData) string {
	r1 := data.Theta1 * math.Pi / 180
	r2 := data.Theta2 * math.Pi / 180

	lines := []string{
		fmt.Sprintf("%-8s %10s %10s %10s", "Force", "|F| (N)", "Fx (N)", "Fy (N)"),
		fmt.Sprintf("%-8s %10.2f %10.2f %10.2f", "T1", data.T1, -data.T1*math.Cos(r1), data.T1*math.Sin(r1)),
		fmt.Sprintf("%-8s %10.2f %10.2f %10.2f", "T2", data.T2, data.T2*math.Cos(r2), data.T2*math.Sin(r2)),
		fmt.Sprintf("%-8s %10.2f %10.2f %10.2f", "P", data.Weight, 0.0, -data.Weight),
	}

	sumX := -data.T1*math.Cos(r1) + data.T2*math.Cos(r2)
	sumY := data.T1*math.Sin(r1) + data.T2*math.Sin(r2) - data.Weight
	lines = append(lines, fmt.Sprintf("%-8s %10s %10.2f %10.2f", "ΣF", "", cleanZero(sumX), cleanZero(sumY)))

	return DrawSummaryBox("FREE-BODY DIAGRAM", lines)
}

// DrawSweepTable renders a sweep as an aligned table
func DrawSweepTable(points []SweepPoint) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("  %8s %8s %12s %12s %10s %10s\n", "θ1 (°)", "θ2 (°)", "T1 (N)", "T2 (N)", "body x", "body y"))
	sb.WriteString(fmt.Sprintf("  %8s %8s %12s %12s %10s %10s\n", "──────", "──────", "──────", "──────", "──────", "──────"))
	for _, p := range points {
		sb.WriteString(fmt.Sprintf("  %8.1f %8.1f %12.2f %12.2f %10.1f %10.1f\n",
			p.Theta1, p.Theta2, p.T1, p.T2, p.BodyX, p.BodyY))
	}

	return sb.String()
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := displayWidth(title)
	for _, line := range lines {
		if w := displayWidth(line); w > maxLen {
			maxLen = w
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(title, maxLen-4)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(line, maxLen-4)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

// displayWidth counts runes, so Greek letters and symbols take one column
func displayWidth(s string) int {
	return len([]rune(s))
}

func pad(s string, width int) string {
	if n := width - displayWidth(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}

// cleanZero hides -0.00 in printed residuals
func cleanZero(v float64) float64 {
	if math.Abs(v) < 5e-3 {
		return 0
	}
	return v
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
