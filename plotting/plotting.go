// plotting.go
// Radius-of-gyration trajectory charts for fold runs, rendered with
// gonum/plot. One line per run, plus an optional dashed reference line
// at the native target Rg.

package plotting

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Series is one Rg trajectory to draw, labelled for the legend.
type Series struct {
	Name string
	Rg   []float64
}

var seriesColors = []color.RGBA{
	{R: 128, G: 0, B: 128, A: 255}, // purple, the native run
	{R: 200, G: 80, B: 40, A: 255}, // orange, the scrambled control
	{R: 40, G: 80, B: 200, A: 255},
}

// SaveRgPlot renders the given trajectories to path (format inferred
// from the extension, .svg or .png). A positive target draws a dashed
// green horizontal line marking the expected native Rg.
func SaveRgPlot(path string, series []Series, target float64) error {
	if len(series) == 0 {
		return fmt.Errorf("plotting: no series to plot")
	}

	p := plot.New()
	p.Title.Text = "Radius of Gyration Trajectory"
	p.X.Label.Text = "Step"
	p.Y.Label.Text = "Rg (Angstrom)"

	maxSteps := 0
	for si, s := range series {
		pts := make(plotter.XYs, len(s.Rg))
		for i, rg := range s.Rg {
			pts[i].X = float64(i)
			pts[i].Y = rg
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("plotting: %w", err)
		}
		line.LineStyle.Width = vg.Points(2)
		line.LineStyle.Color = seriesColors[si%len(seriesColors)]
		p.Add(line)
		p.Legend.Add(s.Name, line)
		if len(s.Rg) > maxSteps {
			maxSteps = len(s.Rg)
		}
	}

	if target > 0 && maxSteps > 1 {
		ref, err := plotter.NewLine(plotter.XYs{
			{X: 0, Y: target},
			{X: float64(maxSteps - 1), Y: target},
		})
		if err != nil {
			return fmt.Errorf("plotting: %w", err)
		}
		ref.LineStyle.Color = color.RGBA{R: 0, G: 140, B: 0, A: 255}
		ref.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(4)}
		p.Add(ref)
		p.Legend.Add("Native Target", ref)
	}

	p.Legend.Top = true
	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}
