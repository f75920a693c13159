// Package plotting renders critical current versus magnetic field strength,
// one line+marker series per field angle.
package plotting

import (
	"fmt"
	"image/color"
	"math"

	"ic-analyzer/internal/aggregate"
	"ic-analyzer/pkg/colorutil"

	"github.com/Arafatk/glot"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// LegendTitle heads the plot legend, entered as a plain legend line.
const LegendTitle = "Angle of Applied Field"

// Series is one plottable angle group with its assigned color and label.
type Series struct {
	Angle  int
	Label  string
	Color  color.RGBA
	Points plotter.XYs
}

// BuildSeries assigns ramp colors and degree labels to the finalized angle
// groups. A zero-degree group, when present, takes the distinct pale yellow
// instead of its ramp color. Non-finite critical currents are dropped from
// the drawn points, so a failed fit shows up as a gap in its series.
func BuildSeries(groups []*aggregate.Group) []Series {
	colors := colorutil.Sequential(len(groups))
	out := make([]Series, 0, len(groups))
	for i, g := range groups {
		c := colors[i]
		if g.Angle == 0 {
			c = colorutil.PaleYellow
		}
		pts := make(plotter.XYs, 0, len(g.FieldStrengths))
		for j := range g.FieldStrengths {
			ic := g.CriticalCurrents[j]
			if math.IsNaN(ic) || math.IsInf(ic, 0) {
				continue
			}
			pts = append(pts, plotter.XY{X: g.FieldStrengths[j], Y: ic})
		}
		out = append(out, Series{
			Angle:  g.Angle,
			Label:  fmt.Sprintf("%d°", g.Angle),
			Color:  c,
			Points: pts,
		})
	}
	return out
}

// Render draws the Ic versus field figure and saves it to path. The format
// follows the extension (.png, .svg, .pdf).
func Render(series []Series, path string) error {
	p := plot.New()
	p.X.Label.Text = "Magnetic Field Strength [T]"
	p.Y.Label.Text = "Critical Current [A]"
	p.Add(plotter.NewGrid())
	p.Legend.Top = true
	p.Legend.Add(LegendTitle)

	for _, s := range series {
		line, err := plotter.NewLine(s.Points)
		if err != nil {
			return fmt.Errorf("series %s: %w", s.Label, err)
		}
		line.LineStyle.Color = s.Color
		line.LineStyle.Width = vg.Points(3)

		marks, err := plotter.NewScatter(s.Points)
		if err != nil {
			return fmt.Errorf("series %s: %w", s.Label, err)
		}
		marks.GlyphStyle.Color = s.Color
		marks.GlyphStyle.Radius = vg.Points(3)
		marks.Shape = draw.CircleGlyph{}

		p.Add(line, marks)
		p.Legend.Add(s.Label, line, marks)
	}

	if err := p.Save(10*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// Show opens an interactive gnuplot window with the same series. The window
// persists after the process exits.
func Show(series []Series) error {
	window, err := glot.NewPlot(2, true, false)
	if err != nil {
		return fmt.Errorf("open gnuplot: %w", err)
	}
	window.SetXLabel("Magnetic Field Strength [T]")
	window.SetYLabel("Critical Current [A]")

	for _, s := range series {
		xs := make([]float64, len(s.Points))
		ys := make([]float64, len(s.Points))
		for i, pt := range s.Points {
			xs[i] = pt.X
			ys[i] = pt.Y
		}
		if err := window.AddPointGroup(s.Label, "linepoints", [][]float64{xs, ys}); err != nil {
			return fmt.Errorf("series %s: %w", s.Label, err)
		}
	}
	return nil
}
